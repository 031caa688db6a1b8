package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrolledPayload() *ContentPayload {
	return &ContentPayload{
		Course:     CourseInfo{ID: 1, Slug: "go-basics", Title: "Go Basics"},
		Sections:   sampleSections(),
		Enrollment: &EnrollmentInfo{ID: 7, Status: "active", ProgressPercent: 20},
	}
}

func visitorPayload() *ContentPayload {
	return &ContentPayload{
		Course:   CourseInfo{ID: 1, Slug: "go-basics", Title: "Go Basics"},
		Sections: sampleSections(),
	}
}

func seedLectures(client *fakeClient, ids ...uint) {
	for _, id := range ids {
		client.lectures[id] = &Lecture{ID: id, Title: "Lecture"}
	}
}

func TestSessionLoadEnrolledHonorsDeepLink(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 11, 12, 30, 31)

	s := NewSession(client, nil, Options{})
	require.NoError(t, s.Load(context.Background(), 1, 31))

	require.NotNil(t, s.Current())
	assert.Equal(t, uint(31), s.Current().ID)
	assert.Equal(t, 5, s.Tree().LectureCount())
}

func TestSessionLoadVisitorGetsPreviewOnly(t *testing.T) {
	client := newFakeClient()
	client.content = visitorPayload()
	seedLectures(client, 10)

	s := NewSession(client, nil, Options{})
	// The deep link names a gated lecture; a visitor still lands on the
	// preview and nothing else exists in the tree.
	require.NoError(t, s.Load(context.Background(), 1, 31))

	require.NotNil(t, s.Current())
	assert.Equal(t, uint(10), s.Current().ID)
	assert.Equal(t, 1, s.Tree().LectureCount())
	assert.False(t, s.HasNext())
	assert.False(t, s.HasPrevious())
}

func TestSessionSelectDedup(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 11, 12, 30, 31)

	s := NewSession(client, nil, Options{})
	require.NoError(t, s.Load(context.Background(), 1, 10))
	calls := len(client.lectureCalls())

	// Reselecting the current lecture and selecting an id outside the tree
	// both skip the backend entirely.
	require.NoError(t, s.SelectLecture(context.Background(), 10))
	require.NoError(t, s.SelectLecture(context.Background(), 999))
	assert.Len(t, client.lectureCalls(), calls)
}

func TestSessionNavigation(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 11, 12, 30, 31)

	var changes []uint
	s := NewSession(client, nil, Options{
		OnLectureChange: func(id uint) { changes = append(changes, id) },
	})
	require.NoError(t, s.Load(context.Background(), 1, 0))
	assert.Equal(t, uint(10), s.Current().ID)
	assert.False(t, s.HasPrevious())

	require.NoError(t, s.GoNext(context.Background()))
	assert.Equal(t, uint(11), s.Current().ID)

	require.NoError(t, s.GoPrevious(context.Background()))
	assert.Equal(t, uint(10), s.Current().ID)

	// At the start of the course GoPrevious is a no-op.
	require.NoError(t, s.GoPrevious(context.Background()))
	assert.Equal(t, uint(10), s.Current().ID)

	assert.Equal(t, []uint{10, 11, 10}, changes)
}

func TestSessionAccessDeniedFallsBackToPreviewOnce(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 11, 12, 30)
	client.lectureErr[31] = NewError(KindAccessDenied, "enrollment required", nil)

	s := NewSession(client, nil, Options{})
	require.NoError(t, s.Load(context.Background(), 1, 10))

	// The enrollment lapsed server-side: selecting 31 is denied and the
	// session retreats to the preview lecture instead of failing the UI.
	// The preview is already current, so no extra fetch happens.
	require.NoError(t, s.SelectLecture(context.Background(), 31))
	assert.Equal(t, uint(10), s.Current().ID)
	assert.Equal(t, []uint{10, 31}, client.lectureCalls())
}

func TestSessionAccessDeniedFailsClosedWhenFallbackDenied(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	denied := NewError(KindAccessDenied, "enrollment required", nil)
	client.lectureErr[10] = denied
	client.lectureErr[31] = denied

	s := NewSession(client, nil, Options{})
	err := s.Load(context.Background(), 1, 31)
	require.Error(t, err)
	assert.True(t, IsAccessDenied(err))

	// Exactly one fallback attempt: the denied target, then the preview.
	assert.Equal(t, []uint{31, 10}, client.lectureCalls())
	assert.Nil(t, s.Current())
}

func TestSessionErrorSurfacedOncePerLecture(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 12, 30, 31)
	client.lectureErr[11] = NewError(KindNetwork, "timeout", nil)

	s := NewSession(client, nil, Options{})
	require.NoError(t, s.Load(context.Background(), 1, 10))

	err := s.SelectLecture(context.Background(), 11)
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))

	// The second attempt still hits the backend but the error has already
	// been surfaced for this lecture, so the caller gets silence.
	assert.NoError(t, s.SelectLecture(context.Background(), 11))
}

func TestSessionProgressCheckpoints(t *testing.T) {
	client := newFakeClient()
	client.content = enrolledPayload()
	seedLectures(client, 10, 11, 12, 30, 31)

	s := NewSession(client, nil, Options{CheckpointSeconds: 10, CompletionThreshold: 0.9})
	require.NoError(t, s.Load(context.Background(), 1, 10))

	s.OnProgressSample(context.Background(), 3, 0.01)
	s.OnProgressSample(context.Background(), 10, 0.05)
	waitForSave(t, client)

	s.OnProgressSample(context.Background(), 10.6, 0.05)
	s.OnProgressSample(context.Background(), 90, 0.95)
	waitForSave(t, client)

	cps := client.checkpoints()
	require.Len(t, cps, 2)
	assert.Equal(t, Checkpoint{LectureID: 10, WatchTimeSeconds: 10, LastPosition: 10}, cps[0])
	assert.Equal(t, 90, cps[1].WatchTimeSeconds)
	assert.True(t, cps[1].Completed)
}

func TestSessionProgressIgnoredWithoutLecture(t *testing.T) {
	client := newFakeClient()
	s := NewSession(client, nil, Options{})

	s.OnProgressSample(context.Background(), 10, 0.5)
	assert.Empty(t, client.checkpoints())
}

func waitForSave(t *testing.T, client *fakeClient) {
	t.Helper()
	select {
	case <-client.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("progress save did not happen")
	}
}
