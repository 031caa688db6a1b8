package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSections() []Section {
	return []Section{
		{
			ID: 2, Title: "Advanced", Order: 2,
			Lectures: []Lecture{
				{ID: 30, Title: "Advanced intro", Order: 1, IsPreview: true},
				{ID: 31, Title: "Deep dive", Order: 2},
			},
		},
		{
			ID: 1, Title: "Basics", Order: 1,
			Lectures: []Lecture{
				{ID: 11, Title: "Setup", Order: 2},
				{ID: 10, Title: "Welcome", Order: 1, IsPreview: true},
				{ID: 12, Title: "First steps", Order: 3},
			},
		},
	}
}

func enrolled() EnrollmentState {
	return EnrollmentState{Enrolled: true, EnrollmentID: 7}
}

func TestCanAccess(t *testing.T) {
	preview := &Lecture{ID: 1, IsPreview: true}
	gated := &Lecture{ID: 2}

	assert.True(t, CanAccess(preview, EnrollmentState{}))
	assert.False(t, CanAccess(gated, EnrollmentState{}))
	assert.True(t, CanAccess(preview, enrolled()))
	assert.True(t, CanAccess(gated, enrolled()))
	assert.False(t, CanAccess(nil, enrolled()))
}

func TestEnrollmentFromPayload(t *testing.T) {
	assert.False(t, EnrollmentFromPayload(nil).Enrolled)
	assert.False(t, EnrollmentFromPayload(&EnrollmentInfo{}).Enrolled)

	st := EnrollmentFromPayload(&EnrollmentInfo{ID: 3, Status: "active", ProgressPercent: 40})
	assert.True(t, st.Enrolled)
	assert.Equal(t, uint(3), st.EnrollmentID)
	assert.Equal(t, 40.0, st.ProgressPercent)
}

func TestFilterForViewerEnrolled(t *testing.T) {
	tree := NewContentTree(1, sampleSections())
	filtered := FilterForViewer(tree, enrolled())

	assert.Same(t, tree, filtered)
	assert.Equal(t, 5, filtered.LectureCount())
}

func TestFilterForViewerNotEnrolled(t *testing.T) {
	tree := NewContentTree(1, sampleSections())
	filtered := FilterForViewer(tree, EnrollmentState{})

	// Only the first preview in section order survives, even though two
	// lectures are flagged as previews.
	require.Equal(t, 1, filtered.LectureCount())
	require.Len(t, filtered.Sections, 1)
	assert.Equal(t, "Basics", filtered.Sections[0].Title)
	assert.Equal(t, uint(10), filtered.Sections[0].Lectures[0].ID)
	assert.Nil(t, filtered.Find(31))
	assert.Nil(t, filtered.Find(30))
}

func TestFilterForViewerNoPreview(t *testing.T) {
	tree := NewContentTree(1, []Section{
		{ID: 1, Order: 1, Lectures: []Lecture{{ID: 10, Order: 1}}},
	})
	filtered := FilterForViewer(tree, EnrollmentState{})

	assert.Equal(t, uint(1), filtered.CourseID)
	assert.Equal(t, 0, filtered.LectureCount())
}

func TestNewContentTreeSortsByOrder(t *testing.T) {
	tree := NewContentTree(1, sampleSections())

	flat := tree.Flatten()
	require.Len(t, flat, 5)
	var ids []uint
	for _, lec := range flat {
		ids = append(ids, lec.ID)
	}
	assert.Equal(t, []uint{10, 11, 12, 30, 31}, ids)
	assert.Equal(t, uint(10), tree.First().ID)
	assert.Equal(t, uint(10), tree.FirstPreview().ID)
}
