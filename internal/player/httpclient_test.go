package player

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    status,
		"message": message,
		"data":    data,
	})
}

func TestHTTPClientFetchContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/1/content", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "success", ContentPayload{
			Course:           CourseInfo{ID: 1, Slug: "go-basics"},
			Sections:         sampleSections(),
			Enrollment:       &EnrollmentInfo{ID: 7, Status: "active"},
			InitialLectureID: 10,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "token-123")
	payload, err := c.FetchContent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "go-basics", payload.Course.Slug)
	assert.Equal(t, uint(10), payload.InitialLectureID)
	require.NotNil(t, payload.Enrollment)
	assert.Equal(t, uint(7), payload.Enrollment.ID)
}

func TestHTTPClientErrorMapping(t *testing.T) {
	cases := []struct {
		status  int
		kind    ErrorKind
		message string
	}{
		{http.StatusForbidden, KindAccessDenied, "enrollment required"},
		{http.StatusUnauthorized, KindAccessDenied, "token expired"},
		{http.StatusNotFound, KindNotFound, "lecture not found"},
		{http.StatusBadRequest, KindValidation, "content is required"},
		{http.StatusInternalServerError, KindNetwork, "server error"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, tc.status, tc.message, nil)
		}))

		c := NewHTTPClient(srv.URL, "")
		_, err := c.FetchLecture(context.Background(), 1, 2)
		require.Error(t, err)
		assert.Equal(t, tc.kind, KindOf(err), "status %d", tc.status)
		assert.Contains(t, err.Error(), tc.message)
		srv.Close()
	}
}

func TestHTTPClientNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>bad gateway</html>", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	_, err := c.FetchContent(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestHTTPClientSaveProgress(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/courses/1/lectures/5/progress", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, "success", nil)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "t")
	err := c.SaveProgress(context.Background(), 1, 5, Checkpoint{
		LectureID: 5, WatchTimeSeconds: 30, LastPosition: 30, Completed: false,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(30), got["watch_time_seconds"])
	assert.Equal(t, false, got["completed"])
}

func TestHTTPClientNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/courses/1/lectures/5/notes":
			writeEnvelope(w, http.StatusCreated, "created", Note{ID: 9, LectureID: 5, Content: "hi", Timestamp: 12})
		case r.Method == http.MethodGet && r.URL.Path == "/api/notes":
			assert.Equal(t, "5", r.URL.Query().Get("lecture_id"))
			writeEnvelope(w, http.StatusOK, "success", []Note{{ID: 9, LectureID: 5, Content: "hi"}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/notes/9":
			writeEnvelope(w, http.StatusOK, "success", Note{ID: 9, LectureID: 5, Content: "edited"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/notes/9":
			writeEnvelope(w, http.StatusOK, "success", nil)
		default:
			writeEnvelope(w, http.StatusNotFound, "not found", nil)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "t")
	ctx := context.Background()

	created, err := c.CreateNote(ctx, 1, 5, "hi", 12)
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)

	notes, err := c.ListNotes(ctx, 5)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	updated, err := c.UpdateNote(ctx, 9, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, c.DeleteNote(ctx, 9))
}
