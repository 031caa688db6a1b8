// Package player implements the course-player access and progress engine:
// enrollment-gated content filtering, lecture selection, prev/next
// navigation, throttled playback checkpoints and an optimistic note cache.
// It is transport- and storage-agnostic; everything it needs from the
// backend comes through the Client interface.
package player

import (
	"sort"
	"time"
)

// Progress is the viewer's saved position in a lecture.
type Progress struct {
	Completed        bool `json:"completed"`
	WatchTimeSeconds int  `json:"watch_time_seconds"`
	LastPosition     int  `json:"last_position"`
}

// Navigation carries the backend-assigned prev/next lecture ids. Zero means
// no neighbor. The ids are authoritative: the backend's ordering may encode
// rules (cross-section continuity) the client cannot reconstruct.
type Navigation struct {
	PrevLectureID uint `json:"prev_lecture_id"`
	NextLectureID uint `json:"next_lecture_id"`
}

// Note is a lecture-scoped viewer note.
type Note struct {
	ID        uint      `json:"id"`
	LectureID uint      `json:"lecture_id"`
	Content   string    `json:"content"`
	Timestamp int       `json:"timestamp"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lecture is the player's view of a lecture. IsPreview comes from the
// backend and is never recomputed client-side.
type Lecture struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Order           int         `json:"order"`
	DurationMinutes int         `json:"duration_minutes"`
	IsPreview       bool        `json:"is_preview"`
	IsCompleted     bool        `json:"is_completed"`
	VideoType       string      `json:"video_type"`
	YoutubeVideoID  string      `json:"youtube_video_id"`
	ContentURL      string      `json:"content_url"`
	Progress        *Progress   `json:"progress,omitempty"`
	Navigation      *Navigation `json:"navigation,omitempty"`
	Notes           []Note      `json:"notes,omitempty"`
}

// Section groups lectures. Order is significant and sorted on, not the
// slice index.
type Section struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Order             int       `json:"order"`
	Lectures          []Lecture `json:"lectures"`
	CompletedLectures int       `json:"completed_lectures"`
	TotalLectures     int       `json:"total_lectures"`
}

// ContentTree is the immutable-per-load section/lecture tree of one course.
type ContentTree struct {
	CourseID uint      `json:"course_id"`
	Sections []Section `json:"sections"`
}

// NewContentTree normalizes the payload ordering: sections by Order, then
// lectures by Order within each section. The scan order of every consumer
// (filtering, initial selection, flattening) depends on this.
func NewContentTree(courseID uint, sections []Section) *ContentTree {
	tree := &ContentTree{CourseID: courseID, Sections: sections}
	sort.SliceStable(tree.Sections, func(i, j int) bool {
		return tree.Sections[i].Order < tree.Sections[j].Order
	})
	for i := range tree.Sections {
		lecs := tree.Sections[i].Lectures
		sort.SliceStable(lecs, func(a, b int) bool {
			return lecs[a].Order < lecs[b].Order
		})
	}
	return tree
}

// Flatten collapses the tree into one ordered lecture sequence.
func (t *ContentTree) Flatten() []Lecture {
	var out []Lecture
	for _, s := range t.Sections {
		out = append(out, s.Lectures...)
	}
	return out
}

// Find returns the lecture with the given id, or nil.
func (t *ContentTree) Find(id uint) *Lecture {
	for i := range t.Sections {
		for j := range t.Sections[i].Lectures {
			if t.Sections[i].Lectures[j].ID == id {
				return &t.Sections[i].Lectures[j]
			}
		}
	}
	return nil
}

// First returns the first lecture in section/lecture order, or nil when the
// tree is empty.
func (t *ContentTree) First() *Lecture {
	for i := range t.Sections {
		if len(t.Sections[i].Lectures) > 0 {
			return &t.Sections[i].Lectures[0]
		}
	}
	return nil
}

// FirstPreview returns the first preview lecture in section/lecture order,
// or nil when no lecture is flagged.
func (t *ContentTree) FirstPreview() *Lecture {
	for i := range t.Sections {
		for j := range t.Sections[i].Lectures {
			if t.Sections[i].Lectures[j].IsPreview {
				return &t.Sections[i].Lectures[j]
			}
		}
	}
	return nil
}

// LectureCount returns the number of lectures across all sections.
func (t *ContentTree) LectureCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Lectures)
	}
	return n
}
