package player

import "context"

// CourseInfo is the course header returned alongside the content tree.
type CourseInfo struct {
	ID                 uint    `json:"id"`
	Slug               string  `json:"slug"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalLectures      int     `json:"total_lectures"`
	Rating             float64 `json:"rating"`
	NumReviews         int     `json:"num_reviews"`
}

// QuizSummary is the lightweight quiz listing shipped with the content payload.
type QuizSummary struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	PassingScore int    `json:"passing_score"`
}

// AssignmentSummary is the lightweight assignment listing shipped with the
// content payload.
type AssignmentSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date,omitempty"`
}

// QandAItem is a published question and answer pair for the course.
type QandAItem struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnnouncementItem is a course announcement shipped with the content payload.
type AnnouncementItem struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsPinned  bool   `json:"is_pinned"`
	CreatedAt string `json:"created_at"`
}

// ContentPayload is the full player bootstrap response. Sections arrive
// already filtered for the viewer; Enrollment is nil for viewers without an
// active enrollment.
type ContentPayload struct {
	Course           CourseInfo          `json:"course"`
	Sections         []Section           `json:"sections"`
	Enrollment       *EnrollmentInfo     `json:"enrollment"`
	InitialLectureID uint                `json:"initial_lecture_id"`
	Quizzes          []QuizSummary       `json:"quizzes"`
	Assignments      []AssignmentSummary `json:"assignments"`
	QandAs           []QandAItem         `json:"qandas"`
	Announcements    []AnnouncementItem  `json:"announcements"`
}

// Client is the backend surface the player session runs against. The HTTP
// implementation lives in this package; tests substitute fakes.
type Client interface {
	// FetchContent loads the course content tree filtered for the caller.
	FetchContent(ctx context.Context, courseID uint) (*ContentPayload, error)

	// FetchLecture loads a single lecture with progress, navigation ids and
	// notes. Access is enforced server side: a gated lecture without an
	// enrollment fails with KindAccessDenied.
	FetchLecture(ctx context.Context, courseID, lectureID uint) (*Lecture, error)

	// SaveProgress persists a watch-time checkpoint.
	SaveProgress(ctx context.Context, courseID, lectureID uint, cp Checkpoint) error

	// CreateNote creates a note on a lecture and returns the stored note.
	CreateNote(ctx context.Context, courseID, lectureID uint, content string, timestamp int) (*Note, error)

	// UpdateNote replaces a note's content and returns the stored note.
	UpdateNote(ctx context.Context, noteID uint, content string) (*Note, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID uint) error

	// ListNotes returns the caller's notes for a lecture, newest first.
	ListNotes(ctx context.Context, lectureID uint) ([]Note, error)
}
