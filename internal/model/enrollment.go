package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// IsEnrolled reports whether the status grants access to gated content.
func (s EnrollmentStatus) IsEnrolled() bool {
	return s == EnrollmentActive || s == EnrollmentCompleted
}

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID          uint             `gorm:"uniqueIndex:idx_user_course;not null" json:"user_id"`
	CourseID        uint             `gorm:"uniqueIndex:idx_user_course;not null" json:"course_id"`
	Status          EnrollmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	ProgressPercent float64          `gorm:"default:0" json:"progress_percent"`
	CertificateURL  string           `gorm:"size:500" json:"certificate_url"`
	CompletedAt     *time.Time       `json:"completed_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// LectureProgress tracks a student's position in a single lecture. One row
// per enrollment+lecture; watch time only grows and completion never reverts.
//
// swagger:model LectureProgress
type LectureProgress struct {
	BaseModel
	EnrollmentID     uint       `gorm:"uniqueIndex:idx_enrollment_lecture;not null" json:"enrollment_id"`
	LectureID        uint       `gorm:"uniqueIndex:idx_enrollment_lecture;not null" json:"lecture_id"`
	Completed        bool       `gorm:"default:false" json:"completed"`
	CompletedAt      *time.Time `json:"completed_at"`
	WatchTimeSeconds int        `gorm:"default:0" json:"watch_time_seconds"`
	LastPosition     int        `gorm:"default:0" json:"last_position"`
}

func (LectureProgress) TableName() string {
	return "lecture_progress"
}
