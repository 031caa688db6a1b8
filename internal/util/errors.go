package util

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrCourseNotFound   = errors.New("course not found")
	ErrLectureNotFound  = errors.New("lecture not found")
	ErrNotEnrolled      = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled  = errors.New("already enrolled in this course")
	ErrNoPreviewContent = errors.New("course has no preview content")

	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteContent      = errors.New("note content is required")
	ErrReviewNotAllowed = errors.New("must be enrolled to review this course")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrInvalidVideoExt = errors.New("unsupported video file extension")
)
