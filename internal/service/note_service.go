package service

import (
	"errors"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// NoteService manages lecture notes. Every operation is scoped to the
// caller's enrollment, so one student can never read or touch another's
// notes.
type NoteService struct {
	NoteRepo       *repository.NoteRepository
	LectureRepo    *repository.LectureRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewNoteService(
	noteRepo *repository.NoteRepository,
	lectureRepo *repository.LectureRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *NoteService {
	return &NoteService{
		NoteRepo:       noteRepo,
		LectureRepo:    lectureRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *NoteService) Create(userID, courseID, lectureID uint, content string, timestamp int) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.ErrNoteContent
	}

	if _, err := s.LectureRepo.FindInCourse(courseID, lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	enrollment, err := s.requireEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}

	if timestamp < 0 {
		timestamp = 0
	}
	note := &model.Note{
		EnrollmentID: enrollment.ID,
		LectureID:    lectureID,
		Content:      content,
		Timestamp:    timestamp,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Update(userID, noteID uint, content string) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.ErrNoteContent
	}

	note, err := s.ownedNote(userID, noteID)
	if err != nil {
		return nil, err
	}
	note.Content = content
	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(userID, noteID uint) error {
	note, err := s.ownedNote(userID, noteID)
	if err != nil {
		return err
	}
	return s.NoteRepo.Delete(note.ID)
}

// ListForLecture returns the caller's notes on a lecture, newest first.
func (s *NoteService) ListForLecture(userID, lectureID uint) ([]model.Note, error) {
	lec, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	section, err := s.LectureRepo.FindSection(lec.SectionID)
	if err != nil {
		return nil, err
	}
	enrollment, err := s.requireEnrollment(userID, section.CourseID)
	if err != nil {
		return nil, err
	}
	return s.NoteRepo.ListByLecture(enrollment.ID, lectureID)
}

// ownedNote loads a note and verifies the caller's enrollment owns it.
func (s *NoteService) ownedNote(userID, noteID uint) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	enrollment, err := s.EnrollmentRepo.FindByID(note.EnrollmentID)
	if err != nil || enrollment.UserID != userID {
		return nil, util.ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) requireEnrollment(userID, courseID uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil || !enrollment.Status.IsEnrolled() {
		return nil, util.ErrNotEnrolled
	}
	return enrollment, nil
}
