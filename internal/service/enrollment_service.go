package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	ProgressRepo   *repository.ProgressRepository
	CertRepo       *repository.CertificateRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	progressRepo *repository.ProgressRepository,
	certRepo *repository.CertificateRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		ProgressRepo:   progressRepo,
		CertRepo:       certRepo,
	}
}

// Enroll creates an active enrollment for a free course. Re-enrolling is
// rejected unless the previous enrollment was cancelled.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	existing, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		if existing.Status == model.EnrollmentCancelled {
			existing.Status = model.EnrollmentActive
			if err := s.EnrollmentRepo.Update(existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   model.EnrollmentActive,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	if err := s.CourseRepo.IncrementStudents(course.ID); err != nil {
		logger.Log.Warn("student counter update failed",
			zap.Uint("course_id", course.ID), zap.Error(err))
	}
	return enrollment, nil
}

// EnrolledCourse pairs an enrollment with its course for the my-courses
// listing.
type EnrolledCourse struct {
	Enrollment model.Enrollment `json:"enrollment"`
	Course     model.Course     `json:"course"`
}

func (s *EnrollmentService) MyCourses(userID uint) ([]EnrolledCourse, error) {
	enrollments, err := s.EnrollmentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.CourseRepo.FindByID(e.CourseID)
		if err != nil {
			continue
		}
		out = append(out, EnrolledCourse{Enrollment: e, Course: *course})
	}
	return out, nil
}

// RefreshProgress recomputes an enrollment's completion percentage from its
// per-lecture rows. Hitting 100% flips the enrollment to completed and
// issues the certificate. The percentage never goes down, even if lectures
// are added later.
func (s *EnrollmentService) RefreshProgress(enrollment *model.Enrollment) error {
	ids, err := s.LectureRepo.OrderedIDs(enrollment.CourseID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	completed, err := s.ProgressRepo.CountCompleted(enrollment.ID)
	if err != nil {
		return err
	}

	percent := math.Round(float64(completed)/float64(len(ids))*10000) / 100
	if percent > 100 {
		percent = 100
	}
	if percent > enrollment.ProgressPercent {
		enrollment.ProgressPercent = percent
	}

	if enrollment.ProgressPercent >= 100 && enrollment.Status != model.EnrollmentCompleted {
		now := time.Now()
		enrollment.Status = model.EnrollmentCompleted
		enrollment.CompletedAt = &now
		if cert, err := s.issueCertificate(enrollment); err != nil {
			logger.Log.Error("certificate issue failed",
				zap.Uint("enrollment_id", enrollment.ID), zap.Error(err))
		} else {
			enrollment.CertificateURL = cert.URL
		}
	}
	return s.EnrollmentRepo.Update(enrollment)
}

// Certificate returns the caller's certificate for a course.
func (s *EnrollmentService) Certificate(userID, courseID uint) (*model.Certificate, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, util.ErrNotEnrolled
	}
	cert, err := s.CertRepo.FindByEnrollment(enrollment.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	return cert, err
}

// VerifyCertificate looks a certificate up by its public number.
func (s *EnrollmentService) VerifyCertificate(number string) (*model.Certificate, error) {
	return s.CertRepo.FindByNumber(number)
}

func (s *EnrollmentService) issueCertificate(enrollment *model.Enrollment) (*model.Certificate, error) {
	if cert, err := s.CertRepo.FindByEnrollment(enrollment.ID); err == nil {
		return cert, nil
	}
	number := model.GenerateUUID()
	cert := &model.Certificate{
		EnrollmentID:      enrollment.ID,
		CertificateNumber: number,
		IssuedAt:          time.Now(),
		URL:               fmt.Sprintf("/certificates/%s", number),
	}
	if err := s.CertRepo.Create(cert); err != nil {
		return nil, err
	}
	return cert, nil
}
