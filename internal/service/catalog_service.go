package service

import (
	"errors"
	"math"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService serves the public course listing and detail pages.
type CatalogService struct {
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	ReviewRepo     *repository.ReviewRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewCatalogService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	reviewRepo *repository.ReviewRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *CatalogService {
	return &CatalogService{
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		ReviewRepo:     reviewRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *CatalogService) ListCourses(page, pageSize int) ([]model.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.CourseRepo.List(page, pageSize, true)
}

func (s *CatalogService) CourseBySlug(slug string) (*model.Course, error) {
	course, err := s.CourseRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CatalogService) CourseByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// AddReview records a student's review and refreshes the course's rating
// aggregates. Only enrolled students may review, once per course.
func (s *CatalogService) AddReview(userID, courseID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, util.ErrInvalidRating
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil || !enrollment.Status.IsEnrolled() {
		return nil, util.ErrReviewNotAllowed
	}
	if _, err := s.ReviewRepo.FindByCourseAndUser(courseID, userID); err == nil {
		return nil, util.ErrReviewNotAllowed
	}

	review := &model.Review{
		CourseID:           courseID,
		UserID:             userID,
		Rating:             rating,
		Comment:            comment,
		IsVerifiedPurchase: true,
	}
	if err := s.ReviewRepo.Create(review); err != nil {
		return nil, err
	}
	if err := s.refreshRating(courseID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *CatalogService) ListReviews(courseID uint, page, pageSize int) ([]model.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.ReviewRepo.ListByCourse(courseID, page, pageSize)
}

// RefreshCourseAggregates recomputes the denormalized lecture count and
// duration after content changes.
func (s *CatalogService) RefreshCourseAggregates(courseID uint) error {
	count, minutes, err := s.LectureRepo.CourseStats(courseID)
	if err != nil {
		return err
	}
	hours := math.Round(float64(minutes)/60*100) / 100
	return s.CourseRepo.UpdateAggregates(courseID, map[string]interface{}{
		"total_lectures":       count,
		"total_duration_hours": hours,
	})
}

func (s *CatalogService) refreshRating(courseID uint) error {
	avg, count, err := s.ReviewRepo.Aggregate(courseID)
	if err != nil {
		return err
	}
	avg = math.Round(avg*10) / 10
	return s.CourseRepo.UpdateAggregates(courseID, map[string]interface{}{
		"rating":      avg,
		"num_reviews": count,
	})
}
