package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByCourseAndUser(courseID, userID uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&review).Error
	return &review, err
}

func (r *ReviewRepository) ListByCourse(courseID uint, page, pageSize int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.DB.Model(&model.Review{}).Where("course_id = ?", courseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

// Aggregate returns the average rating and review count for a course.
func (r *ReviewRepository) Aggregate(courseID uint) (avg float64, count int64, err error) {
	row := r.DB.Model(&model.Review{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Row()
	err = row.Scan(&avg, &count)
	return avg, count, err
}
