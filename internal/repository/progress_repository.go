package repository

import (
	"errors"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindOrInit returns the progress row for an enrollment+lecture pair,
// creating an in-memory zero row when none exists yet.
func (r *ProgressRepository) FindOrInit(enrollmentID, lectureID uint) (*model.LectureProgress, error) {
	var progress model.LectureProgress
	err := r.DB.Where("enrollment_id = ? AND lecture_id = ?", enrollmentID, lectureID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.LectureProgress{
			EnrollmentID: enrollmentID,
			LectureID:    lectureID,
		}, nil
	}
	return &progress, err
}

func (r *ProgressRepository) Find(enrollmentID, lectureID uint) (*model.LectureProgress, error) {
	var progress model.LectureProgress
	err := r.DB.Where("enrollment_id = ? AND lecture_id = ?", enrollmentID, lectureID).
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) Save(progress *model.LectureProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) ListByEnrollment(enrollmentID uint) ([]model.LectureProgress, error) {
	var rows []model.LectureProgress
	err := r.DB.Where("enrollment_id = ?", enrollmentID).Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) CountCompleted(enrollmentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LectureProgress{}).
		Where("enrollment_id = ? AND completed = ?", enrollmentID, true).
		Count(&count).Error
	return count, err
}
