package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

// CourseExtrasRepository serves the secondary course material shown in the
// player sidebar: quizzes, assignments, Q&A entries and announcements.
type CourseExtrasRepository struct {
	DB *gorm.DB
}

func NewCourseExtrasRepository(db *gorm.DB) *CourseExtrasRepository {
	return &CourseExtrasRepository{DB: db}
}

func (r *CourseExtrasRepository) Quizzes(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ? AND is_active = ?", courseID, true).
		Order("sort_order ASC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *CourseExtrasRepository) Assignments(courseID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("course_id = ? AND is_active = ?", courseID, true).
		Order("sort_order ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *CourseExtrasRepository) QandAs(courseID uint) ([]model.QandA, error) {
	var qandas []model.QandA
	err := r.DB.Where("course_id = ? AND is_active = ?", courseID, true).
		Order("sort_order ASC").
		Find(&qandas).Error
	return qandas, err
}

func (r *CourseExtrasRepository) Announcements(courseID uint) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Where("course_id = ? AND is_active = ?", courseID, true).
		Order("is_pinned DESC, created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

func (r *CourseExtrasRepository) CreateQuiz(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *CourseExtrasRepository) CreateAssignment(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *CourseExtrasRepository) CreateQandA(qanda *model.QandA) error {
	return r.DB.Create(qanda).Error
}

func (r *CourseExtrasRepository) CreateAnnouncement(announcement *model.Announcement) error {
	return r.DB.Create(announcement).Error
}
