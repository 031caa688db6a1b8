package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("slug = ?", slug).First(&course).Error
	return &course, err
}

// FindByIDWithContent loads the course with its sections and lectures in
// section/lecture sort order.
func (r *CourseRepository) FindByIDWithContent(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_sections.sort_order ASC")
		}).
		Preload("Sections.Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Order("lectures.sort_order ASC")
		}).
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) List(page, pageSize int, activeOnly bool) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&courses).Error
	return courses, total, err
}

// UpdateAggregates rewrites the denormalized counters a single course
// carries: total lectures, total duration, enrolled students, rating.
func (r *CourseRepository) UpdateAggregates(courseID uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", courseID).Updates(fields).Error
}

func (r *CourseRepository) IncrementStudents(courseID uint) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", courseID).
		UpdateColumn("total_students", gorm.Expr("total_students + 1")).Error
}
