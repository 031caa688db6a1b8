package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

func (r *LectureRepository) Create(lecture *model.Lecture) error {
	return r.DB.Create(lecture).Error
}

func (r *LectureRepository) Update(lecture *model.Lecture) error {
	return r.DB.Save(lecture).Error
}

func (r *LectureRepository) FindByID(id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, id).Error
	return &lecture, err
}

// FindInCourse loads a lecture only when it belongs to the given course; a
// wrong course id behaves like an unknown lecture.
func (r *LectureRepository) FindInCourse(courseID, lectureID uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.
		Joins("JOIN course_sections ON course_sections.id = lectures.section_id").
		Where("lectures.id = ? AND course_sections.course_id = ?", lectureID, courseID).
		First(&lecture).Error
	return &lecture, err
}

// OrderedIDs returns all lecture ids of a course in section order then
// lecture order. Navigation neighbors are derived from this sequence.
func (r *LectureRepository) OrderedIDs(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Lecture{}).
		Joins("JOIN course_sections ON course_sections.id = lectures.section_id").
		Where("course_sections.course_id = ?", courseID).
		Order("course_sections.sort_order ASC, lectures.sort_order ASC").
		Pluck("lectures.id", &ids).Error
	return ids, err
}

func (r *LectureRepository) CreateSection(section *model.CourseSection) error {
	return r.DB.Create(section).Error
}

func (r *LectureRepository) FindSection(id uint) (*model.CourseSection, error) {
	var section model.CourseSection
	err := r.DB.First(&section, id).Error
	return &section, err
}

func (r *LectureRepository) SectionCount(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseSection{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

// CourseStats sums lecture counts and minutes for the aggregate refresh.
func (r *LectureRepository) CourseStats(courseID uint) (count int64, totalMinutes int64, err error) {
	row := r.DB.Model(&model.Lecture{}).
		Joins("JOIN course_sections ON course_sections.id = lectures.section_id").
		Where("course_sections.course_id = ?", courseID).
		Select("COUNT(lectures.id), COALESCE(SUM(lectures.duration_minutes), 0)").
		Row()
	err = row.Scan(&count, &totalMinutes)
	return count, totalMinutes, err
}
