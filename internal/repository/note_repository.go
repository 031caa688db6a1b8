package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.First(&note, id).Error
	return &note, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Note{}, id).Error
}

// ListByLecture returns one enrollment's notes on a lecture, newest first.
func (r *NoteRepository) ListByLecture(enrollmentID, lectureID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("enrollment_id = ? AND lecture_id = ?", enrollmentID, lectureID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListByEnrollment(enrollmentID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("enrollment_id = ?", enrollmentID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}
