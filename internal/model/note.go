package model

// swagger:model Note
type Note struct {
	BaseModel
	EnrollmentID uint   `gorm:"index;not null" json:"-"`
	LectureID    uint   `gorm:"index;not null" json:"lecture_id"`
	Content      string `gorm:"type:text;not null" json:"content"`
	IsPublic     bool   `gorm:"default:false" json:"is_public"`
	// Timestamp is the video position the note refers to, in seconds.
	Timestamp int `gorm:"default:0" json:"timestamp"`
}

func (Note) TableName() string {
	return "notes"
}
