package model

import "time"

// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID     uint   `gorm:"index;not null" json:"course_id"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	PassingScore int    `gorm:"default:70" json:"passing_score"`
	Order        int    `gorm:"column:sort_order;default:1" json:"order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Assignment
type Assignment struct {
	BaseModel
	CourseID    uint       `gorm:"index;not null" json:"course_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Order       int        `gorm:"column:sort_order;default:1" json:"order"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
}

func (Assignment) TableName() string {
	return "assignments"
}
