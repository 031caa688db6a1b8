package model

// QandA is a curated course FAQ entry shown in the player.
//
// swagger:model QandA
type QandA struct {
	BaseModel
	CourseID   uint   `gorm:"index;not null" json:"course_id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Order      int    `gorm:"column:sort_order;default:1" json:"order"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
	ViewsCount int    `gorm:"default:0" json:"views_count"`
}

func (QandA) TableName() string {
	return "qandas"
}

// swagger:model Announcement
type Announcement struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"course_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	IsPinned    bool   `gorm:"default:false" json:"is_pinned"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	CreatedByID *uint  `gorm:"index" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Announcement) TableName() string {
	return "announcements"
}
