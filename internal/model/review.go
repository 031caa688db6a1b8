package model

// swagger:model Review
type Review struct {
	BaseModel
	CourseID           uint   `gorm:"uniqueIndex:idx_course_user_review;not null" json:"course_id"`
	UserID             uint   `gorm:"uniqueIndex:idx_course_user_review;not null" json:"user_id"`
	User               *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating             int    `gorm:"not null" json:"rating"`
	Comment            string `gorm:"type:text" json:"comment"`
	IsVerifiedPurchase bool   `gorm:"default:false" json:"is_verified_purchase"`
}

func (Review) TableName() string {
	return "reviews"
}
