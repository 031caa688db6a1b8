package model

import "time"

// Certificate is issued once an enrollment reaches 100% progress. The number
// is a UUID and can be verified publicly.
//
// swagger:model Certificate
type Certificate struct {
	BaseModel
	EnrollmentID      uint      `gorm:"uniqueIndex;not null" json:"enrollment_id"`
	CertificateNumber string    `gorm:"size:36;uniqueIndex;not null" json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
	URL               string    `gorm:"size:500" json:"url"`
}

func (Certificate) TableName() string {
	return "certificates"
}
