package model

const (
	VideoTypeYouTube  = "youtube"
	VideoTypeVimeo    = "vimeo"
	VideoTypeDirect   = "direct"
	VideoTypeUploaded = "uploaded"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title            string  `gorm:"size:255;not null" json:"title"`
	Slug             string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description      string  `gorm:"type:text" json:"description"`
	ShortDescription string  `gorm:"size:500" json:"short_description"`
	Price            float64 `gorm:"default:0" json:"price"`
	IsActive         bool    `gorm:"default:true;index" json:"is_active"`
	Thumbnail        string  `gorm:"size:255" json:"thumbnail"`
	InstructorID     *uint   `gorm:"index" json:"instructor_id"`
	Instructor       *User   `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Language         string  `gorm:"size:50;default:'English'" json:"language"`
	Level            string  `gorm:"size:20;default:'all'" json:"level"`

	// Denormalized stats, refreshed whenever content changes.
	TotalDurationHours float64 `gorm:"default:0" json:"total_duration_hours"`
	TotalLectures      int     `gorm:"default:0" json:"total_lectures"`
	TotalStudents      int     `gorm:"default:0" json:"total_students"`
	Rating             float64 `gorm:"default:0" json:"rating"`
	NumReviews         int     `gorm:"default:0" json:"num_reviews"`

	Sections []CourseSection `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseSection
type CourseSection struct {
	BaseModel
	CourseID uint      `gorm:"index;not null" json:"course_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Order    int       `gorm:"column:sort_order;default:1" json:"order"`
	Lectures []Lecture `gorm:"foreignKey:SectionID" json:"lectures,omitempty"`
}

func (CourseSection) TableName() string {
	return "course_sections"
}

// swagger:model Lecture
type Lecture struct {
	BaseModel
	SectionID       uint   `gorm:"index;not null" json:"section_id"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Order           int    `gorm:"column:sort_order;default:1" json:"order"`
	ContentURL      string `gorm:"size:500" json:"content_url"`
	YoutubeVideoID  string `gorm:"size:50" json:"youtube_video_id"`
	Thumbnail       string `gorm:"size:500" json:"thumbnail"`
	DurationMinutes int    `gorm:"default:0" json:"duration_minutes"`
	// IsPreview marks a lecture viewable without enrollment. Only the backend
	// ever sets it; clients treat it as ground truth.
	IsPreview bool   `gorm:"default:false" json:"is_preview"`
	VideoType string `gorm:"size:20;default:'youtube'" json:"video_type"`
}

func (Lecture) TableName() string {
	return "lectures"
}
