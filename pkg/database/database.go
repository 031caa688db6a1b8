package database

import (
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// Migrate runs AutoMigrate for every model. Shared with the test helpers so
// the sqlite test databases carry the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseSection{},
		&model.Lecture{},
		&model.Enrollment{},
		&model.LectureProgress{},
		&model.Note{},
		&model.Quiz{},
		&model.Assignment{},
		&model.QandA{},
		&model.Announcement{},
		&model.Review{},
		&model.Certificate{},
	)
}

func seedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	course := &model.Course{
		Title:            "Getting Started with LearnHub",
		Slug:             "getting-started-with-learnhub",
		Description:      "A short orientation course for new students.",
		ShortDescription: "Find your way around the platform.",
		Language:         "English",
		Level:            "all",
		IsActive:         true,
	}
	if err := db.Create(course).Error; err != nil {
		log.Printf("seed course failed: %v", err)
		return
	}

	section := &model.CourseSection{CourseID: course.ID, Title: "Welcome", Order: 1}
	db.Create(section)
	db.Create(&model.Lecture{
		SectionID:       section.ID,
		Title:           "Tour of the course player",
		Order:           1,
		DurationMinutes: 5,
		IsPreview:       true,
		VideoType:       model.VideoTypeYouTube,
	})
}
