package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService is the instructor/admin side: creating courses, sections
// and lectures, and ingesting uploaded videos. Video uploads probe the file
// for its duration, generate a thumbnail and push both to storage.
type ContentService struct {
	CourseRepo  *repository.CourseRepository
	LectureRepo *repository.LectureRepository
	ExtrasRepo  *repository.CourseExtrasRepository
	Storage     *StorageService
	Catalog     *CatalogService
	Player      *PlayerService
}

func NewContentService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	extrasRepo *repository.CourseExtrasRepository,
	storage *StorageService,
	catalog *CatalogService,
	playerService *PlayerService,
) *ContentService {
	return &ContentService{
		CourseRepo:  courseRepo,
		LectureRepo: lectureRepo,
		ExtrasRepo:  extrasRepo,
		Storage:     storage,
		Catalog:     catalog,
		Player:      playerService,
	}
}

func (s *ContentService) CreateCourse(course *model.Course) error {
	if course.Slug == "" {
		course.Slug = slugify(course.Title)
	}
	return s.CourseRepo.Create(course)
}

func (s *ContentService) CreateSection(ctx context.Context, courseID uint, section *model.CourseSection) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	section.CourseID = courseID
	if err := s.LectureRepo.CreateSection(section); err != nil {
		return err
	}
	s.Player.InvalidateContentCache(ctx, courseID)
	return nil
}

func (s *ContentService) CreateLecture(ctx context.Context, sectionID uint, lecture *model.Lecture) error {
	section, err := s.LectureRepo.FindSection(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	lecture.SectionID = sectionID
	if lecture.VideoType == "" {
		lecture.VideoType = model.VideoTypeYouTube
	}
	if err := s.LectureRepo.Create(lecture); err != nil {
		return err
	}
	if err := s.Catalog.RefreshCourseAggregates(section.CourseID); err != nil {
		logger.Log.Warn("course aggregate refresh failed",
			zap.Uint("course_id", section.CourseID), zap.Error(err))
	}
	s.Player.InvalidateContentCache(ctx, section.CourseID)
	return nil
}

// UploadLectureVideo replaces a lecture's video with an uploaded file. The
// file is staged to a temp path, probed for duration, thumbnailed and then
// pushed to the configured storage backend.
func (s *ContentService) UploadLectureVideo(ctx context.Context, lectureID uint, header *multipart.FileHeader) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}
	section, err := s.LectureRepo.FindSection(lecture.SectionID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedVideoExt(ext) {
		return nil, util.ErrInvalidVideoExt
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeOctetStream})
	if err != nil {
		return nil, util.ErrInvalidVideoExt
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	tempPath := filepath.Join(os.TempDir(), util.GenerateRandomString(16)+ext)
	temp, err := os.Create(tempPath)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(temp, src); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return nil, err
	}
	temp.Close()
	defer os.Remove(tempPath)

	info, err := util.GetVideoInfo(tempPath)
	if err != nil {
		return nil, fmt.Errorf("probing uploaded video: %w", err)
	}

	objectName := fmt.Sprintf("lectures/%d/%s%s", lectureID, util.GenerateRandomString(8), ext)
	videoURL, err := s.Storage.Provider.UploadFile(ctx, objectName, tempPath, mimeType)
	if err != nil {
		return nil, err
	}

	thumbPath := tempPath + ".jpg"
	thumbURL := ""
	if err := util.GenerateThumbnail(tempPath, thumbPath, "1"); err != nil {
		logger.Log.Warn("thumbnail generation failed",
			zap.Uint("lecture_id", lectureID), zap.Error(err))
	} else {
		defer os.Remove(thumbPath)
		thumbName := fmt.Sprintf("lectures/%d/thumb_%s.jpg", lectureID, util.GenerateRandomString(8))
		thumbURL, err = s.Storage.Provider.UploadFile(ctx, thumbName, thumbPath, "image/jpeg")
		if err != nil {
			logger.Log.Warn("thumbnail upload failed",
				zap.Uint("lecture_id", lectureID), zap.Error(err))
			thumbURL = ""
		}
	}

	lecture.ContentURL = videoURL
	lecture.VideoType = model.VideoTypeUploaded
	lecture.YoutubeVideoID = ""
	lecture.DurationMinutes = int(math.Ceil(info.Duration / 60))
	if thumbURL != "" {
		lecture.Thumbnail = thumbURL
	}
	if err := s.LectureRepo.Update(lecture); err != nil {
		return nil, err
	}

	if err := s.Catalog.RefreshCourseAggregates(section.CourseID); err != nil {
		logger.Log.Warn("course aggregate refresh failed",
			zap.Uint("course_id", section.CourseID), zap.Error(err))
	}
	s.Player.InvalidateContentCache(ctx, section.CourseID)
	return lecture, nil
}

func allowedVideoExt(ext string) bool {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
