package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/player"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayerService drives the course player endpoints: the filtered content
// tree, single lecture loads with navigation, progress checkpoints and
// completion. Access decisions go through the player package's predicate so
// the server and the embedded client agree on who sees what.
type PlayerService struct {
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	NoteRepo       *repository.NoteRepository
	ExtrasRepo     *repository.CourseExtrasRepository
	Enrollments    *EnrollmentService
	Redis          *redis.Client
	Cfg            *config.Config
}

func NewPlayerService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	noteRepo *repository.NoteRepository,
	extrasRepo *repository.CourseExtrasRepository,
	enrollments *EnrollmentService,
	redisClient *redis.Client,
	cfg *config.Config,
) *PlayerService {
	return &PlayerService{
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		NoteRepo:       noteRepo,
		ExtrasRepo:     extrasRepo,
		Enrollments:    enrollments,
		Redis:          redisClient,
		Cfg:            cfg,
	}
}

// ProgressInput is one checkpoint from the player.
type ProgressInput struct {
	WatchTimeSeconds int  `json:"watch_time_seconds" binding:"min=0"`
	LastPosition     int  `json:"last_position" binding:"min=0"`
	Completed        bool `json:"completed"`
}

// CourseOverview is the public landing payload for a course: headline info,
// content counts and the caller's enrollment summary when one exists.
type CourseOverview struct {
	Course        player.CourseInfo      `json:"course"`
	Sections      int                    `json:"sections"`
	Lectures      int                    `json:"lectures"`
	Quizzes       int                    `json:"quizzes"`
	Assignments   int                    `json:"assignments"`
	HasPreview    bool                   `json:"has_preview"`
	Enrollment    *player.EnrollmentInfo `json:"enrollment,omitempty"`
	TotalStudents int                    `json:"total_students"`
}

// GetCourseOverview returns course stats without the section tree, for the
// course landing page. Anonymous callers get no enrollment summary.
func (s *PlayerService) GetCourseOverview(ctx context.Context, userID, courseID uint) (*CourseOverview, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	sectionCount, err := s.LectureRepo.SectionCount(courseID)
	if err != nil {
		return nil, err
	}

	overview := &CourseOverview{
		Course: player.CourseInfo{
			ID:                 course.ID,
			Slug:               course.Slug,
			Title:              course.Title,
			Description:        course.Description,
			TotalDurationHours: course.TotalDurationHours,
			TotalLectures:      course.TotalLectures,
			Rating:             course.Rating,
			NumReviews:         course.NumReviews,
		},
		Sections:      int(sectionCount),
		Lectures:      course.TotalLectures,
		TotalStudents: course.TotalStudents,
	}

	sections, err := s.loadSections(ctx, courseID)
	if err != nil {
		return nil, err
	}
	tree := player.NewContentTree(courseID, sections)
	overview.HasPreview = tree.FirstPreview() != nil

	if quizzes, err := s.ExtrasRepo.Quizzes(courseID); err == nil {
		overview.Quizzes = len(quizzes)
	}
	if assignments, err := s.ExtrasRepo.Assignments(courseID); err == nil {
		overview.Assignments = len(assignments)
	}

	_, overview.Enrollment = s.enrollmentState(userID, courseID)
	return overview, nil
}

// GetCourseContent builds the player bootstrap payload. userID 0 means an
// anonymous viewer; the tree they get back contains at most the first
// preview lecture, and a course with no preview content at all fails with
// util.ErrNoPreviewContent.
func (s *PlayerService) GetCourseContent(ctx context.Context, userID, courseID uint, requestedLectureID uint) (*player.ContentPayload, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	sections, err := s.loadSections(ctx, courseID)
	if err != nil {
		return nil, err
	}

	state, info := s.enrollmentState(userID, courseID)
	tree := player.FilterForViewer(player.NewContentTree(courseID, sections), state)
	if !state.Enrolled && tree.LectureCount() == 0 {
		return nil, util.ErrNoPreviewContent
	}
	s.annotateCompletion(tree, state)

	payload := &player.ContentPayload{
		Course: player.CourseInfo{
			ID:                 course.ID,
			Slug:               course.Slug,
			Title:              course.Title,
			Description:        course.Description,
			TotalDurationHours: course.TotalDurationHours,
			TotalLectures:      course.TotalLectures,
			Rating:             course.Rating,
			NumReviews:         course.NumReviews,
		},
		Sections:         tree.Sections,
		Enrollment:       info,
		InitialLectureID: player.SelectInitial(tree, state, requestedLectureID),
	}

	if err := s.attachExtras(payload, courseID); err != nil {
		logger.Log.Warn("could not load course extras",
			zap.Uint("course_id", courseID), zap.Error(err))
	}
	return payload, nil
}

// GetLecture loads one lecture with progress, navigation ids and the
// caller's notes. Gated lectures without an enrollment fail with
// util.ErrNotEnrolled.
func (s *PlayerService) GetLecture(userID, courseID, lectureID uint) (*player.Lecture, error) {
	lec, err := s.LectureRepo.FindInCourse(courseID, lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	state, _ := s.enrollmentState(userID, courseID)
	view := toPlayerLecture(*lec)
	if !player.CanAccess(&view, state) {
		return nil, util.ErrNotEnrolled
	}

	nav, err := s.navigationFor(courseID, lectureID, state)
	if err != nil {
		return nil, err
	}
	view.Navigation = nav

	if state.Enrolled {
		if progress, err := s.ProgressRepo.Find(state.EnrollmentID, lectureID); err == nil {
			view.Progress = &player.Progress{
				Completed:        progress.Completed,
				WatchTimeSeconds: progress.WatchTimeSeconds,
				LastPosition:     progress.LastPosition,
			}
			view.IsCompleted = progress.Completed
		}
		if notes, err := s.NoteRepo.ListByLecture(state.EnrollmentID, lectureID); err == nil {
			view.Notes = toPlayerNotes(notes)
		}
	}
	return &view, nil
}

// SaveProgress merges one checkpoint into the stored progress row. Watch
// time only grows, completion never reverts, and the enrollment's overall
// percentage is recomputed afterwards.
func (s *PlayerService) SaveProgress(userID, courseID, lectureID uint, in ProgressInput) (*model.LectureProgress, error) {
	_, enrollment, err := s.requireEnrolledLecture(userID, courseID, lectureID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindOrInit(enrollment.ID, lectureID)
	if err != nil {
		return nil, err
	}

	if in.WatchTimeSeconds > progress.WatchTimeSeconds {
		progress.WatchTimeSeconds = in.WatchTimeSeconds
	}
	progress.LastPosition = in.LastPosition
	if in.Completed && !progress.Completed {
		progress.Completed = true
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	if err := s.Enrollments.RefreshProgress(enrollment); err != nil {
		logger.Log.Error("enrollment progress refresh failed",
			zap.Uint("enrollment_id", enrollment.ID), zap.Error(err))
	}
	return progress, nil
}

// MarkComplete force-completes a lecture regardless of watch time.
func (s *PlayerService) MarkComplete(userID, courseID, lectureID uint) (*model.LectureProgress, error) {
	_, enrollment, err := s.requireEnrolledLecture(userID, courseID, lectureID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindOrInit(enrollment.ID, lectureID)
	if err != nil {
		return nil, err
	}
	if !progress.Completed {
		progress.Completed = true
		now := time.Now()
		progress.CompletedAt = &now
		if err := s.ProgressRepo.Save(progress); err != nil {
			return nil, err
		}
		if err := s.Enrollments.RefreshProgress(enrollment); err != nil {
			logger.Log.Error("enrollment progress refresh failed",
				zap.Uint("enrollment_id", enrollment.ID), zap.Error(err))
		}
	}
	return progress, nil
}

// InvalidateContentCache drops the cached section tree after content edits.
func (s *PlayerService) InvalidateContentCache(ctx context.Context, courseID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, contentCacheKey(courseID)).Err(); err != nil {
		logger.Log.Warn("content cache invalidation failed",
			zap.Uint("course_id", courseID), zap.Error(err))
	}
}

func contentCacheKey(courseID uint) string {
	return fmt.Sprintf("course:content:%d", courseID)
}

// loadSections returns the course's full section tree, serving from Redis
// when a fresh copy is cached. The cache always holds the unfiltered tree;
// filtering happens per viewer after the fetch.
func (s *PlayerService) loadSections(ctx context.Context, courseID uint) ([]player.Section, error) {
	key := contentCacheKey(courseID)
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Bytes(); err == nil {
			var sections []player.Section
			if json.Unmarshal(raw, &sections) == nil {
				return sections, nil
			}
		}
	}

	course, err := s.CourseRepo.FindByIDWithContent(courseID)
	if err != nil {
		return nil, err
	}
	sections := make([]player.Section, 0, len(course.Sections))
	for _, sec := range course.Sections {
		ps := player.Section{
			ID:            sec.ID,
			Title:         sec.Title,
			Order:         sec.Order,
			TotalLectures: len(sec.Lectures),
		}
		for _, lec := range sec.Lectures {
			ps.Lectures = append(ps.Lectures, toPlayerLecture(lec))
		}
		sections = append(sections, ps)
	}

	if s.Redis != nil && s.Cfg.Player.ContentCacheSeconds > 0 {
		if raw, err := json.Marshal(sections); err == nil {
			ttl := time.Duration(s.Cfg.Player.ContentCacheSeconds) * time.Second
			if err := s.Redis.Set(ctx, key, raw, ttl).Err(); err != nil {
				logger.Log.Warn("content cache write failed",
					zap.Uint("course_id", courseID), zap.Error(err))
			}
		}
	}
	return sections, nil
}

// enrollmentState derives the viewer's access state from the database.
// userID 0 short-circuits to anonymous.
func (s *PlayerService) enrollmentState(userID, courseID uint) (player.EnrollmentState, *player.EnrollmentInfo) {
	if userID == 0 {
		return player.EnrollmentState{}, nil
	}
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil || !enrollment.Status.IsEnrolled() {
		return player.EnrollmentState{}, nil
	}
	info := &player.EnrollmentInfo{
		ID:              enrollment.ID,
		Status:          string(enrollment.Status),
		ProgressPercent: enrollment.ProgressPercent,
	}
	return player.EnrollmentFromPayload(info), info
}

// annotateCompletion stamps per-lecture and per-section completion onto an
// enrolled viewer's tree.
func (s *PlayerService) annotateCompletion(tree *player.ContentTree, state player.EnrollmentState) {
	if !state.Enrolled {
		return
	}
	rows, err := s.ProgressRepo.ListByEnrollment(state.EnrollmentID)
	if err != nil {
		logger.Log.Warn("progress lookup failed",
			zap.Uint("enrollment_id", state.EnrollmentID), zap.Error(err))
		return
	}
	completed := make(map[uint]bool, len(rows))
	for _, row := range rows {
		if row.Completed {
			completed[row.LectureID] = true
		}
	}
	for i := range tree.Sections {
		sec := &tree.Sections[i]
		sec.CompletedLectures = 0
		for j := range sec.Lectures {
			if completed[sec.Lectures[j].ID] {
				sec.Lectures[j].IsCompleted = true
				sec.CompletedLectures++
			}
		}
	}
}

// navigationFor computes the prev/next neighbor ids in section order then
// lecture order, restricted to what the viewer can see.
func (s *PlayerService) navigationFor(courseID, lectureID uint, state player.EnrollmentState) (*player.Navigation, error) {
	if !state.Enrolled {
		// A preview viewer has a single-lecture tree, so no neighbors.
		return &player.Navigation{}, nil
	}
	ids, err := s.LectureRepo.OrderedIDs(courseID)
	if err != nil {
		return nil, err
	}
	nav := &player.Navigation{}
	for i, id := range ids {
		if id != lectureID {
			continue
		}
		if i > 0 {
			nav.PrevLectureID = ids[i-1]
		}
		if i+1 < len(ids) {
			nav.NextLectureID = ids[i+1]
		}
		break
	}
	return nav, nil
}

// requireEnrolledLecture validates the lecture exists in the course and the
// caller has an active enrollment.
func (s *PlayerService) requireEnrolledLecture(userID, courseID, lectureID uint) (*model.Lecture, *model.Enrollment, error) {
	lec, err := s.LectureRepo.FindInCourse(courseID, lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrLectureNotFound
		}
		return nil, nil, err
	}
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil || !enrollment.Status.IsEnrolled() {
		return nil, nil, util.ErrNotEnrolled
	}
	return lec, enrollment, nil
}

func (s *PlayerService) attachExtras(payload *player.ContentPayload, courseID uint) error {
	quizzes, err := s.ExtrasRepo.Quizzes(courseID)
	if err != nil {
		return err
	}
	for _, q := range quizzes {
		payload.Quizzes = append(payload.Quizzes, player.QuizSummary{
			ID: q.ID, Title: q.Title, PassingScore: q.PassingScore,
		})
	}

	assignments, err := s.ExtrasRepo.Assignments(courseID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		item := player.AssignmentSummary{ID: a.ID, Title: a.Title}
		if a.DueDate != nil {
			item.DueDate = a.DueDate.Format(util.DateFormat)
		}
		payload.Assignments = append(payload.Assignments, item)
	}

	qandas, err := s.ExtrasRepo.QandAs(courseID)
	if err != nil {
		return err
	}
	for _, q := range qandas {
		payload.QandAs = append(payload.QandAs, player.QandAItem{
			ID: q.ID, Question: q.Question, Answer: q.Answer,
		})
	}

	announcements, err := s.ExtrasRepo.Announcements(courseID)
	if err != nil {
		return err
	}
	for _, a := range announcements {
		payload.Announcements = append(payload.Announcements, player.AnnouncementItem{
			ID:        a.ID,
			Title:     a.Title,
			Content:   a.Content,
			IsPinned:  a.IsPinned,
			CreatedAt: a.CreatedAt.Format(util.TimeFormat),
		})
	}
	return nil
}

func toPlayerLecture(lec model.Lecture) player.Lecture {
	return player.Lecture{
		ID:              lec.ID,
		Title:           lec.Title,
		Description:     lec.Description,
		Order:           lec.Order,
		DurationMinutes: lec.DurationMinutes,
		IsPreview:       lec.IsPreview,
		VideoType:       lec.VideoType,
		YoutubeVideoID:  lec.YoutubeVideoID,
		ContentURL:      lec.ContentURL,
	}
}

func toPlayerNotes(notes []model.Note) []player.Note {
	out := make([]player.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, player.Note{
			ID:        n.ID,
			LectureID: n.LectureID,
			Content:   n.Content,
			Timestamp: n.Timestamp,
			IsPublic:  n.IsPublic,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return out
}
