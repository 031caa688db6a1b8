package service

import (
	"fmt"
	"os"
	"testing"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var testDBCounter int

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	auth       *AuthService
	catalog    *CatalogService
	enrollment *EnrollmentService
	player     *PlayerService
	note       *NoteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lectureRepo := repository.NewLectureRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	extrasRepo := repository.NewCourseExtrasRepository(db)
	certRepo := repository.NewCertificateRepository(db)

	enrollment := NewEnrollmentService(enrollmentRepo, courseRepo, lectureRepo, progressRepo, certRepo)
	return &testEnv{
		db:         db,
		cfg:        cfg,
		auth:       NewAuthService(userRepo, cfg),
		catalog:    NewCatalogService(courseRepo, lectureRepo, reviewRepo, enrollmentRepo),
		enrollment: enrollment,
		player: NewPlayerService(
			courseRepo, lectureRepo, enrollmentRepo, progressRepo,
			noteRepo, extrasRepo, enrollment, nil, cfg,
		),
		note: NewNoteService(noteRepo, lectureRepo, enrollmentRepo),
	}
}

// seedCourse creates a course with two sections and four lectures. The
// second lecture of the first section is the only preview.
func seedCourse(t *testing.T, db *gorm.DB) (courseID uint, lectureIDs []uint) {
	t.Helper()

	course := &model.Course{Title: "Test Course", Slug: "test-course", IsActive: true}
	require.NoError(t, db.Create(course).Error)

	secA := &model.CourseSection{CourseID: course.ID, Title: "Intro", Order: 1}
	secB := &model.CourseSection{CourseID: course.ID, Title: "Main", Order: 2}
	require.NoError(t, db.Create(secA).Error)
	require.NoError(t, db.Create(secB).Error)

	lectures := []*model.Lecture{
		{SectionID: secA.ID, Title: "Welcome", Order: 1, DurationMinutes: 5},
		{SectionID: secA.ID, Title: "Overview", Order: 2, DurationMinutes: 10, IsPreview: true},
		{SectionID: secB.ID, Title: "Part one", Order: 1, DurationMinutes: 20},
		{SectionID: secB.ID, Title: "Part two", Order: 2, DurationMinutes: 25},
	}
	for _, lec := range lectures {
		require.NoError(t, db.Create(lec).Error)
		lectureIDs = append(lectureIDs, lec.ID)
	}
	return course.ID, lectureIDs
}

func seedStudent(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "Student", Email: email, Password: "x", Role: model.Student}
	require.NoError(t, db.Create(user).Error)
	return user
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint) *model.Enrollment {
	t.Helper()
	enrollment := &model.Enrollment{UserID: userID, CourseID: courseID, Status: model.EnrollmentActive}
	require.NoError(t, db.Create(enrollment).Error)
	return enrollment
}
