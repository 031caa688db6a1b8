package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseLookup(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)

	course, err := env.catalog.CourseBySlug("test-course")
	require.NoError(t, err)
	assert.Equal(t, courseID, course.ID)

	_, err = env.catalog.CourseBySlug("does-not-exist")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	courses, total, err := env.catalog.ListCourses(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
}

func TestAddReviewRules(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")

	// Not enrolled yet.
	_, err := env.catalog.AddReview(student.ID, courseID, 5, "great")
	assert.ErrorIs(t, err, util.ErrReviewNotAllowed)

	enroll(t, env.db, student.ID, courseID)

	_, err = env.catalog.AddReview(student.ID, courseID, 0, "bad rating")
	assert.ErrorIs(t, err, util.ErrInvalidRating)
	_, err = env.catalog.AddReview(student.ID, courseID, 6, "bad rating")
	assert.ErrorIs(t, err, util.ErrInvalidRating)

	review, err := env.catalog.AddReview(student.ID, courseID, 4, "solid course")
	require.NoError(t, err)
	assert.True(t, review.IsVerifiedPurchase)

	// One review per student per course.
	_, err = env.catalog.AddReview(student.ID, courseID, 5, "again")
	assert.ErrorIs(t, err, util.ErrReviewNotAllowed)
}

func TestReviewRefreshesRating(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)

	a := seedStudent(t, env.db, "a@example.com")
	b := seedStudent(t, env.db, "b@example.com")
	enroll(t, env.db, a.ID, courseID)
	enroll(t, env.db, b.ID, courseID)

	_, err := env.catalog.AddReview(a.ID, courseID, 5, "")
	require.NoError(t, err)
	_, err = env.catalog.AddReview(b.ID, courseID, 4, "")
	require.NoError(t, err)

	var course model.Course
	require.NoError(t, env.db.First(&course, courseID).Error)
	assert.InDelta(t, 4.5, course.Rating, 0.01)
	assert.Equal(t, 2, course.NumReviews)

	reviews, total, err := env.catalog.ListReviews(courseID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, reviews, 2)
}

func TestRefreshCourseAggregates(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)

	require.NoError(t, env.catalog.RefreshCourseAggregates(courseID))

	var course model.Course
	require.NoError(t, env.db.First(&course, courseID).Error)
	assert.Equal(t, 4, course.TotalLectures)
	// 5 + 10 + 20 + 25 minutes = 1 hour.
	assert.InDelta(t, 1.0, course.TotalDurationHours, 0.01)
}
