package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")

	enrollment, err := env.enrollment.Enroll(student.ID, courseID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentActive, enrollment.Status)

	_, err = env.enrollment.Enroll(student.ID, courseID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	_, err = env.enrollment.Enroll(student.ID, 9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	var course model.Course
	require.NoError(t, env.db.First(&course, courseID).Error)
	assert.Equal(t, 1, course.TotalStudents)
}

func TestEnrollReactivatesCancelled(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")

	enrollment := enroll(t, env.db, student.ID, courseID)
	enrollment.Status = model.EnrollmentCancelled
	require.NoError(t, env.db.Save(enrollment).Error)

	restored, err := env.enrollment.Enroll(student.ID, courseID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, restored.ID)
	assert.Equal(t, model.EnrollmentActive, restored.Status)
}

func TestMyCourses(t *testing.T) {
	env := newTestEnv(t)
	courseID, _ := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")
	enroll(t, env.db, student.ID, courseID)

	courses, err := env.enrollment.MyCourses(student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "test-course", courses[0].Course.Slug)
	assert.Equal(t, courseID, courses[0].Enrollment.CourseID)

	empty, err := env.enrollment.MyCourses(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
