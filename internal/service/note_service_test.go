package service

import (
	"testing"

	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteLifecycle(t *testing.T) {
	env := newTestEnv(t)
	courseID, lectureIDs := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")
	enroll(t, env.db, student.ID, courseID)

	note, err := env.note.Create(student.ID, courseID, lectureIDs[0], "remember this", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, note.Timestamp)

	notes, err := env.note.ListForLecture(student.ID, lectureIDs[0])
	require.NoError(t, err)
	require.Len(t, notes, 1)

	updated, err := env.note.Update(student.ID, note.ID, "remember this instead")
	require.NoError(t, err)
	assert.Equal(t, "remember this instead", updated.Content)
	assert.Equal(t, 42, updated.Timestamp, "timestamp survives edits")

	require.NoError(t, env.note.Delete(student.ID, note.ID))

	notes, err = env.note.ListForLecture(student.ID, lectureIDs[0])
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteValidation(t *testing.T) {
	env := newTestEnv(t)
	courseID, lectureIDs := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")
	enroll(t, env.db, student.ID, courseID)

	_, err := env.note.Create(student.ID, courseID, lectureIDs[0], "   ", 0)
	assert.ErrorIs(t, err, util.ErrNoteContent)

	_, err = env.note.Create(student.ID, courseID, 9999, "hi", 0)
	assert.ErrorIs(t, err, util.ErrLectureNotFound)
}

func TestNoteRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	courseID, lectureIDs := seedCourse(t, env.db)
	student := seedStudent(t, env.db, "a@example.com")

	_, err := env.note.Create(student.ID, courseID, lectureIDs[0], "hi", 0)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestNoteOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	courseID, lectureIDs := seedCourse(t, env.db)
	owner := seedStudent(t, env.db, "owner@example.com")
	other := seedStudent(t, env.db, "other@example.com")
	enroll(t, env.db, owner.ID, courseID)
	enroll(t, env.db, other.ID, courseID)

	note, err := env.note.Create(owner.ID, courseID, lectureIDs[0], "private", 0)
	require.NoError(t, err)

	// Another student cannot see, edit or delete it; the API behaves as if
	// the note does not exist.
	_, err = env.note.Update(other.ID, note.ID, "hijack")
	assert.ErrorIs(t, err, util.ErrNoteNotFound)
	assert.ErrorIs(t, env.note.Delete(other.ID, note.ID), util.ErrNoteNotFound)

	notes, err := env.note.ListForLecture(other.ID, lectureIDs[0])
	require.NoError(t, err)
	assert.Empty(t, notes)
}
