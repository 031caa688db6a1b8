package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerFiresOnIntervalBoundaries(t *testing.T) {
	tr := NewTracker(10, 0.9)
	tr.Reset(5, false)

	_, fire := tr.Sample(3.2, 0.01)
	assert.False(t, fire)

	cp, fire := tr.Sample(10.4, 0.05)
	require.True(t, fire)
	assert.Equal(t, uint(5), cp.LectureID)
	assert.Equal(t, 10, cp.WatchTimeSeconds)
	assert.False(t, cp.Completed)

	// Samples inside the same whole second do not fire again.
	_, fire = tr.Sample(10.9, 0.05)
	assert.False(t, fire)

	_, fire = tr.Sample(15.0, 0.07)
	assert.False(t, fire)

	cp, fire = tr.Sample(20.0, 0.1)
	require.True(t, fire)
	assert.Equal(t, 20, cp.WatchTimeSeconds)
}

func TestTrackerCompletionIsMonotonic(t *testing.T) {
	tr := NewTracker(10, 0.9)
	tr.Reset(5, false)

	cp, fire := tr.Sample(90, 0.92)
	require.True(t, fire)
	assert.True(t, cp.Completed)

	// Seeking back below the threshold never un-completes the lecture.
	cp, fire = tr.Sample(100, 0.3)
	require.True(t, fire)
	assert.True(t, cp.Completed)
	assert.True(t, tr.Completed())
}

func TestTrackerResetCarriesServerCompletion(t *testing.T) {
	tr := NewTracker(10, 0.9)
	tr.Reset(5, true)

	cp, fire := tr.Sample(10, 0.1)
	require.True(t, fire)
	assert.True(t, cp.Completed)

	tr.Reset(6, false)
	assert.False(t, tr.Completed())
	cp, fire = tr.Sample(10, 0.1)
	require.True(t, fire)
	assert.Equal(t, uint(6), cp.LectureID)
	assert.False(t, cp.Completed)
}

func TestTrackerDefaults(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.Reset(1, false)

	_, fire := tr.Sample(5, 0.5)
	assert.False(t, fire)
	_, fire = tr.Sample(10, 0.89)
	assert.True(t, fire)
	assert.False(t, tr.Completed())

	tr.Sample(11, 0.9)
	assert.True(t, tr.Completed())
}
