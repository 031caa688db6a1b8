package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectInitialEnrolled(t *testing.T) {
	tree := NewContentTree(1, sampleSections())

	assert.Equal(t, uint(31), SelectInitial(tree, enrolled(), 31), "valid deep link wins")
	assert.Equal(t, uint(10), SelectInitial(tree, enrolled(), 0), "no hint falls back to first")
	assert.Equal(t, uint(10), SelectInitial(tree, enrolled(), 999), "unknown hint falls back to first")
}

func TestSelectInitialNotEnrolled(t *testing.T) {
	full := NewContentTree(1, sampleSections())
	tree := FilterForViewer(full, EnrollmentState{})

	// The hint is ignored entirely for a viewer without an enrollment, even
	// when it names a lecture that exists in the full course.
	assert.Equal(t, uint(10), SelectInitial(tree, EnrollmentState{}, 31))
	assert.Equal(t, uint(10), SelectInitial(tree, EnrollmentState{}, 10))
	assert.Equal(t, uint(10), SelectInitial(tree, EnrollmentState{}, 0))
}

func TestSelectInitialEmptyTree(t *testing.T) {
	assert.Equal(t, uint(0), SelectInitial(&ContentTree{CourseID: 1}, EnrollmentState{}, 5))
	assert.Equal(t, uint(0), SelectInitial(&ContentTree{CourseID: 1}, enrolled(), 5))
	assert.Equal(t, uint(0), SelectInitial(nil, enrolled(), 5))
}
