package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationGraphFlattenedOrder(t *testing.T) {
	g := NewNavigationGraph(NewContentTree(1, sampleSections()))

	assert.Equal(t, uint(11), g.Next(10))
	assert.Equal(t, uint(10), g.Prev(11))
	// Walking across the section boundary.
	assert.Equal(t, uint(30), g.Next(12))
	assert.Equal(t, uint(12), g.Prev(30))
	// Ends of the course.
	assert.Equal(t, uint(0), g.Prev(10))
	assert.Equal(t, uint(0), g.Next(31))
}

func TestNavigationGraphBackendIDsWin(t *testing.T) {
	sections := []Section{
		{ID: 1, Order: 1, Lectures: []Lecture{
			{ID: 10, Order: 1, Navigation: &Navigation{NextLectureID: 12}},
			{ID: 11, Order: 2},
			{ID: 12, Order: 3, Navigation: &Navigation{PrevLectureID: 10}},
		}},
	}
	g := NewNavigationGraph(NewContentTree(1, sections))

	// The shipped ids skip lecture 11 and the graph follows them.
	assert.Equal(t, uint(12), g.Next(10))
	assert.Equal(t, uint(10), g.Prev(12))
	// Lecture 11 has no shipped ids, so flattened order applies.
	assert.Equal(t, uint(12), g.Next(11))
}

func TestNavigationGraphRejectsTargetsOutsideTree(t *testing.T) {
	sections := []Section{
		{ID: 1, Order: 1, Lectures: []Lecture{
			{ID: 10, Order: 1, Navigation: &Navigation{NextLectureID: 99}},
		}},
	}
	g := NewNavigationGraph(NewContentTree(1, sections))

	// A shipped neighbor that was filtered out of the tree is unreachable.
	assert.Equal(t, uint(0), g.Next(10))
	assert.False(t, g.Contains(99))
	assert.Equal(t, uint(0), g.Next(99))
	assert.Equal(t, uint(0), g.Prev(99))
}

func TestNavigationGraphEmpty(t *testing.T) {
	g := NewNavigationGraph(nil)
	assert.Equal(t, uint(0), g.Next(1))
	assert.Equal(t, uint(0), g.Prev(1))
	assert.False(t, g.Contains(1))
}
