package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NoteStore holds the notes for the lecture currently on screen. Mutations
// apply optimistically so the UI never waits on the network, then the whole
// list is reconciled from the server. Reconciliation runs even when the
// mutation itself failed, so a rejected edit snaps back to server truth
// instead of lingering.
//
// All methods are safe for concurrent use. The lock covers only local state;
// it is never held across a client call.
type NoteStore struct {
	client Client
	logger *zap.Logger

	mu        sync.Mutex
	courseID  uint
	lectureID uint
	notes     []Note
}

// NewNoteStore builds an empty store bound to a client.
func NewNoteStore(client Client, logger *zap.Logger) *NoteStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteStore{client: client, logger: logger}
}

// SetScope points the store at a lecture and seeds it with the notes the
// lecture payload carried.
func (s *NoteStore) SetScope(courseID, lectureID uint, initial []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courseID = courseID
	s.lectureID = lectureID
	s.notes = append([]Note(nil), initial...)
}

// List returns a copy of the current notes.
func (s *NoteStore) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note(nil), s.notes...)
}

// Add creates a note at the given timestamp. The server's stored note is
// prepended immediately, then the list is reconciled.
func (s *NoteStore) Add(ctx context.Context, content string, timestamp int) error {
	s.mu.Lock()
	courseID, lectureID := s.courseID, s.lectureID
	s.mu.Unlock()

	created, err := s.client.CreateNote(ctx, courseID, lectureID, content, timestamp)
	if err == nil && created != nil {
		s.mu.Lock()
		if s.lectureID == lectureID {
			s.notes = append([]Note{*created}, s.notes...)
		}
		s.mu.Unlock()
	}
	s.reconcile(ctx)
	return err
}

// Update rewrites a note's content. The local copy changes first, then the
// server is told, then the list is reconciled.
func (s *NoteStore) Update(ctx context.Context, noteID uint, content string) error {
	s.mu.Lock()
	for i := range s.notes {
		if s.notes[i].ID == noteID {
			s.notes[i].Content = content
			s.notes[i].UpdatedAt = time.Now()
			break
		}
	}
	s.mu.Unlock()

	_, err := s.client.UpdateNote(ctx, noteID, content)
	s.reconcile(ctx)
	return err
}

// Delete removes a note locally and on the server, then reconciles.
func (s *NoteStore) Delete(ctx context.Context, noteID uint) error {
	s.mu.Lock()
	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.mu.Unlock()

	err := s.client.DeleteNote(ctx, noteID)
	s.reconcile(ctx)
	return err
}

// reconcile replaces the local list with the server's. A failed refresh
// keeps the optimistic state, and a result arriving after the store was
// re-scoped to another lecture is dropped.
func (s *NoteStore) reconcile(ctx context.Context) {
	s.mu.Lock()
	lectureID := s.lectureID
	s.mu.Unlock()

	fresh, err := s.client.ListNotes(ctx, lectureID)
	if err != nil {
		s.logger.Warn("note list refresh failed",
			zap.Uint("lecture_id", lectureID), zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.lectureID == lectureID {
		s.notes = fresh
	}
	s.mu.Unlock()
}
