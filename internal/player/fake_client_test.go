package player

import (
	"context"
	"sync"
)

// fakeClient is an in-memory Client for session and note store tests. Server
// state lives in notes/lectures maps; error fields force failures.
type fakeClient struct {
	mu sync.Mutex

	content    *ContentPayload
	contentErr error

	lectures   map[uint]*Lecture
	lectureErr map[uint]error

	notes      []Note
	nextNoteID uint

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	fetchLectureCalls []uint
	savedCheckpoints  []Checkpoint
	saveErr           error
	saved             chan struct{}
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		lectures:   make(map[uint]*Lecture),
		lectureErr: make(map[uint]error),
		nextNoteID: 100,
		saved:      make(chan struct{}, 16),
	}
}

func (f *fakeClient) FetchContent(ctx context.Context, courseID uint) (*ContentPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contentErr != nil {
		return nil, f.contentErr
	}
	return f.content, nil
}

func (f *fakeClient) FetchLecture(ctx context.Context, courseID, lectureID uint) (*Lecture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchLectureCalls = append(f.fetchLectureCalls, lectureID)
	if err := f.lectureErr[lectureID]; err != nil {
		return nil, err
	}
	if lec, ok := f.lectures[lectureID]; ok {
		return lec, nil
	}
	return nil, NewError(KindNotFound, "lecture not found", nil)
}

func (f *fakeClient) SaveProgress(ctx context.Context, courseID, lectureID uint, cp Checkpoint) error {
	f.mu.Lock()
	err := f.saveErr
	if err == nil {
		f.savedCheckpoints = append(f.savedCheckpoints, cp)
	}
	f.mu.Unlock()
	f.saved <- struct{}{}
	return err
}

func (f *fakeClient) CreateNote(ctx context.Context, courseID, lectureID uint, content string, timestamp int) (*Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextNoteID++
	note := Note{ID: f.nextNoteID, LectureID: lectureID, Content: content, Timestamp: timestamp}
	f.notes = append([]Note{note}, f.notes...)
	return &note, nil
}

func (f *fakeClient) UpdateNote(ctx context.Context, noteID uint, content string) (*Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.notes {
		if f.notes[i].ID == noteID {
			f.notes[i].Content = content
			cp := f.notes[i]
			return &cp, nil
		}
	}
	return nil, NewError(KindNotFound, "note not found", nil)
}

func (f *fakeClient) DeleteNote(ctx context.Context, noteID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.notes[:0]
	for _, n := range f.notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	f.notes = kept
	return nil
}

func (f *fakeClient) ListNotes(ctx context.Context, lectureID uint) ([]Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Note
	for _, n := range f.notes {
		if n.LectureID == lectureID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeClient) lectureCalls() []uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint(nil), f.fetchLectureCalls...)
}

func (f *fakeClient) checkpoints() []Checkpoint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Checkpoint(nil), f.savedCheckpoints...)
}
