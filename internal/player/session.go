package player

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Options tunes a Session. Zero values fall back to the package defaults.
type Options struct {
	// CheckpointSeconds is the progress checkpoint interval.
	CheckpointSeconds int
	// CompletionThreshold is the played fraction at which a lecture counts
	// as completed.
	CompletionThreshold float64
	// OnLectureChange fires after the session switches to a new lecture,
	// letting the UI reset playback position and scroll state.
	OnLectureChange func(lectureID uint)
}

// Session is the course player state machine. It owns the filtered content
// tree, the currently selected lecture, progress tracking and the note store
// for the viewer's run through one course.
//
// All exported methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	client Client
	logger *zap.Logger
	opts   Options

	courseID uint
	state    EnrollmentState
	payload  *ContentPayload
	tree     *ContentTree
	nav      *NavigationGraph

	current   *Lecture
	currentID uint
	pendingID uint
	epoch     uint64

	// errorShown tracks which lecture ids already surfaced a load error, so
	// a flaky lecture complains once per session instead of on every retry.
	errorShown map[uint]bool

	notes   *NoteStore
	tracker *Tracker
}

// NewSession builds a session over a backend client.
func NewSession(client Client, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		client:     client,
		logger:     logger,
		opts:       opts,
		errorShown: make(map[uint]bool),
		notes:      NewNoteStore(client, logger),
		tracker:    NewTracker(opts.CheckpointSeconds, opts.CompletionThreshold),
	}
}

// Load fetches the course content, filters it for the viewer and selects the
// initial lecture. requestedLectureID is a deep-link hint; pass 0 to let the
// backend's suggestion or the first lecture win.
func (s *Session) Load(ctx context.Context, courseID uint, requestedLectureID uint) error {
	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	payload, err := s.client.FetchContent(ctx, courseID)
	if err != nil {
		s.logger.Error("course content load failed",
			zap.Uint("course_id", courseID), zap.Error(err))
		return err
	}

	state := EnrollmentFromPayload(payload.Enrollment)
	tree := FilterForViewer(NewContentTree(courseID, payload.Sections), state)

	hint := requestedLectureID
	if hint == 0 {
		hint = payload.InitialLectureID
	}
	initial := SelectInitial(tree, state, hint)

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return nil
	}
	s.courseID = courseID
	s.state = state
	s.payload = payload
	s.tree = tree
	s.nav = NewNavigationGraph(tree)
	s.current = nil
	s.currentID = 0
	s.pendingID = 0
	s.errorShown = make(map[uint]bool)
	s.mu.Unlock()

	if initial == 0 {
		s.logger.Warn("course has no viewable lectures", zap.Uint("course_id", courseID))
		return nil
	}
	return s.SelectLecture(ctx, initial)
}

// Content returns the payload the session loaded, or nil before Load.
func (s *Session) Content() *ContentPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload
}

// Tree returns the filtered content tree, or nil before Load.
func (s *Session) Tree() *ContentTree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Current returns the selected lecture, or nil when none is selected.
func (s *Session) Current() *Lecture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Notes returns the session's note store.
func (s *Session) Notes() *NoteStore {
	return s.notes
}

// SelectLecture switches the player to a lecture. Selecting the lecture that
// is already current, or one that is mid-load, is a no-op. A lecture the
// viewer cannot access falls back to the preview lecture once; when that also
// fails the selection is abandoned rather than opened.
func (s *Session) SelectLecture(ctx context.Context, id uint) error {
	return s.selectLecture(ctx, id, true)
}

func (s *Session) selectLecture(ctx context.Context, id uint, allowFallback bool) error {
	s.mu.Lock()
	if id == 0 || id == s.currentID || id == s.pendingID {
		s.mu.Unlock()
		return nil
	}
	if s.nav == nil || !s.nav.Contains(id) {
		s.mu.Unlock()
		return nil
	}
	s.epoch++
	epoch := s.epoch
	s.pendingID = id
	courseID := s.courseID
	s.mu.Unlock()

	lec, err := s.client.FetchLecture(ctx, courseID, id)

	s.mu.Lock()
	if s.epoch != epoch {
		// A newer load or selection superseded this one; drop the result.
		s.mu.Unlock()
		return nil
	}
	s.pendingID = 0

	if err != nil {
		// An access denial here means the tree is stale (the enrollment
		// lapsed after the content load). Retry once with the preview
		// lecture, then give up rather than opening anything gated.
		fallbackID := uint(0)
		if allowFallback && IsAccessDenied(err) {
			if pv := s.tree.FirstPreview(); pv != nil && pv.ID != id {
				fallbackID = pv.ID
			}
		}
		shown := s.errorShown[id]
		s.errorShown[id] = true
		s.mu.Unlock()

		s.logger.Warn("lecture load failed",
			zap.Uint("lecture_id", id), zap.Error(err))
		if fallbackID != 0 {
			return s.selectLecture(ctx, fallbackID, false)
		}
		if shown {
			return nil
		}
		return err
	}

	s.current = lec
	s.currentID = lec.ID
	completed := lec.Progress != nil && lec.Progress.Completed
	s.tracker.Reset(lec.ID, completed)
	s.notes.SetScope(courseID, lec.ID, lec.Notes)
	onChange := s.opts.OnLectureChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(lec.ID)
	}
	return nil
}

// HasNext reports whether a lecture follows the current one.
func (s *Session) HasNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav != nil && s.nav.Next(s.currentID) != 0
}

// HasPrevious reports whether a lecture precedes the current one.
func (s *Session) HasPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav != nil && s.nav.Prev(s.currentID) != 0
}

// GoNext advances to the next lecture. Without one it is a no-op.
func (s *Session) GoNext(ctx context.Context) error {
	s.mu.Lock()
	var target uint
	if s.nav != nil {
		target = s.nav.Next(s.currentID)
	}
	s.mu.Unlock()
	if target == 0 {
		return nil
	}
	return s.SelectLecture(ctx, target)
}

// GoPrevious moves to the previous lecture. Without one it is a no-op.
func (s *Session) GoPrevious(ctx context.Context) error {
	s.mu.Lock()
	var target uint
	if s.nav != nil {
		target = s.nav.Prev(s.currentID)
	}
	s.mu.Unlock()
	if target == 0 {
		return nil
	}
	return s.SelectLecture(ctx, target)
}

// OnProgressSample feeds one playback tick for the current lecture. When the
// tick lands on a checkpoint boundary the checkpoint is persisted in the
// background; a failed save is logged and dropped. The next checkpoint
// carries strictly more watch time.
func (s *Session) OnProgressSample(ctx context.Context, playedSeconds, playedFraction float64) {
	s.mu.Lock()
	if s.currentID == 0 {
		s.mu.Unlock()
		return
	}
	cp, fire := s.tracker.Sample(playedSeconds, playedFraction)
	courseID := s.courseID
	s.mu.Unlock()

	if !fire {
		return
	}
	go func() {
		if err := s.client.SaveProgress(ctx, courseID, cp.LectureID, cp); err != nil {
			s.logger.Warn("progress checkpoint save failed",
				zap.Uint("lecture_id", cp.LectureID),
				zap.Int("watch_time", cp.WatchTimeSeconds),
				zap.Error(err))
		}
	}()
}
