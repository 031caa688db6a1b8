package player

// Checkpoint is one persisted progress sample for a lecture.
type Checkpoint struct {
	LectureID        uint `json:"lecture_id"`
	WatchTimeSeconds int  `json:"watch_time_seconds"`
	LastPosition     int  `json:"last_position"`
	Completed        bool `json:"completed"`
}

const (
	defaultCheckpointSeconds   = 10
	defaultCompletionThreshold = 0.9
)

// Tracker turns a stream of playback samples into discrete checkpoints. It
// fires at most once per interval boundary, and once a lecture is marked
// completed it stays completed for the rest of the session.
type Tracker struct {
	interval  int
	threshold float64

	lectureID uint
	lastFired int
	completed bool
}

// NewTracker builds a tracker. interval <= 0 and threshold <= 0 fall back to
// the defaults of 10 seconds and 0.9.
func NewTracker(interval int, threshold float64) *Tracker {
	if interval <= 0 {
		interval = defaultCheckpointSeconds
	}
	if threshold <= 0 {
		threshold = defaultCompletionThreshold
	}
	return &Tracker{
		interval:  interval,
		threshold: threshold,
		lastFired: -1,
	}
}

// Reset points the tracker at a new lecture. alreadyCompleted carries the
// server-known completion state so a finished lecture is never reported as
// incomplete again.
func (t *Tracker) Reset(lectureID uint, alreadyCompleted bool) {
	t.lectureID = lectureID
	t.lastFired = -1
	t.completed = alreadyCompleted
}

// Completed reports whether the current lecture has crossed the completion
// threshold at any point this session.
func (t *Tracker) Completed() bool {
	return t.completed
}

// Sample feeds one playback tick. playedSeconds is the accumulated watch time
// and playedFraction is playedSeconds over the lecture duration. The returned
// checkpoint is valid only when the second return value is true: a checkpoint
// fires when the whole-second watch time lands on an interval boundary that
// has not fired yet.
func (t *Tracker) Sample(playedSeconds float64, playedFraction float64) (Checkpoint, bool) {
	if playedFraction >= t.threshold {
		t.completed = true
	}

	watchTime := int(playedSeconds)
	if watchTime%t.interval != 0 || watchTime == t.lastFired {
		return Checkpoint{}, false
	}
	t.lastFired = watchTime

	return Checkpoint{
		LectureID:        t.lectureID,
		WatchTimeSeconds: watchTime,
		LastPosition:     watchTime,
		Completed:        t.completed,
	}, true
}
