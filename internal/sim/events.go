package sim

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventFlap
	EventSpawn
	EventRetire
	EventScore
	EventHit
	EventNewBest
	EventPoolExhausted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "StateChanged"
	case EventFlap:
		return "Flap"
	case EventSpawn:
		return "Spawn"
	case EventRetire:
		return "Retire"
	case EventScore:
		return "Score"
	case EventHit:
		return "Hit"
	case EventNewBest:
		return "NewBest"
	case EventPoolExhausted:
		return "PoolExhausted"
	default:
		return "Unknown"
	}
}

// HitCause names what ended a session.
type HitCause int

const (
	HitNone HitCause = iota
	HitCeiling
	HitGround
	HitObstacle
)

// String returns a human-readable name for the cause.
func (c HitCause) String() string {
	switch c {
	case HitNone:
		return "None"
	case HitCeiling:
		return "Ceiling"
	case HitGround:
		return "Ground"
	case HitObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Event is emitted by Session.Advance. Only the fields relevant to Kind are
// set: From/To for state changes, Slot for pool events, Score for score and
// best-score events, Cause for hits.
type Event struct {
	Kind  EventKind
	From  State
	To    State
	Slot  int
	Score int
	Cause HitCause
}

// Cue is a fire-and-forget audio cue.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueHit
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// CuePlayer receives audio cues. Implementations must not block and must
// tolerate an unavailable device.
type CuePlayer interface {
	Cue(c Cue)
}

// BestScoreStore is the persistence collaborator for the best score.
// Implementations swallow their own failures: ReadBestScore returns 0 when
// nothing usable is stored.
type BestScoreStore interface {
	ReadBestScore() int
	WriteBestScore(score int)
}
