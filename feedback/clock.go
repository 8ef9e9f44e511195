package feedback

import "time"

// Clock reports wall-clock time unaffected by the game's time scale.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Status is returned by a task's Tick.
type Status int

const (
	Idle Status = iota
	Running
	Done
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}
