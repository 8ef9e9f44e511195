package systems

import (
	"fmt"
	"log"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Context carries the collaborators every system needs. It is built once per
// scene and handed to the systems, replacing global lookups.
type Context struct {
	Config   *config.Manager
	Env      *feedback.Environment
	HitPause *feedback.HitPause
	Shake    *feedback.ScreenShake
	Diag     *Diagnostics
	Mapping  gamemath.SpaceMapping

	// Time is scaled scene time in seconds, advanced by the frame tick.
	Time float64
	// Dt is the step of the phase currently running: scaled seconds for the
	// frame, fixed and late phases, real seconds for the feedback phase.
	Dt float64

	// Charge grants from enemy deaths, consumed by the next frame tick.
	pendingGrants []components.ChargeGrantEvent
}

// System adapts a context-aware system to the ecs signature.
func (c *Context) System(fn func(c *Context, e *ecs.ECS)) ecs.System {
	return func(e *ecs.ECS) { fn(c, e) }
}

// Request sends a feedback request to both generators. Missing generators
// are reported and skipped.
func (c *Context) Request(r feedback.Request) feedback.Outcome {
	if c.HitPause == nil || c.Shake == nil {
		c.Diag.Report(MissingCollaborator, "feedback", "feedback generator not resolved, request partially dropped")
	}
	out := feedback.Dispatch(r, c.HitPause, c.Shake)
	if c.HitPause != nil && !out.PauseStarted && r.HitPause > 0 {
		c.Diag.Report(RedundantTrigger, "feedback", "hit-pause already active")
	}
	return out
}

// DiagnosticKind classifies a recoverable condition.
type DiagnosticKind int

const (
	MissingCollaborator DiagnosticKind = iota
	InvalidAbilityUse
	RedundantTrigger
	TerminalState
)

func (k DiagnosticKind) String() string {
	switch k {
	case MissingCollaborator:
		return "MissingCollaborator"
	case InvalidAbilityUse:
		return "InvalidAbilityUse"
	case RedundantTrigger:
		return "RedundantTrigger"
	case TerminalState:
		return "TerminalState"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

type Diagnostic struct {
	Kind      DiagnosticKind
	Component string
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Component, d.Kind, d.Message)
}

const defaultDiagnosticCapacity = 64

// Diagnostics logs recoverable conditions and keeps the most recent ones.
// A nil *Diagnostics drops everything.
type Diagnostics struct {
	logger *log.Logger
	ring   []Diagnostic
	next   int
	full   bool
	counts map[DiagnosticKind]int
}

// NewDiagnostics writes to logger, or to the standard logger when nil.
func NewDiagnostics(logger *log.Logger) *Diagnostics {
	if logger == nil {
		logger = log.Default()
	}
	return &Diagnostics{
		logger: logger,
		ring:   make([]Diagnostic, defaultDiagnosticCapacity),
		counts: map[DiagnosticKind]int{},
	}
}

func (d *Diagnostics) Report(kind DiagnosticKind, component, format string, args ...any) {
	if d == nil {
		return
	}
	rec := Diagnostic{Kind: kind, Component: component, Message: fmt.Sprintf(format, args...)}
	d.logger.Print(rec.String())

	d.ring[d.next] = rec
	d.next = (d.next + 1) % len(d.ring)
	if d.next == 0 {
		d.full = true
	}
	d.counts[kind]++
}

// Count returns how many diagnostics of kind were reported in total.
func (d *Diagnostics) Count(kind DiagnosticKind) int {
	if d == nil {
		return 0
	}
	return d.counts[kind]
}

// Recent returns the retained diagnostics, oldest first.
func (d *Diagnostics) Recent() []Diagnostic {
	if d == nil {
		return nil
	}
	if !d.full {
		return append([]Diagnostic(nil), d.ring[:d.next]...)
	}
	out := make([]Diagnostic, 0, len(d.ring))
	out = append(out, d.ring[d.next:]...)
	return append(out, d.ring[:d.next]...)
}
