package menu

import (
	"time"
)

// TransitionController tracks the single in-flight menu transition and
// publishes progress and completion. Exactly one transition may be active at
// a time; Begin rejects a second one, so callers (the state core) decide
// whether to fail the triggering operation or Reset first.
type TransitionController struct {
	state    TransitionState
	duration time.Duration
	elapsed  time.Duration
	log      Logger

	// Updated fires on every progress change, Completed once when progress
	// reaches 1. Reset fires neither.
	Updated   Signal[TransitionEvent]
	Completed Signal[TransitionDoneEvent]
}

// NewTransitionController creates an idle controller.
func NewTransitionController(logger Logger) *TransitionController {
	return &TransitionController{log: orDefaultLogger(logger)}
}

// Begin starts a transition of the given type and direction. It returns false
// without touching state if a transition is already active.
func (c *TransitionController) Begin(t TransitionType, opening bool, duration time.Duration) bool {
	if c.state.Active {
		c.log.Warnf("menu: transition already in progress, rejecting %v", t)
		return false
	}
	if duration < 0 {
		duration = 0
	}
	c.state = TransitionState{Type: t, Opening: opening, Active: true}
	c.duration = duration
	c.elapsed = 0
	return true
}

// Update advances the active transition by a frame delta. Progress moves
// linearly so that cumulative deltas totalling the configured duration reach
// completion; a zero duration completes on the first call.
func (c *TransitionController) Update(dt time.Duration) {
	if !c.state.Active {
		return
	}
	if c.duration <= 0 {
		c.SetProgress(1)
		return
	}
	c.elapsed += dt
	c.SetProgress(float64(c.elapsed) / float64(c.duration))
}

// SetProgress clamps p to [0,1], records it, and fires Updated. At full
// progress the controller returns to idle and fires Completed.
func (c *TransitionController) SetProgress(p float64) {
	if !c.state.Active {
		return
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	c.state.Progress = p
	c.Updated.Emit(TransitionEvent{Type: c.state.Type, Progress: p})
	if p >= 1 {
		done := TransitionDoneEvent{Type: c.state.Type, WasOpening: c.state.Opening}
		c.state.Active = false
		c.Completed.Emit(done)
	}
}

// Reset force-clears any in-flight transition without firing completion.
// Renderers rely on this asymmetry to tell forced resets apart from
// user-driven closes.
func (c *TransitionController) Reset() {
	c.state = TransitionState{}
	c.duration = 0
	c.elapsed = 0
}

// Active reports whether a transition is in flight.
func (c *TransitionController) Active() bool {
	return c.state.Active
}

// State returns a copy of the current transition state.
func (c *TransitionController) State() TransitionState {
	return c.state
}

// Params returns easing/duration metadata for a transition type, for
// consumption by a visual renderer.
func (c *TransitionController) Params(t TransitionType) TransitionParams {
	switch t {
	case TransitionFade:
		return TransitionParams{Easing: "ease-in-out", Duration: 200 * time.Millisecond}
	case TransitionSlide:
		return TransitionParams{Easing: "ease-out", Duration: 250 * time.Millisecond}
	case TransitionScale:
		return TransitionParams{Easing: "ease-in-out", Duration: 150 * time.Millisecond}
	default:
		return TransitionParams{Easing: "linear"}
	}
}
