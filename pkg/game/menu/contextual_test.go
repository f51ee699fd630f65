package menu

import (
	"testing"
	"time"
)

func newTestContextualManager(t *testing.T) *ContextualMenuManager {
	t.Helper()
	return NewContextualMenuManager(fakePointer{x: 3, y: 4}, fakeScreen{w: 100, h: 50}, &quietLogger{})
}

func TestFacadeOpenSelectCloseFlow(t *testing.T) {
	c := newTestContextualManager(t)

	var openedModes []Mode
	var selections []ItemSelectedEvent
	var closedModes []Mode
	c.OnMenuOpened().Subscribe(func(m Mode) { openedModes = append(openedModes, m) })
	c.OnMenuItemSelected().Subscribe(func(e ItemSelectedEvent) { selections = append(selections, e) })
	c.OnMenuClosed().Subscribe(func(m Mode) { closedModes = append(closedModes, m) })

	if !c.OpenMenu(ModeGenetics) {
		t.Fatal("OpenMenu failed")
	}
	// Drive the opening transition to completion through the facade.
	c.UpdateTransitions(time.Second)
	if c.TransitionState().Active {
		t.Fatal("transition still active after a full-duration update")
	}

	if !c.SelectMenuItem("strain-7") {
		t.Fatal("SelectMenuItem failed")
	}

	// Genetics auto-closes on selection.
	if c.IsMenuOpen() {
		t.Error("menu still open after auto-close selection")
	}
	if len(openedModes) != 1 || openedModes[0] != ModeGenetics {
		t.Errorf("opened = %v", openedModes)
	}
	if len(selections) != 1 || selections[0].ItemID != "strain-7" {
		t.Errorf("selections = %v", selections)
	}
	if len(closedModes) != 1 || closedModes[0] != ModeGenetics {
		t.Errorf("closed = %v", closedModes)
	}
}

func TestFacadeTransitionSignals(t *testing.T) {
	c := newTestContextualManager(t)

	updates := 0
	completions := 0
	c.OnTransitionUpdate().Subscribe(func(TransitionEvent) { updates++ })
	c.OnTransitionComplete().Subscribe(func(TransitionDoneEvent) { completions++ })

	c.OpenMenu(ModeConstruction)
	for i := 0; i < 10; i++ {
		c.UpdateTransitions(50 * time.Millisecond)
	}

	if updates == 0 {
		t.Error("no transition updates observed")
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestFacadeConfigForwarding(t *testing.T) {
	c := newTestContextualManager(t)

	cfg := MenuConfig{
		Mode:               "analytics",
		MaxMenuItems:       4,
		DefaultPosition:    PositionCenter,
		Transition:         TransitionNone,
		TransitionDuration: 0,
	}
	c.RegisterMode("analytics", cfg)
	if !c.IsModeAvailable("analytics") {
		t.Fatal("registered mode not available through facade")
	}
	if got := c.MenuConfigFor("analytics"); got != cfg {
		t.Errorf("MenuConfigFor = %+v, want %+v", got, cfg)
	}
	if !c.UnregisterMode("analytics") {
		t.Error("UnregisterMode failed through facade")
	}
}

func TestFacadeHistoryAndParams(t *testing.T) {
	c := newTestContextualManager(t)
	c.OpenMenu(ModeCultivation)
	if got := len(c.History(ModeCultivation)); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
	if p := c.TransitionParams(TransitionSlide); p.Duration == 0 {
		t.Error("slide params missing a duration")
	}
}

func TestFacadeSurvivesFrameClockDriving(t *testing.T) {
	c := newTestContextualManager(t)

	// A renderer goroutine advances transitions from its frame clock while
	// the game loop drives the state machine. Run with -race.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			if c.TransitionState().Active {
				c.UpdateTransitions(time.Millisecond)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		c.OpenMenu(ModeCultivation)
		c.SelectMenuItem("water_plant")
		c.CurrentState()
		c.CloseMenu()
		c.Reset()
	}
	<-done

	for c.TransitionState().Active {
		c.UpdateTransitions(time.Second)
	}
	if c.IsMenuOpen() {
		t.Error("menu open after final reset")
	}
}

func TestFacadeResetRestoresDefaults(t *testing.T) {
	c := newTestContextualManager(t)
	c.OpenMenuAt(ModeConstruction, 8, 8)
	c.SetVisibility(false)
	c.Reset()

	state := c.CurrentState()
	if state.IsOpen || !state.IsVisible || state.IsTransitioning {
		t.Errorf("state after reset: %+v", state)
	}
	if state.Mode != ModeNone {
		t.Errorf("mode after reset = %q", state.Mode)
	}
}
