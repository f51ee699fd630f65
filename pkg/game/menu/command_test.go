package menu

import (
	"fmt"
	"strings"
	"testing"
)

// stubCommand is a scriptable Command for tests.
type stubCommand struct {
	name    string
	canExec bool
	result  CommandResult
	panics  bool
	runs    int
}

func (c *stubCommand) CanExecute() bool { return c.canExec }

func (c *stubCommand) Execute() CommandResult {
	c.runs++
	if c.panics {
		panic(fmt.Sprintf("%s blew up", c.name))
	}
	return c.result
}

func okCommand(name string) *stubCommand {
	return &stubCommand{name: name, canExec: true, result: Success(name + " done")}
}

func newTestCommandManager(t *testing.T) *CommandManager {
	t.Helper()
	return NewCommandManager(&quietLogger{})
}

func TestSeededCatalogSizes(t *testing.T) {
	m := newTestCommandManager(t)
	tests := []struct {
		mode Mode
		want int
	}{
		{ModeConstruction, 11},
		{ModeCultivation, 9},
		{ModeGenetics, 11},
	}
	for _, tt := range tests {
		if got := len(m.AvailableCommands(tt.mode)); got != tt.want {
			t.Errorf("catalog size for %q = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestCatalogIndependentOfRegistration(t *testing.T) {
	m := newTestCommandManager(t)
	// Seeded catalog ids have no executable bound at startup.
	if m.IsCommandRegistered("water_plant") {
		t.Error("water_plant registered at startup; catalogs are declarative only")
	}
	if !m.IsCommandAvailableInMode(ModeCultivation, "water_plant") {
		t.Error("water_plant missing from the cultivation catalog")
	}
	// And a registered command need not be catalogued anywhere.
	m.RegisterCommand("debug_dump", okCommand("debug_dump"))
	for _, mode := range []Mode{ModeConstruction, ModeCultivation, ModeGenetics} {
		if m.IsCommandAvailableInMode(mode, "debug_dump") {
			t.Errorf("debug_dump unexpectedly catalogued under %q", mode)
		}
	}
}

func TestExecuteSuccess(t *testing.T) {
	m := newTestCommandManager(t)

	var events []CommandExecutedEvent
	m.Executed.Subscribe(func(e CommandExecutedEvent) { events = append(events, e) })

	cmd := okCommand("prune")
	res := m.Execute(cmd)

	if !res.IsSuccess || res.Message != "prune done" {
		t.Errorf("result = %+v", res)
	}
	if cmd.runs != 1 {
		t.Errorf("Execute ran %d times, want 1", cmd.runs)
	}
	if len(events) != 1 || !events[0].Result.IsSuccess {
		t.Errorf("executed events = %+v", events)
	}
	if got := len(m.History()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
}

func TestExecuteNilCommand(t *testing.T) {
	m := newTestCommandManager(t)
	res := m.Execute(nil)
	if res.IsSuccess {
		t.Error("nil command reported success")
	}
}

func TestExecuteBlockedByCanExecute(t *testing.T) {
	m := newTestCommandManager(t)

	validationFailures := 0
	executed := 0
	m.ValidationFailed.Subscribe(func(string) { validationFailures++ })
	m.Executed.Subscribe(func(CommandExecutedEvent) { executed++ })

	cmd := &stubCommand{name: "harvest", canExec: false}
	res := m.Execute(cmd)

	if res.IsSuccess {
		t.Error("blocked command reported success")
	}
	if cmd.runs != 0 {
		t.Error("Execute invoked despite CanExecute returning false")
	}
	if validationFailures != 1 {
		t.Errorf("validation-failed fired %d times, want 1", validationFailures)
	}
	if executed != 0 {
		t.Errorf("executed fired %d times for a blocked command, want 0", executed)
	}
}

func TestExecutePanicBecomesFailureResult(t *testing.T) {
	m := newTestCommandManager(t)

	var events []CommandExecutedEvent
	m.Executed.Subscribe(func(e CommandExecutedEvent) { events = append(events, e) })

	cmd := &stubCommand{name: "cross_breed", canExec: true, panics: true}
	res := m.Execute(cmd)

	if res.IsSuccess {
		t.Error("panicking command reported success")
	}
	if !strings.Contains(res.Message, "cross_breed blew up") {
		t.Errorf("failure message %q does not carry the fault", res.Message)
	}
	// Faults are still reported through the normal executed event.
	if len(events) != 1 || events[0].Result.IsSuccess {
		t.Errorf("executed events = %+v", events)
	}
	// Failed executions never enter the history.
	if got := len(m.History()); got != 0 {
		t.Errorf("history length = %d, want 0", got)
	}
}

func TestExecuteIDMissing(t *testing.T) {
	m := newTestCommandManager(t)

	validationFailures := 0
	executed := 0
	m.ValidationFailed.Subscribe(func(string) { validationFailures++ })
	m.Executed.Subscribe(func(CommandExecutedEvent) { executed++ })

	res := m.ExecuteID("missing-id")

	if res.IsSuccess {
		t.Error("missing id reported success")
	}
	if validationFailures != 1 {
		t.Errorf("validation-failed fired %d times, want exactly 1", validationFailures)
	}
	if executed != 0 {
		t.Errorf("executed fired %d times, want 0", executed)
	}
}

func TestExecuteIDDispatchesRegistered(t *testing.T) {
	m := newTestCommandManager(t)
	cmd := okCommand("germinate_seed")
	m.RegisterCommand("germinate_seed", cmd)
	res := m.ExecuteID("germinate_seed")
	if !res.IsSuccess || cmd.runs != 1 {
		t.Errorf("result = %+v, runs = %d", res, cmd.runs)
	}
}

func TestHistoryBoundedAtFifty(t *testing.T) {
	m := newTestCommandManager(t)
	var last *stubCommand
	for i := 0; i < 60; i++ {
		last = okCommand(fmt.Sprintf("cmd-%d", i))
		m.Execute(last)
	}
	hist := m.History()
	if len(hist) != maxCommandHistory {
		t.Fatalf("history length = %d, want %d", len(hist), maxCommandHistory)
	}
	// Most recent execution survives at the tail.
	if hist[len(hist)-1] != Command(last) {
		t.Error("most recent command missing from history tail")
	}
	// Oldest surviving entry is the 11th executed command.
	if got := hist[0].(*stubCommand).name; got != "cmd-10" {
		t.Errorf("history[0] = %q, want cmd-10", got)
	}
}

func TestUnregisterCommand(t *testing.T) {
	m := newTestCommandManager(t)
	m.RegisterCommand("demolish", okCommand("demolish"))
	if !m.UnregisterCommand("demolish") {
		t.Error("UnregisterCommand = false for a registered id")
	}
	if m.UnregisterCommand("demolish") {
		t.Error("second UnregisterCommand = true")
	}
	if res := m.ExecuteID("demolish"); res.IsSuccess {
		t.Error("execute succeeded after unregister")
	}
}

func TestModeCatalogMutation(t *testing.T) {
	m := newTestCommandManager(t)

	m.AddCommandToMode(ModeCultivation, "defoliate")
	if !m.IsCommandAvailableInMode(ModeCultivation, "defoliate") {
		t.Error("added id not in catalog")
	}
	// Duplicate adds are ignored.
	m.AddCommandToMode(ModeCultivation, "defoliate")
	if got := len(m.AvailableCommands(ModeCultivation)); got != 10 {
		t.Errorf("catalog size after duplicate add = %d, want 10", got)
	}

	if !m.RemoveCommandFromMode(ModeCultivation, "defoliate") {
		t.Error("RemoveCommandFromMode = false for a present id")
	}
	if m.RemoveCommandFromMode(ModeCultivation, "defoliate") {
		t.Error("second RemoveCommandFromMode = true")
	}
}
