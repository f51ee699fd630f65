package menu

import (
	"fmt"
	"strings"
	"testing"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// scriptedRenderer feeds a fixed sequence of intents to the menu run loops
// and otherwise renders nothing.
type scriptedRenderer struct {
	intents []engineinput.Intent
}

func (r *scriptedRenderer) Init()                        {}
func (r *scriptedRenderer) Clear()                       {}
func (r *scriptedRenderer) RenderFrame(g *state.Game)    {}
func (r *scriptedRenderer) ShowMessage(msg string)       {}
func (r *scriptedRenderer) ScreenSize() (int, int)       { return 80, 24 }
func (r *scriptedRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}
func (r *scriptedRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return renderer.StripMarkup(msg)
}

func (r *scriptedRenderer) GetInput() engineinput.Intent {
	if len(r.intents) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	next := r.intents[0]
	r.intents = r.intents[1:]
	return next
}

// installScript swaps the active renderer for a scripted one for the test.
func installScript(t *testing.T, actions ...engineinput.Action) {
	t.Helper()
	intents := make([]engineinput.Intent, len(actions))
	for i, a := range actions {
		intents[i] = engineinput.Intent{Action: a}
	}
	prev := renderer.Current
	renderer.SetRenderer(&scriptedRenderer{intents: intents})
	t.Cleanup(func() { renderer.Current = prev })
}

// recordingCommand counts executions for run-loop assertions.
type recordingCommand struct {
	runs    int
	allowed bool
}

func (c *recordingCommand) CanExecute() bool { return c.allowed }

func (c *recordingCommand) Execute() CommandResult {
	c.runs++
	return Success("done")
}

func newRunLoopFixture() (*state.Game, *ContextualMenuManager, *CommandManager) {
	g := state.NewGame()
	menus := NewContextualMenuManager(nil, nil, nil)
	cm := NewCommandManager(nil)
	return g, menus, cm
}

func TestModeForAction(t *testing.T) {
	if mode, ok := ModeForAction(engineinput.ActionCultivationMenu); !ok || mode != ModeCultivation {
		t.Errorf("expected cultivation mode, got %v %v", mode, ok)
	}
	if _, ok := ModeForAction(engineinput.ActionConfirm); ok {
		t.Error("confirm must not summon a menu")
	}
}

func TestRunLoopExecutesSelectedCommand(t *testing.T) {
	g, menus, cm := newRunLoopFixture()
	cmd := &recordingCommand{allowed: true}
	cm.RegisterCommand("water_plant", cmd)

	var selections []ItemSelectedEvent
	menus.OnMenuItemSelected().Subscribe(func(ev ItemSelectedEvent) {
		selections = append(selections, ev)
	})

	// Confirm the first item, then dismiss with the mode's own key.
	installScript(t, engineinput.ActionConfirm, engineinput.ActionCultivationMenu)

	RunContextualMenu(g, menus, cm, ModeCultivation)

	if cmd.runs != 1 {
		t.Errorf("expected 1 execution, got %d", cmd.runs)
	}
	if menus.IsMenuOpen() {
		t.Error("menu should be closed after dismissal")
	}
	if len(selections) != 1 || selections[0].ItemID != "water_plant" {
		t.Errorf("expected one water_plant selection, got %v", selections)
	}
	if hist := menus.History(ModeCultivation); len(hist) != 1 {
		t.Errorf("expected one access history entry, got %v", hist)
	}
}

func TestRunLoopAutoClosesSingleSelectMode(t *testing.T) {
	g, menus, cm := newRunLoopFixture()
	cmd := &recordingCommand{allowed: true}
	cm.RegisterCommand("place_room", cmd)

	// Construction auto-closes on selection; only one intent is needed.
	installScript(t, engineinput.ActionConfirm)

	RunContextualMenu(g, menus, cm, ModeConstruction)

	if cmd.runs != 1 {
		t.Errorf("expected 1 execution, got %d", cmd.runs)
	}
	if menus.IsMenuOpen() {
		t.Error("construction menu should auto-close after a selection")
	}
}

func TestRunLoopSwitchesModeInPlace(t *testing.T) {
	g, menus, cm := newRunLoopFixture()

	var changed []Mode
	menus.OnMenuModeChanged().Subscribe(func(m Mode) { changed = append(changed, m) })

	// Open cultivation, hop to genetics, then quit.
	installScript(t, engineinput.ActionGeneticsMenu, engineinput.ActionQuit)

	RunContextualMenu(g, menus, cm, ModeCultivation)

	if len(changed) != 1 || changed[0] != ModeGenetics {
		t.Errorf("expected one mode change to genetics, got %v", changed)
	}
	if menus.IsMenuOpen() {
		t.Error("menu should be closed after quit")
	}
}

func TestRunLoopSkipsDisabledItems(t *testing.T) {
	g, menus, cm := newRunLoopFixture()
	cmd := &recordingCommand{allowed: true}
	// Only the second catalog entry is registered; the first renders
	// disabled and cannot be activated.
	cm.RegisterCommand("feed_nutrients", cmd)

	installScript(t,
		engineinput.ActionMoveSouth, // from water_plant (disabled) to feed_nutrients
		engineinput.ActionConfirm,
		engineinput.ActionQuit,
	)

	RunContextualMenu(g, menus, cm, ModeCultivation)

	if cmd.runs != 1 {
		t.Errorf("expected feed_nutrients to run once, got %d", cmd.runs)
	}
}

// staticItem and staticHandler are minimal fakes for the fallback renderer.
type staticItem struct{ label string }

func (i staticItem) GetLabel() string    { return i.label }
func (i staticItem) IsSelectable() bool  { return true }
func (i staticItem) GetHelpText() string { return "" }

type staticHandler struct{ instructions string }

func (h staticHandler) OnSelect(MenuItem, int)                  {}
func (h staticHandler) OnActivate(MenuItem, int) (bool, string) { return true, "" }
func (h staticHandler) OnExit()                                 {}
func (h staticHandler) GetTitle() string                        { return "Fallback" }
func (h staticHandler) GetInstructions(MenuItem) string         { return h.instructions }

func TestMenuFallbackKeepsLiteralPercent(t *testing.T) {
	installScript(t)
	g := state.NewGame()
	items := []MenuItem{staticItem{label: "Water schedule"}}
	handler := staticHandler{instructions: "Hydration target: 100%"}

	renderMenuFallback(g, items, 0, "Raises hydration by 25%", handler)

	var instructions, help bool
	for _, m := range g.Messages {
		if strings.Contains(m, "Hydration target: 100%") {
			instructions = true
		}
		if strings.Contains(m, "Raises hydration by 25%") {
			help = true
		}
	}
	if !instructions {
		t.Errorf("instructions with a literal %% were mangled: %v", g.Messages)
	}
	if !help {
		t.Errorf("help text with a literal %% was mangled: %v", g.Messages)
	}
}

func TestBuildCommandItemsHonorsItemCap(t *testing.T) {
	_, menus, cm := newRunLoopFixture()

	cfg := menus.MenuConfigFor(ModeGenetics)
	cfg.MaxMenuItems = 3
	menus.RegisterMode(ModeGenetics, cfg)

	items := buildCommandItems(cm, menus, ModeGenetics)
	if len(items) != 3 {
		t.Errorf("expected 3 items under the cap, got %d", len(items))
	}
}
