// Package tui is the terminal renderer: facility overview, message pane and
// contextual menu panels drawn with ANSI styles.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"chimera/pkg/engine/input"
	"chimera/pkg/engine/terminal"
	"chimera/pkg/game/menu"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// Icons for the facility overview.
const (
	IconPlantSeedling    = "."
	IconPlantVegetative  = "·"
	IconPlantFlowering   = "*"
	IconPlantHarvestable = "✿"
	IconEmptySlot        = "_"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorRoom        color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorHighlight   color.Style
	colorStrain      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgGray}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHighlight = color.Style{color.FgBlack, color.BgGreen}
	t.colorStrain = color.Style{color.FgCyan}

	t.regexpStringFunctions = renderer.MarkupPattern()
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.ReadIntent()
}

// ReadRawCode reads a single raw key code, for binding capture.
func (t *TUIRenderer) ReadRawCode() string {
	return input.ReadKey()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHighlight:
		return t.colorHighlight.Sprint(text)
	case renderer.StyleStrain:
		return t.colorStrain.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "STRAIN":
			val = t.colorStrain.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// ScreenSize returns the terminal dimensions in cells.
func (t *TUIRenderer) ScreenSize() (width, height int) {
	return terminal.GetSize()
}

// RenderFrame renders a complete frame: header, rooms, status bar, messages.
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.colorAction.Printf("Day %d\n\n", g.Day)

	t.printRooms(g)
	t.printStatusBar(g)
	t.printPossibleActions()
	t.printMessagesPane(g)

	fmt.Printf("\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Print(t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + t.FormatText("%s", txt) + "\n")
}

// plantIcon returns the stage icon for a plant.
func (t *TUIRenderer) plantIcon(p *state.Plant) string {
	switch p.Stage {
	case state.StageSeedling:
		return t.colorSubtle.Sprint(IconPlantSeedling)
	case state.StageVegetative:
		return t.colorItem.Sprint(IconPlantVegetative)
	case state.StageFlowering:
		return t.colorStrain.Sprint(IconPlantFlowering)
	case state.StageHarvestable:
		return t.colorHighlight.Sprint(IconPlantHarvestable)
	default:
		return "?"
	}
}

// printRooms renders each room as a row of plant slots.
func (t *TUIRenderer) printRooms(g *state.Game) {
	if len(g.Rooms) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no rooms built yet)"))
		fmt.Println()
		return
	}

	for _, room := range g.Rooms {
		fmt.Printf("  %s ", t.colorRoom.Sprintf("%-14s", room.Name))

		slots := make([]string, 0, room.Capacity)
		for _, p := range room.Plants {
			slots = append(slots, t.plantIcon(p))
		}
		for len(slots) < room.Capacity {
			slots = append(slots, t.colorSubtle.Sprint(IconEmptySlot))
		}
		fmt.Print(strings.Join(slots, " "))

		fmt.Printf("  %s\n", t.colorSubtle.Sprintf("%d/%d", len(room.Plants), room.Capacity))

		// One detail line per plant.
		for _, p := range room.Plants {
			fmt.Printf("    %s %s %s  %s\n",
				t.plantIcon(p),
				t.colorSubtle.Sprint(p.ID),
				t.colorStrain.Sprint(p.Strain),
				t.colorSubtle.Sprintf("%s h:%d w:%d n:%d", state.StageName(p.Stage), p.Health, p.Hydration, p.Nutrients))
		}
	}
	fmt.Println()
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printBullet("ACTION{b}uild  ACTION{c}ultivate  ACTION{g}enetics  ACTION{m}enu  ACTION{q}uit")
}

// printStatusBar renders the credits/strains status bar
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Println()
	fmt.Print(t.colorSubtle.Sprint("Credits: "))
	fmt.Print(t.colorItem.Sprintf("%d", g.Credits))

	fmt.Print(t.colorSubtle.Sprint("   Strains: "))
	if len(g.Strains) == 0 {
		fmt.Println(t.colorSubtle.Sprint("(none)"))
	} else {
		names := make([]string, 0, len(g.Strains))
		for _, s := range g.Strains {
			name := t.colorStrain.Sprint(s.Name)
			if s.Stable {
				name += t.colorSubtle.Sprint("*")
			}
			names = append(names, name)
		}
		fmt.Println(strings.Join(names, t.colorSubtle.Sprint(", ")))
	}

	if g.OwnedSchematics.Size() > 0 || g.TaggedPhenotypes.Size() > 0 {
		fmt.Println(t.colorSubtle.Sprintf("Schematics: %d   Tagged phenotypes: %d",
			g.OwnedSchematics.Size(), g.TaggedPhenotypes.Size()))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.GetSize()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// RenderMenu draws a full-screen list menu (main menu, settings, save/load).
func (t *TUIRenderer) RenderMenu(g *state.Game, items []menu.MenuItem, selected int, helpText string, title string) {
	t.Clear()

	fmt.Println()
	fmt.Printf("  %s\n\n", t.colorHighlight.Sprintf(" %s ", title))

	for i, item := range items {
		prefix := "    "
		label := item.GetLabel()
		if i == selected {
			prefix = "  " + t.colorActionShort.Sprint("> ")
			label = t.colorAction.Sprint(color.ClearCode(label))
		} else if !item.IsSelectable() {
			label = t.colorSubtle.Sprint(color.ClearCode(label))
		}
		fmt.Printf("%s%s\n", prefix, label)
	}

	fmt.Println()
	if helpText != "" {
		t.printString("  %s\n", helpText)
	}
	if selected >= 0 && selected < len(items) {
		if help := items[selected].GetHelpText(); help != "" {
			fmt.Printf("  %s\n", t.colorSubtle.Sprint(help))
		}
	}
}

// RenderContextualMenu draws the contextual menu as a boxed panel. The
// transition progress scales how much of the panel is revealed, so even a
// blocking terminal shows the animation state.
func (t *TUIRenderer) RenderContextualMenu(g *state.Game, info menu.MenuStateInfo, tr menu.TransitionState, items []menu.MenuItem, selected int, helpText string) {
	t.Clear()
	t.RenderFrame(g)
	fmt.Println()

	if !info.IsVisible {
		return
	}

	selectedSet := make(map[string]bool, len(info.SelectedItemIDs))
	for _, id := range info.SelectedItemIDs {
		selectedSet[id] = true
	}

	width := panelWidth(items, string(info.Mode))

	title := fmt.Sprintf(" %s ", string(info.Mode))
	fmt.Printf("  ┌─%s%s┐\n", t.colorHighlight.Sprint(title), strings.Repeat("─", width-len(title)-1))

	// During a transition only part of the panel is revealed.
	visible := len(items)
	if tr.Active {
		visible = int(float64(len(items)) * tr.Progress)
		if !tr.Opening {
			visible = len(items) - visible
		}
	}

	for i, item := range items {
		if i >= visible {
			break
		}

		marker := " "
		if ci, ok := item.(*menu.CommandItem); ok && selectedSet[ci.ID] {
			marker = t.colorItem.Sprint("✓")
		}

		label := color.ClearCode(item.GetLabel())
		if i == selected {
			label = t.colorHighlight.Sprintf("%-*s", width-4, label)
		} else if !item.IsSelectable() {
			label = t.colorSubtle.Sprintf("%-*s", width-4, label)
		} else {
			label = fmt.Sprintf("%-*s", width-4, label)
		}
		fmt.Printf("  │ %s%s │\n", marker, label)
	}

	fmt.Printf("  └%s┘\n", strings.Repeat("─", width))

	if helpText != "" {
		t.printString("  %s\n", helpText)
	}
	fmt.Printf("\n> ")
}

// ClearMenu hides the menu overlay. The TUI redraws every frame, so there
// is nothing to tear down.
func (t *TUIRenderer) ClearMenu() {
}

func panelWidth(items []menu.MenuItem, title string) int {
	width := len(title) + 4
	for _, item := range items {
		if l := len(color.ClearCode(item.GetLabel())) + 4; l > width {
			width = l
		}
	}
	return width
}
