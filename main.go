package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"chimera/pkg/engine/input"
	"chimera/pkg/game/config"
	"chimera/pkg/game/devtools"
	"chimera/pkg/game/menu"
	"chimera/pkg/game/renderer"
	ebitenrenderer "chimera/pkg/game/renderer/ebiten"
	"chimera/pkg/game/renderer/tui"
	"chimera/pkg/game/setup"
	"chimera/pkg/game/state"
)

func initGettext(locale string) {
	gotext.Configure("mo", locale, "default")
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}

// transitionDriver is implemented by renderers that animate menu transitions
// from their own frame clock and need the manager re-bound after a world swap.
type transitionDriver interface {
	DriveTransitions(menus *menu.ContextualMenuManager)
}

// bindRenderer re-points frame-clock collaborators at the current world.
func bindRenderer(w *setup.World) {
	if d, ok := renderer.Current.(transitionDriver); ok {
		d.DriveTransitions(w.Menus)
	}
}

// resolveSaveDir picks the save-slot directory: flag, then preferences, then
// the platform config dir.
func resolveSaveDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := config.Current().SaveDir; dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "chimera", "saves")
	}
	return "saves"
}

func main() {
	rendererFlag := flag.String("renderer", "", "renderer backend: tui or ebiten")
	saveDirFlag := flag.String("savedir", "", "directory for save slots")
	localeFlag := flag.String("locale", "en_US.UTF-8", "locale for translations")
	flag.Parse()

	initGettext(*localeFlag)

	backend := *rendererFlag
	if backend == "" {
		backend = config.Current().Renderer
	}
	if backend == "" {
		backend = "tui"
	}

	saveDir := resolveSaveDir(*saveDirFlag)

	switch backend {
	case "ebiten":
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()

		w := setup.NewWorld(r, r)
		bindRenderer(w)

		// Ebiten owns the main goroutine; the game loop runs beside it.
		if err := r.Run(func() { gameLoop(w, r, r, saveDir) }); err != nil {
			fmt.Fprintf(os.Stderr, "renderer error: %v\n", err)
			os.Exit(1)
		}
	case "tui":
		r := tui.New()
		renderer.SetRenderer(r)
		renderer.Init()

		w := setup.NewWorld(nil, r)
		gameLoop(w, nil, r, saveDir)
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q (want tui or ebiten)\n", backend)
		os.Exit(1)
	}
}

// gameLoop renders the facility and dispatches intents until the player
// quits. Contextual menus, the main menu and the settings/save/load menus
// each run their own nested loops.
func gameLoop(w *setup.World, pointer menu.PointerProvider, screen menu.ScreenProvider, saveDir string) {
	for {
		renderer.Clear()
		renderer.RenderFrame(w.Game)

		intent := renderer.GetInput()

		if mode, ok := menu.ModeForAction(intent.Action); ok {
			menu.RunContextualMenu(w.Game, w.Menus, w.Commands, mode)
			continue
		}

		switch intent.Action {
		case input.ActionOpenMenu:
			if !runMainMenu(w, pointer, screen, saveDir) {
				return
			}
		case input.ActionToggleOverlay:
			visible := !w.Menus.CurrentState().IsVisible
			w.Menus.SetVisibility(visible)
			if visible {
				logMessage(w.Game, "Menu overlay shown.")
			} else {
				logMessage(w.Game, "Menu overlay hidden.")
			}
		case input.ActionDumpState:
			path, err := devtools.DumpMenuStateToFile(w.Game, w.Menus, w.Commands)
			if err != nil {
				logMessage(w.Game, "DENIED{State dump failed:} %v", err)
			} else {
				logMessage(w.Game, "Menu state dumped to ITEM{%s}", path)
			}
		case input.ActionQuit:
			return
		default:
			// Ignore unbound input on the facility screen.
		}
	}
}

// runMainMenu handles one trip through the main menu. Returns false when the
// player chose to quit.
func runMainMenu(w *setup.World, pointer menu.PointerProvider, screen menu.ScreenProvider, saveDir string) bool {
	switch menu.RunMainMenu(w.Game, true) {
	case menu.MainMenuActionNewGame:
		*w = *setup.NewWorld(pointer, screen)
		bindRenderer(w)
		logMessage(w.Game, "Started a fresh facility.")
	case menu.MainMenuActionSave:
		if menu.RunSaveMenu(w.Game, saveDir) {
			logMessage(w.Game, "Game saved.")
		}
	case menu.MainMenuActionLoad:
		if g := menu.RunLoadMenu(w.Game, saveDir); g != nil {
			*w = *setup.WorldFrom(g, pointer, screen)
			bindRenderer(w)
			logMessage(w.Game, "Save loaded: day %d.", w.Game.Day)
		}
	case menu.MainMenuActionSettings:
		menu.RunSettingsMenu(w.Game)
	case menu.MainMenuActionQuit:
		return false
	}
	return true
}
