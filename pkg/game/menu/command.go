package menu

import (
	"fmt"
)

// maxCommandHistory bounds the executed-command log.
const maxCommandHistory = 50

// Command is a polymorphic menu command. Implementations live with the
// gameplay code; the manager only needs the two-phase contract.
type Command interface {
	// CanExecute reports whether the command is currently valid to run.
	CanExecute() bool
	// Execute runs the command and reports the outcome.
	Execute() CommandResult
}

// CommandResult is the outcome of a command execution.
type CommandResult struct {
	IsSuccess bool
	Message   string
}

// Success builds a successful result.
func Success(message string) CommandResult {
	return CommandResult{IsSuccess: true, Message: message}
}

// Failure builds a failed result.
func Failure(message string) CommandResult {
	return CommandResult{Message: message}
}

// CommandManager is the command registry and dispatcher. It is decoupled
// from the menu state machine: mode-to-command-id catalogs may reference ids
// that are not (yet) registered as executable objects, and vice versa. The
// enforcement point is ExecuteID.
type CommandManager struct {
	commands     map[string]Command
	modeCommands map[Mode][]string
	history      []Command
	log          Logger

	// Executed fires after Execute actually ran (success or recovered
	// panic). ValidationFailed fires for unknown ids and commands whose
	// CanExecute returned false.
	Executed         Signal[CommandExecutedEvent]
	ValidationFailed Signal[string]
}

// NewCommandManager creates a manager seeded with the built-in mode
// catalogs. The catalogs are pure string lists; executable objects are bound
// later by the setup wiring.
func NewCommandManager(logger Logger) *CommandManager {
	m := &CommandManager{
		commands:     make(map[string]Command),
		modeCommands: make(map[Mode][]string),
		log:          orDefaultLogger(logger),
	}
	m.seedCatalogs()
	return m
}

func (m *CommandManager) seedCatalogs() {
	m.modeCommands[ModeConstruction] = []string{
		"place_room", "place_wall", "place_door", "place_window",
		"place_equipment", "rotate_blueprint", "demolish", "copy_schematic",
		"apply_schematic", "toggle_grid_snap", "cancel_placement",
	}
	m.modeCommands[ModeCultivation] = []string{
		"water_plant", "feed_nutrients", "prune_plant", "train_plant",
		"transplant", "harvest_plant", "inspect_plant",
		"adjust_environment", "clear_waste",
	}
	m.modeCommands[ModeGenetics] = []string{
		"cross_breed", "backcross", "self_pollinate", "analyze_genotype",
		"view_pedigree", "extract_seed", "germinate_seed", "tag_phenotype",
		"stabilize_strain", "discard_sample", "rename_strain",
	}
}

// RegisterCommand binds an executable object to an id.
func (m *CommandManager) RegisterCommand(id string, cmd Command) {
	if id == "" {
		m.log.Warnf("menu: cannot register command with empty id")
		return
	}
	if cmd == nil {
		m.log.Warnf("menu: cannot register nil command %q", id)
		return
	}
	m.commands[id] = cmd
}

// UnregisterCommand removes the binding for id, reporting whether it existed.
func (m *CommandManager) UnregisterCommand(id string) bool {
	if _, ok := m.commands[id]; !ok {
		return false
	}
	delete(m.commands, id)
	return true
}

// IsCommandRegistered reports whether id has an executable object bound.
func (m *CommandManager) IsCommandRegistered(id string) bool {
	_, ok := m.commands[id]
	return ok
}

// Execute dispatches cmd through the validation and fault boundary.
// A panic inside Execute is converted into a failure result carrying the
// message; both outcomes of an actual run are published via Executed.
func (m *CommandManager) Execute(cmd Command) CommandResult {
	if cmd == nil {
		m.log.Warnf("menu: refusing to execute nil command")
		return Failure("no command given")
	}
	if !cmd.CanExecute() {
		m.ValidationFailed.Emit("command cannot execute in the current state")
		return Failure("command cannot execute in the current state")
	}

	res := runGuarded(cmd)
	m.Executed.Emit(CommandExecutedEvent{Command: cmd, Result: res})

	if res.IsSuccess {
		m.history = append(m.history, cmd)
		if len(m.history) > maxCommandHistory {
			m.history = m.history[len(m.history)-maxCommandHistory:]
		}
	}
	return res
}

// runGuarded invokes Execute with panic recovery.
func runGuarded(cmd Command) (res CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure(fmt.Sprintf("command fault: %v", r))
		}
	}()
	return cmd.Execute()
}

// ExecuteID looks up and dispatches a registered command by id. A missing id
// fires ValidationFailed and returns a failure without invoking anything.
func (m *CommandManager) ExecuteID(id string) CommandResult {
	if id == "" {
		m.log.Warnf("menu: refusing to execute empty command id")
		return Failure("no command id given")
	}
	cmd, ok := m.commands[id]
	if !ok {
		msg := fmt.Sprintf("no command registered for id %q", id)
		m.ValidationFailed.Emit(msg)
		return Failure(msg)
	}
	return m.Execute(cmd)
}

// History returns a copy of the executed-command log, oldest first. Only
// successful executions are recorded, and at most maxCommandHistory entries
// are kept.
func (m *CommandManager) History() []Command {
	out := make([]Command, len(m.history))
	copy(out, m.history)
	return out
}

// AddCommandToMode associates a command id with a mode's catalog. The id
// does not need to be registered; catalogs can be declared ahead of wiring.
func (m *CommandManager) AddCommandToMode(mode Mode, id string) {
	if mode == "" || mode == ModeNone || id == "" {
		m.log.Warnf("menu: cannot catalog command %q for mode %q", id, mode)
		return
	}
	for _, existing := range m.modeCommands[mode] {
		if existing == id {
			return
		}
	}
	m.modeCommands[mode] = append(m.modeCommands[mode], id)
}

// RemoveCommandFromMode drops an id from a mode's catalog, reporting whether
// it was present.
func (m *CommandManager) RemoveCommandFromMode(mode Mode, id string) bool {
	ids := m.modeCommands[mode]
	for i, existing := range ids {
		if existing == id {
			m.modeCommands[mode] = append(ids[:i], ids[i+1:]...)
			return true
		}
	}
	return false
}

// AvailableCommands returns a copy of the mode's catalog in declaration
// order.
func (m *CommandManager) AvailableCommands(mode Mode) []string {
	ids := m.modeCommands[mode]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// IsCommandAvailableInMode reports whether id appears in the mode's catalog.
func (m *CommandManager) IsCommandAvailableInMode(mode Mode, id string) bool {
	for _, existing := range m.modeCommands[mode] {
		if existing == id {
			return true
		}
	}
	return false
}
