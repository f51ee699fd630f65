package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadEscapeSequence attempts to read an escape sequence after an ESC
// byte. Returns the decoded code ("arrow_up", "f8", "escape", ...) or empty
// if the sequence was unrecognised.
func tryReadEscapeSequence() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	// Function keys arrive as "ESC [ <num> ~"; F8 is 19.
	if b3 >= '0' && b3 <= '9' {
		num := []byte{b3}
		for {
			b, err := readByte()
			if err != nil || b == '~' {
				break
			}
			if b >= '0' && b <= '9' {
				num = append(num, b)
			} else {
				return ""
			}
		}
		if string(num) == "19" {
			return "f8"
		}
	}

	// Unknown sequence, discard.
	return ""
}

// ReadKey reads a single key press from stdin in raw mode and returns its
// binding code. Letters return immediately without Enter; arrows and F-keys
// are decoded from their escape sequences. Ctrl+C exits the process.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	switch {
	case b1 == 0x1b:
		return tryReadEscapeSequence()
	case b1 == 3: // Ctrl+C
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	case b1 == '\n' || b1 == '\r':
		return "enter"
	case b1 >= 32 && b1 < 127:
		return string(b1)
	}

	return ""
}

// ReadIntent reads a single key and maps it through the binding tiers.
func ReadIntent() Intent {
	code := ReadKey()
	if code == "" {
		return Intent{Action: ActionNone}
	}
	raw := RawInput{Device: DeviceTerminal, Code: code}
	return MapToIntent(NewDebouncedInput(raw))
}
