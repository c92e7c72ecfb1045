// Package input reads raw terminal keystrokes and translates them to the
// platform-independent key codes the interpreter keymap understands.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Reader reads keys from a terminal in raw mode.
type Reader struct {
	oldState *term.State
}

// NewReader puts the terminal into raw mode. Call Restore before exiting.
func NewReader() (*Reader, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &Reader{oldState: oldState}, nil
}

// Restore returns the terminal to its previous mode.
func (r *Reader) Restore() {
	if r.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), r.oldState)
		r.oldState = nil
	}
}

func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to complete an arrow key escape sequence after an
// ESC byte. Returns the key code if one was read, "" otherwise.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Both CSI sequences (ESC [) and SS3 sequences (ESC O) occur.
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "ArrowUp"
	case 'B':
		return "ArrowDown"
	case 'C':
		return "ArrowRight"
	case 'D':
		return "ArrowLeft"
	}
	return ""
}

// ReadKey blocks until a key arrives and returns its platform-independent
// code. Ctrl+C and a bare ESC report "Interrupt" and "Escape" so the caller
// can exit cleanly.
func (r *Reader) ReadKey() (string, error) {
	b, err := readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 3:
		return "Interrupt", nil
	case b == 0x1b:
		if code := tryReadArrowKey(); code != "" {
			return code, nil
		}
		return "Escape", nil
	case b == '\n' || b == '\r':
		return "Enter", nil
	case b == ' ':
		return "Space", nil
	case b >= '0' && b <= '9':
		return fmt.Sprintf("Digit%c", b), nil
	case b >= 'a' && b <= 'z':
		return fmt.Sprintf("Key%c", b-'a'+'A'), nil
	case b >= 'A' && b <= 'Z':
		return fmt.Sprintf("Key%c", b), nil
	}
	// Anything else is not a key the engine cares about.
	return "", nil
}
