package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes maps Ebiten keys to the platform-independent codes forwarded to
// the engine. These match the codes the interpreter's keymap understands
// ("Digit1", "KeyQ", ...).
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyDigit0: "Digit0", ebiten.KeyDigit1: "Digit1",
	ebiten.KeyDigit2: "Digit2", ebiten.KeyDigit3: "Digit3",
	ebiten.KeyDigit4: "Digit4", ebiten.KeyDigit5: "Digit5",
	ebiten.KeyDigit6: "Digit6", ebiten.KeyDigit7: "Digit7",
	ebiten.KeyDigit8: "Digit8", ebiten.KeyDigit9: "Digit9",
	ebiten.KeyA: "KeyA", ebiten.KeyB: "KeyB", ebiten.KeyC: "KeyC",
	ebiten.KeyD: "KeyD", ebiten.KeyE: "KeyE", ebiten.KeyF: "KeyF",
	ebiten.KeyG: "KeyG", ebiten.KeyH: "KeyH", ebiten.KeyI: "KeyI",
	ebiten.KeyJ: "KeyJ", ebiten.KeyK: "KeyK", ebiten.KeyL: "KeyL",
	ebiten.KeyM: "KeyM", ebiten.KeyN: "KeyN", ebiten.KeyO: "KeyO",
	ebiten.KeyP: "KeyP", ebiten.KeyQ: "KeyQ", ebiten.KeyR: "KeyR",
	ebiten.KeyS: "KeyS", ebiten.KeyT: "KeyT", ebiten.KeyU: "KeyU",
	ebiten.KeyV: "KeyV", ebiten.KeyW: "KeyW", ebiten.KeyX: "KeyX",
	ebiten.KeyY: "KeyY", ebiten.KeyZ: "KeyZ",
	ebiten.KeyArrowUp:   "ArrowUp",
	ebiten.KeyArrowDown: "ArrowDown",
	ebiten.KeyArrowLeft: "ArrowLeft", ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeySpace:  "Space",
	ebiten.KeyEnter:  "Enter",
	ebiten.KeyEscape: "Escape",
}

// mouseRightCode is forwarded for the secondary mouse button. CHIP-8 keymaps
// may bind it, and there is no host context menu here to swallow it.
const mouseRightCode = "MouseRight"

// pollInput forwards key transitions to the engine, unconditionally and
// synchronously with the tick that observed them. No batching, no debounce.
func (w *Window) pollInput() {
	for key, code := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			if !w.pressed.Has(code) {
				w.pressed.Put(code)
				w.br.KeyDown(code)
			}
		} else if w.pressed.Has(code) {
			w.pressed.Remove(code)
			w.br.KeyUp(code)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		w.br.KeyDown(mouseRightCode)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		w.br.KeyUp(mouseRightCode)
	}
}
