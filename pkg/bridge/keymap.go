package bridge

// hexKeyByCode is the canonical CHIP-8 keypad layout on a modern keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The bridge forwards raw codes; this table is for hosts that want the
// standard translation to the interpreter's sixteen keys.
var hexKeyByCode = map[string]byte{
	"Digit1": 0x1, "Digit2": 0x2, "Digit3": 0x3, "Digit4": 0xC,
	"KeyQ": 0x4, "KeyW": 0x5, "KeyE": 0x6, "KeyR": 0xD,
	"KeyA": 0x7, "KeyS": 0x8, "KeyD": 0x9, "KeyF": 0xE,
	"KeyZ": 0xA, "KeyX": 0x0, "KeyC": 0xB, "KeyV": 0xF,
}

// HexKey translates a platform-independent key code to a CHIP-8 keypad value.
// Codes outside the keypad report ok == false and don't matter.
func HexKey(code string) (key byte, ok bool) {
	key, ok = hexKeyByCode[code]
	return key, ok
}
