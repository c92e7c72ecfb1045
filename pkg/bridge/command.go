package bridge

// CommandKind identifies an inbound engine command.
type CommandKind int

const (
	KindUnknown CommandKind = iota
	KindRomLoaded
	KindStop
	KindClear
	KindDrawSprite
	KindPlayBuzzer
	KindPauseBuzzer
)

func (k CommandKind) String() string {
	switch k {
	case KindRomLoaded:
		return "rom-loaded"
	case KindStop:
		return "stop"
	case KindClear:
		return "clear"
	case KindDrawSprite:
		return "draw-sprite"
	case KindPlayBuzzer:
		return "play-buzzer"
	case KindPauseBuzzer:
		return "pause-buzzer"
	}
	return "unknown"
}

// Command is a tagged union of the engine-to-core commands. Only the fields
// relevant to Kind are set. Commands are idempotent and order-sensitive only
// within themselves.
type Command struct {
	Kind CommandKind

	// Rom carries the opaque ROM bytes for KindRomLoaded.
	Rom []byte

	// X, Y and Rows carry the sprite update for KindDrawSprite.
	X    int
	Y    int
	Rows [][]bool
}

// RomLoaded builds a rom-loaded command.
func RomLoaded(rom []byte) Command {
	return Command{Kind: KindRomLoaded, Rom: rom}
}

// DrawSprite builds a draw-sprite command.
func DrawSprite(x, y int, rows [][]bool) Command {
	return Command{Kind: KindDrawSprite, X: x, Y: y, Rows: rows}
}
