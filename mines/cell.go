package mines

import (
	"encoding/json"
	"strconv"
)

type DisplayedCell int8

const (
	Unknown DisplayedCell = -2
	Bomb    DisplayedCell = -1
	Empty   DisplayedCell = 0
	// 1-8 for revealed cells with that many mined neighbours
)

func (c DisplayedCell) Revealed() bool {
	return c != Unknown
}

// Count reports the number of mined neighbours shown by a revealed,
// non-mine cell.
func (c DisplayedCell) Count() (int, bool) {
	if c < Empty || c > 8 {
		return 0, false
	}
	return int(c), true
}

func (c DisplayedCell) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case Bomb:
		return "bomb"
	case Empty:
		return "empty"
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// symbol is the single-character form used by [Board.String].
func (c DisplayedCell) symbol() string {
	switch c {
	case Unknown:
		return "-"
	case Bomb:
		return "*"
	case Empty:
		return "."
	default:
		return strconv.Itoa(int(c))
	}
}

// DisplayedCell implements [json.Marshaler]. Counts are encoded as numbers,
// everything else as its name.
func (c DisplayedCell) MarshalJSON() ([]byte, error) {
	if n, ok := c.Count(); ok && n > 0 {
		return json.Marshal(n)
	}
	return json.Marshal(c.String())
}

type Result int8

const (
	Safe Result = iota
	Exploded
	Won
)

func (r Result) String() string {
	switch r {
	case Safe:
		return "safe"
	case Exploded:
		return "bomb"
	case Won:
		return "won"
	default:
		return "!"
	}
}

// Entry is one cell of the exported board.
type Entry struct {
	Row    int           `json:"row"`
	Column int           `json:"column"`
	Value  DisplayedCell `json:"value"`
}
