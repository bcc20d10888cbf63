package mines

import "strconv"

type CellKind int8

const (
	Empty CellKind = iota
	Mine
	Hint
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// CellType is the terrain of a cell. Count is 1-8 for Hint and 0 otherwise.
type CellType struct {
	Kind  CellKind
	Count int
}

var (
	EmptyType = CellType{Kind: Empty}
	MineType  = CellType{Kind: Mine}
)

func HintType(count int) CellType {
	return CellType{Kind: Hint, Count: count}
}

type Cell struct {
	Type   CellType
	Opened bool
	Marked bool
}

func (c Cell) IsMine() bool {
	return c.Type.Kind == Mine
}

// Glyph renders the cell. Opened wins over marked.
func (c Cell) Glyph() string {
	if !c.Opened {
		if c.Marked {
			return "*"
		}
		return "."
	}
	switch c.Type.Kind {
	case Mine:
		return "X"
	case Hint:
		return strconv.Itoa(c.Type.Count)
	default:
		return "/"
	}
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	return c.Glyph()
}
