package mines

import (
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Position struct {
	Row, Col int
}

type Outcome int8

const (
	Continued Outcome = iota
	HitMine
)

func (o Outcome) String() string {
	if o == HitMine {
		return "hit mine"
	}
	return "continued"
}

type Board struct {
	side      int
	mineCount int
	cells     [][]Cell
}

// New builds a side×side board with mineCount mines placed by rejection
// sampling and hints computed for every other cell.
func New(side, mineCount int, r *rand.Rand) (*Board, error) {
	if mineCount < 1 || mineCount >= side*side {
		return nil, MineCountError{MineCount: mineCount, Capacity: side * side}
	}

	b := &Board{
		side:      side,
		mineCount: mineCount,
		cells:     make([][]Cell, side),
	}
	for row := range b.cells {
		b.cells[row] = make([]Cell, side)
	}

	attempts := b.placeMines(r)
	b.placeHints()

	Log.WithFields(logrus.Fields{
		"side":      side,
		"mineCount": mineCount,
		"attempts":  attempts,
	}).Debug("board generated")

	return b, nil
}

func (b *Board) placeMines(r *rand.Rand) (attempts int) {
	placed := 0
	for placed < b.mineCount {
		attempts++
		cell := &b.cells[r.IntN(b.side)][r.IntN(b.side)]
		if cell.Type.Kind == Empty {
			cell.Type = MineType
			placed++
		}
	}
	return
}

func (b *Board) placeHints() {
	for row := range b.side {
		for col := range b.side {
			cell := &b.cells[row][col]
			if cell.IsMine() {
				continue
			}
			if n := b.adjacentMines(Position{row, col}); n > 0 {
				cell.Type = HintType(n)
			}
		}
	}
}

func (b *Board) adjacentMines(p Position) (count int) {
	for _, n := range b.Neighbors(p) {
		if b.isMineAdjacent(n) {
			count++
		}
	}
	return
}

func (b *Board) isMineAdjacent(p Position) bool {
	return b.InBounds(p) && b.cells[p.Row][p.Col].IsMine()
}

func (b *Board) Side() int      { return b.side }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(p Position) bool {
	return 0 <= p.Row && p.Row < b.side && 0 <= p.Col && p.Col < b.side
}

// Neighbors returns the in-range positions of the up to 8 cells around p.
func (b *Board) Neighbors(p Position) []Position {
	ns := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{p.Row + dr, p.Col + dc}
			if b.InBounds(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

// Cell returns a copy of the cell at p. p must be in range.
func (b *Board) Cell(p Position) Cell {
	return b.cells[p.Row][p.Col]
}

func (b *Board) Mines() []Position {
	ps := make([]Position, 0, b.mineCount)
	for row := range b.side {
		for col := range b.side {
			if b.cells[row][col].IsMine() {
				ps = append(ps, Position{row, col})
			}
		}
	}
	return ps
}

func (b *Board) AllNonMinesOpened() bool {
	for row := range b.side {
		for col := range b.side {
			c := b.cells[row][col]
			if !c.IsMine() && !c.Opened {
				return false
			}
		}
	}
	return true
}

// AllMinesMarked requires the marks to match the mine set exactly: a single
// unmarked mine or a single marked safe cell fails it.
func (b *Board) AllMinesMarked() bool {
	for row := range b.side {
		for col := range b.side {
			c := b.cells[row][col]
			if c.IsMine() != c.Marked {
				return false
			}
		}
	}
	return true
}

func (b *Board) IsFinished() bool {
	return b.AllNonMinesOpened() || b.AllMinesMarked()
}

// ToggleMark flips the mark at p, opened or not. Out of range is a no-op.
func (b *Board) ToggleMark(p Position) {
	if !b.InBounds(p) {
		return
	}
	cell := &b.cells[p.Row][p.Col]
	cell.Marked = !cell.Marked
}

// Reveal opens p and flood fills through empty cells. Opening a mine stops
// the fill and returns HitMine. Out of range or already opened cells are
// no-ops.
func (b *Board) Reveal(p Position) Outcome {
	todo := []Position{p}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if !b.InBounds(p) {
			continue
		}
		cell := &b.cells[p.Row][p.Col]
		if cell.Opened {
			continue
		}
		cell.Opened = true

		switch cell.Type.Kind {
		case Mine:
			return HitMine
		case Empty:
			todo = append(todo, b.Neighbors(p)...)
		}
	}
	return Continued
}

func (b *Board) Apply(cmd Command, p Position) Outcome {
	switch cmd {
	case Reveal:
		return b.Reveal(p)
	case ToggleMark:
		b.ToggleMark(p)
	}
	return Continued
}

const DefaultFieldSize = 81

// SideOf returns the side of the largest square grid that fits fieldSize cells.
func SideOf(fieldSize int) int {
	if fieldSize <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(fieldSize)))
}
