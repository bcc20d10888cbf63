package mines

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (b *Board) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder

	separator := "—│" + strings.Repeat("—", b.side) + "│\n"

	fmt.Fprint(&sb, " │")
	for col := range b.side {
		fmt.Fprint(&sb, strconv.Itoa((col+1)%10))
	}
	fmt.Fprint(&sb, "│\n")
	fmt.Fprint(&sb, separator)

	for row := range b.side {
		fmt.Fprintf(&sb, "%d│", row+1)
		for col := range b.side {
			fmt.Fprint(&sb, b.cells[row][col].Glyph())
		}
		fmt.Fprint(&sb, "│\n")
	}
	fmt.Fprint(&sb, separator)

	return sb.String()
}
