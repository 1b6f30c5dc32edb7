// Package display renders boards as plain text and drives a line-oriented
// prompt over a session.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/minesurfer/internal/game"
)

// Symbols used by the text renderer.
const (
	SymbolMine   = "X"
	SymbolFlag   = "F"
	SymbolHidden = "."
	SymbolEmpty  = " "
)

// CellSymbol returns the one-character text form of a cell.
func CellSymbol(c game.Cell) string {
	switch {
	case c.IsRevealed && c.IsMine:
		return SymbolMine
	case c.IsRevealed && c.Value == 0:
		return SymbolEmpty
	case c.IsRevealed:
		return strconv.Itoa(c.Value)
	case c.IsFlagged:
		return SymbolFlag
	default:
		return SymbolHidden
	}
}

// RenderBoard writes a grid with row and column indices:
//
//	    0 1 2
//	    -----
//	0 | . F 1
//	1 |   1 X
func RenderBoard(w io.Writer, cells [][]game.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	cols := len(cells[0])
	rowWidth := len(strconv.Itoa(len(cells) - 1))
	colWidth := len(strconv.Itoa(cols - 1))
	pad := strings.Repeat(" ", rowWidth+3)

	var b strings.Builder
	b.WriteString(pad)
	for c := range cols {
		if c > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", colWidth, c)
	}
	b.WriteByte('\n')

	b.WriteString(pad)
	b.WriteString(strings.Repeat("-", cols*(colWidth+1)-1))
	b.WriteByte('\n')

	for r, row := range cells {
		fmt.Fprintf(&b, "%*d | ", rowWidth, r)
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", colWidth, CellSymbol(cell))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
