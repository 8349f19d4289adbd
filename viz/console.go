package viz

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/vlseq"
	"golang.org/x/term"
)

// Palette assigns colors to storage sketch roles.
type Palette struct {
	Inline *color.Color // header and cells while the inline store is authoritative
	Heap   *color.Color // header and cells while the heap buffer is authoritative
	Vacant *color.Color // vacant capacity slots
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Inline: color.New(color.FgGreen),
		Heap:   color.New(color.FgRed),
		Vacant: color.New(color.FgHiBlack),
	}
}

// Console sketches sequence storage layouts to a console.
type Console struct {
	colors    *Palette
	linewidth int
}

// NewConsole creates a console sketcher. If colors is nil, a default palette
// is used. The line width is taken from the terminal, if stdout is one.
func NewConsole(colors *Palette) *Console {
	con := &Console{
		colors:    colors,
		linewidth: widthFromTerminal(),
	}
	if con.colors == nil {
		con.colors = makeDefaultPalette()
	}
	T().P("viz", "console").Infof("setting sketch line length to %d", con.linewidth)
	return con
}

// widthFromTerminal checks whether stdout is a terminal, and if so reads the
// terminal's width to bound sketch lines.
func widthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil || w < 10 {
		return 65
	}
	if w > 75 {
		return w - 10
	}
	return w
}

// Sketch writes a one-line rendering of the sequence's storage layout: the
// storage mode, size and capacity, followed by a cell per capacity slot. Live
// cells show the element (truncated), vacant capacity shows a dot.
//
// Sketch borrows the sequence's live view and must not run concurrently with
// mutations.
func Sketch[T comparable](w io.Writer, seq *vlseq.Seq[T], con *Console) error {
	if seq == nil {
		return fmt.Errorf("viz: cannot sketch nil sequence")
	}
	if con == nil {
		con = NewConsole(nil)
	}
	mode := con.colors.Heap
	label := "heap  "
	if seq.IsInline() {
		mode = con.colors.Inline
		label = "inline"
	}
	if _, err := mode.Fprintf(w, "%s size=%d cap=%d ", label, seq.Len(), seq.Cap()); err != nil {
		return err
	}
	written := len(label) + 16
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := 0; i < seq.Cap(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, "|"); err != nil {
				return err
			}
		}
		var cell string
		c := con.colors.Vacant
		if i < seq.Len() {
			cell = cellString(seq.Get(i))
			c = mode
		} else {
			cell = "."
		}
		if written+len(cell)+2 > con.linewidth {
			if _, err := io.WriteString(w, "…"); err != nil {
				return err
			}
			break
		}
		if _, err := c.Fprint(w, cell); err != nil {
			return err
		}
		written += len(cell) + 1
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// cellString renders an element into a cell of bounded width.
func cellString[T any](v T) string {
	cell := fmt.Sprint(v)
	if len(cell) > 8 {
		cell = cell[:7] + "…"
	}
	return cell
}
