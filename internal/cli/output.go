package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Board:
		o.printBoard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Cell response type (matches API)
type Cell struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	Type     string  `json:"type,omitempty"`
	Letter   *string `json:"letter"`
	Value    *int    `json:"value,omitempty"`
	Selected bool    `json:"selected,omitempty"`
	Proposed bool    `json:"proposed,omitempty"`
}

// Overlay response type
type Overlay struct {
	BoardOrigin []int `json:"board_origin"`
	RackOrigin  []int `json:"rack_origin"`
}

// Board response type
type Board struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Cells    []Cell  `json:"cells"`
	Rack     []Cell  `json:"rack"`
	Selected *string `json:"selected"`
	Overlay  Overlay `json:"overlay"`
	Score    *int    `json:"score"`
	Busy     bool    `json:"busy"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// emptyGlyphs marks empty premium squares in the text grid
var emptyGlyphs = map[string]string{
	"start":         "*",
	"double-letter": "'",
	"triple-letter": `"`,
	"double-word":   "-",
	"triple-word":   "=",
}

// cellText renders a cell in three columns: [A] for a proposed letter,
// <A> for the selected cell
func cellText(c Cell) string {
	glyph := "."
	if c.Letter != nil {
		glyph = *c.Letter
	} else if g, ok := emptyGlyphs[c.Type]; ok {
		glyph = g
	}
	switch {
	case c.Proposed:
		return "[" + glyph + "]"
	case c.Selected:
		return "<" + glyph + ">"
	default:
		return " " + glyph + " "
	}
}

func (o *Output) printBoard(b Board) {
	if b.Width == 0 || len(b.Cells) != b.Width*b.Height {
		return
	}

	fmt.Fprint(o.w, "    ")
	for col := 0; col < b.Width; col++ {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", b.Width) + "+"
	fmt.Fprintln(o.w, border)
	for row := 0; row < b.Height; row++ {
		fmt.Fprintf(o.w, "%2d |", row)
		for col := 0; col < b.Width; col++ {
			fmt.Fprint(o.w, cellText(b.Cells[row*b.Width+col]))
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)

	rack := make([]string, len(b.Rack))
	for i, c := range b.Rack {
		rack[i] = cellText(c)
	}
	fmt.Fprintf(o.w, "Rack: %s\n", strings.Join(rack, ""))

	if b.Score != nil {
		fmt.Fprintf(o.w, "Score: %d\n", *b.Score)
	}
	if b.Selected != nil {
		fmt.Fprintf(o.w, "Selected: %s\n", *b.Selected)
	}
	if b.Busy {
		fmt.Fprintln(o.w, "Waiting for best move...")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
