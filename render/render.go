package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hungarian/kuhn"
)

// Options configures matrix rendering.
//
// Assigned – style applied to assigned cells. Whether it emits ANSI codes
// depends on the terminal profile lipgloss detects; assigned cells are
// additionally tagged with a trailing caret so the assignment stays
// visible in plain-text captures.
type Options struct {
	Assigned lipgloss.Style
}

// DefaultOptions returns the default rendering style: bold green for
// assigned cells.
func DefaultOptions() Options {
	return Options{
		Assigned: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

// Matrix renders t with the cells named by pairs highlighted and tagged
// with a caret. pairs may be nil to render the bare table. The inputs are
// not mutated.
//
// Complexity: O(n·m) time and output size.
func Matrix(t [][]kuhn.Cell, pairs []kuhn.Pos, opts Options) string {
	if len(t) == 0 {
		return ""
	}

	assigned := make(map[kuhn.Pos]struct{}, len(pairs))
	for _, p := range pairs {
		assigned[p] = struct{}{}
	}

	var b strings.Builder
	for i := range t {
		b.WriteString("    ")
		for j, v := range t[i] {
			cell := fmt.Sprintf("%5d", int64(v))
			if _, ok := assigned[kuhn.Pos{Row: i, Col: j}]; ok {
				b.WriteString(opts.Assigned.Render(cell + "^"))
			} else {
				b.WriteString(cell + " ")
			}
			b.WriteString("   ")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
