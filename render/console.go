package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"keyhint/shortcuts"
)

// Console paints hint rows as text blocks on a terminal. It stands in for
// the graphical overlay in builds without the gui tag.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	keyStyle    lipgloss.Style
	sepStyle    lipgloss.Style
	actionStyle lipgloss.Style
	frameStyle  lipgloss.Style
}

// NewConsole renders to out. Colors are used only when out is a terminal.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	if !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out: out,
		keyStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("25")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 1),
		sepStyle:    r.NewStyle().Bold(true).Padding(1, 0),
		actionStyle: r.NewStyle().Foreground(lipgloss.Color("252")).Padding(1, 0, 0, 2),
		frameStyle: r.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(lipgloss.Color("240")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) Render(entries []shortcuts.Entry, origin Point) (Surface, error) {
	rows := Layout(entries, origin)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, c.row(row))
	}
	body := strings.Join(lines, "\n")
	if len(rows) == 0 {
		body = "(no shortcuts)"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.out, c.frameStyle.Render(body)); err != nil {
		return nil, fmt.Errorf("writing overlay: %w", err)
	}
	return OnceSurface(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintln(c.out, "(overlay hidden)")
	}), nil
}

func (c *Console) row(row Row) string {
	blocks := make([]string, 0, len(row.Glyphs)+1)
	for _, g := range row.Glyphs {
		if g.Separator {
			blocks = append(blocks, c.sepStyle.Render(" "+g.Label+" "))
			continue
		}
		blocks = append(blocks, c.keyStyle.Render(g.Label))
	}
	blocks = append(blocks, c.actionStyle.Render(row.Action))
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
