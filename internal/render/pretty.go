package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
const (
	colorTealBright  = lipgloss.Color("#2CD7C7")
	colorTealPrimary = lipgloss.Color("#20B9B4")
	colorTealDeep    = lipgloss.Color("#16858E")
	colorSlate       = lipgloss.Color("#2C4A54")
	colorWarning     = lipgloss.Color("#F4D03F")
	colorError       = lipgloss.Color("#E74C3C")
)

// boxWidth is the outer width of a candidate card, border included.
const boxWidth = 80

// Pretty renders candidates as bordered cards for terminals. Colours are
// dropped automatically when the writer is not a terminal.
type Pretty struct {
	Width int
}

// NewPretty returns a Pretty renderer with the default card width.
func NewPretty() Pretty { return Pretty{Width: boxWidth} }

type prettyStyles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	failed  lipgloss.Style
	box     lipgloss.Style
}

func newPrettyStyles(r *lipgloss.Renderer, width int) prettyStyles {
	return prettyStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorTealBright),
		name:    r.NewStyle().Bold(true).Foreground(colorTealPrimary),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorSlate),
		warning: r.NewStyle().Foreground(colorWarning),
		failed:  r.NewStyle().Foreground(colorError),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTealDeep).
			Padding(0, 1).
			Width(width - 2),
	}
}

// Render implements Renderer.
func (p Pretty) Render(w io.Writer, rep Report) error {
	width := p.Width
	if width <= 0 {
		width = boxWidth
	}
	st := newPrettyStyles(lipgloss.NewRenderer(w), width)

	var b strings.Builder
	if rep.Result.Empty() {
		b.WriteString(st.warning.Render(NoCandidates))
		b.WriteString("\n")
	} else {
		b.WriteString(st.title.Render(fmt.Sprintf("Candidate algorithms (%d)", len(rep.Result.Candidates))))
		b.WriteString("\n")
		for i, alg := range rep.Result.Candidates {
			card := strings.Join([]string{
				st.name.Render(fmt.Sprintf("%d. %s", i+1, alg.Name)),
				"",
				st.label.Render("Time:  ") + alg.TimeComplexity,
				st.label.Render("Space: ") + alg.SpaceComplexity,
				"",
				st.muted.Render(alg.Description),
			}, "\n")
			b.WriteString(st.box.Render(card))
			b.WriteString("\n")
		}
	}

	if len(rep.Eliminated) > 0 {
		b.WriteString("\n")
		b.WriteString(st.title.Render("Eliminated"))
		b.WriteString("\n")
		for _, v := range rep.Eliminated {
			b.WriteString(st.failed.Render("✗ "+v.Algorithm.Name) + st.muted.Render(": "+joinReasons(v.Reasons)))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
