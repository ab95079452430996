package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fthomas/qucosi/gate"
	"github.com/fthomas/qucosi/qubit"
)

// Layout constants.
const (
	barWidth  = 24 // width of a probability bar in characters
	ampFormat = "%+.4f%+.4fi"
)

// Lipgloss styles used by the demo output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	ketStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	ampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	verdictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bb9af7"))
)

// section renders a titled, bordered block.
func section(title, body string) string {
	return titleStyle.Render(title) + "\n" + sectionStyle.Render(body) + "\n"
}

// renderQubit lists the nonzero amplitudes of q with probability bars.
func renderQubit(q *qubit.Qubit) string {
	n := q.Wires()
	probs := q.Probabilities()

	var b strings.Builder
	for i, p := range probs {
		if p < 1e-12 {
			continue
		}
		c := q.At(i)
		bar := strings.Repeat("█", int(p*barWidth+0.5))
		fmt.Fprintf(&b, "%s %s %s %s\n",
			ketStyle.Render(fmt.Sprintf("|%0*b⟩", n, i)),
			ampStyle.Render(fmt.Sprintf(ampFormat, real(c), imag(c))),
			barStyle.Render(bar),
			dimStyle.Render(fmt.Sprintf("%5.1f%%", p*100)),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderGate prints the matrix of g with real-only entries compacted.
func renderGate(g gate.Gate) string {
	r, c := g.Dims()
	var b strings.Builder
	for i := 0; i < r; i++ {
		cells := make([]string, c)
		for j := 0; j < c; j++ {
			v := g.At(i, j)
			if imag(v) == 0 {
				cells[j] = fmt.Sprintf("%6.3f", real(v))
			} else {
				cells[j] = fmt.Sprintf("%6.3f%+.3fi", real(v), imag(v))
			}
		}
		b.WriteString(strings.Join(cells, " "))
		if i < r-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderFrequencies prints empirical outcome frequencies with bars.
func renderFrequencies(labels []string, counts []int, total int) string {
	var b strings.Builder
	for i, label := range labels {
		p := float64(counts[i]) / float64(total)
		bar := strings.Repeat("█", int(p*barWidth+0.5))
		fmt.Fprintf(&b, "%s %s %s\n",
			ketStyle.Render(label),
			barStyle.Render(bar),
			dimStyle.Render(fmt.Sprintf("%d/%d = %.4f", counts[i], total, p)),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}
