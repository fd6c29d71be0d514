package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/scoring"
	"github.com/abhisek/disha/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	if s.attempt == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take the quiz first!")
	}
	if s.view == viewDashboard {
		return s.renderDashboard(width)
	}
	return s.renderSummary(width)
}

func (s *ResultsScreen) renderSummary(width int) string {
	res := s.attempt.Results

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s, here's your direction", res.UserProfile.Name)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Top tracks.
	s.section(&b, width, divider, "Top matches")
	for i, tt := range res.TopTracks {
		info := tt.Track.Info()
		line := fmt.Sprintf("  %d. %s %-28s %s", i+1, info.Icon, info.Name, meterBar(tt.Percentage, 100))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = style.Foreground(theme.Secondary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Meters and confidence.
	s.section(&b, width, divider, "How you work")
	meters := []struct {
		label string
		value int
	}{
		{"Routine tolerance", res.MeterScores.RoutineTolerance},
		{"Stress tolerance", res.MeterScores.StressTolerance},
		{"Clarity", res.MeterScores.Clarity},
		{"Confidence", res.Confidence},
	}
	for _, m := range meters {
		line := fmt.Sprintf("  %-20s %s %2d/10", m.label, meterBar(m.value, 10), m.value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Risk flags.
	if len(res.RiskFlags) > 0 {
		s.section(&b, width, divider, "Watch out for")
		for _, f := range res.RiskFlags {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Caution.Render("  ⚠ "+string(f))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Recommendations.
	s.section(&b, width, divider, "Recommendations")
	if res.StreamRecommendation != scoring.StreamRecNotApplicable {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(
				"  Stream for 11th: ")+theme.Positive.Render(string(res.StreamRecommendation))))
		b.WriteString("\n")
	}
	if res.JEERecommendation != scoring.JEENotApplicable {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("  JEE prep: ")+
				jeeStyle(res.JEERecommendation).Render(string(res.JEERecommendation))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Next steps.
	s.section(&b, width, divider, "Next steps")
	for _, step := range res.NextSteps {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("  "+step)))
		b.WriteString("\n")
	}

	// Status / error line.
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	} else if s.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).
			Render(s.statusMsg))
	}

	return b.String()
}

func (s *ResultsScreen) renderDashboard(width int) string {
	paths := s.attempt.Results.CareerPaths

	var b strings.Builder
	b.WriteString("\n")

	for i, p := range paths {
		info := p.Track.Info()
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		relevance := ""
		if !p.IsRelevant {
			relevance = "  (not at your stage)"
		}

		line := fmt.Sprintf("%s%s %-32s %3d%%%s", prefix, info.Icon, p.Name, p.Percentage, relevance)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !p.IsRelevant {
			style = style.Foreground(theme.TextDim)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	// Detail card for the selected path.
	if s.selected >= 0 && s.selected < len(paths) {
		p := paths[s.selected]
		b.WriteString("\n")

		var d strings.Builder
		d.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Name))
		d.WriteString("\n")
		d.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Description))
		d.WriteString("\n")
		d.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render("Careers: " + strings.Join(p.Careers, ", ")))
		if len(p.Exams) > 0 {
			d.WriteString("\n")
			d.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
				Render("Exams: " + strings.Join(p.Exams, ", ")))
		}
		if len(p.Colleges) > 0 {
			d.WriteString("\n")
			d.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
				Render("Colleges: " + strings.Join(p.Colleges, ", ")))
		}

		card := theme.Card.Width(min(width-8, 70)).Render(d.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	}

	return b.String()
}

// section writes a centered labelled divider.
func (s *ResultsScreen) section(b *strings.Builder, width int, divider, label string) {
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")
}

// meterBar renders a small fixed-width bar for a value out of max.
func meterBar(value, max int) string {
	const cells = 10
	filled := 0
	if max > 0 {
		filled = value * cells / max
	}
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))
}

func jeeStyle(rec scoring.JEERecommendation) lipgloss.Style {
	switch rec {
	case scoring.JEEGo:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case scoring.JEEMaybe:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	case scoring.JEENo:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
