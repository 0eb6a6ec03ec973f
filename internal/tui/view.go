package tui

import (
	"fmt"
	"math"
	"strings"

	"market-pulse/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

const sparkWidth = 24

func (m Model) View() string {
	header := m.viewHeader()
	if m.dashboard == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "  "+m.spinner.View()+" Loading market data...")
	}
	d := m.dashboard

	left := lipgloss.JoinVertical(lipgloss.Left,
		section("Watchlist", viewWatchlist(d.Watchlist)),
		section("Macro", viewMacro(d.Macro, d.Errors)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		section("Fear & Greed", viewFearGreed(d.FearGreed)),
		section("AAII Sentiment", viewSentiment(d.Sentiment)),
		section("FedWatch", viewFed(d.Fed)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.width < lipgloss.Width(body) {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewStatusBar())
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Market Pulse")
	if m.username != "" {
		title += dimStyle.Render("  " + m.username)
	}
	return title
}

func (m Model) viewStatusBar() string {
	left := " updated " + m.updatedAt.Format("15:04:05")
	if m.loading {
		left = " " + m.spinner.View() + " refreshing"
	}
	right := " r refresh  q quit "

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func section(title, body string) string {
	return sectionStyle.Render(sectionTitleStyle.Render(title) + "\n" + body)
}

func viewWatchlist(quotes []domain.Quote) string {
	rows := make([]string, 0, len(quotes))
	for _, q := range quotes {
		name := labelStyle.Render(fmt.Sprintf("%-14s", q.Name))
		if q.Price == 0 {
			rows = append(rows, name+dimStyle.Render("unavailable"))
			continue
		}
		rows = append(rows, fmt.Sprintf("%s%10.2f %s %s %s %s",
			name,
			q.Price,
			formatChange(q.ChangePercent1D),
			formatChange(q.ChangePercent5D),
			formatChange(q.ChangePercent20D),
			changeStyle(q.ChangePercent20D).Render(Sparkline(q.Sparkline, sparkWidth)),
		))
	}
	return strings.Join(rows, "\n")
}

func formatChange(v float64) string {
	return changeStyle(v).Render(fmt.Sprintf("%+7.2f%%", v))
}

func viewMacro(series []domain.MacroSeries, errs []string) string {
	rows := make([]string, 0, len(series)+len(errs))
	for _, s := range series {
		latest := "n/a"
		values := make([]float64, len(s.Data))
		for i, o := range s.Data {
			values[i] = o.Value
		}
		if n := len(s.Data); n > 0 && !math.IsNaN(s.Data[n-1].Value) {
			latest = fmt.Sprintf("%.2f%s", s.Data[n-1].Value, s.Unit)
		}
		rows = append(rows, fmt.Sprintf("%s %10s %s",
			labelStyle.Render(fmt.Sprintf("%-24s", s.Label)), latest, dimStyle.Render(Sparkline(values, sparkWidth))))
	}
	for _, e := range errs {
		rows = append(rows, errorStyle.Render(e))
	}
	if len(rows) == 0 {
		return dimStyle.Render("no series")
	}
	return strings.Join(rows, "\n")
}

func viewFearGreed(fg domain.FearGreed) string {
	color := lipgloss.Color(domain.RatingColor(fg.Rating))
	score := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", fg.Score))
	return fmt.Sprintf("%s %s\n%s", score, fg.Rating, gauge(fg.Score, 30, color)) +
		"\n" + dimStyle.Render(domain.GaugeBand(fg.Score))
}

// gauge draws a horizontal bar for a 0-100 score.
func gauge(score, width int, color lipgloss.Color) string {
	score = min(max(score, 0), 100)
	filled := int(math.Floor(float64(score)*float64(width)/100 + 0.5))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

func viewSentiment(s domain.Sentiment) string {
	rows := []string{
		fmt.Sprintf("Bullish %3d%% %s", s.Bullish, gauge(s.Bullish, 20, colorUp)),
		fmt.Sprintf("Neutral %3d%% %s", s.Neutral, gauge(s.Neutral, 20, lipgloss.Color(domain.RatingColor("neutral")))),
		fmt.Sprintf("Bearish %3d%% %s", s.Bearish, gauge(s.Bearish, 20, colorDown)),
		fmt.Sprintf("Spread  %+d", s.Spread),
		dimStyle.Render(s.UpdatedNote),
	}
	return strings.Join(rows, "\n")
}

func viewFed(o domain.FedOutlook) string {
	if len(o.Meetings) == 0 {
		return dimStyle.Render("no upcoming meetings")
	}
	rows := []string{dimStyle.Render(fmt.Sprintf("%-14s %5s %5s %5s", "Meeting", "Cut", "Hold", "Hike"))}
	for _, mt := range o.Meetings {
		rows = append(rows, fmt.Sprintf("%-14s %4d%% %4d%% %4d%%", mt.Date, mt.Cut25, mt.Hold, mt.Hike25))
	}
	return strings.Join(rows, "\n")
}
