package components

import (
	"fmt"
	"strings"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/ui/theme"
	"github.com/charmbracelet/lipgloss"
)

// PlayedCard is one seat's contribution to the trick in progress.
type PlayedCard struct {
	Player int
	Card   cards.Card
}

// TableView renders the four-seat Hearts table: each player's remaining
// hand size, the cards on the table for the current trick, and the running
// score line.
type TableView struct {
	Width         int
	Height        int
	PlayerNames   []string
	HandCounts    []int
	RoundPoints   []int // points taken so far this round, per seat
	Scores        []int // cumulative match scores entering this round
	CurrentTrick  []PlayedCard
	CurrentPlayer int
	HeartsBroken  bool
	RoundNumber   int
	LastWinner    int // seat that won the previous trick, -1 if none yet
}

// NewTableView creates a table view with the conventional four-seat layout.
func NewTableView() *TableView {
	return &TableView{
		Width:       60,
		Height:      20,
		PlayerNames: []string{"You", "West", "North", "East"},
		HandCounts:  []int{13, 13, 13, 13},
		RoundPoints: []int{0, 0, 0, 0},
		Scores:      []int{0, 0, 0, 0},
		LastWinner:  -1,
	}
}

// Render returns the visual representation of the table.
func (t *TableView) Render() string {
	var sb strings.Builder

	sb.WriteString(t.renderTopPlayer())
	sb.WriteString("\n")
	sb.WriteString(t.renderMiddle())
	sb.WriteString("\n")
	sb.WriteString(t.renderStatusLine())
	sb.WriteString("\n")

	return sb.String()
}

// RenderPointsTable renders a small 1x2 table of points taken this round.
func RenderPointsTable(points int) string {
	bc := lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	numStyle := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	return bc.Render("┌────────┬───┐") + "\n" +
		bc.Render("│") + " Points " + bc.Render("│") + numStyle.Render(fmt.Sprintf("%d", points)) + bc.Render("│") + "\n" +
		bc.Render("└────────┴───┘")
}

func (t *TableView) playerAt(idx int) (string, int, int) {
	return t.PlayerNames[idx], t.HandCounts[idx], t.RoundPoints[idx]
}

func (t *TableView) renderTopPlayer() string {
	name, cardCount, points := t.playerAt(2)

	indicator := ""
	if t.CurrentPlayer == 2 {
		indicator = t.renderTurnIndicator()
	}
	winnerBadge := ""
	if t.LastWinner == 2 {
		winnerBadge = " " + theme.Current.WinnerHighlight.Render("WON TRICK")
	}

	header := fmt.Sprintf("%s%s%s", name, indicator, winnerBadge)
	header = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, header)

	pointsTable := RenderPointsTable(points)
	pointsTable = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, pointsTable)

	cardDisplay := RenderFaceDown(min(cardCount, 5))
	cardDisplay = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, cardDisplay)

	content := header + "\n" + pointsTable + "\n" + cardDisplay

	return lipgloss.NewStyle().Height(10).Render(content)
}

func (t *TableView) renderMiddle() string {
	leftPlayer := t.renderSidePlayer(1, true)
	trickArea := t.renderTrickArea()
	rightPlayer := t.renderSidePlayer(3, false)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		leftPlayer,
		"  ",
		trickArea,
		"  ",
		rightPlayer,
	)
}

func (t *TableView) renderSidePlayer(playerIdx int, isLeft bool) string {
	name, cardCount, points := t.playerAt(playerIdx)

	indicator := ""
	if t.CurrentPlayer == playerIdx {
		indicator = t.renderTurnIndicator()
	}
	winnerBadge := ""
	if t.LastWinner == playerIdx {
		winnerBadge = "\n" + theme.Current.WinnerHighlight.Render("WON TRICK")
	}

	header := fmt.Sprintf("%s%s%s", name, indicator, winnerBadge)
	pointsTable := RenderPointsTable(points)

	cardDisplay := RenderFaceDownVertical(min(cardCount, 5), isLeft)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(pointsTable)
	sb.WriteString("\n")
	sb.WriteString(cardDisplay)

	style := lipgloss.NewStyle().Width(14).Height(16)
	if isLeft {
		style = style.Align(lipgloss.Right)
	} else {
		style = style.Align(lipgloss.Left)
	}

	return style.Render(sb.String())
}

// renderTrickArea renders the center area with the cards played so far in
// the current trick, in a diamond layout around the table.
func (t *TableView) renderTrickArea() string {
	cardWidth := 7
	cardHeight := 5
	totalWidth := cardWidth*3 + 4

	renderCard := func(playerIdx int) string {
		for _, pc := range t.CurrentTrick {
			if pc.Player == playerIdx {
				cv := NewCardView(pc.Card)
				return cv.Render()
			}
		}
		return lipgloss.NewStyle().Width(cardWidth).Height(cardHeight).Render("")
	}

	topCard := renderCard(2)
	leftCard := renderCard(1)
	rightCard := renderCard(3)
	bottomCard := renderCard(0)

	topRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.PlaceHorizontal(totalWidth, lipgloss.Center, topCard),
	)
	middleRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			leftCard,
			lipgloss.NewStyle().Width(cardWidth+4).Render(""),
			rightCard,
		),
	)
	bottomRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.PlaceHorizontal(totalWidth, lipgloss.Center, bottomCard),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, topRow, middleRow, bottomRow)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3498DB")).
		Padding(0, 1)

	return style.Render(content)
}

// renderStatusLine shows the round number, hearts-broken state, and match
// scores.
func (t *TableView) renderStatusLine() string {
	var parts []string

	if t.RoundNumber > 0 {
		roundStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true)
		parts = append(parts, roundStyle.Render(fmt.Sprintf("Round %d", t.RoundNumber)))
	}

	heartsStyle := theme.Current.Muted
	heartsText := "Hearts: safe to lead"
	if t.HeartsBroken {
		heartsStyle = theme.Current.CardRed
		heartsText = "Hearts: broken"
	}
	parts = append(parts, heartsStyle.Render(heartsText))

	var scoreParts []string
	for i, s := range t.Scores {
		if i < len(t.PlayerNames) {
			scoreParts = append(scoreParts, fmt.Sprintf("%s %d", t.PlayerNames[i], s))
		}
	}
	if len(scoreParts) > 0 {
		parts = append(parts, theme.Current.Secondary.Render(strings.Join(scoreParts, " · ")))
	}

	return strings.Join(parts, "  •  ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (t *TableView) renderTurnIndicator() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E74C3C")).
		Bold(true)
	return " " + style.Render("◀")
}

// RenderScoreboard renders a standalone final-match scoreboard, used by the
// CLI `play` subcommand once a match ends.
func RenderScoreboard(names []string, scores []int, pointLimit int) string {
	header := theme.Current.Title.Render("Final Score")

	bc := lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	nameStyle := lipgloss.NewStyle().Width(16)
	scoreStyle := theme.Current.Secondary.Bold(true).Width(6).Align(lipgloss.Right)

	var rows []string
	lowest := scores[0]
	for _, s := range scores {
		if s < lowest {
			lowest = s
		}
	}
	for i, name := range names {
		style := scoreStyle
		label := nameStyle.Render(name)
		if scores[i] == lowest {
			style = style.Foreground(lipgloss.Color("#27AE60"))
			label = theme.Current.WinnerHighlight.Render(name)
		}
		rows = append(rows, bc.Render("│ ")+label+bc.Render(" │ ")+style.Render(fmt.Sprintf("%d", scores[i]))+bc.Render(" │"))
	}

	body := strings.Join(rows, "\n")
	footer := theme.Current.Muted.Render(fmt.Sprintf("point limit: %d", pointLimit))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
