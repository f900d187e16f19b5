package app

import (
	"fmt"

	"github.com/asselin/hearts/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab represents a section in the quick reference.
type Tab int

const (
	TabBasicRules Tab = iota
	TabScoring
	TabLegality
	TabVariants
	TabCount // sentinel for counting tabs
)

func (t Tab) String() string {
	switch t {
	case TabBasicRules:
		return "Basic Rules"
	case TabScoring:
		return "Scoring"
	case TabLegality:
		return "Legality"
	case TabVariants:
		return "Variants"
	default:
		return ""
	}
}

// QuickReference shows the rules quick reference.
type QuickReference struct {
	activeTab Tab
	width     int
	height    int
}

// NewQuickReference creates a new quick reference screen.
func NewQuickReference() *QuickReference {
	return &QuickReference{}
}

// Init implements tea.Model.
func (q *QuickReference) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (q *QuickReference) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		q.width = msg.Width
		q.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return q, Navigate(ScreenMainMenu)
		case "left", "h":
			if q.activeTab > 0 {
				q.activeTab--
			} else {
				q.activeTab = TabCount - 1
			}
		case "right", "l":
			if q.activeTab < TabCount-1 {
				q.activeTab++
			} else {
				q.activeTab = 0
			}
		case "1":
			q.activeTab = TabBasicRules
		case "2":
			q.activeTab = TabScoring
		case "3":
			q.activeTab = TabLegality
		case "4":
			q.activeTab = TabVariants
		}
	}

	return q, nil
}

// View implements tea.Model.
func (q *QuickReference) View() string {
	width := q.width
	height := q.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 30
	}

	title := theme.Current.Title.Render("Hearts Quick Reference")
	tabBar := q.renderTabBar()
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, tabBar)
	headerHeight := lipgloss.Height(header)

	help := theme.Current.Help.Render("←/→: Switch tabs • 1-4: Jump to tab • Esc: Back")
	footer := lipgloss.PlaceHorizontal(width, lipgloss.Center, help)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight - 2

	var panelContent string
	switch q.activeTab {
	case TabBasicRules:
		panelContent = q.renderBasicRulesPanel()
	case TabScoring:
		panelContent = q.renderScoringPanel()
	case TabLegality:
		panelContent = q.renderLegalityPanel()
	case TabVariants:
		panelContent = q.renderVariantsPanel()
	}

	contentBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3498DB")).
		Padding(0, 1).
		Render(panelContent)

	centeredContent := lipgloss.Place(width, contentHeight, lipgloss.Center, lipgloss.Center, contentBox)

	return header + "\n" + centeredContent + "\n" + footer
}

// renderTabBar renders the tab navigation bar.
func (q *QuickReference) renderTabBar() string {
	var tabs []string

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#3498DB")).
		Bold(true).
		Padding(0, 2)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7F8C8D")).
		Padding(0, 2)

	for i := Tab(0); i < TabCount; i++ {
		label := fmt.Sprintf("%d. %s", i+1, i.String())
		if i == q.activeTab {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (q *QuickReference) renderBasicRulesPanel() string {
	header := theme.Current.Primary.Bold(true).Render("Basic Rules")

	rulesLeft := `• 4 players, no teams
• Standard 52-card deck
• 13 cards dealt each
• 3 cards passed before play`

	rulesRight := `• Must follow suit if able
• No points on the first trick
• Hearts can't be led until broken
• Lowest total score wins the match`

	leftCol := lipgloss.NewStyle().Width(28).Render(rulesLeft)
	rightCol := lipgloss.NewStyle().Width(32).Render(rulesRight)
	rulesRow := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	passHeader := theme.Current.Secondary.Bold(true).Render("The Pass")
	passInfo := "Left, then right, then across, then hold — repeating every four deals."

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		rulesRow,
		"",
		passHeader,
		passInfo,
	)
}

func (q *QuickReference) renderScoringPanel() string {
	header := theme.Current.Primary.Bold(true).Render("Scoring")

	bc := lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	headerStyle := theme.Current.Secondary.Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF8E7"))
	pointsStyle := theme.Current.Warning.Bold(true)

	table := bc.Render("┌──────────────────────────┬────────┐") + "\n" +
		bc.Render("│") + headerStyle.Render(" Card                     ") + bc.Render("│") + headerStyle.Render(" Points ") + bc.Render("│") + "\n" +
		bc.Render("├──────────────────────────┼────────┤") + "\n" +
		bc.Render("│") + cellStyle.Render(" Each heart               ") + bc.Render("│") + pointsStyle.Render("   1    ") + bc.Render("│") + "\n" +
		bc.Render("│") + cellStyle.Render(" Queen of spades          ") + bc.Render("│") + pointsStyle.Render("   13   ") + bc.Render("│") + "\n" +
		bc.Render("│") + cellStyle.Render(" Everything else          ") + bc.Render("│") + pointsStyle.Render("   0    ") + bc.Render("│") + "\n" +
		bc.Render("└──────────────────────────┴────────┘")

	moonHeader := theme.Current.Accent.Bold(true).Render("Shooting the Moon")
	moonText := "Take every point card in a round: you score 0 for the round\ninstead, and everyone else takes 26."

	winBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F1C40F")).
		Padding(0, 2).
		Render(theme.Current.Warning.Bold(true).Render("★ The match ends once a player reaches the point limit; lowest score wins ★"))

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		table,
		"",
		moonHeader,
		moonText,
		"",
		winBox,
	)
}

func (q *QuickReference) renderLegalityPanel() string {
	header := theme.Current.Primary.Bold(true).Render("Legal Plays")

	text := `Leading: the first trick must be led with the two of clubs.
After that, any card, except hearts before they're broken
(unless only hearts remain in hand).

Following: must match the led suit if any card of that suit
remains in hand. Otherwise any card is legal, including point
cards — except on the first trick, where point cards are
avoided if a safe alternative exists.

Hearts break the first time a heart (or, under queen-breaks-
hearts, the queen of spades) appears in any trick.`

	return lipgloss.JoinVertical(lipgloss.Center, header, "", text)
}

func (q *QuickReference) renderVariantsPanel() string {
	header := theme.Current.Primary.Bold(true).Render("Variants")

	standardHeader := theme.Current.Secondary.Bold(true).Render("standard")
	standardText := "The rules above, unmodified."

	omnibusHeader := theme.Current.Secondary.Bold(true).Render("omnibus")
	omnibusText := `Adds two optional rules:
  • jack of diamonds (-10): taking it subtracts 10 points
  • queen breaks hearts: playing the queen of spades also breaks hearts`

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		standardHeader,
		standardText,
		"",
		omnibusHeader,
		omnibusText,
	)
}
