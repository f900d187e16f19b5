package app

import (
	"fmt"

	"github.com/asselin/hearts/internal/hearts"
	"github.com/asselin/hearts/internal/ui/components"
	"github.com/asselin/hearts/internal/ui/theme"
	"github.com/asselin/hearts/internal/variants"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var strategyNames = []string{"Random", "Avoid Points", "Monte Carlo"}

func strategyByName(name string) hearts.CardToPlayStrategy {
	switch name {
	case "Random":
		return hearts.Random{}
	case "Monte Carlo":
		return hearts.MonteCarlo{
			Params:  defaultMonteCarloParams,
			Rollout: hearts.AvoidPoints{},
		}
	default:
		return hearts.AvoidPoints{}
	}
}

// GameSetup is the round-setup screen: pick a ruleset variant, the
// strategy every seat plays with, and the first deal's pass direction.
type GameSetup struct {
	menu          *components.Menu
	variantNames  []string
	variantIdx    int
	strategyIdx   int
	passSelector  *components.PassDirectionSelector
	width, height int
}

// NewGameSetup creates a new game setup screen.
func NewGameSetup() *GameSetup {
	names := variants.List()
	if len(names) == 0 {
		names = []string{"standard"}
	}

	g := &GameSetup{
		variantNames: names,
		passSelector: components.NewPassDirectionSelector(),
	}
	g.menu = components.NewMenu("", g.items())
	return g
}

func (g *GameSetup) items() []components.MenuItem {
	variantName := "standard"
	if len(g.variantNames) > 0 {
		variantName = g.variantNames[g.variantIdx%len(g.variantNames)]
	}
	return []components.MenuItem{
		{
			Label:       "Start Watching",
			Description: "Deal and simulate a round with these settings",
		},
		{
			Label:       fmt.Sprintf("Variant: %s", variantName),
			Description: "Which ruleset every seat plays under",
		},
		{
			Label:       fmt.Sprintf("Strategy: %s", strategyNames[g.strategyIdx%len(strategyNames)]),
			Description: "The card-to-play policy driving all four seats",
		},
		{
			Label:       fmt.Sprintf("First Pass: %s", g.passSelector.Render()),
			Description: "The pass direction for the first deal",
		},
		{
			Label:       "Back to Menu",
			Description: "Return to the main menu",
		},
	}
}

// Init implements tea.Model.
func (g *GameSetup) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (g *GameSetup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			g.menu.MoveUp()
		case "down", "j":
			g.menu.MoveDown()
		case "left", "h":
			g.cycle(-1)
		case "right", "l":
			g.cycle(1)
		case "enter", " ":
			return g.handleSelect()
		case "q", "esc":
			return g, Navigate(ScreenMainMenu)
		}
	}

	return g, nil
}

// cycle adjusts the currently selected configurable option.
func (g *GameSetup) cycle(delta int) {
	switch g.menu.Selected {
	case 1:
		n := len(g.variantNames)
		g.variantIdx = ((g.variantIdx+delta)%n + n) % n
	case 2:
		n := len(strategyNames)
		g.strategyIdx = ((g.strategyIdx+delta)%n + n) % n
	case 3:
		if delta > 0 {
			g.passSelector.MoveRight()
		} else {
			g.passSelector.MoveLeft()
		}
	}
	g.menu.Items = g.items()
}

// handleSelect handles menu selection.
func (g *GameSetup) handleSelect() (tea.Model, tea.Cmd) {
	switch g.menu.Selected {
	case 0: // Start Watching
		v, ok := variants.Get(g.variantNames[g.variantIdx%len(g.variantNames)])
		if !ok {
			return g, nil
		}
		data := WatchData{
			RuleSet:       v.RuleSet(),
			Strategy:      strategyByName(strategyNames[g.strategyIdx%len(strategyNames)]),
			PassDirection: g.passSelector.Direction(),
		}
		return g, NavigateWithData(ScreenWatch, data)
	case 1, 2, 3:
		g.cycle(1)
	case 4: // Back
		return g, Navigate(ScreenMainMenu)
	}

	return g, nil
}

// View implements tea.Model.
func (g *GameSetup) View() string {
	width := g.width
	height := g.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	title := theme.Current.Title.Render("Round Setup")

	menuBox := theme.Current.ContentBox.
		Width(56).
		Render(g.menu.Render())

	help := theme.Current.Help.Render("↑/↓: Navigate • ←/→ or Enter: Change • Esc: Back")

	innerContent := title + "\n\n" +
		menuBox + "\n\n" +
		help

	centeredContent := lipgloss.Place(width-4, height-4, lipgloss.Center, lipgloss.Center, innerContent)
	screenBox := theme.Current.ScreenBorder.
		Width(width - 2).
		Height(height - 2).
		Render(centeredContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, screenBox)
}
