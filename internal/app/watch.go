package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/hearts"
	"github.com/asselin/hearts/internal/montecarlo"
	"github.com/asselin/hearts/internal/round"
	"github.com/asselin/hearts/internal/rules"
	"github.com/asselin/hearts/internal/ui/components"
	"github.com/asselin/hearts/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultMonteCarloParams bounds the TUI's Monte Carlo strategy to a size
// that keeps each simulated play responsive under manual stepping.
var defaultMonteCarloParams = montecarlo.Params{NumHands: 6, RolloutsPerHand: 4}

var seatNames = []string{"You", "West", "North", "East"}

// WatchData configures the round the Watch screen simulates: the ruleset
// variant, the strategy every seat plays under, and the first deal's pass
// direction.
type WatchData struct {
	RuleSet       rules.RuleSet
	Strategy      hearts.CardToPlayStrategy
	PassDirection int
}

// Watch steps through one simulated round of Hearts, one play per keypress,
// rendering the table and highlighting point cards and trick winners.
type Watch struct {
	data    WatchData
	rng     *rand.Rand
	round   round.Round
	message string
	done    bool
	width   int
	height  int
}

// NewWatch creates the Watch screen for the given WatchData (falling back
// to the default ruleset and the Avoid Points strategy if data is missing or of
// the wrong type, so navigating here directly from tests or a stale
// message still produces a playable screen).
func NewWatch(data interface{}) *Watch {
	wd, ok := data.(WatchData)
	if !ok {
		wd = WatchData{Strategy: hearts.AvoidPoints{}}
	}
	if wd.RuleSet.NumPlayers == 0 {
		wd.RuleSet = rules.Default()
	}
	if wd.Strategy == nil {
		wd.Strategy = hearts.AvoidPoints{}
	}

	w := &Watch{
		data: wd,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	w.deal()
	return w
}

func (w *Watch) deal() {
	deck := cards.NewDeck(w.data.RuleSet.RemovedCards)
	deck.Shuffle(w.rng)
	scores := make([]int, w.data.RuleSet.NumPlayers)
	w.round = round.Deal(deck, w.data.RuleSet, scores, w.data.PassDirection)

	if w.round.Status == round.Passing {
		for p := 0; p < w.data.RuleSet.NumPlayers; p++ {
			req := &decision.CardsToPassRequest{
				Rules:     w.data.RuleSet,
				Hand:      append([]cards.Card(nil), w.round.Players[p].Hand...),
				Direction: w.round.PassDirection,
				NumCards:  w.round.NumPassedCards,
			}
			w.round.SetPassedCardsForPlayer(p, hearts.ChooseCardsToPass(req))
		}
		w.round.PassCards()
		w.message = "Cards passed. Press space to play."
	} else {
		w.message = "Press space to play."
	}
	w.done = false
}

// Init implements tea.Model.
func (w *Watch) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w *Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return w, Navigate(ScreenMainMenu)
		case "n":
			w.deal()
		case " ", "enter":
			w.step()
		}
	}

	return w, nil
}

// step advances the simulation by one card play.
func (w *Watch) step() {
	if w.done {
		return
	}
	tricksBefore := len(w.round.PrevTricks)

	view := &decision.RoundView{Round: &w.round, ScoresBeforeRound: w.round.InitialScores}
	card := hearts.ChooseCard(view, w.data.Strategy, w.rng)
	if err := w.round.PlayCard(card); err != nil {
		w.message = err.Error()
		return
	}

	if len(w.round.PrevTricks) > tricksBefore {
		last := w.round.PrevTricks[len(w.round.PrevTricks)-1]
		w.message = fmt.Sprintf("%s won the trick.", seatNames[last.Winner])
	}

	if w.round.IsOver() {
		w.done = true
		points := w.round.PointsTaken()
		w.message = fmt.Sprintf("Round over. Points taken: You %d, West %d, North %d, East %d.",
			points[0], points[1], points[2], points[3])
	}
}

// View implements tea.Model.
func (w *Watch) View() string {
	width := w.width
	height := w.height
	if width == 0 {
		width = 90
	}
	if height == 0 {
		height = 30
	}

	table := components.NewTableView()
	table.PlayerNames = seatNames
	table.HeartsBroken = w.round.AreHeartsBroken()
	for i := 0; i < w.data.RuleSet.NumPlayers && i < len(table.HandCounts); i++ {
		table.HandCounts[i] = len(w.round.Players[i].Hand)
	}
	pointsTaken := rules.PointsForTricks(w.round.PrevTricks, w.data.RuleSet)
	table.RoundPoints = pointsTaken
	table.Scores = pointsTaken
	table.CurrentPlayer = w.round.CurrentPlayerIndex()
	table.LastWinner = -1
	if len(w.round.PrevTricks) > 0 {
		table.LastWinner = w.round.PrevTricks[len(w.round.PrevTricks)-1].Winner
	}
	for i, c := range w.round.CurrentTrick.Cards {
		seat := (w.round.CurrentTrick.Leader + i) % w.data.RuleSet.NumPlayers
		table.CurrentTrick = append(table.CurrentTrick, components.PlayedCard{Player: seat, Card: c})
	}

	tableView := table.Render()

	var handView string
	if len(w.round.Players) > 0 {
		hand := w.round.Players[0].Hand
		var pointCards []cards.Card
		for _, c := range hand {
			if rules.PointsForCard(c, w.data.RuleSet) != 0 {
				pointCards = append(pointCards, c)
			}
		}
		var legal []cards.Card
		if w.round.CurrentPlayerIndex() == 0 {
			legal = w.round.LegalPlays()
		}
		handView = components.RenderHand(hand, -1, legal, pointCards)
	}

	title := theme.Current.Title.Render("Watching a Round")
	status := theme.Current.Subtitle.Render(w.message)
	help := theme.Current.Help.Render("Space: play a card • n: deal a new round • Esc: back")

	innerContent := title + "\n\n" + tableView + "\n" + handView + "\n\n" + status + "\n" + help

	centeredContent := lipgloss.Place(width-4, height-4, lipgloss.Center, lipgloss.Center, innerContent)
	screenBox := theme.Current.ScreenBorder.
		Width(width - 2).
		Height(height - 2).
		Render(centeredContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, screenBox)
}
