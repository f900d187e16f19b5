package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/asselin/hearts/internal/app"
	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/hearts"
	"github.com/asselin/hearts/internal/montecarlo"
	"github.com/asselin/hearts/internal/round"
	"github.com/asselin/hearts/internal/rules"
	"github.com/asselin/hearts/internal/ui/components"
	"github.com/asselin/hearts/internal/variants"
	_ "github.com/asselin/hearts/internal/variants/omnibus"
	_ "github.com/asselin/hearts/internal/variants/standard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:    "hearts",
		Usage:   "Simulate and watch the Hearts decision engine play",
		Version: "0.1.0",
		Action:  runTUI,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Simulate a full match to the point limit and print the final score",
				Action: runMatch,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "variant", Value: "standard", Usage: "ruleset variant to play"},
					&cli.Int64Flag{Name: "seed", Value: 0, Usage: "random seed (0 picks one from the clock)"},
					&cli.BoolFlag{Name: "verbose", Usage: "log every round's scores, not just the final one"},
				},
			},
			{
				Name:   "watch",
				Usage:  "Step through one simulated round in the terminal UI",
				Action: runTUI,
			},
			{
				Name:    "rules",
				Aliases: []string{"r"},
				Usage:   "Print a quick-reference rules summary",
				Action:  showRules,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the Bubble Tea application.
func runTUI(c *cli.Context) error {
	p := tea.NewProgram(app.New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runMatch simulates rounds with every seat playing the Monte Carlo
// strategy (Avoid Points rollouts), rotating the pass direction (left, right, across, hold) each
// deal, until a player reaches the variant's point limit.
func runMatch(c *cli.Context) error {
	level := log.WarnLevel
	if c.Bool("verbose") {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	v, ok := variants.Get(c.String("variant"))
	if !ok {
		return fmt.Errorf("unknown variant %q (known: %v)", c.String("variant"), variants.List())
	}
	rs := v.RuleSet()

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	names := []string{"North", "East", "South", "West"}
	scores := make([]int, rs.NumPlayers)
	passPattern := []int{1, 3, 2, 0} // left, right, across, hold

	roundNum := 0
	for max(scores) < rs.PointLimit {
		roundNum++
		passDirection := passPattern[(roundNum-1)%len(passPattern)]

		deck := cards.NewDeck(rs.RemovedCards)
		deck.Shuffle(rng)
		r := round.Deal(deck, rs, scores, passDirection)

		if r.Status == round.Passing {
			for p := 0; p < rs.NumPlayers; p++ {
				req := &decision.CardsToPassRequest{
					Rules:     rs,
					Hand:      append([]cards.Card(nil), r.Players[p].Hand...),
					Direction: r.PassDirection,
					NumCards:  r.NumPassedCards,
				}
				r.SetPassedCardsForPlayer(p, hearts.ChooseCardsToPass(req))
			}
			r.PassCards()
		}

		strategy := hearts.MonteCarlo{
			Params:  montecarlo.Params{NumHands: 8, RolloutsPerHand: 6},
			Rollout: hearts.AvoidPoints{},
		}
		for !r.IsOver() {
			view := &decision.RoundView{Round: &r, ScoresBeforeRound: scores}
			card := hearts.ChooseCard(view, strategy, rng)
			if err := r.PlayCard(card); err != nil {
				logger.Error("illegal play during simulated match", "error", err, "round", roundNum)
				return err
			}
		}

		points := r.PointsTaken()
		for i := range scores {
			scores[i] += points[i]
		}
		logger.Info("round complete", "round", roundNum, "points", points, "scores", scores)
	}

	fmt.Println(components.RenderScoreboard(names, scores, rs.PointLimit))
	return nil
}

func max(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// showRules prints the quick-reference rules summary.
func showRules(c *cli.Context) error {
	fmt.Print(`
HEARTS RULES
============

Hearts is a trick-taking card game for 4 players, no partnerships.
Lowest cumulative score at the point limit wins.

THE DECK
--------
The standard 52-card deck, 13 cards to each player.

THE PASS
--------
Before play, each player passes 3 cards. The direction rotates every
deal: left, then right, then across, then hold (no pass), repeating.

PLAY
----
1. The holder of the two of clubs leads the first trick.
2. Must follow suit if able.
3. Highest card of the led suit wins the trick; its winner leads next.
4. Hearts may not be led until broken (played to an earlier trick),
   unless the leader holds nothing but hearts.
5. No point card may be played to the first trick if a safe
   alternative exists.

SCORING
-------
Each heart taken: 1 point
Queen of spades taken: 13 points
Everything else: 0 points

SHOOTING THE MOON
------------------
Take every point card in a round (26 points): instead of taking them,
you score 0 for the round and every opponent takes 26.

VARIANTS
--------
standard: the rules above.
omnibus: adds the jack of diamonds (-10 to whoever takes it) and
  queen-breaks-hearts (playing the queen of spades also breaks hearts).

Run 'hearts play --variant omnibus' to simulate a full match, or
'hearts watch' to step through a single round in the terminal UI.
`)
	return nil
}
