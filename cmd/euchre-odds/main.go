// euchre-odds scores a hand's trump strength for every suit and
// estimates win odds for each legal lead via Monte Carlo playouts.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/bot"
	"github.com/lox/euchrebot/internal/evaluator"
	"github.com/lox/euchrebot/internal/game"
	"github.com/lox/euchrebot/internal/randutil"
)

type CLI struct {
	Hand       string `arg:"" help:"Hand in rank-suit format, e.g. 'JsJcAs9hTd'" required:""`
	Trump      string `short:"t" help:"Trump suit (c, d, h, s) to simulate leads under"`
	Iterations int    `short:"i" help:"Monte Carlo trials per candidate" default:"500"`
	Seed       *int64 `help:"Random seed for reproducible results"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	suitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	callStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logLevel := log.WarnLevel
	if cli.Verbose {
		logLevel = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: logLevel})

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	hand, err := euchre.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hand) != game.HandSize {
		fmt.Fprintf(os.Stderr, "Hand must contain exactly %d cards, got %d\n", game.HandSize, len(hand))
		ctx.Exit(1)
	}
	if err := validateNoDuplicates(hand); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Printf("%s %s\n\n", headerStyle.Render("Hand:"), handStyle.Render(fmt.Sprint(hand)))

	displayTrumpStrength(hand)

	if cli.Trump != "" {
		trump, err := parseSuit(cli.Trump)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}
		displayLeadOdds(hand, trump, cli.Iterations, seed, logger)
	}
}

func displayTrumpStrength(hand []euchre.Card) {
	defaults := bot.DefaultConfig()

	fmt.Println(headerStyle.Render("Trump strength:"))
	for _, suit := range euchre.Suits {
		score := bot.EvaluateTrumpStrength(hand, suit)
		line := fmt.Sprintf("  %s %s  %s",
			suitStyle.Render(suit.Name()),
			scoreStyle.Render(fmt.Sprintf("%4d", score)),
			strengthBar(score))
		if bot.ShouldCallTrump(score, defaults.CallThreshold) {
			line += "  " + callStyle.Render("call")
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func displayLeadOdds(hand []euchre.Card, trump euchre.Suit, iterations int, seed int64, logger *log.Logger) {
	snap := game.NewSnapshot(0, hand)
	snap.Trump = trump
	snap.Caller = 0

	eval := evaluator.New(logger,
		evaluator.WithTrials(iterations),
		evaluator.WithOutcome(evaluator.WinRate))

	start := time.Now()
	scores := eval.EvaluateMoves(snap, hand, randutil.New(seed))
	elapsed := time.Since(start)

	fmt.Printf("%s (trump %s, %d trials per lead, %.2fs)\n",
		headerStyle.Render("Lead win odds:"), trump.Name(), iterations, elapsed.Seconds())
	for _, score := range scores {
		fmt.Printf("  %s  %s\n",
			handStyle.Render(score.Card.String()),
			scoreStyle.Render(fmt.Sprintf("%5.1f%%", score.Score*100)))
	}
}

func strengthBar(score int) string {
	const scale = 25
	n := score / scale
	if n > 10 {
		n = 10
	}
	bar := ""
	for i := 0; i < n; i++ {
		bar += "█"
	}
	return bar
}

func parseSuit(s string) (euchre.Suit, error) {
	switch s {
	case "c":
		return euchre.Clubs, nil
	case "d":
		return euchre.Diamonds, nil
	case "h":
		return euchre.Hearts, nil
	case "s":
		return euchre.Spades, nil
	default:
		return euchre.NoSuit, fmt.Errorf("invalid suit %q: want c, d, h or s", s)
	}
}

func validateNoDuplicates(cards []euchre.Card) error {
	seen := make(map[euchre.Card]bool)
	for _, card := range cards {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}
	return nil
}
