// simulate benchmarks the Monte Carlo bot against greedy baseline
// opponents over seeded self-play deals.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/internal/bot"
	"github.com/lox/euchrebot/internal/simulator"
	"github.com/lox/euchrebot/internal/statistics"
)

type CLI struct {
	Deals   int    `default:"1000" help:"Number of deals to simulate"`
	Trials  int    `default:"0" help:"Simulation trials per decision (0 = config default)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Config  string `short:"c" default:"euchrebot.hcl" help:"Bot tuning config file (HCL)"`
	Timeout int    `default:"30" help:"Per-deal timeout in seconds"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logLevel := log.WarnLevel
	if cli.Verbose {
		logLevel = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: logLevel})

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	botConfig, err := bot.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.Trials > 0 {
		botConfig.Trials = cli.Trials
	}

	fmt.Printf("Simulating %d deals (seed %d, %d trials/decision)...\n",
		cli.Deals, seed, botConfig.Trials)

	start := time.Now()
	stats, err := simulator.RunSimulation(cli.Deals, seed, botConfig,
		time.Duration(cli.Timeout)*time.Second, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		ctx.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Println(renderResults(stats, elapsed))
}

func renderResults(stats *statistics.Statistics, elapsed time.Duration) string {
	low, high := stats.ConfidenceInterval95()

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Self-play results"),
		row("Deals", fmt.Sprintf("%d", stats.Deals)),
		row("Net points/deal", fmt.Sprintf("%+.3f ± %.3f", stats.Mean(), stats.StdError())),
		row("95% CI", fmt.Sprintf("[%+.3f, %+.3f]", low, high)),
		row("Win rate", fmt.Sprintf("%.1f%%", stats.WinRate()*100)),
		row("Avg tricks", fmt.Sprintf("%.2f", stats.AvgTricks())),
		row("Trump calls", fmt.Sprintf("%d", stats.Calls)),
		row("Euchred", fmt.Sprintf("%d", stats.Euchres)),
		row("Elapsed", elapsed.Round(time.Millisecond).String()),
	)
	return boxStyle.Render(body)
}
