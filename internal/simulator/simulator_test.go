package simulator

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchrebot/internal/bot"
)

func fastBotConfig() bot.Config {
	config := bot.DefaultConfig()
	config.Trials = 8
	config.Workers = 1
	return config
}

func TestSimulatorRun(t *testing.T) {
	t.Parallel()

	stats, err := RunSimulation(4, 1, fastBotConfig(), time.Minute, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Deals)
	require.NoError(t, stats.Validate())
	assert.GreaterOrEqual(t, stats.TricksTaken, 0)
	assert.LessOrEqual(t, stats.TricksTaken, 4*5)
	assert.GreaterOrEqual(t, stats.WinRate(), 0.0)
	assert.LessOrEqual(t, stats.WinRate(), 1.0)
}

func TestSimulatorDeterministic(t *testing.T) {
	t.Parallel()

	first, err := RunSimulation(3, 9, fastBotConfig(), time.Minute, log.New(io.Discard))
	require.NoError(t, err)
	again, err := RunSimulation(3, 9, fastBotConfig(), time.Minute, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestSimulatorZeroTimeoutUnbounded(t *testing.T) {
	t.Parallel()

	// Config assembled directly with the zero value: no deadline
	stats, err := New(Config{
		Deals:  2,
		Seed:   5,
		Bot:    fastBotConfig(),
		Logger: log.New(io.Discard),
	}).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Deals)
}

func TestSimulatorTimeout(t *testing.T) {
	t.Parallel()

	config := bot.DefaultConfig()
	config.Trials = 5000
	config.Workers = 1

	_, err := RunSimulation(1, 1, config, time.Nanosecond, log.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
