package bot

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the tunable engine parameters. Everything the three
// decision surfaces need is explicit configuration: there is no
// process-wide mutable state, which is what keeps parallel trial
// execution safe.
type Config struct {
	// Trials is the simulation budget per candidate move.
	Trials int `hcl:"trials,optional"`

	// Workers is the goroutine count for trial execution. 1 disables
	// parallelism.
	Workers int `hcl:"workers,optional"`

	// DeadlineMs bounds wall-clock time per decision; 0 means no bound.
	DeadlineMs int `hcl:"deadline_ms,optional"`

	// Outcome selects the aggregation metric: "tricks" or "winrate".
	Outcome string `hcl:"outcome,optional"`

	// AcceptThreshold is the minimum hand strength to order up the
	// flipped card as trump.
	AcceptThreshold int `hcl:"accept_threshold,optional"`

	// CallThreshold is the minimum hand strength to name trump in the
	// open call round.
	CallThreshold int `hcl:"call_threshold,optional"`

	// AloneThreshold is the minimum hand strength to play alone.
	AloneThreshold int `hcl:"alone_threshold,optional"`

	// LeadTrumpPenalty is subtracted from a candidate's score when it
	// would lead trump into the opponents' called trump without both
	// bowers in hand.
	LeadTrumpPenalty float64 `hcl:"lead_trump_penalty,optional"`
}

// DefaultConfig returns the engine defaults. Thresholds are in hand
// strength points (see EvaluateTrumpStrength).
func DefaultConfig() Config {
	return Config{
		Trials:           200,
		Workers:          0, // evaluator picks CPU count
		DeadlineMs:       0,
		Outcome:          "tricks",
		AcceptThreshold:  135,
		CallThreshold:    140,
		AloneThreshold:   215,
		LeadTrumpPenalty: 0.35,
	}
}

// Deadline returns the per-decision deadline, or zero when unbounded.
func (c Config) Deadline() time.Duration {
	return time.Duration(c.DeadlineMs) * time.Millisecond
}

// LoadConfig loads bot tuning from an HCL file, falling back to
// defaults when the file does not exist. Unset fields keep defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var loaded Config
	diags = gohcl.DecodeBody(file.Body, nil, &loaded)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if loaded.Trials > 0 {
		config.Trials = loaded.Trials
	}
	if loaded.Workers > 0 {
		config.Workers = loaded.Workers
	}
	if loaded.DeadlineMs > 0 {
		config.DeadlineMs = loaded.DeadlineMs
	}
	if loaded.Outcome != "" {
		if loaded.Outcome != "tricks" && loaded.Outcome != "winrate" {
			return config, fmt.Errorf("invalid outcome %q: want tricks or winrate", loaded.Outcome)
		}
		config.Outcome = loaded.Outcome
	}
	if loaded.AcceptThreshold > 0 {
		config.AcceptThreshold = loaded.AcceptThreshold
	}
	if loaded.CallThreshold > 0 {
		config.CallThreshold = loaded.CallThreshold
	}
	if loaded.AloneThreshold > 0 {
		config.AloneThreshold = loaded.AloneThreshold
	}
	if loaded.LeadTrumpPenalty > 0 {
		config.LeadTrumpPenalty = loaded.LeadTrumpPenalty
	}
	return config, nil
}
