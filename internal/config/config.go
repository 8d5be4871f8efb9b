// Package config loads the farkle binary's settings from the environment,
// an optional .env file and an optional YAML ruleset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/farkle/internal/models"
)

// Config holds the process configuration
type Config struct {
	Debug bool `env:"FARKLE_DEBUG"`

	// RulesFile is the human-readable rules text shown before play
	RulesFile string `env:"FARKLE_RULES_FILE" envDefault:"farkle_rules.txt"`

	// RulesetFile optionally overrides the scoring thresholds
	RulesetFile string `env:"FARKLE_RULESET"`

	// Players skips the player count prompt when set
	Players int `env:"FARKLE_PLAYERS"`

	// Seed makes the dice reproducible when non-zero
	Seed int64 `env:"FARKLE_SEED"`

	// RedisAddr enables the Redis snapshot store when set
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	SnapshotTTL   time.Duration `env:"FARKLE_SNAPSHOT_TTL" envDefault:"24h"`

	// PromptAttempts bounds how often malformed input is re-prompted
	PromptAttempts uint `env:"FARKLE_PROMPT_ATTEMPTS" envDefault:"3"`

	HistoryFile string `env:"FARKLE_HISTORY_FILE"`
}

// Load reads .env files if present and parses the environment.
// Variables already set in the environment win over .env values.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.PromptAttempts == 0 {
		cfg.PromptAttempts = 1
	}

	return &cfg, nil
}

// ruleset is the on-disk shape of a ruleset file. Omitted fields keep
// their defaults.
type ruleset struct {
	EntryThreshold *int `yaml:"entry_threshold"`
	WinningScore   *int `yaml:"winning_score"`
	DiceCount      *int `yaml:"dice_count"`
}

// LoadRuleset reads thresholds from a YAML file. An empty path yields the
// default rules.
func LoadRuleset(path string) (models.Rules, error) {
	rules := models.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read ruleset: %w", err)
	}

	var rs ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return rules, fmt.Errorf("parse ruleset %s: %w", path, err)
	}

	if rs.EntryThreshold != nil {
		rules.EntryThreshold = *rs.EntryThreshold
	}
	if rs.WinningScore != nil {
		rules.WinningScore = *rs.WinningScore
	}
	if rs.DiceCount != nil {
		rules.DiceCount = *rs.DiceCount
	}

	return rules, nil
}
