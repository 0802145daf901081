package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sblr80595/financialreporting-sub000/internal/impact"
	"github.com/sblr80595/financialreporting-sub000/internal/rules"
)

// Config represents the top-level tbcheck.yaml configuration. It is built
// once per run and passed explicitly; nothing reads it through a global.
type Config struct {
	Entity     EntityConfig    `yaml:"entity"`
	Tolerances ToleranceConfig `yaml:"tolerances"`
	Rules      []RuleConfig    `yaml:"rules"`
	Impact     ImpactConfig    `yaml:"impact"`
}

// EntityConfig identifies the reporting entity.
type EntityConfig struct {
	Name string `yaml:"name"`
}

// ToleranceConfig holds the run-level numeric tolerances.
type ToleranceConfig struct {
	Percent  float64 `yaml:"percent"`  // fraction of the relevant total
	Absolute float64 `yaml:"absolute"` // flat currency amount
}

// RuleConfig enables and tunes one validation rule.
type RuleConfig struct {
	Key             string   `yaml:"key"`
	Number          int      `yaml:"number"`
	Enabled         bool     `yaml:"enabled"`
	Severity        string   `yaml:"severity"`
	PercentOverride *float64 `yaml:"percent_override,omitempty"`
	AbsOverride     *float64 `yaml:"absolute_override,omitempty"`
}

// ImpactConfig holds the materiality thresholds for delta analysis.
// Pointers distinguish an absent key (analyzer default applies) from an
// explicit zero, which means "flag every non-zero change".
type ImpactConfig struct {
	MaterialAbsolute *float64 `yaml:"material_absolute,omitempty"`
	MaterialPercent  *float64 `yaml:"material_percent,omitempty"`
	TopN             *int     `yaml:"top_n,omitempty"`
}

// Load reads a tbcheck.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the full rule battery enabled and the
// conventional tolerances.
func Default(entityName string) *Config {
	run := rules.DefaultRunConfig()
	pct, _ := run.PctTolerance.Float64()
	abs, _ := run.AbsTolerance.Float64()

	def := impact.DefaultOptions()
	matAbs, _ := def.MaterialAbs.Float64()
	matPct, _ := def.MaterialPct.Float64()
	topN := def.TopN

	cfg := &Config{
		Entity:     EntityConfig{Name: entityName},
		Tolerances: ToleranceConfig{Percent: pct, Absolute: abs},
		Impact: ImpactConfig{
			MaterialAbsolute: &matAbs,
			MaterialPercent:  &matPct,
			TopN:             &topN,
		},
	}
	numbers := map[string]int{
		rules.KeyDebitsEqualCredits:  1,
		rules.KeyBalanceAccuracy:     2,
		rules.KeyNoDuplicateAccounts: 3,
		rules.KeyNoMissingData:       4,
		rules.KeyBalanceSignByType:   5,
		rules.KeyAccountingEquation:  6,
	}
	for _, rc := range run.Rules {
		cfg.Rules = append(cfg.Rules, RuleConfig{
			Key:      rc.Key,
			Number:   numbers[rc.Key],
			Enabled:  rc.Enabled,
			Severity: string(rc.Severity),
		})
	}
	return cfg
}

// RunConfig converts the YAML form into the engine's immutable run
// configuration, turning float thresholds into decimals exactly once at
// this boundary.
func (c *Config) RunConfig() rules.RunConfig {
	run := rules.RunConfig{
		PctTolerance: decimal.NewFromFloat(c.Tolerances.Percent),
		AbsTolerance: decimal.NewFromFloat(c.Tolerances.Absolute),
	}
	for _, rc := range c.Rules {
		out := rules.RuleConfig{
			Key:      rc.Key,
			Enabled:  rc.Enabled,
			Severity: rules.Severity(rc.Severity),
		}
		if rc.PercentOverride != nil {
			d := decimal.NewFromFloat(*rc.PercentOverride)
			out.PctOverride = &d
		}
		if rc.AbsOverride != nil {
			d := decimal.NewFromFloat(*rc.AbsOverride)
			out.AbsOverride = &d
		}
		run.Rules = append(run.Rules, out)
	}
	return run
}

// ImpactOptions converts the YAML materiality thresholds for the
// analyzer. Keys absent from the file keep the analyzer defaults; an
// explicit zero is honored as a zero threshold.
func (c *Config) ImpactOptions() impact.Options {
	opts := impact.DefaultOptions()
	if c.Impact.MaterialAbsolute != nil {
		opts.MaterialAbs = decimal.NewFromFloat(*c.Impact.MaterialAbsolute)
	}
	if c.Impact.MaterialPercent != nil {
		opts.MaterialPct = decimal.NewFromFloat(*c.Impact.MaterialPercent)
	}
	if c.Impact.TopN != nil {
		opts.TopN = *c.Impact.TopN
	}
	return opts
}
