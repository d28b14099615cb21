package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/flowcast-dev/flowcast/internal/calendar"
)

// DateFormat is the date layout used throughout the config file.
const DateFormat = "02/01/2006"

// startToday makes the project start at the next first-of-month from today.
const startToday = "today"

// Config represents the top-level flowcast.yaml configuration. Environment
// variables override the file values.
type Config struct {
	Dates  DatesConfig  `yaml:"dates"`
	Money  MoneyConfig  `yaml:"money"`
	Inputs InputsConfig `yaml:"inputs"`
	Output OutputConfig `yaml:"output"`
}

// DatesConfig bounds the projection horizon.
type DatesConfig struct {
	// StartDate is a dd/mm/yyyy date, or "today" for the next first-of-month.
	StartDate string `yaml:"start_date" env:"FLOWCAST_START_DATE"`
	EndDate   string `yaml:"end_date" env:"FLOWCAST_END_DATE"`
}

// MoneyConfig holds the opening account state.
type MoneyConfig struct {
	InitialBalance string `yaml:"initial_balance" env:"FLOWCAST_INITIAL_BALANCE"`
}

// InputsConfig locates the input tables.
type InputsConfig struct {
	Dir              string `yaml:"dir" env:"FLOWCAST_INPUT_DIR"`
	MortgageCategory string `yaml:"mortgage_category"`
	MortgageName     string `yaml:"mortgage_name"`
}

// OutputConfig controls the report files.
type OutputConfig struct {
	CashFlow string `yaml:"cash_flow" env:"FLOWCAST_OUTPUT"`
	// DetailMonth, when set to a dd/mm/yyyy first-of-month date, requests a
	// companion per-event table for that month.
	DetailMonth string `yaml:"detail_month" env:"FLOWCAST_DETAIL_MONTH"`
}

// Load reads a flowcast.yaml file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Dates: DatesConfig{
			StartDate: startToday,
			EndDate:   "01/01/2050",
		},
		Money: MoneyConfig{
			InitialBalance: "0",
		},
		Inputs: InputsConfig{
			Dir:              "input_files",
			MortgageCategory: "housing",
			MortgageName:     "mortgage",
		},
		Output: OutputConfig{
			CashFlow: "cash_flow.csv",
		},
	}
}

// ProjectPeriod resolves the configured dates into the projection horizon.
// now is only consulted when the start date is "today".
func (c *Config) ProjectPeriod(now time.Time) (calendar.Period, error) {
	var start time.Time
	if c.Dates.StartDate == startToday {
		start = calendar.NextFirstOfMonth(calendar.Date(now.Year(), now.Month(), now.Day()))
	} else {
		var err error
		start, err = time.Parse(DateFormat, c.Dates.StartDate)
		if err != nil {
			return calendar.Period{}, fmt.Errorf("parsing start date %q: %w", c.Dates.StartDate, err)
		}
	}

	end, err := time.Parse(DateFormat, c.Dates.EndDate)
	if err != nil {
		return calendar.Period{}, fmt.Errorf("parsing end date %q: %w", c.Dates.EndDate, err)
	}

	return calendar.Period{Start: start, End: end}, nil
}

// InitialBalance parses the configured opening balance.
func (c *Config) InitialBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Money.InitialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing initial balance %q: %w", c.Money.InitialBalance, err)
	}
	return d, nil
}

// DetailMonthDate parses the optional detail-month request. The zero time
// means no detail table was requested.
func (c *Config) DetailMonthDate() (time.Time, error) {
	if c.Output.DetailMonth == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(DateFormat, c.Output.DetailMonth)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing detail month %q: %w", c.Output.DetailMonth, err)
	}
	return d, nil
}
