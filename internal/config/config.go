package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/pfrederiksen/treasure-medians/internal/logger"
	"github.com/pfrederiksen/treasure-medians/internal/scraper"
)

const (
	// AppName is used for the XDG config directory
	AppName = "treasure-medians"

	// DefaultOutputPath is the workbook written when no output is configured
	DefaultOutputPath = "sea_of_thieves_treasure_all.xlsx"

	// DefaultMultiplier is the On-Board Loot value written to every row
	DefaultMultiplier = 0.0
)

// Category is one treasure type and the page its rewards are read from
type Category struct {
	Name     string           `yaml:"name"`
	URL      string           `yaml:"url"`
	Strategy scraper.Strategy `yaml:"strategy"`
}

// Config is the complete configuration of a run. It is built once and then
// only read.
type Config struct {
	// Categories are processed in this order, which is also the row order of
	// the "All Medians" sheet
	Categories []Category
	Multiplier float64
	OutputPath string
	Timeout    time.Duration
	UserAgent  string
	// Locator names the heading-to-table heuristic, see scraper.LocatorByName
	Locator string
	// LogLevel is the minimum level of diagnostic log entries, see logger.ParseLevel
	LogLevel string
}

// DefaultCategories returns the Sea of Thieves wiki pages scraped by default
func DefaultCategories() []Category {
	return []Category{
		{Name: "chests", URL: "https://seaofthieves.fandom.com/wiki/Treasure_Chests", Strategy: scraper.StrategyHeading},
		{Name: "skulls", URL: "https://seaofthieves.fandom.com/wiki/Bounty_Skulls", Strategy: scraper.StrategyHeading},
		{Name: "athena", URL: "https://seaofthieves.fandom.com/wiki/Athena%27s_Fortune_Treasure", Strategy: scraper.StrategyFlagged},
	}
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Categories: DefaultCategories(),
		Multiplier: DefaultMultiplier,
		OutputPath: DefaultOutputPath,
		Timeout:    scraper.Timeout,
		UserAgent:  scraper.UserAgent,
		Locator:    scraper.LocatorSibling,
		LogLevel:   string(logger.LevelWarn),
	}
}

// DefaultConfigFile returns the YAML file read when no --config is given.
// On Linux: ~/.config/treasure-medians/config.yaml
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Validate checks the configuration and returns the first problem found
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return ErrEmptyCategoryName
		}
		if seen[cat.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.Name)
		}
		seen[cat.Name] = true

		if cat.URL == "" {
			return fmt.Errorf("%w: %s", ErrMissingURL, cat.Name)
		}
		if !cat.Strategy.Valid() {
			return fmt.Errorf("%w: %q for %s", ErrUnknownStrategy, cat.Strategy, cat.Name)
		}
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.OutputPath == "" {
		return ErrEmptyOutput
	}
	if _, err := scraper.LocatorByName(c.Locator); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLocator, c.Locator)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}

	return nil
}

// CategoryNames returns the category names in processing order
func (c Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}
