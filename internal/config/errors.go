package config

import "errors"

var (
	// ErrNoCategories is returned when there is nothing to scrape
	ErrNoCategories = errors.New("at least one category is required")

	// ErrEmptyCategoryName is returned for a category without a name
	ErrEmptyCategoryName = errors.New("category name must not be empty")

	// ErrDuplicateCategory is returned when two categories share a name
	ErrDuplicateCategory = errors.New("duplicate category name")

	// ErrMissingURL is returned for a category without a source URL
	ErrMissingURL = errors.New("category URL must not be empty")

	// ErrUnknownStrategy is returned for an unrecognized discovery strategy
	ErrUnknownStrategy = errors.New("unknown discovery strategy")

	// ErrUnknownLocator is returned for an unrecognized table locator
	ErrUnknownLocator = errors.New("unknown table locator")

	// ErrUnknownLogLevel is returned for an unrecognized log level
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrEmptyOutput is returned when no output path is configured
	ErrEmptyOutput = errors.New("output path must not be empty")

	// ErrConfigNotFound is returned when an explicitly requested file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")
)
