// Package config holds the immutable run configuration for treasure-medians.
//
// A Config starts from built-in defaults (the three Sea of Thieves wiki
// categories, a zero On-Board Loot multiplier and the standard output file),
// can be overlaid by a YAML file, and finally by TREASURE_* environment
// variables, optionally loaded from a .env file.
package config
