// Package cli implements the command-line interface for treasure-medians.
//
// The root command loads the configuration (defaults, YAML file, environment,
// then flags), runs the export pipeline against the live wiki and prints a
// run summary as text, JSON or Markdown.
package cli
