// Package cmd holds the homebuy subcommands.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebuy-agent/domain"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "server")

	c.Register(&evaluateCmd{}, "projection")
	c.Register(&horizonCmd{}, "projection")
	c.Register(&defaultsCmd{}, "projection")
}

// readInput loads a JSON parameter file. An empty path yields the defaults
// and "-" reads standard input. Fields missing from the file are zero.
func readInput(path string) (domain.PercentInput, error) {
	if path == "" {
		return domain.DefaultPercentInput(), nil
	}

	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return domain.PercentInput{}, err
		}
		defer f.Close()
	}

	var input domain.PercentInput
	if err := json.NewDecoder(f).Decode(&input); err != nil {
		return domain.PercentInput{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return input, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
