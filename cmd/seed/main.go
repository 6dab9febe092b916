// Command seed prints sample neighborhood data as JSON, optionally padded
// with synthetic records, for loading into a running service or for use as
// test fixtures.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/internal/seed"
)

const outputFilePermission = 0600

func main() {
	var (
		generate = flag.Int("generate", 0, "Number of synthetic neighborhoods to append to the curated samples")
		output   = flag.String("output", "", "Output file (default: stdout)")
		compact  = flag.Bool("compact", false, "Emit compact JSON instead of indented")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	neighborhoods := seed.Samples()
	if *generate > 0 {
		neighborhoods = append(neighborhoods, seed.Generate(*generate)...)
	}

	data, err := encode(neighborhoods, *compact)
	if err != nil {
		os.Stderr.WriteString("Failed to encode neighborhoods: " + err.Error() + "\n")
		os.Exit(1)
	}

	if *output == "" {
		os.Stdout.Write(data)
		os.Stdout.WriteString("\n")
		return
	}

	if err := os.WriteFile(*output, data, outputFilePermission); err != nil {
		os.Stderr.WriteString("Failed to write output file: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func encode(neighborhoods []model.Neighborhood, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(neighborhoods)
	}
	return json.MarshalIndent(neighborhoods, "", "  ")
}

func showHelp() {
	os.Stdout.WriteString(`Hoodmatch Seed Tool
===================

Emits sample neighborhood data as JSON.

Usage:
  go run cmd/seed/main.go [options]

Options:
  -generate int
        Number of synthetic neighborhoods to append to the curated samples
  -output string
        Output file (default: stdout)
  -compact
        Emit compact JSON instead of indented
  -help
        Show this help message

Examples:
  # Print the curated samples
  go run cmd/seed/main.go

  # Write 100 extra synthetic neighborhoods to a fixture file
  go run cmd/seed/main.go -generate 100 -output fixtures.json
`)
}
