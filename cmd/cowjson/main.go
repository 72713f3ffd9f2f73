// cowjson - JSON-subset codec CLI
//
// Usage:
//
//	cowjson parse [file]      Parse a document and report its shape
//	cowjson roundtrip [file]  Parse a document and write it back densely
//	cowjson hash [file]       Print the canonical hash of a document
//	cowjson bench [file]      Time parsing against a standard JSON decoder
//
// If no file is given, reads from stdin. The whole input is read into
// memory before the codec sees it.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/fishfly/cowjson/cowjson"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	app := &cli.App{
		Name:  "cowjson",
		Usage: "parse, round-trip and benchmark JSON-subset documents",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse a document and report its shape",
				ArgsUsage: "[file]",
				Action:    runParse,
			},
			{
				Name:      "roundtrip",
				Usage:     "parse a document and write it back densely to stdout",
				ArgsUsage: "[file]",
				Action:    runRoundtrip,
			},
			{
				Name:      "hash",
				Usage:     "print the canonical hash of a document",
				ArgsUsage: "[file]",
				Action:    runHash,
			},
			{
				Name:      "bench",
				Usage:     "time parsing against a standard JSON decoder",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Value: 5,
						Usage: "number of parse passes per decoder",
					},
				},
				Action: runBench,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// readInput reads the file argument, or stdin when absent, fully into
// memory.
func readInput(c *cli.Context) ([]byte, error) {
	if path := c.Args().First(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}
	return io.ReadAll(os.Stdin)
}

func runParse(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	root, err := cowjson.Parse(data)
	if err != nil {
		return err
	}
	log.Info().
		Int("input_bytes", len(data)).
		Stringer("kind", root.Kind()).
		Int("len", root.Len()).
		Msg("parsed")
	return nil
}

func runRoundtrip(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	root, err := cowjson.Parse(data)
	if err != nil {
		return err
	}
	if err := cowjson.Write(os.Stdout, root); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runHash(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	root, err := cowjson.Parse(data)
	if err != nil {
		return err
	}
	fmt.Println(cowjson.CanonicalHash(root))
	return nil
}

func runBench(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	count := c.Int("count")

	best := time.Duration(0)
	var total time.Duration
	for i := 0; i < count; i++ {
		start := time.Now()
		if _, err := cowjson.Parse(data); err != nil {
			return err
		}
		d := time.Since(start)
		total += d
		if best == 0 || d < best {
			best = d
		}
	}
	log.Info().
		Int("passes", count).
		Dur("best", best).
		Dur("avg", total/time.Duration(count)).
		Msg("cowjson parse")

	// Same buffer through a full standard JSON decoder, for scale.
	best, total = 0, 0
	for i := 0; i < count; i++ {
		start := time.Now()
		var v interface{}
		if err := gojson.Unmarshal(data, &v); err != nil {
			log.Warn().Err(err).Msg("standard decoder rejected input, skipping comparison")
			return nil
		}
		d := time.Since(start)
		total += d
		if best == 0 || d < best {
			best = d
		}
	}
	log.Info().
		Int("passes", count).
		Dur("best", best).
		Dur("avg", total/time.Duration(count)).
		Msg("go-json decode")
	return nil
}
