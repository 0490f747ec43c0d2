// Command wordfreq counts the lowercase words of text files and prints them
// alphabetically or by frequency.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/aglyzov/alphatrie/counter"
	"github.com/aglyzov/alphatrie/internal/config"
)

func main() {
	fs := pflag.NewFlagSet("wordfreq", pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wordfreq [flags] [file ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:]) // ExitOnError

	cfg, err := config.LoadConfig(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogger(cfg.Log)

	words, err := counter.NewCounter()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create counter")
	}

	if err := countInputs(words, fs.Args()); err != nil {
		log.Fatal().Err(err).Msg("Failed to count words")
	}

	log.Info().Int("words", words.Len()).Msg("Finished counting")

	out := bufio.NewWriter(os.Stdout)
	printed := report(out, words, cfg)

	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Debug().Int("printed", printed).Str("sort", cfg.Sort).Msg("Done")
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.JSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// countInputs counts the words of every named file, or of stdin if there are none.
func countInputs(words *counter.Counter, paths []string) error {
	if len(paths) == 0 {
		log.Debug().Msg("Reading stdin")
		return words.AddText(os.Stdin)
	}

	for _, path := range paths {
		if err := countFile(words, path); err != nil {
			return err
		}
	}
	return nil
}

func countFile(words *counter.Counter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	before := words.Len()

	if err := words.AddText(f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("new_words", words.Len()-before).Msg("Counted file")

	return nil
}

// report prints the selected words and returns how many lines were written.
func report(w io.Writer, words *counter.Counter, cfg *config.Config) int {
	printed := 0

	emit := func(ckey counter.CountedKey) bool {
		if ckey.Count < cfg.MinCount {
			return true
		}
		fmt.Fprintf(w, "%s %d\n", ckey.Key, ckey.Count)
		printed++
		return cfg.Top == 0 || printed < cfg.Top
	}

	if cfg.Sort == config.SortAlpha {
		words.Iter(cfg.Prefix, emit)
		return printed
	}

	for _, ckey := range words.CountedKeys() {
		if !strings.HasPrefix(ckey.Key, cfg.Prefix) {
			continue
		}
		if !emit(ckey) {
			break
		}
	}

	return printed
}
