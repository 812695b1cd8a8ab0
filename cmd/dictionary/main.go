package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/homier/linearmap"
	"github.com/homier/linearmap/internal/dictionary"
	"github.com/homier/linearmap/internal/prompt"
	"github.com/homier/linearmap/internal/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

var errMissingWords = errors.New("some words do not exist in the dictionary")

type config struct {
	File      string
	Capacity  int
	Memory    uint64
	Loglevel  string
	Histogram bool
	Bins      int
	History   string
}

var (
	cfg     config
	rootCmd = &cobra.Command{
		Use:     "dictionary",
		Short:   "Look up words in a dictionary backed by a linear probing hash table",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			lm, err := load(cmd.OutOrStdout(), cfg.Histogram)
			if err != nil {
				return err
			}

			rl, err := prompt.NewReadline(cfg.History, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to start prompt: %w", err)
			}

			defer rl.Close()

			return prompt.Run(rl, cmd.OutOrStdout(), lm)
		},
	}
	lookupCmd = &cobra.Command{
		Use:   "lookup word...",
		Short: "Print the meaning of the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			lm, err := load(io.Discard, false)
			if err != nil {
				return err
			}

			var missing int
			for _, word := range args {
				if !lm.Has(word) {
					missing++
				}

				if err := prompt.Answer(cmd.OutOrStdout(), lm, word); err != nil {
					return err
				}
			}

			if missing > 0 {
				return fmt.Errorf("%w: %d of %d", errMissingWords, missing, len(args))
			}

			return nil
		},
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Load the dictionary and print table statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			_, err := load(cmd.OutOrStdout(), true)
			return err
		},
	}
)

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)

	registerFlags(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setLogLevel(cfg.Loglevel)
		return nil
	}

	rootCmd.AddCommand(lookupCmd, statsCmd)
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.File, "file", "f", "dictionary.txt", "Dictionary file with one \"word: definition\" per line")
	fs.IntVarP(&cfg.Capacity, "capacity", "c", 1115, "Number of cells in the hash table")
	fs.Uint64VarP(&cfg.Memory, "memory", "m", 0, "Size the table from a memory budget in bytes instead of --capacity")
	fs.StringVarP(&cfg.Loglevel, "loglevel", "o", "info", "Loglevel, e.g., debug, info, warn, error")
	fs.BoolVar(&cfg.Histogram, "histogram", false, "Print the probe length histogram after loading")
	fs.IntVar(&cfg.Bins, "bins", 5, "Number of histogram bins")
	fs.StringVar(&cfg.History, "history", "", "Prompt history file, none if empty")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}

func capacity() (int, error) {
	c := cfg.Capacity
	if cfg.Memory > math.MaxInt {
		return 0, fmt.Errorf("memory budget %d exceeds the addressable size", cfg.Memory)
	}

	if cfg.Memory > 0 {
		c = linearmap.CapacityFromSize(uintptr(cfg.Memory))
	}

	if c < 1 {
		return 0, fmt.Errorf("invalid table capacity %d", c)
	}

	return c, nil
}

// load builds the table from the configured file and prints its summary
// to w.
func load(w io.Writer, withHistogram bool) (*linearmap.LinearMap, error) {
	c, err := capacity()
	if err != nil {
		return nil, err
	}

	lm := linearmap.New(c)

	log.WithField("capacity", c).Debug("created hash table")

	res, err := dictionary.LoadFile(cfg.File, lm, log.StandardLogger())
	if err != nil {
		if errors.Is(err, linearmap.ErrTableFull) {
			log.Errorf("hash table is full after %d items, try a larger --capacity", res.Loaded)
		}

		return nil, err
	}

	log.WithFields(log.Fields{
		"loaded":  res.Loaded,
		"skipped": res.Skipped,
	}).Info("dictionary loaded")

	if err := report.Summary(w, res, lm.Stats()); err != nil {
		return nil, err
	}

	if withHistogram {
		if err := report.Histogram(w, lm.ProbeLengths(), cfg.Bins); err != nil {
			return nil, err
		}
	}

	return lm, nil
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all", "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		log.Warnf("Invalid log level '%s'. Setting log level to 'info'", level)
	}
}
