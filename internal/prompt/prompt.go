package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/homier/linearmap"
)

const (
	Prompt   = "Enter the word to find its meaning (enter 0 to exit): "
	ExitWord = "0"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

type Lookuper interface {
	Get(key string) (string, error)
}

// NewReadline writes its prompt to out, which should be the writer passed to
// Run so prompts and answers share one stream.
func NewReadline(historyFile string, out io.Writer) (*readline.Instance, error) {
	return readline.NewEx(readlineConfig(historyFile, out))
}

func readlineConfig(historyFile string, out io.Writer) *readline.Config {
	return &readline.Config{
		Prompt:          Prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ExitWord,
		Stdout:          out,
	}
}

// Run answers lookups until the exit word, EOF or an interrupt.
func Run(r LineReader, w io.Writer, dict Lookuper) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		word := strings.TrimSpace(line)
		switch word {
		case "":
			continue
		case ExitWord:
			return nil
		}

		if err := Answer(w, dict, word); err != nil {
			return err
		}
	}
}

// Answer prints the meaning of a single word. A missing word is reported
// to w and is not an error.
func Answer(w io.Writer, dict Lookuper, word string) error {
	meaning, err := dict.Get(word)

	switch {
	case errors.Is(err, linearmap.ErrKeyNotFound):
		_, err = fmt.Fprintf(w, "The word '%s' does not exist in the dictionary.\n\n", word)
	case err != nil:
		return fmt.Errorf("failed to look up %q: %w", word, err)
	default:
		_, err = fmt.Fprintf(w, "%s means: %s\n\n", word, meaning)
	}

	return err
}
