package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const maxLineSize = 1024 * 1024

var ErrMalformedLine = errors.New("malformed line")

// Inserter is anything a dictionary can be loaded into.
type Inserter interface {
	Insert(key, value string) error
}

type Result struct {
	Loaded  int
	Skipped int

	// Every malformed line, combined with multierr. Nil if none.
	Warnings error

	Duration time.Duration
}

// ParseLine splits a "word: definition" line at the first colon.
// Both halves are trimmed and must not be empty.
func ParseLine(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("%w: missing ':' separator", ErrMalformedLine)
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch {
	case key == "":
		return "", "", fmt.Errorf("%w: empty word", ErrMalformedLine)
	case value == "":
		return "", "", fmt.Errorf("%w: empty definition for %q", ErrMalformedLine, key)
	}

	return key, value, nil
}

// Load reads "word: definition" lines from r into dst.
// Blank lines are ignored and malformed ones are skipped and collected in
// Result.Warnings. The first insert error aborts the load.
func Load(r io.Reader, dst Inserter, logger log.FieldLogger) (Result, error) {
	var (
		res     Result
		start   = time.Now()
		scanner = bufio.NewScanner(r)
	)

	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, err := ParseLine(line)
		if err != nil {
			logger.WithField("line", n).Debugf("skipping line: %v", err)

			res.Skipped++
			res.Warnings = multierr.Append(res.Warnings, fmt.Errorf("line %d: %w", n, err))

			continue
		}

		if err := dst.Insert(key, value); err != nil {
			res.Duration = time.Since(start)
			return res, fmt.Errorf("failed to insert %q from line %d: %w", key, n, err)
		}

		res.Loaded++
	}

	res.Duration = time.Since(start)

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read dictionary: %w", err)
	}

	if res.Skipped > 0 {
		logger.Warnf("skipped %d malformed lines", res.Skipped)
	}

	return res, nil
}

// LoadFile opens the file at path and loads it with Load.
func LoadFile(path string, dst Inserter, logger log.FieldLogger) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open dictionary: %w", err)
	}

	defer f.Close()

	logger.WithField("path", path).Info("loading dictionary")

	return Load(f, dst, logger)
}
