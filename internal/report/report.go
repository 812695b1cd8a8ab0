package report

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/homier/linearmap"
	"github.com/homier/linearmap/internal/dictionary"
)

const histogramWidth = 40

// Summary prints how long the load took and how well the table coped.
func Summary(w io.Writer, res dictionary.Result, stats linearmap.Stats) error {
	ms := float64(res.Duration.Microseconds()) / 1000

	_, err := fmt.Fprintf(w,
		"Time taken to read the file and store %d items in the hash table: %.2f ms\n"+
			"Total Collisions: %d\n"+
			"Average Probe Length: %.2f\n"+
			"Load Factor: %.2f (%d/%d)\n\n",
		stats.Size, ms,
		stats.Collisions,
		stats.AverageProbeLength,
		stats.LoadFactor, stats.Size, stats.Capacity,
	)

	return err
}

// Histogram prints the distribution of distances between the cell every
// element sits in and the cell its key hashes to.
func Histogram(w io.Writer, probeLengths []int, bins int) error {
	if len(probeLengths) == 0 {
		return nil
	}

	data := make([]float64, len(probeLengths))
	for i, l := range probeLengths {
		data[i] = float64(l)
	}

	if _, err := fmt.Fprintln(w, "Probe length distribution:"); err != nil {
		return err
	}

	return histogram.Fprint(w, histogram.Hist(max(bins, 1), data), histogram.Linear(histogramWidth))
}
