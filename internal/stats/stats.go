// Package stats reports size and line counts for a transform's input and
// output.
package stats

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/thesaadarshad/myjson.tools/internal/errors"
)

// Report describes one input/output pair.
type Report struct {
	InputBytes  int
	InputLines  int
	OutputBytes int
	OutputLines int
	// GzipBytes is the size of the output after gzip at best compression.
	GzipBytes int
	// HasRatio is false when either side is empty.
	HasRatio bool
	// Ratio is the absolute size change in percent, rounded to one decimal.
	Ratio float64
	// Smaller is true when the output is smaller than the input.
	Smaller bool
}

// Compute measures input and output.
func Compute(input, output string) (Report, error) {
	r := Report{
		InputBytes:  len(input),
		InputLines:  countLines(input),
		OutputBytes: len(output),
		OutputLines: countLines(output),
	}

	if input != "" && output != "" {
		r.HasRatio = true
		r.Smaller = r.InputBytes > r.OutputBytes
		change := (1 - float64(r.OutputBytes)/float64(r.InputBytes)) * 100
		r.Ratio = math.Abs(math.Round(change*10) / 10)
	}

	size, err := GzipSize([]byte(output))
	if err != nil {
		return Report{}, err
	}
	r.GzipBytes = size

	return r, nil
}

// GzipSize returns the length of data compressed with gzip.
func GzipSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create gzip writer")
	}
	if _, err := w.Write(data); err != nil {
		return 0, errors.Wrap(err, "failed to compress output")
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrap(err, "failed to flush gzip writer")
	}
	return buf.Len(), nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders n with a binary unit and at most two decimals,
// for example "0 Bytes", "512 Bytes" or "1.5 KB".
func FormatBytes(n int) string {
	if n <= 0 {
		return "0 Bytes"
	}
	i, div := 0, 1
	for i < len(sizeUnits)-1 && n >= div*1024 {
		i++
		div *= 1024
	}
	value := float64(n) / float64(div)
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// Change renders the ratio as "42.5% smaller" or "10% larger". It is empty
// when the report has no ratio.
func (r Report) Change() string {
	if !r.HasRatio {
		return ""
	}
	direction := "larger"
	if r.Smaller {
		direction = "smaller"
	}
	return strconv.FormatFloat(r.Ratio, 'f', -1, 64) + "% " + direction
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Input:  %s, %d lines\n", FormatBytes(r.InputBytes), r.InputLines)
	fmt.Fprintf(&b, "Output: %s, %d lines\n", FormatBytes(r.OutputBytes), r.OutputLines)
	if change := r.Change(); change != "" {
		fmt.Fprintf(&b, "Change: %s\n", change)
	}
	fmt.Fprintf(&b, "Gzip:   %s", FormatBytes(r.GzipBytes))
	return b.String()
}
