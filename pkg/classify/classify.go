// Package classify implements breakpoint classification: mapping continuous
// values into a finite ordered set of labeled bins. It backs both feature
// column derivation and raster reclassification.
package classify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NoCategory marks a value that could not be classified: outside the break
// range, NaN, or equal to the missing-value sentinel. It is always emitted in
// place, never dropped, so output length equals input length. Labels may not
// be empty, which keeps the marker unambiguous.
const NoCategory = ""

// Options configures bin-edge behavior.
type Options struct {
	// IncludeLowest closes the first bin on the left, so a value equal to
	// breaks[0] lands in the first bin instead of NoCategory.
	IncludeLowest bool

	// Sentinel, when set, marks a missing value. Values equal to it map to
	// NoCategory without being binned.
	Sentinel    float64
	HasSentinel bool
}

// DefaultOptions returns the default classification options.
//
// Bins are right-closed intervals (breaks[i], breaks[i+1]] and the lowest
// break is included, following the usual statistical binning convention.
func DefaultOptions() Options {
	return Options{IncludeLowest: true}
}

// Intervals validates a breakpoint list against its labels: at least 2
// breaks, strictly increasing, exactly one label per interval, no empty
// labels. Returns ErrBreakpoint on violation.
func Intervals(breaks []float64, labels []string) error {
	if len(breaks) < 2 {
		return &ErrBreakpoint{Reason: fmt.Sprintf("need at least 2 breakpoints, got %d", len(breaks))}
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			return &ErrBreakpoint{
				Reason: fmt.Sprintf("breakpoints must be strictly increasing: breaks[%d]=%v, breaks[%d]=%v",
					i-1, breaks[i-1], i, breaks[i]),
			}
		}
	}
	if len(labels) != len(breaks)-1 {
		return &ErrBreakpoint{
			Reason: fmt.Sprintf("%d breakpoints define %d intervals but %d labels were supplied",
				len(breaks), len(breaks)-1, len(labels)),
		}
	}
	for i, label := range labels {
		if label == NoCategory {
			return &ErrBreakpoint{Reason: fmt.Sprintf("label %d is empty", i)}
		}
	}
	return nil
}

// Value classifies a single value. The breaks and labels are assumed to have
// passed Intervals.
func Value(v float64, breaks []float64, labels []string, opts Options) string {
	if math.IsNaN(v) {
		return NoCategory
	}
	if opts.HasSentinel && v == opts.Sentinel {
		return NoCategory
	}
	if opts.IncludeLowest && v == breaks[0] {
		return labels[0]
	}
	for i := 0; i < len(labels); i++ {
		if v > breaks[i] && v <= breaks[i+1] {
			return labels[i]
		}
	}
	return NoCategory
}

// Slice classifies every element of values, preserving order and length.
// Returns ErrBreakpoint when the breaks or labels are invalid.
func Slice(values []float64, breaks []float64, labels []string, opts Options) ([]string, error) {
	if err := Intervals(breaks, labels); err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Value(v, breaks, labels, opts)
	}
	return out, nil
}

// EqualBreaks returns n+1 evenly spaced breakpoints spanning [min, max].
// Returns ErrBreakpoint when n < 1 or the span is empty.
func EqualBreaks(min, max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, &ErrBreakpoint{Reason: fmt.Sprintf("need at least 1 interval, got %d", n)}
	}
	if !(max > min) {
		return nil, &ErrBreakpoint{Reason: fmt.Sprintf("empty span: min=%v max=%v", min, max)}
	}
	breaks := make([]float64, n+1)
	floats.Span(breaks, min, max)
	return breaks, nil
}
