package reference

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sed/astro/core"
)

// ErrFormat reports a malformed line in a sampled spectrum.
var ErrFormat = errors.New("reference: malformed sample")

// Sampled is a spectrum sampled at ascending frequencies.
type Sampled struct {
	Nu  []float64
	SED []float64
}

// Len returns the number of samples.
func (s *Sampled) Len() int { return len(s.Nu) }

// Read parses a two-column sampled spectrum.
func Read(r io.Reader) (*Sampled, error) {
	s := &Sampled{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want two columns, got %d", ErrFormat, line, len(fields))
		}

		nu, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: frequency: %w", ErrFormat, line, err)
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flux: %w", ErrFormat, line, err)
		}
		if !(nu > 0) || math.IsInf(nu, 1) {
			return nil, fmt.Errorf("%w: line %d: frequency %v must be positive", ErrFormat, line, nu)
		}
		if n := len(s.Nu); n > 0 && !(nu > s.Nu[n-1]) {
			return nil, fmt.Errorf("%w: line %d: frequencies must ascend", ErrFormat, line)
		}

		s.Nu = append(s.Nu, nu)
		s.SED = append(s.SED, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reference: read: %w", err)
	}

	return s, nil
}

// Load reads a sampled spectrum from a file.
func Load(path string) (*Sampled, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits nu and sed as comma-separated lines with a header comment.
func Write(w io.Writer, nu, sed []float64) error {
	if len(nu) != len(sed) {
		return fmt.Errorf("reference: %w: %d frequencies but %d flux values", core.ErrDomain, len(nu), len(sed))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# nu [Hz], nuFnu [erg cm-2 s-1]")
	for i := range nu {
		fmt.Fprintf(bw, "%.10e,%.10e\n", nu[i], sed[i])
	}

	return bw.Flush()
}

// Band restricts a comparison to Min ≤ ν ≤ Max. A zero bound is open.
type Band struct {
	Min float64
	Max float64
}

func (b Band) contains(nu float64) bool {
	return (b.Min == 0 || nu >= b.Min) && (b.Max == 0 || nu <= b.Max)
}

// Deviation returns |1 − got[i]/ref[i]| for every point. A zero reference
// point yields 0 if got is also zero and +Inf otherwise.
func Deviation(ref, got []float64) ([]float64, error) {
	if len(ref) != len(got) {
		return nil, fmt.Errorf("reference: %w: %d reference but %d computed values", core.ErrDomain, len(ref), len(got))
	}

	out := make([]float64, len(ref))
	for i := range ref {
		switch {
		case ref[i] != 0:
			out[i] = math.Abs(1 - got[i]/ref[i])
		case got[i] == 0:
			out[i] = 0
		default:
			out[i] = math.Inf(1)
		}
	}

	return out, nil
}

// Report summarizes the deviations inside a band.
type Report struct {
	// Points counts the samples inside the band.
	Points int
	// MaxDeviation is the largest deviation in the band and MaxIndex the
	// sample it occurs at, −1 if the band is empty.
	MaxDeviation float64
	MaxIndex     int
	// MeanDeviation is the mean deviation in the band.
	MeanDeviation float64
}

// Compare measures the deviation of got from ref inside band.
func Compare(nu, ref, got []float64, band Band) (Report, error) {
	if len(nu) != len(ref) {
		return Report{}, fmt.Errorf("reference: %w: %d frequencies but %d reference values", core.ErrDomain, len(nu), len(ref))
	}
	dev, err := Deviation(ref, got)
	if err != nil {
		return Report{}, err
	}

	r := Report{MaxIndex: -1}
	sum := 0.0
	for i, d := range dev {
		if !band.contains(nu[i]) {
			continue
		}
		r.Points++
		sum += d
		if r.MaxIndex < 0 || d > r.MaxDeviation || math.IsNaN(d) {
			r.MaxDeviation = d
			r.MaxIndex = i
		}
	}
	if r.Points > 0 {
		r.MeanDeviation = sum / float64(r.Points)
	}

	return r, nil
}

// WithinBounds reports whether every deviation inside band lies in
// [lower, upper].
func WithinBounds(nu, ref, got []float64, lower, upper float64, band Band) (bool, error) {
	if len(nu) != len(ref) {
		return false, fmt.Errorf("reference: %w: %d frequencies but %d reference values", core.ErrDomain, len(nu), len(ref))
	}
	dev, err := Deviation(ref, got)
	if err != nil {
		return false, err
	}

	for i, d := range dev {
		if band.contains(nu[i]) && !(d >= lower && d <= upper) {
			return false, nil
		}
	}

	return true, nil
}
