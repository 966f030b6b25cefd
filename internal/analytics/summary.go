package analytics

import (
	"math"
	"sort"
)

// Summary holds aggregate statistics for a numeric series. An empty
// series leaves every value nil rather than reporting a misleading
// zero; the standard deviation additionally needs at least two samples
// to be meaningful.
type Summary struct {
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	StdDev *float64 `json:"std_dev,omitempty"`
}

// Summarize computes count, mean, min, max and the population standard
// deviation (divide by N, not N-1) of a series. The population form is
// deliberate: each window is treated as the complete set of games under
// analysis, not a sample of a larger one.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	min, max, sum := values[0], values[0], 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(values))
	s.Mean, s.Min, s.Max = &mean, &min, &max

	if len(values) >= 2 {
		var sqDiff float64
		for _, v := range values {
			d := v - mean
			sqDiff += d * d
		}
		sd := math.Sqrt(sqDiff / float64(len(values)))
		s.StdDev = &sd
	}

	return s
}

// Rounded returns a copy with mean and standard deviation rounded to
// one decimal, the precision the API has always reported.
func (s Summary) Rounded() Summary {
	if s.Mean != nil {
		m := round1(*s.Mean)
		s.Mean = &m
	}
	if s.StdDev != nil {
		sd := round1(*s.StdDev)
		s.StdDev = &sd
	}
	return s
}

func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var m float64
	if n := len(sorted); n%2 == 1 {
		m = sorted[n/2]
	} else {
		m = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return &m
}

// quantile returns the q-th quantile (0..1) of a series using linear
// interpolation between closest ranks.
func quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
