package loadtest

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Trend collects request durations for one scenario.
type Trend struct {
	mu      sync.Mutex
	samples []time.Duration
}

// Add records one request duration.
func (t *Trend) Add(d time.Duration) {
	t.mu.Lock()
	t.samples = append(t.samples, d)
	t.mu.Unlock()
}

func (t *Trend) sorted() []time.Duration {
	t.mu.Lock()
	out := make([]time.Duration, len(t.samples))
	copy(out, t.samples)
	t.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *Trend) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.samples)
}

func (t *Trend) Min() time.Duration {
	s := t.sorted()
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func (t *Trend) Max() time.Duration {
	s := t.sorted()
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func (t *Trend) Avg() time.Duration {
	s := t.sorted()
	if len(s) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range s {
		sum += d
	}
	return sum / time.Duration(len(s))
}

// Percentile interpolates linearly between the closest ranks. p is in [0, 100].
func (t *Trend) Percentile(p float64) time.Duration {
	s := t.sorted()
	if len(s) == 0 {
		return 0
	}
	if p <= 0 {
		return s[0]
	}
	if p >= 100 {
		return s[len(s)-1]
	}
	pos := p / 100 * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return s[lo] + time.Duration(frac*float64(s[hi]-s[lo]))
}

// Rate is the share of failed checks among all checks of a scenario.
type Rate struct {
	mu     sync.Mutex
	failed int
	total  int
}

func (r *Rate) Add(failed bool) {
	r.mu.Lock()
	r.total++
	if failed {
		r.failed++
	}
	r.mu.Unlock()
}

func (r *Rate) Failed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *Rate) Value() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.total == 0 {
		return 0
	}
	return float64(r.failed) / float64(r.total)
}
