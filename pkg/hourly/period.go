// Package hourly provides a validated, gap-free hourly timeline abstraction.
//
// A Period wraps an ordered sequence of hour moments (values carrying an
// hour-truncated timestamp) and offers read-only views of it: single hours,
// hour ranges, calendar days, day ranges, and day-spanning windows for
// continuous charts. Periods are immutable after construction and may be
// shared freely across goroutines.
package hourly

import (
	"errors"
	"fmt"
	"time"
)

// HourMoment is the capability an element type must satisfy: it exposes the
// hour-truncated timestamp the value belongs to.
type HourMoment interface {
	Hour() time.Time
}

// HourSequence exposes the timestamp sequence of a period regardless of its
// element type. Every Period implements it.
type HourSequence interface {
	Hours() []time.Time
}

// ErrEmptyPeriod is returned by New when the candidate sequence has no moments.
var ErrEmptyPeriod = errors.New("hourly: period must contain at least one moment")

// Period is a non-empty, strictly ascending sequence of hour moments in which
// every consecutive pair is exactly one hour apart. The zero value is invalid;
// use New or Must.
type Period[T HourMoment] struct {
	moments []T
}

// New validates the candidate sequence and wraps it in a Period. It fails if
// the sequence is empty, out of order, or has a gap or duplicate in its hourly
// spacing. The input slice is copied; later mutation of it does not affect the
// returned Period.
func New[T HourMoment](moments []T) (Period[T], error) {
	if len(moments) == 0 {
		return Period[T]{}, ErrEmptyPeriod
	}

	for i := 1; i < len(moments); i++ {
		prev := moments[i-1].Hour()
		cur := moments[i].Hour()
		if d := cur.Sub(prev); d != time.Hour {
			return Period[T]{}, fmt.Errorf("hourly: moments %d and %d are %s apart, want exactly 1h (%s -> %s)",
				i-1, i, d, prev.Format(time.RFC3339), cur.Format(time.RFC3339))
		}
	}

	owned := make([]T, len(moments))
	copy(owned, moments)
	return Period[T]{moments: owned}, nil
}

// Must is like New but panics on an invalid sequence. Intended for sequences
// the caller has already guaranteed, such as literals in tests.
func Must[T HourMoment](moments []T) Period[T] {
	p, err := New(moments)
	if err != nil {
		panic(err)
	}
	return p
}

// sub rebuilds a Period from a contiguous slice of an already-valid one,
// re-running the full construction checks.
func sub[T HourMoment](moments []T) Period[T] {
	p, err := New(moments)
	if err != nil {
		panic(fmt.Sprintf("hourly: derived period failed validation: %v", err))
	}
	return p
}

// Len returns the number of moments in the period.
func (p Period[T]) Len() int { return len(p.moments) }

// Moments returns a copy of the underlying sequence.
func (p Period[T]) Moments() []T {
	out := make([]T, len(p.moments))
	copy(out, p.moments)
	return out
}

// First returns the earliest moment.
func (p Period[T]) First() T { return p.moments[0] }

// Last returns the latest moment.
func (p Period[T]) Last() T { return p.moments[len(p.moments)-1] }

// Start returns the hour of the earliest moment.
func (p Period[T]) Start() time.Time { return p.moments[0].Hour() }

// End returns the hour of the latest moment.
func (p Period[T]) End() time.Time { return p.moments[len(p.moments)-1].Hour() }

// Hours returns the timestamp sequence of the period.
func (p Period[T]) Hours() []time.Time {
	out := make([]time.Time, len(p.moments))
	for i, m := range p.moments {
		out[i] = m.Hour()
	}
	return out
}

// indexOf locates the moment at the given (already truncated) hour. The
// contiguity invariant makes this a constant-time offset computation.
func (p Period[T]) indexOf(hour time.Time) (int, bool) {
	d := hour.Sub(p.Start())
	if d < 0 || d%time.Hour != 0 {
		return 0, false
	}
	i := int(d / time.Hour)
	if i >= len(p.moments) {
		return 0, false
	}
	return i, true
}

// At returns the moment whose hour equals the given timestamp truncated to the
// hour, or false if that hour is outside the period.
func (p Period[T]) At(hour time.Time) (T, bool) {
	i, ok := p.indexOf(hour.Truncate(time.Hour))
	if !ok {
		var zero T
		return zero, false
	}
	return p.moments[i], true
}

// takeCount unpacks an optional take argument. A non-positive count is a
// programmer error and panics.
func takeCount(take []int) (int, bool) {
	switch len(take) {
	case 0:
		return 0, false
	case 1:
		if take[0] <= 0 {
			panic(fmt.Sprintf("hourly: take count must be positive, got %d", take[0]))
		}
		return take[0], true
	default:
		panic("hourly: at most one take count may be given")
	}
}

// Until returns the prefix of the period ending one hour before exclusiveHour,
// optionally limited to the last take moments of that prefix. It returns false
// if the hour immediately preceding exclusiveHour is not in the period.
func (p Period[T]) Until(exclusiveHour time.Time, take ...int) (Period[T], bool) {
	n, limited := takeCount(take)

	last := exclusiveHour.Truncate(time.Hour).Add(-time.Hour)
	i, ok := p.indexOf(last)
	if !ok {
		return Period[T]{}, false
	}

	prefix := p.moments[:i+1]
	if limited && n < len(prefix) {
		prefix = prefix[len(prefix)-n:]
	}
	return sub(prefix), true
}

// From returns the suffix of the period starting at inclusiveHour (truncated
// to the hour), optionally limited to the first take moments. It returns false
// if the hour is not in the period.
func (p Period[T]) From(inclusiveHour time.Time, take ...int) (Period[T], bool) {
	n, limited := takeCount(take)

	i, ok := p.indexOf(inclusiveHour.Truncate(time.Hour))
	if !ok {
		return Period[T]{}, false
	}

	suffix := p.moments[i:]
	if limited && n < len(suffix) {
		suffix = suffix[:n]
	}
	return sub(suffix), true
}

// dayGroups splits the sequence into consecutive runs sharing a calendar date,
// preserving first-seen date order.
func (p Period[T]) dayGroups() [][]T {
	var groups [][]T
	start := 0
	for i := 1; i < len(p.moments); i++ {
		if !sameDate(p.moments[i].Hour(), p.moments[start].Hour()) {
			groups = append(groups, p.moments[start:i])
			start = i
		}
	}
	return append(groups, p.moments[start:])
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayAt returns the sub-period covering the given calendar date, or false if
// the period does not reach that date.
func (p Period[T]) DayAt(day time.Time) (Period[T], bool) {
	days, ok := p.DaysFrom(day, 1)
	if !ok {
		return Period[T]{}, false
	}
	return days[0], true
}

// DaysFrom returns the per-day sub-periods starting at the given calendar
// date, in order, optionally limited to takeDays consecutive days. It returns
// false if the date is not covered by the period.
func (p Period[T]) DaysFrom(day time.Time, takeDays ...int) ([]Period[T], bool) {
	n, limited := takeCount(takeDays)

	groups := p.dayGroups()
	start := -1
	for i, g := range groups {
		if sameDate(g[0].Hour(), day) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	groups = groups[start:]
	if limited && n < len(groups) {
		groups = groups[:n]
	}

	days := make([]Period[T], len(groups))
	for i, g := range groups {
		days[i] = sub(g)
	}
	return days, true
}

// ContiguousDaysFrom is DaysFrom with every returned day except the last
// extended by the first moment of the following day, producing day-spanning
// windows that keep charts continuous across midnight. The last returned day
// is never extended, even when the period holds more data beyond it.
func (p Period[T]) ContiguousDaysFrom(day time.Time, takeDays ...int) ([]Period[T], bool) {
	n, limited := takeCount(takeDays)

	groups := p.dayGroups()
	start := -1
	for i, g := range groups {
		if sameDate(g[0].Hour(), day) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	groups = groups[start:]
	if limited && n < len(groups) {
		groups = groups[:n]
	}

	days := make([]Period[T], len(groups))
	for i, g := range groups {
		if i < len(groups)-1 {
			window := make([]T, 0, len(g)+1)
			window = append(window, g...)
			window = append(window, groups[i+1][0])
			days[i] = sub(window)
			continue
		}
		days[i] = sub(g)
	}
	return days, true
}

// Matches reports whether both periods carry identical timestamp sequences.
// The values at those timestamps are not compared.
func (p Period[T]) Matches(other Period[T]) bool {
	if len(p.moments) != len(other.moments) {
		return false
	}
	for i := range p.moments {
		if !p.moments[i].Hour().Equal(other.moments[i].Hour()) {
			return false
		}
	}
	return true
}

// RequireMatching asserts that all given periods carry identical timestamp
// sequences, panicking if any pair diverges. Call it before zipping the values
// of separately built periods, such as temperature and precipitation series
// displayed at the same hours.
func RequireMatching(periods ...HourSequence) {
	if len(periods) < 2 {
		return
	}

	ref := periods[0].Hours()
	for i, p := range periods[1:] {
		hours := p.Hours()
		if len(hours) != len(ref) {
			panic(fmt.Sprintf("hourly: period %d has %d moments, want %d", i+1, len(hours), len(ref)))
		}
		for j := range hours {
			if !hours[j].Equal(ref[j]) {
				panic(fmt.Sprintf("hourly: period %d diverges at index %d: %s != %s",
					i+1, j, hours[j].Format(time.RFC3339), ref[j].Format(time.RFC3339)))
			}
		}
	}
}
