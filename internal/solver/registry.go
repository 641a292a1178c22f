package solver

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent-solver/internal/match"
)

var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("day already registered")
)

// UnknownDayError names a day that is not registered, with close matches.
type UnknownDayError struct {
	Key         string
	Suggestions []string
}

func (e *UnknownDayError) Error() string {
	msg := fmt.Sprintf("unknown day %q", e.Key)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *UnknownDayError) Unwrap() error { return ErrUnknownDay }

// Registry holds the known days.
type Registry struct {
	days map[int]Day
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Add registers a day. Numbers and names must be unique.
func (r *Registry) Add(d Day) error {
	if d.Solve == nil {
		return fmt.Errorf("day %d (%s): nil solve function", d.Number, d.Name)
	}

	for _, existing := range r.days {
		if existing.Number == d.Number || existing.Name == d.Name {
			return fmt.Errorf("%w: day %d (%s)", ErrDuplicateDay, d.Number, d.Name)
		}
	}

	r.days[d.Number] = d

	return nil
}

// Get returns the day with the given number.
func (r *Registry) Get(number int) (Day, bool) {
	d, ok := r.days[number]
	return d, ok
}

// Lookup resolves a day by number ("5") or name ("seeds").
func (r *Registry) Lookup(key string) (Day, error) {
	key = strings.TrimSpace(key)

	if n, err := strconv.Atoi(key); err == nil {
		if d, ok := r.days[n]; ok {
			return d, nil
		}

		return Day{}, &UnknownDayError{Key: key}
	}

	for _, d := range r.days {
		if match.Normalize(d.Name) == match.Normalize(key) {
			return d, nil
		}
	}

	return Day{}, &UnknownDayError{
		Key:         key,
		Suggestions: match.Suggest(key, r.Names(), 3, match.DefaultThreshold),
	}
}

// All returns every day ordered by number.
func (r *Registry) All() []Day {
	days := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		days = append(days, d)
	}

	slices.SortFunc(days, func(a, b Day) int { return cmp.Compare(a.Number, b.Number) })

	return days
}

// Names returns the day names ordered by number.
func (r *Registry) Names() []string {
	all := r.All()

	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.Name)
	}

	return names
}
