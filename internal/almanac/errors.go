package almanac

import (
	"errors"
	"fmt"
)

var (
	ErrNoPath           = errors.New("no path between categories")
	ErrRuleSetNotFound  = errors.New("rule set not found")
	ErrOverlappingRules = errors.New("overlapping rules")
	ErrEmptyRule        = errors.New("rule has zero length")
	ErrDuplicateRuleSet = errors.New("duplicate rule set")
	ErrOddSeedCount     = errors.New("seed ranges need an even number of values")
	ErrRuleOverflow     = errors.New("rule interval runs past the largest code")
	ErrRangeOverflow    = errors.New("range runs past the largest code")
	ErrCycle            = errors.New("category cycle detected")
	ErrMalformedHeader  = errors.New("malformed map header")
	ErrMalformedRule    = errors.New("rule needs destination start, source start and length")
	ErrRuleOutsideMap   = errors.New("rule line outside of a map block")
)

// NoPathError reports that two categories are not connected by any chain of
// rule sets in either direction.
type NoPathError struct {
	From Category
	To   Category
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from %q to %q", e.From, e.To)
}

func (e *NoPathError) Unwrap() error { return ErrNoPath }

// RuleSetNotFoundError means a resolved plan named a step the graph does not
// hold. It indicates an internal inconsistency, not bad input.
type RuleSetNotFoundError struct {
	Source      Category
	Destination Category
}

func (e *RuleSetNotFoundError) Error() string {
	return fmt.Sprintf("rule set %s-to-%s not found", e.Source, e.Destination)
}

func (e *RuleSetNotFoundError) Unwrap() error { return ErrRuleSetNotFound }

// SyntaxError describes malformed almanac text.
type SyntaxError struct {
	Line  int
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
