package common

import (
	"strconv"
	"strings"
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ParseUints splits s on whitespace and parses each field as a base-10
// uint64. A failure is returned as the *strconv.NumError naming the field.
func ParseUints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Sum adds up values.
func Sum[S ~[]E, E number](values S) E {
	var total E
	for _, v := range values {
		total += v
	}

	return total
}

// Product multiplies values. The product of no values is 1.
func Product[S ~[]E, E number](values S) E {
	total := E(1)
	for _, v := range values {
		total *= v
	}

	return total
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of values, or 0 for no values.
func LCM(values ...uint64) uint64 {
	if len(values) == 0 {
		return 0
	}

	result := values[0]
	for _, v := range values[1:] {
		if result == 0 || v == 0 {
			return 0
		}

		result = result / GCD(result, v) * v
	}

	return result
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](low, value, high T) bool {
	return low <= value && value <= high
}
