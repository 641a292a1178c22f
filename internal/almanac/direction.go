package almanac

//go:generate go tool stringer -type=Direction -output=direction_string.go

// Direction is the way a plan traverses its rule sets.
type Direction int

const (
	Forward Direction = iota
	Reverse
)
