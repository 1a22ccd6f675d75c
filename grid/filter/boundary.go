package filter

import "fmt"

// Extrapolation names a boundary policy that synthesizes image values
// beyond the grid edges for same-shape filtering.
type Extrapolation int

const (
	// Reflect extends by reflecting about the edge of the last element,
	// repeating it: d c b a | a b c d | d c b a.
	Reflect Extrapolation = iota

	// Constant extends with zeros: 0 0 0 0 | a b c d | 0 0 0 0.
	Constant

	// Nearest replicates the edge element: a a a a | a b c d | d d d d.
	Nearest

	// Wrap extends periodically: a b c d | a b c d | a b c d.
	Wrap

	// Mirror reflects about the center of the last element, not
	// repeating it: d c b | a b c d | c b a.
	Mirror
)

// extrapolationNames maps policies to their command-line names.
var extrapolationNames = map[Extrapolation]string{
	Reflect:  "reflect",
	Constant: "constant",
	Nearest:  "nearest",
	Wrap:     "wrap",
	Mirror:   "mirror",
}

// String returns the policy's name.
func (e Extrapolation) String() string {
	if name, ok := extrapolationNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Extrapolation(%d)", int(e))
}

// ParseExtrapolation resolves a policy name to an Extrapolation.
// Returns ErrUnknownExtrapolation for names it does not recognize.
func ParseExtrapolation(name string) (Extrapolation, error) {
	for e, n := range extrapolationNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExtrapolation, name)
}

// ExtrapolationNames returns the recognized policy names in a stable order.
func ExtrapolationNames() []string {
	order := []Extrapolation{Reflect, Constant, Nearest, Wrap, Mirror}
	names := make([]string, len(order))
	for i, e := range order {
		names[i] = extrapolationNames[e]
	}
	return names
}

// extend maps an index into [0, n) according to the boundary policy.
// Returns -1 when the policy synthesizes a constant zero instead of
// reading the grid (Constant policy, out-of-range index).
func extend(i, n int, policy Extrapolation) int {
	if i >= 0 && i < n {
		return i
	}

	switch policy {
	case Constant:
		return -1

	case Nearest:
		if i < 0 {
			return 0
		}
		return n - 1

	case Wrap:
		return ((i % n) + n) % n

	case Mirror:
		if n == 1 {
			return 0
		}
		period := 2*n - 2
		i = ((i % period) + period) % period
		if i >= n {
			i = period - i
		}
		return i

	default: // Reflect
		if n == 1 {
			return 0
		}
		period := 2 * n
		i = ((i % period) + period) % period
		if i >= n {
			i = period - 1 - i
		}
		return i
	}
}
