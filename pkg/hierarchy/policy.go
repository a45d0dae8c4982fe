package hierarchy

// Strategy selects one marker among the markers found for a level, by depth.
// Depth 0 is the directory of the document, and grows toward the vault root.
type Strategy int

const (
	// Nearest prefers the marker closest to the document
	Nearest Strategy = iota

	// Outermost prefers the marker closest to the vault root
	Outermost
)

func (s Strategy) String() string {
	if s == Outermost {
		return "outermost"
	}
	return "nearest"
}

func (s Strategy) prefers(candidate, current int) bool {
	if s == Outermost {
		return candidate > current
	}
	return candidate < current
}

// Policy maps each level to the strategy selecting its marker.
// Levels missing from the policy use Nearest.
type Policy map[Level]Strategy

// DefaultPolicy: a program is a vault-wide boundary and follows its outermost declaration,
// courses and classes follow the declaration nearest to the document.
var DefaultPolicy = Policy{
	Program: Outermost,
	Course:  Nearest,
	Class:   Nearest,
}

// Strategy for some level
func (p Policy) Strategy(l Level) Strategy {
	if s, ok := p[l]; ok {
		return s
	}
	return Nearest
}

// Select the marker for a level. When several markers are found at the same depth,
// the first one in directory order wins.
func (p Policy) Select(l Level, markers []Marker) (Marker, bool) {
	strategy := p.Strategy(l)
	var (
		best  Marker
		found bool
	)
	for _, m := range markers {
		if m.Level != l {
			continue
		}
		if !found || strategy.prefers(m.Depth, best.Depth) {
			best = m
			found = true
		}
	}
	return best, found
}
