package semtag

import "fmt"

// Strategy names a policy for choosing a replacement tag among those a
// repository offers.
type Strategy string

const (
	// StrategyHighest selects the highest tag overall, crossing major
	// version boundaries freely.
	StrategyHighest Strategy = "highest-semver"

	// StrategyHighestCurrentMajor selects the highest tag that shares
	// the current tag's major version, never crossing a major boundary
	// even when a higher major exists.
	StrategyHighestCurrentMajor Strategy = "highest-semver-current-major"
)

// ParseStrategy resolves a strategy name given on the command line.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyHighest, StrategyHighestCurrentMajor:
		return Strategy(name), nil
	}
	return "", fmt.Errorf("unknown selection strategy %q (expected %q or %q)",
		name, StrategyHighest, StrategyHighestCurrentMajor)
}

// Select picks the replacement tag for a module currently pinned at
// current, from the tags available for its repository. Callers are
// expected to have already checked that current is one of the
// available tags (see ContainsRaw).
func (s Strategy) Select(current Tag, available []Tag) (Tag, error) {
	switch s {
	case StrategyHighest:
		return Max(available)
	case StrategyHighestCurrentMajor:
		return MaxForMajor(segment(current.Major), available)
	}
	return Tag{}, fmt.Errorf("unknown selection strategy %q", string(s))
}
