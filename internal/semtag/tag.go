// Package semtag parses and orders the version-shaped tags used to pin
// git-sourced Terraform modules, such as "v1.2.0" or "v2.0.0-rc1".
//
// The grammar is deliberately looser than strict semantic versioning:
// any leading run of non-digit characters is a prefix, and the minor
// and patch segments may each be absent entirely. An absent segment is
// not the same as zero; it only orders as zero.
package semtag

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// tagPattern decomposes a raw tag string. Every part is optional and
// the pattern is unanchored at the end, so it matches any input: a
// digit-free string is all prefix.
var tagPattern = regexp.MustCompile(`^(\D*)(?:(\d+)(?:\.(\d+)(?:\.(\d+))?)?)?(?:-rc(\d+))?`)

// Tag is the structured form of a single tag string. Raw always holds
// the exact input, so rewriting can locate the tag verbatim. The
// numeric fields are nil when the corresponding segment is absent from
// the input.
type Tag struct {
	Raw    string
	Prefix string

	Major            *int
	Minor            *int
	Patch            *int
	ReleaseCandidate *int
}

func (t Tag) String() string {
	return t.Raw
}

// ParseOverflowError is returned when a numeric segment of a tag does
// not fit in a signed 32-bit integer. Such tags are rejected outright
// rather than silently truncated.
type ParseOverflowError struct {
	Raw     string
	Segment string
}

func (e *ParseOverflowError) Error() string {
	return fmt.Sprintf("tag %q: segment %q overflows a 32-bit integer", e.Raw, e.Segment)
}

// Parse decomposes a raw tag string. It succeeds for any input; the
// only possible error is a *ParseOverflowError for a numeric segment
// too large to represent.
func Parse(raw string) (Tag, error) {
	match := tagPattern.FindStringSubmatch(raw)

	tag := Tag{
		Raw:    raw,
		Prefix: match[1],
	}

	for i, field := range []**int{&tag.Major, &tag.Minor, &tag.Patch, &tag.ReleaseCandidate} {
		part := match[i+2]
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			// The pattern only captures digit runs, so the only way
			// ParseInt can fail here is a value out of range.
			return Tag{}, &ParseOverflowError{Raw: raw, Segment: part}
		}
		v := int(n)
		*field = &v
	}

	return tag, nil
}

// segment returns the ordering value of an optional numeric segment.
// Absent segments order as zero.
func segment(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Compare defines a total order over tags using the key
// (major, minor, patch, release candidate), each defaulting to zero
// when absent. A tag carrying a release-candidate marker sorts
// strictly below the final release with the same triple, and a smaller
// candidate number sorts below a larger one. Prefixes never take part
// in ordering.
func Compare(a, b Tag) int {
	if c := compareInts(segment(a.Major), segment(b.Major)); c != 0 {
		return c
	}
	if c := compareInts(segment(a.Minor), segment(b.Minor)); c != 0 {
		return c
	}
	if c := compareInts(segment(a.Patch), segment(b.Patch)); c != 0 {
		return c
	}

	aRC := a.ReleaseCandidate != nil
	bRC := b.ReleaseCandidate != nil
	switch {
	case aRC && !bRC:
		return -1
	case !aRC && bRC:
		return 1
	case aRC && bRC:
		return compareInts(*a.ReleaseCandidate, *b.ReleaseCandidate)
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Max returns the greatest tag in the given list. When several tags
// compare equal, the earliest one wins, so the result is stable with
// respect to input order.
func Max(tags []Tag) (Tag, error) {
	if len(tags) == 0 {
		return Tag{}, errors.New("no tags to select from")
	}
	best := tags[0]
	for _, t := range tags[1:] {
		if Compare(t, best) > 0 {
			best = t
		}
	}
	return best, nil
}

// MaxForMajor returns the greatest tag among those whose major version
// equals the given value. Tags with no major segment count as major
// zero, consistent with Compare.
func MaxForMajor(major int, tags []Tag) (Tag, error) {
	var matching []Tag
	for _, t := range tags {
		if segment(t.Major) == major {
			matching = append(matching, t)
		}
	}
	if len(matching) == 0 {
		return Tag{}, fmt.Errorf("no tags with major version %d", major)
	}
	return Max(matching)
}

// ContainsRaw reports whether any tag in the list has the given raw
// string. Selection is only attempted for a module whose current tag
// the repository itself knows about, so that unrecognized version
// formats are never replaced by guesswork.
func ContainsRaw(tags []Tag, raw string) bool {
	for _, t := range tags {
		if t.Raw == raw {
			return true
		}
	}
	return false
}
