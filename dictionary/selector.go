package dictionary

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/slugkit/slugkit-generator/casing"
	"github.com/slugkit/slugkit-generator/errors"
)

// SizeOp is a size-limit comparison operator.
type SizeOp int

// The size-limit comparison operators a selector may apply to a word's
// length.
const (
	SizeEQ SizeOp = iota
	SizeNE
	SizeLT
	SizeLE
	SizeGT
	SizeGE
)

// SizeLimit is an optional predicate on a word's length.
type SizeLimit struct {
	Op    SizeOp
	Value int
}

// Matches reports whether n satisfies the size limit.
func (s SizeLimit) Matches(n int) bool {
	switch s.Op {
	case SizeEQ:
		return n == s.Value
	case SizeNE:
		return n != s.Value
	case SizeLT:
		return n < s.Value
	case SizeLE:
		return n <= s.Value
	case SizeGT:
		return n > s.Value
	case SizeGE:
		return n >= s.Value
	default:
		return false
	}
}

func (s SizeLimit) String() string {
	ops := map[SizeOp]string{SizeEQ: "==", SizeNE: "!=", SizeLT: "<", SizeLE: "<=", SizeGT: ">", SizeGE: ">="}
	return fmt.Sprintf("%s%d", ops[s.Op], s.Value)
}

// Selector picks a filtered sub-dictionary: a kind, an optional language,
// include/exclude tag sets, and an optional size predicate.
type Selector struct {
	Kind        string
	Language    string
	IncludeTags []string
	ExcludeTags []string
	SizeLimit   *SizeLimit
	// Options is currently always rejected for dictionary selectors
	// (§3): a selector carrying any entry here is a parse error.
	Options map[string]string

	caseType casing.Mode
}

// NewSelector validates and returns a new Selector. It enforces
// include_tags ∩ exclude_tags = ∅, returning the pattern syntax error
// built by [NewTagConflictError] on violation.
func NewSelector(kind, language string, include, exclude []string, size *SizeLimit, options map[string]string) (Selector, error) {
	for _, in := range include {
		for _, ex := range exclude {
			if in == ex {
				return Selector{}, NewTagConflictError(kind, in)
			}
		}
	}

	s := Selector{
		Kind:        kind,
		Language:    language,
		IncludeTags: append([]string(nil), include...),
		ExcludeTags: append([]string(nil), exclude...),
		SizeLimit:   size,
		Options:     options,
	}
	s.caseType = casing.Infer(kind)
	return s, nil
}

// CaseType returns the selector's inferred case mode, derived from the
// capitalization of Kind.
func (s Selector) CaseType() casing.Mode {
	return s.caseType
}

// IsNSFW reports whether the selector explicitly opts into NSFW content:
// true iff IncludeTags contains "nsfw". The inverted predicate described
// in the original implementation (safe unless excluded) is not
// reproduced; a selector is safe by default.
func (s Selector) IsNSFW() bool {
	for _, t := range s.IncludeTags {
		if t == "nsfw" {
			return true
		}
	}
	return false
}

// Hash returns a deterministic 64-bit hash of the selector's filtering
// criteria and case mode, used as the filtered-view cache key (a cached
// view carries the case mode of the selector that built it). Tag sets are sorted
// before hashing so that selectors differing only in tag order hash
// identically; [Word.Tags] output order, which callers may rely on, is
// unaffected since this is purely an internal cache key.
func (s Selector) Hash() uint64 {
	h := fnv.New64a()

	include := append([]string(nil), s.IncludeTags...)
	exclude := append([]string(nil), s.ExcludeTags...)
	sort.Strings(include)
	sort.Strings(exclude)

	fmt.Fprintf(h, "%s\x00%s\x00+%s\x00-%s\x00%v\x00",
		strings.ToLower(s.Kind),
		s.Language,
		strings.Join(include, ","),
		strings.Join(exclude, ","),
		s.caseType,
	)
	if s.SizeLimit != nil {
		fmt.Fprintf(h, "%s", s.SizeLimit.String())
	}

	return h.Sum64()
}

// NewTagConflictError returns a [errors.GeneratorError] reporting that
// tag appears in both the include and exclude sets of a selector for
// kind.
func NewTagConflictError(kind, tag string) error {
	return errors.NewPatternSyntaxError(0, "selector %q: tag %q is both included and excluded", kind, tag)
}
