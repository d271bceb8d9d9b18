package pattern

// Per-placeholder point values used by Cost. A literal character
// contributes nothing; each placeholder adds the fixed value for its
// kind. Tags, size limits, case modes, special-character length ranges
// and emoji counts do not change a placeholder's value.
const (
	costSelector = 5
	costNumber   = 3
	costSpecial  = 4
	costEmoji    = 5
)

// Cost returns p's complexity score: the sum of its placeholders' point
// values. It is a cheap proxy for a pattern's relative output-space
// size, meant for ranking patterns, not for capacity accounting (see
// the generator package for that).
func Cost(p *Pattern) int {
	total := 0
	for _, ph := range p.Placeholders {
		switch ph.Kind {
		case KindSelector:
			total += costSelector
		case KindNumber:
			total += costNumber
		case KindSpecial:
			total += costSpecial
		case KindEmoji:
			total += costEmoji
		}
	}
	return total
}
