package meta

// Strategy is the search plan chosen for a program.
type Strategy int

const (
	// UseBacktrack tries the matcher at every offset.
	UseBacktrack Strategy = iota

	// UseAnchored tries the matcher at offset 0 only ('^' programs).
	UseAnchored

	// UsePrefilter tries the matcher at prefilter candidates only.
	UsePrefilter

	// UseLiteral answers from the prefilter alone; the program is a set of
	// literals and a candidate is a match.
	UseLiteral
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "UseBacktrack"
	case UseAnchored:
		return "UseAnchored"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}
