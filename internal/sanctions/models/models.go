package models

// Unknown is the sentinel for source fields the feed omits. Every entry keeps
// a non-empty UID and Type even when the upstream record has neither.
const Unknown = "Unknown"

// Mode selects how candidate names are compared against a query.
type Mode int

const (
	// ModeExact matches on case-insensitive substring containment.
	ModeExact Mode = iota
	// ModeFuzzy scores approximate similarity 0-100 and applies a threshold.
	ModeFuzzy
)

func (m Mode) String() string {
	if m == ModeFuzzy {
		return "fuzzy"
	}
	return "exact"
}

// Entry is one watchlist record. PrimaryName may be empty when the source
// record carries no name fields; such an entry is still matchable through its
// aliases. Aliases keep encounter order and are not deduplicated.
type Entry struct {
	UID         string
	Type        string
	PrimaryName string
	Aliases     []string
	Programs    []string
	Addresses   []string
	Remarks     string
}

// Dataset is a full parsed snapshot of the list. Immutable once constructed;
// a refresh builds a new Dataset and swaps it in whole.
type Dataset struct {
	Entries         []Entry
	PublicationDate string
}

// Candidate is one ranked match produced by a query. At most one Candidate
// exists per entry: the best-scoring of its primary name and aliases.
type Candidate struct {
	Entry       *Entry
	Score       int
	MatchedName string
	AliasMatch  bool
}
