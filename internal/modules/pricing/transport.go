package pricing

import (
	"strings"

	"makeupstudio/internal/domain"
)

// TransportQuote is the outcome of a district lookup. A miss is not an error:
// Found=false with Cost=0 means no surcharge is known for the area.
type TransportQuote struct {
	Found bool    `json:"found"`
	Cost  float64 `json:"cost"`
	Notes string  `json:"notes,omitempty"`
}

// TransportLookup resolves district names against an in-memory snapshot of the
// admin-curated transport table.
type TransportLookup struct {
	entries []domain.TransportCost
}

func NewTransportLookup(entries []domain.TransportCost) *TransportLookup {
	return &TransportLookup{entries: entries}
}

// Lookup matches the district case-insensitively against active entries.
// Whole-string equality only, no fuzzy or partial matching.
func (l *TransportLookup) Lookup(district string) TransportQuote {
	name := strings.TrimSpace(district)
	for _, e := range l.entries {
		if !e.IsActive {
			continue
		}
		if strings.EqualFold(e.District, name) {
			return TransportQuote{Found: true, Cost: e.Cost, Notes: e.Notes}
		}
	}
	return TransportQuote{}
}
