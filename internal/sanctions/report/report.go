package report

import (
	"fmt"
	"strings"

	"regguard/internal/sanctions/models"
)

const (
	maxResults   = 5
	maxAKAs      = 3
	maxAddresses = 2
	maxRemarks   = 200
)

// Render projects ranked candidates into the human-readable report. It does
// no matching of its own, which keeps it snapshot-testable in isolation.
func Render(candidates []models.Candidate, query string, mode models.Mode, publicationDate string) string {
	if len(candidates) == 0 {
		return fmt.Sprintf(
			"NO SANCTIONS MATCH\nList Published: %s\nSearch: '%s' (%s search)\nNo matches found on the OFAC SDN list.",
			publicationDate, query, mode,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "OFAC SANCTIONS MATCH - %d result(s) (%s search)\n", len(candidates), mode)
	fmt.Fprintf(&b, "List Published: %s\n", publicationDate)
	fmt.Fprintf(&b, "Search: '%s'\n", query)
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")

	shown := candidates
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}
	for i, candidate := range shown {
		b.WriteString("\n")
		writeCandidate(&b, i+1, candidate, mode)
	}
	return b.String()
}

func writeCandidate(b *strings.Builder, rank int, c models.Candidate, mode models.Mode) {
	displayName := c.Entry.PrimaryName
	if displayName == "" {
		displayName = c.MatchedName
	}
	fmt.Fprintf(b, "MATCH #%d: %s", rank, displayName)
	if mode == models.ModeFuzzy && c.Score < 100 {
		fmt.Fprintf(b, " (%d%% match)", c.Score)
	}
	fmt.Fprintf(b, "\n  Type: %s", c.Entry.Type)
	if len(c.Entry.Programs) > 0 {
		fmt.Fprintf(b, "\n  Program: %s", strings.Join(c.Entry.Programs, ", "))
	}
	if c.AliasMatch && c.MatchedName != c.Entry.PrimaryName {
		fmt.Fprintf(b, "\n  Matched: %s", c.MatchedName)
	}
	if akas := c.Entry.Aliases; len(akas) > 0 {
		if len(akas) > maxAKAs {
			akas = akas[:maxAKAs]
		}
		fmt.Fprintf(b, "\n  AKAs: %s", strings.Join(akas, ", "))
	}
	if addrs := c.Entry.Addresses; len(addrs) > 0 {
		b.WriteString("\n  Addresses:")
		if len(addrs) > maxAddresses {
			addrs = addrs[:maxAddresses]
		}
		for _, addr := range addrs {
			fmt.Fprintf(b, "\n    - %s", addr)
		}
	}
	if c.Entry.Remarks != "" {
		remarks := c.Entry.Remarks
		if len(remarks) > maxRemarks {
			remarks = remarks[:maxRemarks] + "..."
		}
		fmt.Fprintf(b, "\n  Remarks: %s", remarks)
	}
	fmt.Fprintf(b, "\n  UID: %s\n", c.Entry.UID)
}

// RenderFailure explains a data-availability failure to the caller in place
// of a result; the underlying error never crosses the check boundary.
func RenderFailure(err error) string {
	var b strings.Builder
	b.WriteString("SANCTIONS CHECK FAILED\n")
	fmt.Fprintf(&b, "Unable to check the sanctions list: %v\n\n", err)
	b.WriteString("This could be due to:\n")
	b.WriteString("  - Network connectivity issues\n")
	b.WriteString("  - The OFAC server being temporarily unavailable\n")
	b.WriteString("  - An upstream data format change\n\n")
	b.WriteString("Please try again later.")
	return b.String()
}
