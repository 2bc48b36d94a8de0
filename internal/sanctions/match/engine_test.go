package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regguard/internal/sanctions/models"
	"regguard/pkg/platform/sentinel"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		PublicationDate: "01 Jan 2024",
		Entries: []models.Entry{
			{UID: "U1", Type: "Individual", PrimaryName: "Vladimir Putin", Aliases: []string{"Vladimir Putinn"}},
			{UID: "U2", Type: "Individual", PrimaryName: "Kim Jong Un"},
			{UID: "U3", Type: "Entity", Aliases: []string{"Shadow Broker"}},
			{UID: "U4", Type: "Entity", PrimaryName: "Acme Trading LLC"},
		},
	}
}

func uids(candidates []models.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Entry.UID
	}
	return out
}

func TestSearch_ExactSubstring(t *testing.T) {
	ds := testDataset()

	results, err := Search(ds, "putin", models.ModeExact, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "U1", results[0].Entry.UID)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "Vladimir Putin", results[0].MatchedName)
	assert.False(t, results[0].AliasMatch)

	// Property: every returned candidate name contains the query.
	for _, c := range results {
		assert.Contains(t, strings.ToLower(c.MatchedName), "putin")
	}
}

func TestSearch_ExactCaseInsensitive(t *testing.T) {
	results, err := Search(testDataset(), "PUTIN", models.ModeExact, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "U1", results[0].Entry.UID)
}

func TestSearch_ExactMissesTypo(t *testing.T) {
	results, err := Search(testDataset(), "Puttin", models.ModeExact, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_ExactAliasOnlyEntry(t *testing.T) {
	results, err := Search(testDataset(), "shadow", models.ModeExact, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "U3", results[0].Entry.UID)
	assert.Equal(t, "Shadow Broker", results[0].MatchedName)
	assert.True(t, results[0].AliasMatch)
}

func TestSearch_ExactScoresAlwaysHundred(t *testing.T) {
	// "n" is a substring of several names; every hit carries score 100 and the
	// ties keep dataset encounter order.
	results, err := Search(testDataset(), "n", models.ModeExact, 0)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, c := range results {
		assert.Equal(t, 100, c.Score)
	}
	assert.Equal(t, []string{"U1", "U2", "U4"}, uids(results))
}

func TestSearch_FuzzyTypo(t *testing.T) {
	results, err := Search(testDataset(), "Puttin", models.ModeFuzzy, 80)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "U1", results[0].Entry.UID)
	assert.GreaterOrEqual(t, results[0].Score, 80)
	assert.LessOrEqual(t, results[0].Score, 100)
}

func TestSearch_FuzzyTokenReorder(t *testing.T) {
	results, err := Search(testDataset(), "Jong Un Kim", models.ModeFuzzy, 90)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "U2", results[0].Entry.UID)
	assert.Equal(t, 100, results[0].Score, "a reordered full name must score like an in-order match")
}

func TestSearch_FuzzySingleWordOfName(t *testing.T) {
	// A bare surname lands through the per-word score even at the strictest
	// threshold.
	results, err := Search(testDataset(), "Putin", models.ModeFuzzy, 100)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "U1", results[0].Entry.UID)
	assert.Equal(t, 100, results[0].Score)
}

func TestSearch_FuzzyThresholdBoundsAndOrder(t *testing.T) {
	const threshold = 60
	results, err := Search(testDataset(), "Vladimir Putin", models.ModeFuzzy, threshold)
	require.NoError(t, err)
	for i, c := range results {
		assert.GreaterOrEqual(t, c.Score, threshold)
		if i > 0 {
			assert.LessOrEqual(t, c.Score, results[i-1].Score, "results must be sorted descending by score")
		}
	}
}

func TestSearch_FuzzyThresholdMonotonic(t *testing.T) {
	ds := testDataset()
	prev := len(ds.Entries) + 1
	for _, threshold := range []int{40, 60, 80, 95} {
		results, err := Search(ds, "Vladimir", models.ModeFuzzy, threshold)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), prev, "raising the threshold must never add candidates")
		prev = len(results)
	}
}

func TestSearch_OneCandidatePerEntry(t *testing.T) {
	// Both U1's primary name and its alias clear the threshold; the entry
	// appears once with its best name.
	results, err := Search(testDataset(), "Vladimir Putin", models.ModeFuzzy, 50)
	require.NoError(t, err)

	seen := 0
	for _, c := range results {
		if c.Entry.UID == "U1" {
			seen++
			assert.Equal(t, "Vladimir Putin", c.MatchedName)
			assert.Equal(t, 100, c.Score)
			assert.False(t, c.AliasMatch)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestSearch_EmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := Search(testDataset(), query, models.ModeExact, 0)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
		_, err = Search(testDataset(), query, models.ModeFuzzy, 80)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	}
}
