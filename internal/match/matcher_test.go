package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

func record(name string) entity.FundingRequest {
	return entity.FundingRequest{ID: uuid.New(), OrganizationName: name}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "andurilindustriesinc", NormalizeName("Anduril Industries, Inc."))
	assert.Equal(t, "epirus", NormalizeName("  EPIRUS  "))
	assert.Equal(t, "", NormalizeName("---"))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		existing  string
		want      int
	}{
		{"identical names", "Anduril Industries", "Anduril Industries", 12},
		{"containment plus shared words", "Anduril", "Anduril Industries", 11},
		{"word overlap without containment", "Anduril Industries", "Anduril Systems", 1},
		{"short words ignored", "AB CD Anduril", "Anduril", 11},
		{"no relation", "Epirus", "Palantir", 0},
		{"empty candidate", "", "Palantir", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.candidate, tt.existing))
		})
	}
}

func TestMatchPicksBestAndKeepsFirstOnTie(t *testing.T) {
	a := record("Anduril Industries")
	b := record("Anduril Systems")
	c := record("Palantir")

	got := Match("Anduril Industries", []entity.FundingRequest{c, b, a})
	require.True(t, got.Matched)
	assert.Equal(t, a.ID, got.MatchedID)

	// Equal scores keep the record seen first.
	tie := Match("Anduril", []entity.FundingRequest{b, a})
	require.True(t, tie.Matched)
	assert.Equal(t, b.ID, tie.MatchedID)
}

func TestMatchZeroScoreMeansNew(t *testing.T) {
	got := Match("Shield AI", []entity.FundingRequest{record("Palantir")})
	assert.False(t, got.Matched)
	assert.Equal(t, entity.MatchResult{}, got)
}

func TestAssignHigherScoreClaimsContestedRecord(t *testing.T) {
	target := record("Anduril Industries")
	existing := []entity.FundingRequest{target}

	// Both candidates want the same record; the exact name outscores the
	// partial one, regardless of candidate order.
	m := NewMatcher(nil)
	results := m.Assign([]string{"Anduril", "Anduril Industries"}, existing)

	assert.False(t, results[0].Matched)
	require.True(t, results[1].Matched)
	assert.Equal(t, target.ID, results[1].MatchedID)
}

func TestAssignIsOneToOne(t *testing.T) {
	a := record("Anduril Industries")
	b := record("Anduril Systems")
	existing := []entity.FundingRequest{a, b}

	m := NewMatcher(nil)
	results := m.Assign([]string{"Anduril Industries", "Anduril Systems"}, existing)

	require.True(t, results[0].Matched)
	require.True(t, results[1].Matched)
	assert.Equal(t, a.ID, results[0].MatchedID)
	assert.Equal(t, b.ID, results[1].MatchedID)
	assert.NotEqual(t, results[0].MatchedID, results[1].MatchedID)
}

func TestAssignTieKeepsEarlierCandidate(t *testing.T) {
	target := record("Anduril")
	m := NewMatcher(nil)
	results := m.Assign([]string{"Anduril", "Anduril"}, []entity.FundingRequest{target})

	require.True(t, results[0].Matched)
	assert.False(t, results[1].Matched)
}

func TestAssignUnmatchedCandidates(t *testing.T) {
	m := NewMatcher(nil)
	results := m.Assign([]string{"Shield AI"}, []entity.FundingRequest{record("Palantir")})
	assert.False(t, results[0].Matched)
}
