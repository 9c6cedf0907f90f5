package reconcile

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

func candidate() entity.CandidateRecord {
	return entity.CandidateRecord{
		OrganizationName:   "Epirus Defense",
		RequestAmountCents: 400_000_000,
		FormattedAmount:    "$4 MILLION",
		ProgramElement:     "PE 0602786A",
		BriefSummary:       "Counter-UAS systems.",
		DistrictImpact:     "Statewide/National Impact",
		BudgetLanguage:     "The Secretary shall allocate funding.",
		Domain:             constants.DomainGeneral,
		WarfighterImpact:   "impact statement",
		WarfighterServices: []constants.Service{constants.ServiceArmy},
		SourceFilename:     "epirus.pdf",
		DocumentPath:       "/inbox/epirus.pdf",
	}
}

func TestMergeInsertDefaults(t *testing.T) {
	m := NewMerger(nil)
	ins, err := m.Merge(candidate(), entity.MatchResult{}, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.OpInsert, ins.Op)
	assert.NotEqual(t, uuid.Nil, ins.ID)
	assert.Equal(t, ins.ID, ins.Record.ID)

	rec := ins.Record
	assert.Equal(t, "Epirus Defense", rec.OrganizationName)
	assert.Equal(t, constants.TierUnderReview, rec.Tier)
	assert.Equal(t, constants.VotePending, rec.VoteStatus)
	assert.False(t, rec.IsStaffRecommended)
	assert.False(t, rec.HasValidOffset)
	assert.True(t, rec.IsHASCJurisdiction)
}

func TestMergeInsertsGetDistinctIDs(t *testing.T) {
	m := NewMerger(nil)
	a, err := m.Merge(candidate(), entity.MatchResult{}, nil)
	require.NoError(t, err)
	b, err := m.Merge(candidate(), entity.MatchResult{}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMergeUpdatePreservesOperatorFields(t *testing.T) {
	prev := entity.FundingRequest{
		ID:                 uuid.New(),
		OrganizationName:   "Epirus Defense",
		RequestAmountCents: 100_000_000,
		Tier:               "Tier 1 (Priority)",
		VoteStatus:         constants.VoteYes,
		IsStaffRecommended: true,
		MemberPriority:     "top",
		HasValidOffset:     true,
		IsHASCJurisdiction: false,
		DocumentPath:       "/old/epirus.pdf",
	}
	m := NewMerger(nil)

	ins, err := m.Merge(candidate(), entity.MatchResult{Matched: true, MatchedID: prev.ID, Score: 12}, []entity.FundingRequest{prev})
	require.NoError(t, err)

	assert.Equal(t, entity.OpUpdate, ins.Op)
	assert.Equal(t, prev.ID, ins.ID)

	rec := ins.Record
	// Extraction-owned fields refresh.
	assert.Equal(t, int64(400_000_000), rec.RequestAmountCents)
	assert.Equal(t, "/inbox/epirus.pdf", rec.DocumentPath)
	// Operator-owned fields survive untouched.
	assert.Equal(t, "Tier 1 (Priority)", rec.Tier)
	assert.Equal(t, constants.VoteYes, rec.VoteStatus)
	assert.True(t, rec.IsStaffRecommended)
	assert.Equal(t, "top", rec.MemberPriority)
	assert.True(t, rec.HasValidOffset)
	assert.False(t, rec.IsHASCJurisdiction)
}

func TestMergeUpdateFillsEmptyNameOnly(t *testing.T) {
	prev := entity.FundingRequest{ID: uuid.New(), OrganizationName: "Epirus Defense Systems Inc"}
	m := NewMerger(nil)

	ins, err := m.Merge(candidate(), entity.MatchResult{Matched: true, MatchedID: prev.ID}, []entity.FundingRequest{prev})
	require.NoError(t, err)
	assert.Equal(t, "Epirus Defense Systems Inc", ins.Record.OrganizationName)

	blank := entity.FundingRequest{ID: uuid.New()}
	ins, err = m.Merge(candidate(), entity.MatchResult{Matched: true, MatchedID: blank.ID}, []entity.FundingRequest{blank})
	require.NoError(t, err)
	assert.Equal(t, "Epirus Defense", ins.Record.OrganizationName)
}

func TestMergeUpdateKeepsPathWhenCandidateHasNone(t *testing.T) {
	prev := entity.FundingRequest{ID: uuid.New(), OrganizationName: "Epirus Defense", DocumentPath: "/old/epirus.pdf"}
	cand := candidate()
	cand.DocumentPath = ""

	m := NewMerger(nil)
	ins, err := m.Merge(cand, entity.MatchResult{Matched: true, MatchedID: prev.ID}, []entity.FundingRequest{prev})
	require.NoError(t, err)
	assert.Equal(t, "/old/epirus.pdf", ins.Record.DocumentPath)
}

func TestMergeStaleMatch(t *testing.T) {
	m := NewMerger(nil)
	_, err := m.Merge(candidate(), entity.MatchResult{Matched: true, MatchedID: uuid.New()}, nil)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
