package reconcile

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

// Merger turns a matched or unmatched candidate into an UpsertInstruction.
// It never writes: the storage layer applies instructions, which keeps
// extraction pure and testable in isolation.
type Merger struct {
	logger *slog.Logger
}

func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger}
}

// Merge builds the mutation for one candidate. A matched candidate becomes
// an update that overwrites the extraction-owned fields and leaves the
// operator-owned fields (vote status, staff recommendation, member
// priority, jurisdiction/offset flags) untouched; the organization name is
// only filled in when the existing one is empty. An unmatched candidate
// becomes an insert with a fresh identifier and pending operator defaults.
func (m *Merger) Merge(cand entity.CandidateRecord, match entity.MatchResult, existing []entity.FundingRequest) (entity.UpsertInstruction, error) {
	if !match.Matched {
		rec := entity.FundingRequest{
			ID:                 uuid.New(),
			OrganizationName:   cand.OrganizationName,
			RequestAmountCents: cand.RequestAmountCents,
			FormattedAmount:    cand.FormattedAmount,
			ProgramElement:     cand.ProgramElement,
			BriefSummary:       cand.BriefSummary,
			DistrictImpact:     cand.DistrictImpact,
			BudgetLanguage:     cand.BudgetLanguage,
			Domain:             cand.Domain,
			Tier:               constants.TierUnderReview,
			WarfighterImpact:   cand.WarfighterImpact,
			WarfighterServices: cand.WarfighterServices,
			IsDRL:              cand.IsDRL,
			DocumentPath:       cand.DocumentPath,
			VoteStatus:         constants.VotePending,
			IsStaffRecommended: false,
			HasValidOffset:     false,
			IsHASCJurisdiction: true,
		}
		m.logger.Debug("merge.insert", "organization", rec.OrganizationName, "id", rec.ID)
		return entity.UpsertInstruction{Op: entity.OpInsert, ID: rec.ID, Record: rec}, nil
	}

	prev, ok := findByID(existing, match.MatchedID)
	if !ok {
		return entity.UpsertInstruction{}, common.NewAppError(
			"MERGE_STALE_MATCH",
			fmt.Sprintf("matched record %s not in existing set", match.MatchedID),
			common.ErrNotFound,
		)
	}

	rec := prev
	if rec.OrganizationName == "" {
		rec.OrganizationName = cand.OrganizationName
	}
	rec.RequestAmountCents = cand.RequestAmountCents
	rec.FormattedAmount = cand.FormattedAmount
	rec.ProgramElement = cand.ProgramElement
	rec.BriefSummary = cand.BriefSummary
	rec.DistrictImpact = cand.DistrictImpact
	rec.BudgetLanguage = cand.BudgetLanguage
	rec.Domain = cand.Domain
	rec.WarfighterImpact = cand.WarfighterImpact
	rec.WarfighterServices = cand.WarfighterServices
	rec.IsDRL = cand.IsDRL
	if cand.DocumentPath != "" {
		rec.DocumentPath = cand.DocumentPath
	}

	m.logger.Debug("merge.update", "organization", rec.OrganizationName, "id", rec.ID, "score", match.Score)
	return entity.UpsertInstruction{Op: entity.OpUpdate, ID: prev.ID, Record: rec, Score: match.Score}, nil
}

func findByID(records []entity.FundingRequest, id uuid.UUID) (entity.FundingRequest, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return entity.FundingRequest{}, false
}
