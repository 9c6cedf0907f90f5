package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hasc-tools/ndaa-intake/constants"
)

// FundingRequest represents a stored NDAA funding request for data transfer
// between layers. Extraction owns the document-derived fields; vote status,
// staff recommendation, member priority and the jurisdiction/offset flags
// are operator-owned and never touched by extraction.
type FundingRequest struct {
	ID                 uuid.UUID            `json:"id"`
	OrganizationName   string               `json:"organization_name"`
	RequestAmountCents int64                `json:"request_amount_cents"`
	FormattedAmount    string               `json:"formatted_amount"`
	ProgramElement     string               `json:"program_element"`
	BriefSummary       string               `json:"brief_summary"`
	DistrictImpact     string               `json:"district_impact"`
	BudgetLanguage     string               `json:"budget_language"`
	Domain             constants.Domain     `json:"domain"`
	Tier               string               `json:"tier"`
	WarfighterImpact   string               `json:"warfighter_impact"`
	WarfighterServices []constants.Service  `json:"warfighter_services"`
	IsDRL              bool                 `json:"is_drl"`
	DocumentPath       string               `json:"document_path,omitempty"`
	VoteStatus         constants.VoteStatus `json:"vote_status"`
	IsStaffRecommended bool                 `json:"is_staff_recommended"`
	MemberPriority     string               `json:"member_priority,omitempty"`
	HasValidOffset     bool                 `json:"has_valid_offset"`
	IsHASCJurisdiction bool                 `json:"is_hasc_jurisdiction"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// CandidateRecord is the structured output of document extraction.
// Every field carries a deterministic default; extraction never fails into
// a partially built candidate.
type CandidateRecord struct {
	OrganizationName   string              `json:"organization_name"`
	RequestAmountCents int64               `json:"request_amount_cents"`
	FormattedAmount    string              `json:"formatted_amount"`
	ProgramElement     string              `json:"program_element"`
	BriefSummary       string              `json:"brief_summary"`
	DistrictImpact     string              `json:"district_impact"`
	BudgetLanguage     string              `json:"budget_language"`
	Domain             constants.Domain    `json:"domain"`
	WarfighterImpact   string              `json:"warfighter_impact"`
	WarfighterServices []constants.Service `json:"warfighter_services"`
	IsDRL              bool                `json:"is_drl"`
	SourceFilename     string              `json:"source_filename"`
	DocumentPath       string              `json:"document_path,omitempty"`
}

// MatchResult is the reconciler's verdict for one candidate.
// Matched=false means "treat as new record".
type MatchResult struct {
	Matched   bool
	MatchedID uuid.UUID
	Score     int
}

// UpsertOp discriminates the two mutation shapes the merger can propose.
type UpsertOp string

const (
	OpInsert UpsertOp = "INSERT"
	OpUpdate UpsertOp = "UPDATE"
)

// UpsertInstruction is a pure description of the intended mutation.
// The merger never writes; the storage layer applies instructions.
// For OpUpdate the Record carries the full desired state with operator
// fields copied unchanged from the existing row.
type UpsertInstruction struct {
	Op     UpsertOp
	ID     uuid.UUID
	Record FundingRequest
	Score  int
}
