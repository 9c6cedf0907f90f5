package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
	"github.com/hasc-tools/ndaa-intake/internal/repository"
)

// seedSchema validates one seed record before it is trusted. The seed file
// is a JSON array of these objects; operator fields are optional and default
// to the pending state.
const seedSchema = `{
  "type": "object",
  "required": ["organization_name", "request_amount_cents"],
  "properties": {
    "id": {"type": "string"},
    "organization_name": {"type": "string", "minLength": 1},
    "request_amount_cents": {"type": "integer", "minimum": 0},
    "program_element": {"type": "string"},
    "brief_summary": {"type": "string"},
    "district_impact": {"type": "string"},
    "budget_language": {"type": "string"},
    "domain": {"type": "string"},
    "tier": {"type": "string"},
    "warfighter_impact": {"type": "string"},
    "warfighter_services": {"type": "array", "items": {"type": "string"}},
    "is_drl": {"type": "boolean"},
    "document_path": {"type": "string"},
    "vote_status": {"type": "string", "enum": ["pending", "yes", "no", "hold"]},
    "is_staff_recommended": {"type": "boolean"},
    "member_priority": {"type": "string"},
    "has_valid_offset": {"type": "boolean"},
    "is_hasc_jurisdiction": {"type": "boolean"}
  }
}`

type seedRecord struct {
	ID                 string   `json:"id"`
	OrganizationName   string   `json:"organization_name"`
	RequestAmountCents int64    `json:"request_amount_cents"`
	ProgramElement     string   `json:"program_element"`
	BriefSummary       string   `json:"brief_summary"`
	DistrictImpact     string   `json:"district_impact"`
	BudgetLanguage     string   `json:"budget_language"`
	Domain             string   `json:"domain"`
	Tier               string   `json:"tier"`
	WarfighterImpact   string   `json:"warfighter_impact"`
	WarfighterServices []string `json:"warfighter_services"`
	IsDRL              bool     `json:"is_drl"`
	DocumentPath       string   `json:"document_path"`
	VoteStatus         string   `json:"vote_status"`
	IsStaffRecommended bool     `json:"is_staff_recommended"`
	MemberPriority     string   `json:"member_priority"`
	HasValidOffset     bool     `json:"has_valid_offset"`
	IsHASCJurisdiction *bool    `json:"is_hasc_jurisdiction"`
}

// ImportError reports one rejected seed record; the import continues.
type ImportError struct {
	Index  int
	Reason string
}

type ImportResult struct {
	Inserted int
	Errors   []ImportError
}

// Importer loads a JSON seed file into the store. Records are validated
// individually so one malformed entry never poisons the rest.
type Importer struct {
	repo   repository.RequestRepository
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewImporter(repo repository.RequestRepository, logger *slog.Logger) (*Importer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed.json", strings.NewReader(seedSchema)); err != nil {
		return nil, common.WrapError(err, "add seed schema")
	}
	schema, err := compiler.Compile("seed.json")
	if err != nil {
		return nil, common.WrapError(err, "compile seed schema")
	}
	return &Importer{repo: repo, schema: schema, logger: logger}, nil
}

// ImportSeed reads a JSON array of seed records, validates each against the
// schema and inserts the survivors.
func (im *Importer) ImportSeed(ctx context.Context, path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, common.WrapError(err, "read seed file")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, common.NewAppError("SEED_MALFORMED", "seed file must be a JSON array", err)
	}

	var result ImportResult
	for i, msg := range raw {
		rec, err := im.parseRecord(msg)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Index: i, Reason: err.Error()})
			continue
		}
		if _, err := im.repo.ApplyUpsert(ctx, entity.UpsertInstruction{Op: entity.OpInsert, ID: rec.ID, Record: rec}); err != nil {
			result.Errors = append(result.Errors, ImportError{Index: i, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	im.logger.Info("importer.seed.done",
		"path", path,
		"inserted", result.Inserted,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (im *Importer) parseRecord(msg json.RawMessage) (entity.FundingRequest, error) {
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return entity.FundingRequest{}, err
	}
	if err := im.schema.Validate(v); err != nil {
		return entity.FundingRequest{}, fmt.Errorf("record does not match schema: %w", err)
	}

	var sr seedRecord
	if err := json.Unmarshal(msg, &sr); err != nil {
		return entity.FundingRequest{}, err
	}

	id := uuid.New()
	if sr.ID != "" {
		parsed, err := uuid.Parse(sr.ID)
		if err != nil {
			return entity.FundingRequest{}, fmt.Errorf("invalid id: %w", err)
		}
		id = parsed
	}

	domain := constants.DomainGeneral
	if sr.Domain != "" {
		d, ok := constants.CanonicalizeDomain(sr.Domain)
		if !ok {
			return entity.FundingRequest{}, fmt.Errorf("unknown domain %q", sr.Domain)
		}
		domain = d
	}

	vote := constants.VotePending
	if sr.VoteStatus != "" {
		if !constants.IsValidVote(sr.VoteStatus) {
			return entity.FundingRequest{}, fmt.Errorf("invalid vote status %q", sr.VoteStatus)
		}
		vote = constants.VoteStatus(sr.VoteStatus)
	}

	tier := sr.Tier
	if tier == "" {
		tier = constants.TierUnderReview
	}

	services := make([]constants.Service, 0, len(sr.WarfighterServices))
	for _, s := range sr.WarfighterServices {
		services = append(services, constants.Service(s))
	}

	hasc := true
	if sr.IsHASCJurisdiction != nil {
		hasc = *sr.IsHASCJurisdiction
	}

	return entity.FundingRequest{
		ID:                 id,
		OrganizationName:   sr.OrganizationName,
		RequestAmountCents: sr.RequestAmountCents,
		FormattedAmount:    extract.FormatAmountCents(sr.RequestAmountCents),
		ProgramElement:     defaultString(sr.ProgramElement, "Standard PE"),
		BriefSummary:       sr.BriefSummary,
		DistrictImpact:     sr.DistrictImpact,
		BudgetLanguage:     sr.BudgetLanguage,
		Domain:             domain,
		Tier:               tier,
		WarfighterImpact:   sr.WarfighterImpact,
		WarfighterServices: services,
		IsDRL:              sr.IsDRL,
		DocumentPath:       sr.DocumentPath,
		VoteStatus:         vote,
		IsStaffRecommended: sr.IsStaffRecommended,
		MemberPriority:     sr.MemberPriority,
		HasValidOffset:     sr.HasValidOffset,
		IsHASCJurisdiction: hasc,
	}, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
