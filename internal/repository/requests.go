package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/gen/ent"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

type RequestRepository interface {
	ListRequests(ctx context.Context) ([]entity.FundingRequest, error)
	ListAuthorized(ctx context.Context) ([]entity.FundingRequest, error)
	ApplyUpsert(ctx context.Context, ins entity.UpsertInstruction) (*entity.FundingRequest, error)
	SetDocumentPath(ctx context.Context, id uuid.UUID, path string) error
}

type requestRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRequestRepository(client *ent.Client, logger *slog.Logger) RequestRepository {
	return &requestRepository{
		client: client,
		logger: logger,
	}
}

func (r *requestRepository) ListRequests(ctx context.Context) ([]entity.FundingRequest, error) {
	recs, err := r.client.FundingRequest.Query().
		Order(fundingrequest.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list funding requests", "error", err)
		return nil, common.NewAppError("DB_ERROR", "list funding requests", err)
	}
	return toEntities(recs), nil
}

// ListAuthorized returns the yes-voted requests in export order: grouped by
// domain, then by organization name.
func (r *requestRepository) ListAuthorized(ctx context.Context) ([]entity.FundingRequest, error) {
	recs, err := r.client.FundingRequest.Query().
		Where(fundingrequest.VoteStatus(string(constants.VoteYes))).
		Order(fundingrequest.ByDomain(), fundingrequest.ByOrganizationName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list authorized requests", "error", err)
		return nil, common.NewAppError("DB_ERROR", "list authorized requests", err)
	}
	return toEntities(recs), nil
}

func (r *requestRepository) ApplyUpsert(ctx context.Context, ins entity.UpsertInstruction) (*entity.FundingRequest, error) {
	switch ins.Op {
	case entity.OpInsert:
		return r.insert(ctx, ins.Record)
	case entity.OpUpdate:
		return r.update(ctx, ins.Record)
	default:
		return nil, common.NewAppError("DB_ERROR", "unknown upsert op "+string(ins.Op), common.ErrInvalidInput)
	}
}

func (r *requestRepository) insert(ctx context.Context, rec entity.FundingRequest) (*entity.FundingRequest, error) {
	created, err := r.client.FundingRequest.Create().
		SetID(rec.ID).
		SetOrganizationName(rec.OrganizationName).
		SetRequestAmountCents(rec.RequestAmountCents).
		SetFormattedAmount(rec.FormattedAmount).
		SetProgramElement(rec.ProgramElement).
		SetBriefSummary(rec.BriefSummary).
		SetDistrictImpact(rec.DistrictImpact).
		SetBudgetLanguage(rec.BudgetLanguage).
		SetDomain(string(rec.Domain)).
		SetTier(rec.Tier).
		SetWarfighterImpact(rec.WarfighterImpact).
		SetWarfighterServices(constants.JoinServices(rec.WarfighterServices)).
		SetIsDrl(rec.IsDRL).
		SetDocumentPath(rec.DocumentPath).
		SetVoteStatus(string(rec.VoteStatus)).
		SetIsStaffRecommended(rec.IsStaffRecommended).
		SetMemberPriority(rec.MemberPriority).
		SetHasValidOffset(rec.HasValidOffset).
		SetIsHascJurisdiction(rec.IsHASCJurisdiction).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert funding request", "organization", rec.OrganizationName, "error", err)
		return nil, common.NewAppError("DB_ERROR", "insert funding request", err)
	}
	r.logger.Info("repository.request.inserted", "id", created.ID, "organization", created.OrganizationName)
	out := toEntity(created)
	return &out, nil
}

func (r *requestRepository) update(ctx context.Context, rec entity.FundingRequest) (*entity.FundingRequest, error) {
	updated, err := r.client.FundingRequest.UpdateOneID(rec.ID).
		SetOrganizationName(rec.OrganizationName).
		SetRequestAmountCents(rec.RequestAmountCents).
		SetFormattedAmount(rec.FormattedAmount).
		SetProgramElement(rec.ProgramElement).
		SetBriefSummary(rec.BriefSummary).
		SetDistrictImpact(rec.DistrictImpact).
		SetBudgetLanguage(rec.BudgetLanguage).
		SetDomain(string(rec.Domain)).
		SetTier(rec.Tier).
		SetWarfighterImpact(rec.WarfighterImpact).
		SetWarfighterServices(constants.JoinServices(rec.WarfighterServices)).
		SetIsDrl(rec.IsDRL).
		SetDocumentPath(rec.DocumentPath).
		SetVoteStatus(string(rec.VoteStatus)).
		SetIsStaffRecommended(rec.IsStaffRecommended).
		SetMemberPriority(rec.MemberPriority).
		SetHasValidOffset(rec.HasValidOffset).
		SetIsHascJurisdiction(rec.IsHASCJurisdiction).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "funding request "+rec.ID.String(), common.ErrNotFound)
		}
		r.logger.Error("failed to update funding request", "id", rec.ID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "update funding request", err)
	}
	r.logger.Info("repository.request.updated", "id", updated.ID, "organization", updated.OrganizationName)
	out := toEntity(updated)
	return &out, nil
}

func (r *requestRepository) SetDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	err := r.client.FundingRequest.UpdateOneID(id).
		SetDocumentPath(path).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("NOT_FOUND", "funding request "+id.String(), common.ErrNotFound)
		}
		return common.NewAppError("DB_ERROR", "set document path", err)
	}
	return nil
}

func toEntity(rec *ent.FundingRequest) entity.FundingRequest {
	return entity.FundingRequest{
		ID:                 rec.ID,
		OrganizationName:   rec.OrganizationName,
		RequestAmountCents: rec.RequestAmountCents,
		FormattedAmount:    rec.FormattedAmount,
		ProgramElement:     rec.ProgramElement,
		BriefSummary:       rec.BriefSummary,
		DistrictImpact:     rec.DistrictImpact,
		BudgetLanguage:     rec.BudgetLanguage,
		Domain:             constants.Domain(rec.Domain),
		Tier:               rec.Tier,
		WarfighterImpact:   rec.WarfighterImpact,
		WarfighterServices: constants.SplitServices(rec.WarfighterServices),
		IsDRL:              rec.IsDrl,
		DocumentPath:       rec.DocumentPath,
		VoteStatus:         constants.VoteStatus(rec.VoteStatus),
		IsStaffRecommended: rec.IsStaffRecommended,
		MemberPriority:     rec.MemberPriority,
		HasValidOffset:     rec.HasValidOffset,
		IsHASCJurisdiction: rec.IsHascJurisdiction,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func toEntities(recs []*ent.FundingRequest) []entity.FundingRequest {
	out := make([]entity.FundingRequest, len(recs))
	for i, rec := range recs {
		out[i] = toEntity(rec)
	}
	return out
}
