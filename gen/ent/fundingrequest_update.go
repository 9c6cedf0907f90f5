// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
	"github.com/hasc-tools/ndaa-intake/gen/ent/predicate"
)

// FundingRequestUpdate is the builder for updating FundingRequest entities.
type FundingRequestUpdate struct {
	config
	hooks    []Hook
	mutation *FundingRequestMutation
}

// Where appends a list predicates to the FundingRequestUpdate builder.
func (_u *FundingRequestUpdate) Where(ps ...predicate.FundingRequest) *FundingRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationName sets the "organization_name" field.
func (_u *FundingRequestUpdate) SetOrganizationName(v string) *FundingRequestUpdate {
	_u.mutation.SetOrganizationName(v)
	return _u
}

// SetNillableOrganizationName sets the "organization_name" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableOrganizationName(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetOrganizationName(*v)
	}
	return _u
}

// SetRequestAmountCents sets the "request_amount_cents" field.
func (_u *FundingRequestUpdate) SetRequestAmountCents(v int64) *FundingRequestUpdate {
	_u.mutation.ResetRequestAmountCents()
	_u.mutation.SetRequestAmountCents(v)
	return _u
}

// SetNillableRequestAmountCents sets the "request_amount_cents" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableRequestAmountCents(v *int64) *FundingRequestUpdate {
	if v != nil {
		_u.SetRequestAmountCents(*v)
	}
	return _u
}

// AddRequestAmountCents adds value to the "request_amount_cents" field.
func (_u *FundingRequestUpdate) AddRequestAmountCents(v int64) *FundingRequestUpdate {
	_u.mutation.AddRequestAmountCents(v)
	return _u
}

// SetFormattedAmount sets the "formatted_amount" field.
func (_u *FundingRequestUpdate) SetFormattedAmount(v string) *FundingRequestUpdate {
	_u.mutation.SetFormattedAmount(v)
	return _u
}

// SetNillableFormattedAmount sets the "formatted_amount" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableFormattedAmount(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetFormattedAmount(*v)
	}
	return _u
}

// SetProgramElement sets the "program_element" field.
func (_u *FundingRequestUpdate) SetProgramElement(v string) *FundingRequestUpdate {
	_u.mutation.SetProgramElement(v)
	return _u
}

// SetNillableProgramElement sets the "program_element" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableProgramElement(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetProgramElement(*v)
	}
	return _u
}

// SetBriefSummary sets the "brief_summary" field.
func (_u *FundingRequestUpdate) SetBriefSummary(v string) *FundingRequestUpdate {
	_u.mutation.SetBriefSummary(v)
	return _u
}

// SetNillableBriefSummary sets the "brief_summary" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableBriefSummary(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetBriefSummary(*v)
	}
	return _u
}

// SetDistrictImpact sets the "district_impact" field.
func (_u *FundingRequestUpdate) SetDistrictImpact(v string) *FundingRequestUpdate {
	_u.mutation.SetDistrictImpact(v)
	return _u
}

// SetNillableDistrictImpact sets the "district_impact" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableDistrictImpact(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetDistrictImpact(*v)
	}
	return _u
}

// SetBudgetLanguage sets the "budget_language" field.
func (_u *FundingRequestUpdate) SetBudgetLanguage(v string) *FundingRequestUpdate {
	_u.mutation.SetBudgetLanguage(v)
	return _u
}

// SetNillableBudgetLanguage sets the "budget_language" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableBudgetLanguage(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetBudgetLanguage(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *FundingRequestUpdate) SetDomain(v string) *FundingRequestUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableDomain(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *FundingRequestUpdate) SetTier(v string) *FundingRequestUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableTier(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetWarfighterImpact sets the "warfighter_impact" field.
func (_u *FundingRequestUpdate) SetWarfighterImpact(v string) *FundingRequestUpdate {
	_u.mutation.SetWarfighterImpact(v)
	return _u
}

// SetNillableWarfighterImpact sets the "warfighter_impact" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableWarfighterImpact(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetWarfighterImpact(*v)
	}
	return _u
}

// SetWarfighterServices sets the "warfighter_services" field.
func (_u *FundingRequestUpdate) SetWarfighterServices(v string) *FundingRequestUpdate {
	_u.mutation.SetWarfighterServices(v)
	return _u
}

// SetNillableWarfighterServices sets the "warfighter_services" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableWarfighterServices(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetWarfighterServices(*v)
	}
	return _u
}

// ClearWarfighterServices clears the value of the "warfighter_services" field.
func (_u *FundingRequestUpdate) ClearWarfighterServices() *FundingRequestUpdate {
	_u.mutation.ClearWarfighterServices()
	return _u
}

// SetIsDrl sets the "is_drl" field.
func (_u *FundingRequestUpdate) SetIsDrl(v bool) *FundingRequestUpdate {
	_u.mutation.SetIsDrl(v)
	return _u
}

// SetNillableIsDrl sets the "is_drl" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableIsDrl(v *bool) *FundingRequestUpdate {
	if v != nil {
		_u.SetIsDrl(*v)
	}
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *FundingRequestUpdate) SetDocumentPath(v string) *FundingRequestUpdate {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableDocumentPath(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *FundingRequestUpdate) ClearDocumentPath() *FundingRequestUpdate {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetVoteStatus sets the "vote_status" field.
func (_u *FundingRequestUpdate) SetVoteStatus(v string) *FundingRequestUpdate {
	_u.mutation.SetVoteStatus(v)
	return _u
}

// SetNillableVoteStatus sets the "vote_status" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableVoteStatus(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetVoteStatus(*v)
	}
	return _u
}

// SetIsStaffRecommended sets the "is_staff_recommended" field.
func (_u *FundingRequestUpdate) SetIsStaffRecommended(v bool) *FundingRequestUpdate {
	_u.mutation.SetIsStaffRecommended(v)
	return _u
}

// SetNillableIsStaffRecommended sets the "is_staff_recommended" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableIsStaffRecommended(v *bool) *FundingRequestUpdate {
	if v != nil {
		_u.SetIsStaffRecommended(*v)
	}
	return _u
}

// SetMemberPriority sets the "member_priority" field.
func (_u *FundingRequestUpdate) SetMemberPriority(v string) *FundingRequestUpdate {
	_u.mutation.SetMemberPriority(v)
	return _u
}

// SetNillableMemberPriority sets the "member_priority" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableMemberPriority(v *string) *FundingRequestUpdate {
	if v != nil {
		_u.SetMemberPriority(*v)
	}
	return _u
}

// ClearMemberPriority clears the value of the "member_priority" field.
func (_u *FundingRequestUpdate) ClearMemberPriority() *FundingRequestUpdate {
	_u.mutation.ClearMemberPriority()
	return _u
}

// SetHasValidOffset sets the "has_valid_offset" field.
func (_u *FundingRequestUpdate) SetHasValidOffset(v bool) *FundingRequestUpdate {
	_u.mutation.SetHasValidOffset(v)
	return _u
}

// SetNillableHasValidOffset sets the "has_valid_offset" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableHasValidOffset(v *bool) *FundingRequestUpdate {
	if v != nil {
		_u.SetHasValidOffset(*v)
	}
	return _u
}

// SetIsHascJurisdiction sets the "is_hasc_jurisdiction" field.
func (_u *FundingRequestUpdate) SetIsHascJurisdiction(v bool) *FundingRequestUpdate {
	_u.mutation.SetIsHascJurisdiction(v)
	return _u
}

// SetNillableIsHascJurisdiction sets the "is_hasc_jurisdiction" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableIsHascJurisdiction(v *bool) *FundingRequestUpdate {
	if v != nil {
		_u.SetIsHascJurisdiction(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FundingRequestUpdate) SetCreatedAt(v time.Time) *FundingRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FundingRequestUpdate) SetNillableCreatedAt(v *time.Time) *FundingRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FundingRequestUpdate) SetUpdatedAt(v time.Time) *FundingRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FundingRequestMutation object of the builder.
func (_u *FundingRequestUpdate) Mutation() *FundingRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FundingRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FundingRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FundingRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FundingRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FundingRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fundingrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FundingRequestUpdate) check() error {
	if v, ok := _u.mutation.OrganizationName(); ok {
		if err := fundingrequest.OrganizationNameValidator(v); err != nil {
			return &ValidationError{Name: "organization_name", err: fmt.Errorf(`ent: validator failed for field "FundingRequest.organization_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FundingRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fundingrequest.Table, fundingrequest.Columns, sqlgraph.NewFieldSpec(fundingrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationName(); ok {
		_spec.SetField(fundingrequest.FieldOrganizationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestAmountCents(); ok {
		_spec.SetField(fundingrequest.FieldRequestAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestAmountCents(); ok {
		_spec.AddField(fundingrequest.FieldRequestAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FormattedAmount(); ok {
		_spec.SetField(fundingrequest.FieldFormattedAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgramElement(); ok {
		_spec.SetField(fundingrequest.FieldProgramElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.BriefSummary(); ok {
		_spec.SetField(fundingrequest.FieldBriefSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistrictImpact(); ok {
		_spec.SetField(fundingrequest.FieldDistrictImpact, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetLanguage(); ok {
		_spec.SetField(fundingrequest.FieldBudgetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(fundingrequest.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(fundingrequest.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarfighterImpact(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterImpact, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarfighterServices(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterServices, field.TypeString, value)
	}
	if _u.mutation.WarfighterServicesCleared() {
		_spec.ClearField(fundingrequest.FieldWarfighterServices, field.TypeString)
	}
	if value, ok := _u.mutation.IsDrl(); ok {
		_spec.SetField(fundingrequest.FieldIsDrl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(fundingrequest.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(fundingrequest.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.VoteStatus(); ok {
		_spec.SetField(fundingrequest.FieldVoteStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsStaffRecommended(); ok {
		_spec.SetField(fundingrequest.FieldIsStaffRecommended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MemberPriority(); ok {
		_spec.SetField(fundingrequest.FieldMemberPriority, field.TypeString, value)
	}
	if _u.mutation.MemberPriorityCleared() {
		_spec.ClearField(fundingrequest.FieldMemberPriority, field.TypeString)
	}
	if value, ok := _u.mutation.HasValidOffset(); ok {
		_spec.SetField(fundingrequest.FieldHasValidOffset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsHascJurisdiction(); ok {
		_spec.SetField(fundingrequest.FieldIsHascJurisdiction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fundingrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fundingrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fundingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FundingRequestUpdateOne is the builder for updating a single FundingRequest entity.
type FundingRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FundingRequestMutation
}

// SetOrganizationName sets the "organization_name" field.
func (_u *FundingRequestUpdateOne) SetOrganizationName(v string) *FundingRequestUpdateOne {
	_u.mutation.SetOrganizationName(v)
	return _u
}

// SetNillableOrganizationName sets the "organization_name" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableOrganizationName(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetOrganizationName(*v)
	}
	return _u
}

// SetRequestAmountCents sets the "request_amount_cents" field.
func (_u *FundingRequestUpdateOne) SetRequestAmountCents(v int64) *FundingRequestUpdateOne {
	_u.mutation.ResetRequestAmountCents()
	_u.mutation.SetRequestAmountCents(v)
	return _u
}

// SetNillableRequestAmountCents sets the "request_amount_cents" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableRequestAmountCents(v *int64) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetRequestAmountCents(*v)
	}
	return _u
}

// AddRequestAmountCents adds value to the "request_amount_cents" field.
func (_u *FundingRequestUpdateOne) AddRequestAmountCents(v int64) *FundingRequestUpdateOne {
	_u.mutation.AddRequestAmountCents(v)
	return _u
}

// SetFormattedAmount sets the "formatted_amount" field.
func (_u *FundingRequestUpdateOne) SetFormattedAmount(v string) *FundingRequestUpdateOne {
	_u.mutation.SetFormattedAmount(v)
	return _u
}

// SetNillableFormattedAmount sets the "formatted_amount" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableFormattedAmount(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetFormattedAmount(*v)
	}
	return _u
}

// SetProgramElement sets the "program_element" field.
func (_u *FundingRequestUpdateOne) SetProgramElement(v string) *FundingRequestUpdateOne {
	_u.mutation.SetProgramElement(v)
	return _u
}

// SetNillableProgramElement sets the "program_element" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableProgramElement(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetProgramElement(*v)
	}
	return _u
}

// SetBriefSummary sets the "brief_summary" field.
func (_u *FundingRequestUpdateOne) SetBriefSummary(v string) *FundingRequestUpdateOne {
	_u.mutation.SetBriefSummary(v)
	return _u
}

// SetNillableBriefSummary sets the "brief_summary" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableBriefSummary(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetBriefSummary(*v)
	}
	return _u
}

// SetDistrictImpact sets the "district_impact" field.
func (_u *FundingRequestUpdateOne) SetDistrictImpact(v string) *FundingRequestUpdateOne {
	_u.mutation.SetDistrictImpact(v)
	return _u
}

// SetNillableDistrictImpact sets the "district_impact" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableDistrictImpact(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetDistrictImpact(*v)
	}
	return _u
}

// SetBudgetLanguage sets the "budget_language" field.
func (_u *FundingRequestUpdateOne) SetBudgetLanguage(v string) *FundingRequestUpdateOne {
	_u.mutation.SetBudgetLanguage(v)
	return _u
}

// SetNillableBudgetLanguage sets the "budget_language" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableBudgetLanguage(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetBudgetLanguage(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *FundingRequestUpdateOne) SetDomain(v string) *FundingRequestUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableDomain(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *FundingRequestUpdateOne) SetTier(v string) *FundingRequestUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableTier(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetWarfighterImpact sets the "warfighter_impact" field.
func (_u *FundingRequestUpdateOne) SetWarfighterImpact(v string) *FundingRequestUpdateOne {
	_u.mutation.SetWarfighterImpact(v)
	return _u
}

// SetNillableWarfighterImpact sets the "warfighter_impact" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableWarfighterImpact(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetWarfighterImpact(*v)
	}
	return _u
}

// SetWarfighterServices sets the "warfighter_services" field.
func (_u *FundingRequestUpdateOne) SetWarfighterServices(v string) *FundingRequestUpdateOne {
	_u.mutation.SetWarfighterServices(v)
	return _u
}

// SetNillableWarfighterServices sets the "warfighter_services" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableWarfighterServices(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetWarfighterServices(*v)
	}
	return _u
}

// ClearWarfighterServices clears the value of the "warfighter_services" field.
func (_u *FundingRequestUpdateOne) ClearWarfighterServices() *FundingRequestUpdateOne {
	_u.mutation.ClearWarfighterServices()
	return _u
}

// SetIsDrl sets the "is_drl" field.
func (_u *FundingRequestUpdateOne) SetIsDrl(v bool) *FundingRequestUpdateOne {
	_u.mutation.SetIsDrl(v)
	return _u
}

// SetNillableIsDrl sets the "is_drl" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableIsDrl(v *bool) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetIsDrl(*v)
	}
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *FundingRequestUpdateOne) SetDocumentPath(v string) *FundingRequestUpdateOne {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableDocumentPath(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *FundingRequestUpdateOne) ClearDocumentPath() *FundingRequestUpdateOne {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetVoteStatus sets the "vote_status" field.
func (_u *FundingRequestUpdateOne) SetVoteStatus(v string) *FundingRequestUpdateOne {
	_u.mutation.SetVoteStatus(v)
	return _u
}

// SetNillableVoteStatus sets the "vote_status" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableVoteStatus(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetVoteStatus(*v)
	}
	return _u
}

// SetIsStaffRecommended sets the "is_staff_recommended" field.
func (_u *FundingRequestUpdateOne) SetIsStaffRecommended(v bool) *FundingRequestUpdateOne {
	_u.mutation.SetIsStaffRecommended(v)
	return _u
}

// SetNillableIsStaffRecommended sets the "is_staff_recommended" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableIsStaffRecommended(v *bool) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetIsStaffRecommended(*v)
	}
	return _u
}

// SetMemberPriority sets the "member_priority" field.
func (_u *FundingRequestUpdateOne) SetMemberPriority(v string) *FundingRequestUpdateOne {
	_u.mutation.SetMemberPriority(v)
	return _u
}

// SetNillableMemberPriority sets the "member_priority" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableMemberPriority(v *string) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetMemberPriority(*v)
	}
	return _u
}

// ClearMemberPriority clears the value of the "member_priority" field.
func (_u *FundingRequestUpdateOne) ClearMemberPriority() *FundingRequestUpdateOne {
	_u.mutation.ClearMemberPriority()
	return _u
}

// SetHasValidOffset sets the "has_valid_offset" field.
func (_u *FundingRequestUpdateOne) SetHasValidOffset(v bool) *FundingRequestUpdateOne {
	_u.mutation.SetHasValidOffset(v)
	return _u
}

// SetNillableHasValidOffset sets the "has_valid_offset" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableHasValidOffset(v *bool) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetHasValidOffset(*v)
	}
	return _u
}

// SetIsHascJurisdiction sets the "is_hasc_jurisdiction" field.
func (_u *FundingRequestUpdateOne) SetIsHascJurisdiction(v bool) *FundingRequestUpdateOne {
	_u.mutation.SetIsHascJurisdiction(v)
	return _u
}

// SetNillableIsHascJurisdiction sets the "is_hasc_jurisdiction" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableIsHascJurisdiction(v *bool) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetIsHascJurisdiction(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FundingRequestUpdateOne) SetCreatedAt(v time.Time) *FundingRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FundingRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *FundingRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FundingRequestUpdateOne) SetUpdatedAt(v time.Time) *FundingRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FundingRequestMutation object of the builder.
func (_u *FundingRequestUpdateOne) Mutation() *FundingRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the FundingRequestUpdate builder.
func (_u *FundingRequestUpdateOne) Where(ps ...predicate.FundingRequest) *FundingRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FundingRequestUpdateOne) Select(field string, fields ...string) *FundingRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FundingRequest entity.
func (_u *FundingRequestUpdateOne) Save(ctx context.Context) (*FundingRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FundingRequestUpdateOne) SaveX(ctx context.Context) *FundingRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FundingRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FundingRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FundingRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fundingrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FundingRequestUpdateOne) check() error {
	if v, ok := _u.mutation.OrganizationName(); ok {
		if err := fundingrequest.OrganizationNameValidator(v); err != nil {
			return &ValidationError{Name: "organization_name", err: fmt.Errorf(`ent: validator failed for field "FundingRequest.organization_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FundingRequestUpdateOne) sqlSave(ctx context.Context) (_node *FundingRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fundingrequest.Table, fundingrequest.Columns, sqlgraph.NewFieldSpec(fundingrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FundingRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fundingrequest.FieldID)
		for _, f := range fields {
			if !fundingrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fundingrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationName(); ok {
		_spec.SetField(fundingrequest.FieldOrganizationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestAmountCents(); ok {
		_spec.SetField(fundingrequest.FieldRequestAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestAmountCents(); ok {
		_spec.AddField(fundingrequest.FieldRequestAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FormattedAmount(); ok {
		_spec.SetField(fundingrequest.FieldFormattedAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgramElement(); ok {
		_spec.SetField(fundingrequest.FieldProgramElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.BriefSummary(); ok {
		_spec.SetField(fundingrequest.FieldBriefSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistrictImpact(); ok {
		_spec.SetField(fundingrequest.FieldDistrictImpact, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetLanguage(); ok {
		_spec.SetField(fundingrequest.FieldBudgetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(fundingrequest.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(fundingrequest.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarfighterImpact(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterImpact, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarfighterServices(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterServices, field.TypeString, value)
	}
	if _u.mutation.WarfighterServicesCleared() {
		_spec.ClearField(fundingrequest.FieldWarfighterServices, field.TypeString)
	}
	if value, ok := _u.mutation.IsDrl(); ok {
		_spec.SetField(fundingrequest.FieldIsDrl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(fundingrequest.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(fundingrequest.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.VoteStatus(); ok {
		_spec.SetField(fundingrequest.FieldVoteStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsStaffRecommended(); ok {
		_spec.SetField(fundingrequest.FieldIsStaffRecommended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MemberPriority(); ok {
		_spec.SetField(fundingrequest.FieldMemberPriority, field.TypeString, value)
	}
	if _u.mutation.MemberPriorityCleared() {
		_spec.ClearField(fundingrequest.FieldMemberPriority, field.TypeString)
	}
	if value, ok := _u.mutation.HasValidOffset(); ok {
		_spec.SetField(fundingrequest.FieldHasValidOffset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsHascJurisdiction(); ok {
		_spec.SetField(fundingrequest.FieldIsHascJurisdiction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fundingrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fundingrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FundingRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fundingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
