// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
)

// FundingRequestCreate is the builder for creating a FundingRequest entity.
type FundingRequestCreate struct {
	config
	mutation *FundingRequestMutation
	hooks    []Hook
}

// SetOrganizationName sets the "organization_name" field.
func (_c *FundingRequestCreate) SetOrganizationName(v string) *FundingRequestCreate {
	_c.mutation.SetOrganizationName(v)
	return _c
}

// SetRequestAmountCents sets the "request_amount_cents" field.
func (_c *FundingRequestCreate) SetRequestAmountCents(v int64) *FundingRequestCreate {
	_c.mutation.SetRequestAmountCents(v)
	return _c
}

// SetFormattedAmount sets the "formatted_amount" field.
func (_c *FundingRequestCreate) SetFormattedAmount(v string) *FundingRequestCreate {
	_c.mutation.SetFormattedAmount(v)
	return _c
}

// SetProgramElement sets the "program_element" field.
func (_c *FundingRequestCreate) SetProgramElement(v string) *FundingRequestCreate {
	_c.mutation.SetProgramElement(v)
	return _c
}

// SetNillableProgramElement sets the "program_element" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableProgramElement(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetProgramElement(*v)
	}
	return _c
}

// SetBriefSummary sets the "brief_summary" field.
func (_c *FundingRequestCreate) SetBriefSummary(v string) *FundingRequestCreate {
	_c.mutation.SetBriefSummary(v)
	return _c
}

// SetDistrictImpact sets the "district_impact" field.
func (_c *FundingRequestCreate) SetDistrictImpact(v string) *FundingRequestCreate {
	_c.mutation.SetDistrictImpact(v)
	return _c
}

// SetBudgetLanguage sets the "budget_language" field.
func (_c *FundingRequestCreate) SetBudgetLanguage(v string) *FundingRequestCreate {
	_c.mutation.SetBudgetLanguage(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *FundingRequestCreate) SetDomain(v string) *FundingRequestCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableDomain(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *FundingRequestCreate) SetTier(v string) *FundingRequestCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableTier(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetWarfighterImpact sets the "warfighter_impact" field.
func (_c *FundingRequestCreate) SetWarfighterImpact(v string) *FundingRequestCreate {
	_c.mutation.SetWarfighterImpact(v)
	return _c
}

// SetWarfighterServices sets the "warfighter_services" field.
func (_c *FundingRequestCreate) SetWarfighterServices(v string) *FundingRequestCreate {
	_c.mutation.SetWarfighterServices(v)
	return _c
}

// SetNillableWarfighterServices sets the "warfighter_services" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableWarfighterServices(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetWarfighterServices(*v)
	}
	return _c
}

// SetIsDrl sets the "is_drl" field.
func (_c *FundingRequestCreate) SetIsDrl(v bool) *FundingRequestCreate {
	_c.mutation.SetIsDrl(v)
	return _c
}

// SetNillableIsDrl sets the "is_drl" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableIsDrl(v *bool) *FundingRequestCreate {
	if v != nil {
		_c.SetIsDrl(*v)
	}
	return _c
}

// SetDocumentPath sets the "document_path" field.
func (_c *FundingRequestCreate) SetDocumentPath(v string) *FundingRequestCreate {
	_c.mutation.SetDocumentPath(v)
	return _c
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableDocumentPath(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetDocumentPath(*v)
	}
	return _c
}

// SetVoteStatus sets the "vote_status" field.
func (_c *FundingRequestCreate) SetVoteStatus(v string) *FundingRequestCreate {
	_c.mutation.SetVoteStatus(v)
	return _c
}

// SetNillableVoteStatus sets the "vote_status" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableVoteStatus(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetVoteStatus(*v)
	}
	return _c
}

// SetIsStaffRecommended sets the "is_staff_recommended" field.
func (_c *FundingRequestCreate) SetIsStaffRecommended(v bool) *FundingRequestCreate {
	_c.mutation.SetIsStaffRecommended(v)
	return _c
}

// SetNillableIsStaffRecommended sets the "is_staff_recommended" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableIsStaffRecommended(v *bool) *FundingRequestCreate {
	if v != nil {
		_c.SetIsStaffRecommended(*v)
	}
	return _c
}

// SetMemberPriority sets the "member_priority" field.
func (_c *FundingRequestCreate) SetMemberPriority(v string) *FundingRequestCreate {
	_c.mutation.SetMemberPriority(v)
	return _c
}

// SetNillableMemberPriority sets the "member_priority" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableMemberPriority(v *string) *FundingRequestCreate {
	if v != nil {
		_c.SetMemberPriority(*v)
	}
	return _c
}

// SetHasValidOffset sets the "has_valid_offset" field.
func (_c *FundingRequestCreate) SetHasValidOffset(v bool) *FundingRequestCreate {
	_c.mutation.SetHasValidOffset(v)
	return _c
}

// SetNillableHasValidOffset sets the "has_valid_offset" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableHasValidOffset(v *bool) *FundingRequestCreate {
	if v != nil {
		_c.SetHasValidOffset(*v)
	}
	return _c
}

// SetIsHascJurisdiction sets the "is_hasc_jurisdiction" field.
func (_c *FundingRequestCreate) SetIsHascJurisdiction(v bool) *FundingRequestCreate {
	_c.mutation.SetIsHascJurisdiction(v)
	return _c
}

// SetNillableIsHascJurisdiction sets the "is_hasc_jurisdiction" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableIsHascJurisdiction(v *bool) *FundingRequestCreate {
	if v != nil {
		_c.SetIsHascJurisdiction(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FundingRequestCreate) SetCreatedAt(v time.Time) *FundingRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableCreatedAt(v *time.Time) *FundingRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FundingRequestCreate) SetUpdatedAt(v time.Time) *FundingRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableUpdatedAt(v *time.Time) *FundingRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FundingRequestCreate) SetID(v uuid.UUID) *FundingRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FundingRequestCreate) SetNillableID(v *uuid.UUID) *FundingRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FundingRequestMutation object of the builder.
func (_c *FundingRequestCreate) Mutation() *FundingRequestMutation {
	return _c.mutation
}

// Save creates the FundingRequest in the database.
func (_c *FundingRequestCreate) Save(ctx context.Context) (*FundingRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FundingRequestCreate) SaveX(ctx context.Context) *FundingRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FundingRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FundingRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FundingRequestCreate) defaults() {
	if _, ok := _c.mutation.ProgramElement(); !ok {
		v := fundingrequest.DefaultProgramElement
		_c.mutation.SetProgramElement(v)
	}
	if _, ok := _c.mutation.Domain(); !ok {
		v := fundingrequest.DefaultDomain
		_c.mutation.SetDomain(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := fundingrequest.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.IsDrl(); !ok {
		v := fundingrequest.DefaultIsDrl
		_c.mutation.SetIsDrl(v)
	}
	if _, ok := _c.mutation.VoteStatus(); !ok {
		v := fundingrequest.DefaultVoteStatus
		_c.mutation.SetVoteStatus(v)
	}
	if _, ok := _c.mutation.IsStaffRecommended(); !ok {
		v := fundingrequest.DefaultIsStaffRecommended
		_c.mutation.SetIsStaffRecommended(v)
	}
	if _, ok := _c.mutation.HasValidOffset(); !ok {
		v := fundingrequest.DefaultHasValidOffset
		_c.mutation.SetHasValidOffset(v)
	}
	if _, ok := _c.mutation.IsHascJurisdiction(); !ok {
		v := fundingrequest.DefaultIsHascJurisdiction
		_c.mutation.SetIsHascJurisdiction(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fundingrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fundingrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fundingrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FundingRequestCreate) check() error {
	if _, ok := _c.mutation.OrganizationName(); !ok {
		return &ValidationError{Name: "organization_name", err: errors.New(`ent: missing required field "FundingRequest.organization_name"`)}
	}
	if v, ok := _c.mutation.OrganizationName(); ok {
		if err := fundingrequest.OrganizationNameValidator(v); err != nil {
			return &ValidationError{Name: "organization_name", err: fmt.Errorf(`ent: validator failed for field "FundingRequest.organization_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestAmountCents(); !ok {
		return &ValidationError{Name: "request_amount_cents", err: errors.New(`ent: missing required field "FundingRequest.request_amount_cents"`)}
	}
	if _, ok := _c.mutation.FormattedAmount(); !ok {
		return &ValidationError{Name: "formatted_amount", err: errors.New(`ent: missing required field "FundingRequest.formatted_amount"`)}
	}
	if _, ok := _c.mutation.ProgramElement(); !ok {
		return &ValidationError{Name: "program_element", err: errors.New(`ent: missing required field "FundingRequest.program_element"`)}
	}
	if _, ok := _c.mutation.BriefSummary(); !ok {
		return &ValidationError{Name: "brief_summary", err: errors.New(`ent: missing required field "FundingRequest.brief_summary"`)}
	}
	if _, ok := _c.mutation.DistrictImpact(); !ok {
		return &ValidationError{Name: "district_impact", err: errors.New(`ent: missing required field "FundingRequest.district_impact"`)}
	}
	if _, ok := _c.mutation.BudgetLanguage(); !ok {
		return &ValidationError{Name: "budget_language", err: errors.New(`ent: missing required field "FundingRequest.budget_language"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "FundingRequest.domain"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "FundingRequest.tier"`)}
	}
	if _, ok := _c.mutation.WarfighterImpact(); !ok {
		return &ValidationError{Name: "warfighter_impact", err: errors.New(`ent: missing required field "FundingRequest.warfighter_impact"`)}
	}
	if _, ok := _c.mutation.IsDrl(); !ok {
		return &ValidationError{Name: "is_drl", err: errors.New(`ent: missing required field "FundingRequest.is_drl"`)}
	}
	if _, ok := _c.mutation.VoteStatus(); !ok {
		return &ValidationError{Name: "vote_status", err: errors.New(`ent: missing required field "FundingRequest.vote_status"`)}
	}
	if _, ok := _c.mutation.IsStaffRecommended(); !ok {
		return &ValidationError{Name: "is_staff_recommended", err: errors.New(`ent: missing required field "FundingRequest.is_staff_recommended"`)}
	}
	if _, ok := _c.mutation.HasValidOffset(); !ok {
		return &ValidationError{Name: "has_valid_offset", err: errors.New(`ent: missing required field "FundingRequest.has_valid_offset"`)}
	}
	if _, ok := _c.mutation.IsHascJurisdiction(); !ok {
		return &ValidationError{Name: "is_hasc_jurisdiction", err: errors.New(`ent: missing required field "FundingRequest.is_hasc_jurisdiction"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FundingRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FundingRequest.updated_at"`)}
	}
	return nil
}

func (_c *FundingRequestCreate) sqlSave(ctx context.Context) (*FundingRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FundingRequestCreate) createSpec() (*FundingRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &FundingRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fundingrequest.Table, sqlgraph.NewFieldSpec(fundingrequest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrganizationName(); ok {
		_spec.SetField(fundingrequest.FieldOrganizationName, field.TypeString, value)
		_node.OrganizationName = value
	}
	if value, ok := _c.mutation.RequestAmountCents(); ok {
		_spec.SetField(fundingrequest.FieldRequestAmountCents, field.TypeInt64, value)
		_node.RequestAmountCents = value
	}
	if value, ok := _c.mutation.FormattedAmount(); ok {
		_spec.SetField(fundingrequest.FieldFormattedAmount, field.TypeString, value)
		_node.FormattedAmount = value
	}
	if value, ok := _c.mutation.ProgramElement(); ok {
		_spec.SetField(fundingrequest.FieldProgramElement, field.TypeString, value)
		_node.ProgramElement = value
	}
	if value, ok := _c.mutation.BriefSummary(); ok {
		_spec.SetField(fundingrequest.FieldBriefSummary, field.TypeString, value)
		_node.BriefSummary = value
	}
	if value, ok := _c.mutation.DistrictImpact(); ok {
		_spec.SetField(fundingrequest.FieldDistrictImpact, field.TypeString, value)
		_node.DistrictImpact = value
	}
	if value, ok := _c.mutation.BudgetLanguage(); ok {
		_spec.SetField(fundingrequest.FieldBudgetLanguage, field.TypeString, value)
		_node.BudgetLanguage = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(fundingrequest.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(fundingrequest.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.WarfighterImpact(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterImpact, field.TypeString, value)
		_node.WarfighterImpact = value
	}
	if value, ok := _c.mutation.WarfighterServices(); ok {
		_spec.SetField(fundingrequest.FieldWarfighterServices, field.TypeString, value)
		_node.WarfighterServices = value
	}
	if value, ok := _c.mutation.IsDrl(); ok {
		_spec.SetField(fundingrequest.FieldIsDrl, field.TypeBool, value)
		_node.IsDrl = value
	}
	if value, ok := _c.mutation.DocumentPath(); ok {
		_spec.SetField(fundingrequest.FieldDocumentPath, field.TypeString, value)
		_node.DocumentPath = value
	}
	if value, ok := _c.mutation.VoteStatus(); ok {
		_spec.SetField(fundingrequest.FieldVoteStatus, field.TypeString, value)
		_node.VoteStatus = value
	}
	if value, ok := _c.mutation.IsStaffRecommended(); ok {
		_spec.SetField(fundingrequest.FieldIsStaffRecommended, field.TypeBool, value)
		_node.IsStaffRecommended = value
	}
	if value, ok := _c.mutation.MemberPriority(); ok {
		_spec.SetField(fundingrequest.FieldMemberPriority, field.TypeString, value)
		_node.MemberPriority = value
	}
	if value, ok := _c.mutation.HasValidOffset(); ok {
		_spec.SetField(fundingrequest.FieldHasValidOffset, field.TypeBool, value)
		_node.HasValidOffset = value
	}
	if value, ok := _c.mutation.IsHascJurisdiction(); ok {
		_spec.SetField(fundingrequest.FieldIsHascJurisdiction, field.TypeBool, value)
		_node.IsHascJurisdiction = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fundingrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fundingrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FundingRequestCreateBulk is the builder for creating many FundingRequest entities in bulk.
type FundingRequestCreateBulk struct {
	config
	err      error
	builders []*FundingRequestCreate
}

// Save creates the FundingRequest entities in the database.
func (_c *FundingRequestCreateBulk) Save(ctx context.Context) ([]*FundingRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FundingRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FundingRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FundingRequestCreateBulk) SaveX(ctx context.Context) []*FundingRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FundingRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FundingRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
