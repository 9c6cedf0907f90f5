// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
	"github.com/hasc-tools/ndaa-intake/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFundingRequest = "FundingRequest"
)

// FundingRequestMutation represents an operation that mutates the FundingRequest nodes in the graph.
type FundingRequestMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	organization_name       *string
	request_amount_cents    *int64
	addrequest_amount_cents *int64
	formatted_amount        *string
	program_element         *string
	brief_summary           *string
	district_impact         *string
	budget_language         *string
	domain                  *string
	tier                    *string
	warfighter_impact       *string
	warfighter_services     *string
	is_drl                  *bool
	document_path           *string
	vote_status             *string
	is_staff_recommended    *bool
	member_priority         *string
	has_valid_offset        *bool
	is_hasc_jurisdiction    *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*FundingRequest, error)
	predicates              []predicate.FundingRequest
}

var _ ent.Mutation = (*FundingRequestMutation)(nil)

// fundingrequestOption allows management of the mutation configuration using functional options.
type fundingrequestOption func(*FundingRequestMutation)

// newFundingRequestMutation creates new mutation for the FundingRequest entity.
func newFundingRequestMutation(c config, op Op, opts ...fundingrequestOption) *FundingRequestMutation {
	m := &FundingRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeFundingRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFundingRequestID sets the ID field of the mutation.
func withFundingRequestID(id uuid.UUID) fundingrequestOption {
	return func(m *FundingRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *FundingRequest
		)
		m.oldValue = func(ctx context.Context) (*FundingRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FundingRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFundingRequest sets the old FundingRequest of the mutation.
func withFundingRequest(node *FundingRequest) fundingrequestOption {
	return func(m *FundingRequestMutation) {
		m.oldValue = func(context.Context) (*FundingRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FundingRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FundingRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FundingRequest entities.
func (m *FundingRequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FundingRequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FundingRequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FundingRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationName sets the "organization_name" field.
func (m *FundingRequestMutation) SetOrganizationName(s string) {
	m.organization_name = &s
}

// OrganizationName returns the value of the "organization_name" field in the mutation.
func (m *FundingRequestMutation) OrganizationName() (r string, exists bool) {
	v := m.organization_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationName returns the old "organization_name" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldOrganizationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationName: %w", err)
	}
	return oldValue.OrganizationName, nil
}

// ResetOrganizationName resets all changes to the "organization_name" field.
func (m *FundingRequestMutation) ResetOrganizationName() {
	m.organization_name = nil
}

// SetRequestAmountCents sets the "request_amount_cents" field.
func (m *FundingRequestMutation) SetRequestAmountCents(i int64) {
	m.request_amount_cents = &i
	m.addrequest_amount_cents = nil
}

// RequestAmountCents returns the value of the "request_amount_cents" field in the mutation.
func (m *FundingRequestMutation) RequestAmountCents() (r int64, exists bool) {
	v := m.request_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestAmountCents returns the old "request_amount_cents" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldRequestAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestAmountCents: %w", err)
	}
	return oldValue.RequestAmountCents, nil
}

// AddRequestAmountCents adds i to the "request_amount_cents" field.
func (m *FundingRequestMutation) AddRequestAmountCents(i int64) {
	if m.addrequest_amount_cents != nil {
		*m.addrequest_amount_cents += i
	} else {
		m.addrequest_amount_cents = &i
	}
}

// AddedRequestAmountCents returns the value that was added to the "request_amount_cents" field in this mutation.
func (m *FundingRequestMutation) AddedRequestAmountCents() (r int64, exists bool) {
	v := m.addrequest_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestAmountCents resets all changes to the "request_amount_cents" field.
func (m *FundingRequestMutation) ResetRequestAmountCents() {
	m.request_amount_cents = nil
	m.addrequest_amount_cents = nil
}

// SetFormattedAmount sets the "formatted_amount" field.
func (m *FundingRequestMutation) SetFormattedAmount(s string) {
	m.formatted_amount = &s
}

// FormattedAmount returns the value of the "formatted_amount" field in the mutation.
func (m *FundingRequestMutation) FormattedAmount() (r string, exists bool) {
	v := m.formatted_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldFormattedAmount returns the old "formatted_amount" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldFormattedAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormattedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormattedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormattedAmount: %w", err)
	}
	return oldValue.FormattedAmount, nil
}

// ResetFormattedAmount resets all changes to the "formatted_amount" field.
func (m *FundingRequestMutation) ResetFormattedAmount() {
	m.formatted_amount = nil
}

// SetProgramElement sets the "program_element" field.
func (m *FundingRequestMutation) SetProgramElement(s string) {
	m.program_element = &s
}

// ProgramElement returns the value of the "program_element" field in the mutation.
func (m *FundingRequestMutation) ProgramElement() (r string, exists bool) {
	v := m.program_element
	if v == nil {
		return
	}
	return *v, true
}

// OldProgramElement returns the old "program_element" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldProgramElement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgramElement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgramElement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgramElement: %w", err)
	}
	return oldValue.ProgramElement, nil
}

// ResetProgramElement resets all changes to the "program_element" field.
func (m *FundingRequestMutation) ResetProgramElement() {
	m.program_element = nil
}

// SetBriefSummary sets the "brief_summary" field.
func (m *FundingRequestMutation) SetBriefSummary(s string) {
	m.brief_summary = &s
}

// BriefSummary returns the value of the "brief_summary" field in the mutation.
func (m *FundingRequestMutation) BriefSummary() (r string, exists bool) {
	v := m.brief_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldBriefSummary returns the old "brief_summary" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldBriefSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBriefSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBriefSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBriefSummary: %w", err)
	}
	return oldValue.BriefSummary, nil
}

// ResetBriefSummary resets all changes to the "brief_summary" field.
func (m *FundingRequestMutation) ResetBriefSummary() {
	m.brief_summary = nil
}

// SetDistrictImpact sets the "district_impact" field.
func (m *FundingRequestMutation) SetDistrictImpact(s string) {
	m.district_impact = &s
}

// DistrictImpact returns the value of the "district_impact" field in the mutation.
func (m *FundingRequestMutation) DistrictImpact() (r string, exists bool) {
	v := m.district_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrictImpact returns the old "district_impact" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldDistrictImpact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrictImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrictImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrictImpact: %w", err)
	}
	return oldValue.DistrictImpact, nil
}

// ResetDistrictImpact resets all changes to the "district_impact" field.
func (m *FundingRequestMutation) ResetDistrictImpact() {
	m.district_impact = nil
}

// SetBudgetLanguage sets the "budget_language" field.
func (m *FundingRequestMutation) SetBudgetLanguage(s string) {
	m.budget_language = &s
}

// BudgetLanguage returns the value of the "budget_language" field in the mutation.
func (m *FundingRequestMutation) BudgetLanguage() (r string, exists bool) {
	v := m.budget_language
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetLanguage returns the old "budget_language" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldBudgetLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetLanguage: %w", err)
	}
	return oldValue.BudgetLanguage, nil
}

// ResetBudgetLanguage resets all changes to the "budget_language" field.
func (m *FundingRequestMutation) ResetBudgetLanguage() {
	m.budget_language = nil
}

// SetDomain sets the "domain" field.
func (m *FundingRequestMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *FundingRequestMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *FundingRequestMutation) ResetDomain() {
	m.domain = nil
}

// SetTier sets the "tier" field.
func (m *FundingRequestMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *FundingRequestMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *FundingRequestMutation) ResetTier() {
	m.tier = nil
}

// SetWarfighterImpact sets the "warfighter_impact" field.
func (m *FundingRequestMutation) SetWarfighterImpact(s string) {
	m.warfighter_impact = &s
}

// WarfighterImpact returns the value of the "warfighter_impact" field in the mutation.
func (m *FundingRequestMutation) WarfighterImpact() (r string, exists bool) {
	v := m.warfighter_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldWarfighterImpact returns the old "warfighter_impact" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldWarfighterImpact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarfighterImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarfighterImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarfighterImpact: %w", err)
	}
	return oldValue.WarfighterImpact, nil
}

// ResetWarfighterImpact resets all changes to the "warfighter_impact" field.
func (m *FundingRequestMutation) ResetWarfighterImpact() {
	m.warfighter_impact = nil
}

// SetWarfighterServices sets the "warfighter_services" field.
func (m *FundingRequestMutation) SetWarfighterServices(s string) {
	m.warfighter_services = &s
}

// WarfighterServices returns the value of the "warfighter_services" field in the mutation.
func (m *FundingRequestMutation) WarfighterServices() (r string, exists bool) {
	v := m.warfighter_services
	if v == nil {
		return
	}
	return *v, true
}

// OldWarfighterServices returns the old "warfighter_services" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldWarfighterServices(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarfighterServices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarfighterServices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarfighterServices: %w", err)
	}
	return oldValue.WarfighterServices, nil
}

// ClearWarfighterServices clears the value of the "warfighter_services" field.
func (m *FundingRequestMutation) ClearWarfighterServices() {
	m.warfighter_services = nil
	m.clearedFields[fundingrequest.FieldWarfighterServices] = struct{}{}
}

// WarfighterServicesCleared returns if the "warfighter_services" field was cleared in this mutation.
func (m *FundingRequestMutation) WarfighterServicesCleared() bool {
	_, ok := m.clearedFields[fundingrequest.FieldWarfighterServices]
	return ok
}

// ResetWarfighterServices resets all changes to the "warfighter_services" field.
func (m *FundingRequestMutation) ResetWarfighterServices() {
	m.warfighter_services = nil
	delete(m.clearedFields, fundingrequest.FieldWarfighterServices)
}

// SetIsDrl sets the "is_drl" field.
func (m *FundingRequestMutation) SetIsDrl(b bool) {
	m.is_drl = &b
}

// IsDrl returns the value of the "is_drl" field in the mutation.
func (m *FundingRequestMutation) IsDrl() (r bool, exists bool) {
	v := m.is_drl
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDrl returns the old "is_drl" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldIsDrl(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDrl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDrl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDrl: %w", err)
	}
	return oldValue.IsDrl, nil
}

// ResetIsDrl resets all changes to the "is_drl" field.
func (m *FundingRequestMutation) ResetIsDrl() {
	m.is_drl = nil
}

// SetDocumentPath sets the "document_path" field.
func (m *FundingRequestMutation) SetDocumentPath(s string) {
	m.document_path = &s
}

// DocumentPath returns the value of the "document_path" field in the mutation.
func (m *FundingRequestMutation) DocumentPath() (r string, exists bool) {
	v := m.document_path
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentPath returns the old "document_path" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldDocumentPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentPath: %w", err)
	}
	return oldValue.DocumentPath, nil
}

// ClearDocumentPath clears the value of the "document_path" field.
func (m *FundingRequestMutation) ClearDocumentPath() {
	m.document_path = nil
	m.clearedFields[fundingrequest.FieldDocumentPath] = struct{}{}
}

// DocumentPathCleared returns if the "document_path" field was cleared in this mutation.
func (m *FundingRequestMutation) DocumentPathCleared() bool {
	_, ok := m.clearedFields[fundingrequest.FieldDocumentPath]
	return ok
}

// ResetDocumentPath resets all changes to the "document_path" field.
func (m *FundingRequestMutation) ResetDocumentPath() {
	m.document_path = nil
	delete(m.clearedFields, fundingrequest.FieldDocumentPath)
}

// SetVoteStatus sets the "vote_status" field.
func (m *FundingRequestMutation) SetVoteStatus(s string) {
	m.vote_status = &s
}

// VoteStatus returns the value of the "vote_status" field in the mutation.
func (m *FundingRequestMutation) VoteStatus() (r string, exists bool) {
	v := m.vote_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteStatus returns the old "vote_status" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldVoteStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteStatus: %w", err)
	}
	return oldValue.VoteStatus, nil
}

// ResetVoteStatus resets all changes to the "vote_status" field.
func (m *FundingRequestMutation) ResetVoteStatus() {
	m.vote_status = nil
}

// SetIsStaffRecommended sets the "is_staff_recommended" field.
func (m *FundingRequestMutation) SetIsStaffRecommended(b bool) {
	m.is_staff_recommended = &b
}

// IsStaffRecommended returns the value of the "is_staff_recommended" field in the mutation.
func (m *FundingRequestMutation) IsStaffRecommended() (r bool, exists bool) {
	v := m.is_staff_recommended
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStaffRecommended returns the old "is_staff_recommended" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldIsStaffRecommended(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStaffRecommended is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStaffRecommended requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStaffRecommended: %w", err)
	}
	return oldValue.IsStaffRecommended, nil
}

// ResetIsStaffRecommended resets all changes to the "is_staff_recommended" field.
func (m *FundingRequestMutation) ResetIsStaffRecommended() {
	m.is_staff_recommended = nil
}

// SetMemberPriority sets the "member_priority" field.
func (m *FundingRequestMutation) SetMemberPriority(s string) {
	m.member_priority = &s
}

// MemberPriority returns the value of the "member_priority" field in the mutation.
func (m *FundingRequestMutation) MemberPriority() (r string, exists bool) {
	v := m.member_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberPriority returns the old "member_priority" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldMemberPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberPriority: %w", err)
	}
	return oldValue.MemberPriority, nil
}

// ClearMemberPriority clears the value of the "member_priority" field.
func (m *FundingRequestMutation) ClearMemberPriority() {
	m.member_priority = nil
	m.clearedFields[fundingrequest.FieldMemberPriority] = struct{}{}
}

// MemberPriorityCleared returns if the "member_priority" field was cleared in this mutation.
func (m *FundingRequestMutation) MemberPriorityCleared() bool {
	_, ok := m.clearedFields[fundingrequest.FieldMemberPriority]
	return ok
}

// ResetMemberPriority resets all changes to the "member_priority" field.
func (m *FundingRequestMutation) ResetMemberPriority() {
	m.member_priority = nil
	delete(m.clearedFields, fundingrequest.FieldMemberPriority)
}

// SetHasValidOffset sets the "has_valid_offset" field.
func (m *FundingRequestMutation) SetHasValidOffset(b bool) {
	m.has_valid_offset = &b
}

// HasValidOffset returns the value of the "has_valid_offset" field in the mutation.
func (m *FundingRequestMutation) HasValidOffset() (r bool, exists bool) {
	v := m.has_valid_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldHasValidOffset returns the old "has_valid_offset" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldHasValidOffset(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasValidOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasValidOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasValidOffset: %w", err)
	}
	return oldValue.HasValidOffset, nil
}

// ResetHasValidOffset resets all changes to the "has_valid_offset" field.
func (m *FundingRequestMutation) ResetHasValidOffset() {
	m.has_valid_offset = nil
}

// SetIsHascJurisdiction sets the "is_hasc_jurisdiction" field.
func (m *FundingRequestMutation) SetIsHascJurisdiction(b bool) {
	m.is_hasc_jurisdiction = &b
}

// IsHascJurisdiction returns the value of the "is_hasc_jurisdiction" field in the mutation.
func (m *FundingRequestMutation) IsHascJurisdiction() (r bool, exists bool) {
	v := m.is_hasc_jurisdiction
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHascJurisdiction returns the old "is_hasc_jurisdiction" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldIsHascJurisdiction(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHascJurisdiction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHascJurisdiction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHascJurisdiction: %w", err)
	}
	return oldValue.IsHascJurisdiction, nil
}

// ResetIsHascJurisdiction resets all changes to the "is_hasc_jurisdiction" field.
func (m *FundingRequestMutation) ResetIsHascJurisdiction() {
	m.is_hasc_jurisdiction = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FundingRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FundingRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FundingRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FundingRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FundingRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FundingRequest entity.
// If the FundingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundingRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FundingRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FundingRequestMutation builder.
func (m *FundingRequestMutation) Where(ps ...predicate.FundingRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FundingRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FundingRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FundingRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FundingRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FundingRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FundingRequest).
func (m *FundingRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FundingRequestMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.organization_name != nil {
		fields = append(fields, fundingrequest.FieldOrganizationName)
	}
	if m.request_amount_cents != nil {
		fields = append(fields, fundingrequest.FieldRequestAmountCents)
	}
	if m.formatted_amount != nil {
		fields = append(fields, fundingrequest.FieldFormattedAmount)
	}
	if m.program_element != nil {
		fields = append(fields, fundingrequest.FieldProgramElement)
	}
	if m.brief_summary != nil {
		fields = append(fields, fundingrequest.FieldBriefSummary)
	}
	if m.district_impact != nil {
		fields = append(fields, fundingrequest.FieldDistrictImpact)
	}
	if m.budget_language != nil {
		fields = append(fields, fundingrequest.FieldBudgetLanguage)
	}
	if m.domain != nil {
		fields = append(fields, fundingrequest.FieldDomain)
	}
	if m.tier != nil {
		fields = append(fields, fundingrequest.FieldTier)
	}
	if m.warfighter_impact != nil {
		fields = append(fields, fundingrequest.FieldWarfighterImpact)
	}
	if m.warfighter_services != nil {
		fields = append(fields, fundingrequest.FieldWarfighterServices)
	}
	if m.is_drl != nil {
		fields = append(fields, fundingrequest.FieldIsDrl)
	}
	if m.document_path != nil {
		fields = append(fields, fundingrequest.FieldDocumentPath)
	}
	if m.vote_status != nil {
		fields = append(fields, fundingrequest.FieldVoteStatus)
	}
	if m.is_staff_recommended != nil {
		fields = append(fields, fundingrequest.FieldIsStaffRecommended)
	}
	if m.member_priority != nil {
		fields = append(fields, fundingrequest.FieldMemberPriority)
	}
	if m.has_valid_offset != nil {
		fields = append(fields, fundingrequest.FieldHasValidOffset)
	}
	if m.is_hasc_jurisdiction != nil {
		fields = append(fields, fundingrequest.FieldIsHascJurisdiction)
	}
	if m.created_at != nil {
		fields = append(fields, fundingrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fundingrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FundingRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fundingrequest.FieldOrganizationName:
		return m.OrganizationName()
	case fundingrequest.FieldRequestAmountCents:
		return m.RequestAmountCents()
	case fundingrequest.FieldFormattedAmount:
		return m.FormattedAmount()
	case fundingrequest.FieldProgramElement:
		return m.ProgramElement()
	case fundingrequest.FieldBriefSummary:
		return m.BriefSummary()
	case fundingrequest.FieldDistrictImpact:
		return m.DistrictImpact()
	case fundingrequest.FieldBudgetLanguage:
		return m.BudgetLanguage()
	case fundingrequest.FieldDomain:
		return m.Domain()
	case fundingrequest.FieldTier:
		return m.Tier()
	case fundingrequest.FieldWarfighterImpact:
		return m.WarfighterImpact()
	case fundingrequest.FieldWarfighterServices:
		return m.WarfighterServices()
	case fundingrequest.FieldIsDrl:
		return m.IsDrl()
	case fundingrequest.FieldDocumentPath:
		return m.DocumentPath()
	case fundingrequest.FieldVoteStatus:
		return m.VoteStatus()
	case fundingrequest.FieldIsStaffRecommended:
		return m.IsStaffRecommended()
	case fundingrequest.FieldMemberPriority:
		return m.MemberPriority()
	case fundingrequest.FieldHasValidOffset:
		return m.HasValidOffset()
	case fundingrequest.FieldIsHascJurisdiction:
		return m.IsHascJurisdiction()
	case fundingrequest.FieldCreatedAt:
		return m.CreatedAt()
	case fundingrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FundingRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fundingrequest.FieldOrganizationName:
		return m.OldOrganizationName(ctx)
	case fundingrequest.FieldRequestAmountCents:
		return m.OldRequestAmountCents(ctx)
	case fundingrequest.FieldFormattedAmount:
		return m.OldFormattedAmount(ctx)
	case fundingrequest.FieldProgramElement:
		return m.OldProgramElement(ctx)
	case fundingrequest.FieldBriefSummary:
		return m.OldBriefSummary(ctx)
	case fundingrequest.FieldDistrictImpact:
		return m.OldDistrictImpact(ctx)
	case fundingrequest.FieldBudgetLanguage:
		return m.OldBudgetLanguage(ctx)
	case fundingrequest.FieldDomain:
		return m.OldDomain(ctx)
	case fundingrequest.FieldTier:
		return m.OldTier(ctx)
	case fundingrequest.FieldWarfighterImpact:
		return m.OldWarfighterImpact(ctx)
	case fundingrequest.FieldWarfighterServices:
		return m.OldWarfighterServices(ctx)
	case fundingrequest.FieldIsDrl:
		return m.OldIsDrl(ctx)
	case fundingrequest.FieldDocumentPath:
		return m.OldDocumentPath(ctx)
	case fundingrequest.FieldVoteStatus:
		return m.OldVoteStatus(ctx)
	case fundingrequest.FieldIsStaffRecommended:
		return m.OldIsStaffRecommended(ctx)
	case fundingrequest.FieldMemberPriority:
		return m.OldMemberPriority(ctx)
	case fundingrequest.FieldHasValidOffset:
		return m.OldHasValidOffset(ctx)
	case fundingrequest.FieldIsHascJurisdiction:
		return m.OldIsHascJurisdiction(ctx)
	case fundingrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fundingrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FundingRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundingRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fundingrequest.FieldOrganizationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationName(v)
		return nil
	case fundingrequest.FieldRequestAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestAmountCents(v)
		return nil
	case fundingrequest.FieldFormattedAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormattedAmount(v)
		return nil
	case fundingrequest.FieldProgramElement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgramElement(v)
		return nil
	case fundingrequest.FieldBriefSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBriefSummary(v)
		return nil
	case fundingrequest.FieldDistrictImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrictImpact(v)
		return nil
	case fundingrequest.FieldBudgetLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetLanguage(v)
		return nil
	case fundingrequest.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case fundingrequest.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case fundingrequest.FieldWarfighterImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarfighterImpact(v)
		return nil
	case fundingrequest.FieldWarfighterServices:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarfighterServices(v)
		return nil
	case fundingrequest.FieldIsDrl:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDrl(v)
		return nil
	case fundingrequest.FieldDocumentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentPath(v)
		return nil
	case fundingrequest.FieldVoteStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteStatus(v)
		return nil
	case fundingrequest.FieldIsStaffRecommended:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStaffRecommended(v)
		return nil
	case fundingrequest.FieldMemberPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberPriority(v)
		return nil
	case fundingrequest.FieldHasValidOffset:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasValidOffset(v)
		return nil
	case fundingrequest.FieldIsHascJurisdiction:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHascJurisdiction(v)
		return nil
	case fundingrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fundingrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FundingRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FundingRequestMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_amount_cents != nil {
		fields = append(fields, fundingrequest.FieldRequestAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FundingRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fundingrequest.FieldRequestAmountCents:
		return m.AddedRequestAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundingRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fundingrequest.FieldRequestAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown FundingRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FundingRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fundingrequest.FieldWarfighterServices) {
		fields = append(fields, fundingrequest.FieldWarfighterServices)
	}
	if m.FieldCleared(fundingrequest.FieldDocumentPath) {
		fields = append(fields, fundingrequest.FieldDocumentPath)
	}
	if m.FieldCleared(fundingrequest.FieldMemberPriority) {
		fields = append(fields, fundingrequest.FieldMemberPriority)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FundingRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FundingRequestMutation) ClearField(name string) error {
	switch name {
	case fundingrequest.FieldWarfighterServices:
		m.ClearWarfighterServices()
		return nil
	case fundingrequest.FieldDocumentPath:
		m.ClearDocumentPath()
		return nil
	case fundingrequest.FieldMemberPriority:
		m.ClearMemberPriority()
		return nil
	}
	return fmt.Errorf("unknown FundingRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FundingRequestMutation) ResetField(name string) error {
	switch name {
	case fundingrequest.FieldOrganizationName:
		m.ResetOrganizationName()
		return nil
	case fundingrequest.FieldRequestAmountCents:
		m.ResetRequestAmountCents()
		return nil
	case fundingrequest.FieldFormattedAmount:
		m.ResetFormattedAmount()
		return nil
	case fundingrequest.FieldProgramElement:
		m.ResetProgramElement()
		return nil
	case fundingrequest.FieldBriefSummary:
		m.ResetBriefSummary()
		return nil
	case fundingrequest.FieldDistrictImpact:
		m.ResetDistrictImpact()
		return nil
	case fundingrequest.FieldBudgetLanguage:
		m.ResetBudgetLanguage()
		return nil
	case fundingrequest.FieldDomain:
		m.ResetDomain()
		return nil
	case fundingrequest.FieldTier:
		m.ResetTier()
		return nil
	case fundingrequest.FieldWarfighterImpact:
		m.ResetWarfighterImpact()
		return nil
	case fundingrequest.FieldWarfighterServices:
		m.ResetWarfighterServices()
		return nil
	case fundingrequest.FieldIsDrl:
		m.ResetIsDrl()
		return nil
	case fundingrequest.FieldDocumentPath:
		m.ResetDocumentPath()
		return nil
	case fundingrequest.FieldVoteStatus:
		m.ResetVoteStatus()
		return nil
	case fundingrequest.FieldIsStaffRecommended:
		m.ResetIsStaffRecommended()
		return nil
	case fundingrequest.FieldMemberPriority:
		m.ResetMemberPriority()
		return nil
	case fundingrequest.FieldHasValidOffset:
		m.ResetHasValidOffset()
		return nil
	case fundingrequest.FieldIsHascJurisdiction:
		m.ResetIsHascJurisdiction()
		return nil
	case fundingrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fundingrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FundingRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FundingRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FundingRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FundingRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FundingRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FundingRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FundingRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FundingRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FundingRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FundingRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FundingRequest edge %s", name)
}
