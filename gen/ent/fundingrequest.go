// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
)

// FundingRequest is the model entity for the FundingRequest schema.
type FundingRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrganizationName holds the value of the "organization_name" field.
	OrganizationName string `json:"organization_name,omitempty"`
	// RequestAmountCents holds the value of the "request_amount_cents" field.
	RequestAmountCents int64 `json:"request_amount_cents,omitempty"`
	// FormattedAmount holds the value of the "formatted_amount" field.
	FormattedAmount string `json:"formatted_amount,omitempty"`
	// ProgramElement holds the value of the "program_element" field.
	ProgramElement string `json:"program_element,omitempty"`
	// BriefSummary holds the value of the "brief_summary" field.
	BriefSummary string `json:"brief_summary,omitempty"`
	// DistrictImpact holds the value of the "district_impact" field.
	DistrictImpact string `json:"district_impact,omitempty"`
	// BudgetLanguage holds the value of the "budget_language" field.
	BudgetLanguage string `json:"budget_language,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier string `json:"tier,omitempty"`
	// WarfighterImpact holds the value of the "warfighter_impact" field.
	WarfighterImpact string `json:"warfighter_impact,omitempty"`
	// WarfighterServices holds the value of the "warfighter_services" field.
	WarfighterServices string `json:"warfighter_services,omitempty"`
	// IsDrl holds the value of the "is_drl" field.
	IsDrl bool `json:"is_drl,omitempty"`
	// DocumentPath holds the value of the "document_path" field.
	DocumentPath string `json:"document_path,omitempty"`
	// VoteStatus holds the value of the "vote_status" field.
	VoteStatus string `json:"vote_status,omitempty"`
	// IsStaffRecommended holds the value of the "is_staff_recommended" field.
	IsStaffRecommended bool `json:"is_staff_recommended,omitempty"`
	// MemberPriority holds the value of the "member_priority" field.
	MemberPriority string `json:"member_priority,omitempty"`
	// HasValidOffset holds the value of the "has_valid_offset" field.
	HasValidOffset bool `json:"has_valid_offset,omitempty"`
	// IsHascJurisdiction holds the value of the "is_hasc_jurisdiction" field.
	IsHascJurisdiction bool `json:"is_hasc_jurisdiction,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FundingRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fundingrequest.FieldIsDrl, fundingrequest.FieldIsStaffRecommended, fundingrequest.FieldHasValidOffset, fundingrequest.FieldIsHascJurisdiction:
			values[i] = new(sql.NullBool)
		case fundingrequest.FieldRequestAmountCents:
			values[i] = new(sql.NullInt64)
		case fundingrequest.FieldOrganizationName, fundingrequest.FieldFormattedAmount, fundingrequest.FieldProgramElement, fundingrequest.FieldBriefSummary, fundingrequest.FieldDistrictImpact, fundingrequest.FieldBudgetLanguage, fundingrequest.FieldDomain, fundingrequest.FieldTier, fundingrequest.FieldWarfighterImpact, fundingrequest.FieldWarfighterServices, fundingrequest.FieldDocumentPath, fundingrequest.FieldVoteStatus, fundingrequest.FieldMemberPriority:
			values[i] = new(sql.NullString)
		case fundingrequest.FieldCreatedAt, fundingrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fundingrequest.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FundingRequest fields.
func (_m *FundingRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fundingrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fundingrequest.FieldOrganizationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_name", values[i])
			} else if value.Valid {
				_m.OrganizationName = value.String
			}
		case fundingrequest.FieldRequestAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_amount_cents", values[i])
			} else if value.Valid {
				_m.RequestAmountCents = value.Int64
			}
		case fundingrequest.FieldFormattedAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field formatted_amount", values[i])
			} else if value.Valid {
				_m.FormattedAmount = value.String
			}
		case fundingrequest.FieldProgramElement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_element", values[i])
			} else if value.Valid {
				_m.ProgramElement = value.String
			}
		case fundingrequest.FieldBriefSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brief_summary", values[i])
			} else if value.Valid {
				_m.BriefSummary = value.String
			}
		case fundingrequest.FieldDistrictImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field district_impact", values[i])
			} else if value.Valid {
				_m.DistrictImpact = value.String
			}
		case fundingrequest.FieldBudgetLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field budget_language", values[i])
			} else if value.Valid {
				_m.BudgetLanguage = value.String
			}
		case fundingrequest.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case fundingrequest.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case fundingrequest.FieldWarfighterImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warfighter_impact", values[i])
			} else if value.Valid {
				_m.WarfighterImpact = value.String
			}
		case fundingrequest.FieldWarfighterServices:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warfighter_services", values[i])
			} else if value.Valid {
				_m.WarfighterServices = value.String
			}
		case fundingrequest.FieldIsDrl:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_drl", values[i])
			} else if value.Valid {
				_m.IsDrl = value.Bool
			}
		case fundingrequest.FieldDocumentPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_path", values[i])
			} else if value.Valid {
				_m.DocumentPath = value.String
			}
		case fundingrequest.FieldVoteStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vote_status", values[i])
			} else if value.Valid {
				_m.VoteStatus = value.String
			}
		case fundingrequest.FieldIsStaffRecommended:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_staff_recommended", values[i])
			} else if value.Valid {
				_m.IsStaffRecommended = value.Bool
			}
		case fundingrequest.FieldMemberPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_priority", values[i])
			} else if value.Valid {
				_m.MemberPriority = value.String
			}
		case fundingrequest.FieldHasValidOffset:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_valid_offset", values[i])
			} else if value.Valid {
				_m.HasValidOffset = value.Bool
			}
		case fundingrequest.FieldIsHascJurisdiction:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_hasc_jurisdiction", values[i])
			} else if value.Valid {
				_m.IsHascJurisdiction = value.Bool
			}
		case fundingrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fundingrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FundingRequest.
// This includes values selected through modifiers, order, etc.
func (_m *FundingRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FundingRequest.
// Note that you need to call FundingRequest.Unwrap() before calling this method if this FundingRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FundingRequest) Update() *FundingRequestUpdateOne {
	return NewFundingRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FundingRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FundingRequest) Unwrap() *FundingRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FundingRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FundingRequest) String() string {
	var builder strings.Builder
	builder.WriteString("FundingRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_name=")
	builder.WriteString(_m.OrganizationName)
	builder.WriteString(", ")
	builder.WriteString("request_amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestAmountCents))
	builder.WriteString(", ")
	builder.WriteString("formatted_amount=")
	builder.WriteString(_m.FormattedAmount)
	builder.WriteString(", ")
	builder.WriteString("program_element=")
	builder.WriteString(_m.ProgramElement)
	builder.WriteString(", ")
	builder.WriteString("brief_summary=")
	builder.WriteString(_m.BriefSummary)
	builder.WriteString(", ")
	builder.WriteString("district_impact=")
	builder.WriteString(_m.DistrictImpact)
	builder.WriteString(", ")
	builder.WriteString("budget_language=")
	builder.WriteString(_m.BudgetLanguage)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("warfighter_impact=")
	builder.WriteString(_m.WarfighterImpact)
	builder.WriteString(", ")
	builder.WriteString("warfighter_services=")
	builder.WriteString(_m.WarfighterServices)
	builder.WriteString(", ")
	builder.WriteString("is_drl=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDrl))
	builder.WriteString(", ")
	builder.WriteString("document_path=")
	builder.WriteString(_m.DocumentPath)
	builder.WriteString(", ")
	builder.WriteString("vote_status=")
	builder.WriteString(_m.VoteStatus)
	builder.WriteString(", ")
	builder.WriteString("is_staff_recommended=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStaffRecommended))
	builder.WriteString(", ")
	builder.WriteString("member_priority=")
	builder.WriteString(_m.MemberPriority)
	builder.WriteString(", ")
	builder.WriteString("has_valid_offset=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasValidOffset))
	builder.WriteString(", ")
	builder.WriteString("is_hasc_jurisdiction=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsHascJurisdiction))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FundingRequests is a parsable slice of FundingRequest.
type FundingRequests []*FundingRequest
