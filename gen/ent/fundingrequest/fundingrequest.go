// Code generated by ent, DO NOT EDIT.

package fundingrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fundingrequest type in the database.
	Label = "funding_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrganizationName holds the string denoting the organization_name field in the database.
	FieldOrganizationName = "organization_name"
	// FieldRequestAmountCents holds the string denoting the request_amount_cents field in the database.
	FieldRequestAmountCents = "request_amount_cents"
	// FieldFormattedAmount holds the string denoting the formatted_amount field in the database.
	FieldFormattedAmount = "formatted_amount"
	// FieldProgramElement holds the string denoting the program_element field in the database.
	FieldProgramElement = "program_element"
	// FieldBriefSummary holds the string denoting the brief_summary field in the database.
	FieldBriefSummary = "brief_summary"
	// FieldDistrictImpact holds the string denoting the district_impact field in the database.
	FieldDistrictImpact = "district_impact"
	// FieldBudgetLanguage holds the string denoting the budget_language field in the database.
	FieldBudgetLanguage = "budget_language"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldWarfighterImpact holds the string denoting the warfighter_impact field in the database.
	FieldWarfighterImpact = "warfighter_impact"
	// FieldWarfighterServices holds the string denoting the warfighter_services field in the database.
	FieldWarfighterServices = "warfighter_services"
	// FieldIsDrl holds the string denoting the is_drl field in the database.
	FieldIsDrl = "is_drl"
	// FieldDocumentPath holds the string denoting the document_path field in the database.
	FieldDocumentPath = "document_path"
	// FieldVoteStatus holds the string denoting the vote_status field in the database.
	FieldVoteStatus = "vote_status"
	// FieldIsStaffRecommended holds the string denoting the is_staff_recommended field in the database.
	FieldIsStaffRecommended = "is_staff_recommended"
	// FieldMemberPriority holds the string denoting the member_priority field in the database.
	FieldMemberPriority = "member_priority"
	// FieldHasValidOffset holds the string denoting the has_valid_offset field in the database.
	FieldHasValidOffset = "has_valid_offset"
	// FieldIsHascJurisdiction holds the string denoting the is_hasc_jurisdiction field in the database.
	FieldIsHascJurisdiction = "is_hasc_jurisdiction"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the fundingrequest in the database.
	Table = "funding_requests"
)

// Columns holds all SQL columns for fundingrequest fields.
var Columns = []string{
	FieldID,
	FieldOrganizationName,
	FieldRequestAmountCents,
	FieldFormattedAmount,
	FieldProgramElement,
	FieldBriefSummary,
	FieldDistrictImpact,
	FieldBudgetLanguage,
	FieldDomain,
	FieldTier,
	FieldWarfighterImpact,
	FieldWarfighterServices,
	FieldIsDrl,
	FieldDocumentPath,
	FieldVoteStatus,
	FieldIsStaffRecommended,
	FieldMemberPriority,
	FieldHasValidOffset,
	FieldIsHascJurisdiction,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OrganizationNameValidator is a validator for the "organization_name" field. It is called by the builders before save.
	OrganizationNameValidator func(string) error
	// DefaultProgramElement holds the default value on creation for the "program_element" field.
	DefaultProgramElement string
	// DefaultDomain holds the default value on creation for the "domain" field.
	DefaultDomain string
	// DefaultTier holds the default value on creation for the "tier" field.
	DefaultTier string
	// DefaultIsDrl holds the default value on creation for the "is_drl" field.
	DefaultIsDrl bool
	// DefaultVoteStatus holds the default value on creation for the "vote_status" field.
	DefaultVoteStatus string
	// DefaultIsStaffRecommended holds the default value on creation for the "is_staff_recommended" field.
	DefaultIsStaffRecommended bool
	// DefaultHasValidOffset holds the default value on creation for the "has_valid_offset" field.
	DefaultHasValidOffset bool
	// DefaultIsHascJurisdiction holds the default value on creation for the "is_hasc_jurisdiction" field.
	DefaultIsHascJurisdiction bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FundingRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationName orders the results by the organization_name field.
func ByOrganizationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationName, opts...).ToFunc()
}

// ByRequestAmountCents orders the results by the request_amount_cents field.
func ByRequestAmountCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestAmountCents, opts...).ToFunc()
}

// ByFormattedAmount orders the results by the formatted_amount field.
func ByFormattedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormattedAmount, opts...).ToFunc()
}

// ByProgramElement orders the results by the program_element field.
func ByProgramElement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgramElement, opts...).ToFunc()
}

// ByBriefSummary orders the results by the brief_summary field.
func ByBriefSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBriefSummary, opts...).ToFunc()
}

// ByDistrictImpact orders the results by the district_impact field.
func ByDistrictImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistrictImpact, opts...).ToFunc()
}

// ByBudgetLanguage orders the results by the budget_language field.
func ByBudgetLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetLanguage, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByWarfighterImpact orders the results by the warfighter_impact field.
func ByWarfighterImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarfighterImpact, opts...).ToFunc()
}

// ByWarfighterServices orders the results by the warfighter_services field.
func ByWarfighterServices(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarfighterServices, opts...).ToFunc()
}

// ByIsDrl orders the results by the is_drl field.
func ByIsDrl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDrl, opts...).ToFunc()
}

// ByDocumentPath orders the results by the document_path field.
func ByDocumentPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentPath, opts...).ToFunc()
}

// ByVoteStatus orders the results by the vote_status field.
func ByVoteStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoteStatus, opts...).ToFunc()
}

// ByIsStaffRecommended orders the results by the is_staff_recommended field.
func ByIsStaffRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStaffRecommended, opts...).ToFunc()
}

// ByMemberPriority orders the results by the member_priority field.
func ByMemberPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberPriority, opts...).ToFunc()
}

// ByHasValidOffset orders the results by the has_valid_offset field.
func ByHasValidOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasValidOffset, opts...).ToFunc()
}

// ByIsHascJurisdiction orders the results by the is_hasc_jurisdiction field.
func ByIsHascJurisdiction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHascJurisdiction, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
