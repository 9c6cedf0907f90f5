// Code generated by ent, DO NOT EDIT.

package fundingrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldID, id))
}

// OrganizationName applies equality check predicate on the "organization_name" field. It's identical to OrganizationNameEQ.
func OrganizationName(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldOrganizationName, v))
}

// RequestAmountCents applies equality check predicate on the "request_amount_cents" field. It's identical to RequestAmountCentsEQ.
func RequestAmountCents(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldRequestAmountCents, v))
}

// FormattedAmount applies equality check predicate on the "formatted_amount" field. It's identical to FormattedAmountEQ.
func FormattedAmount(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldFormattedAmount, v))
}

// ProgramElement applies equality check predicate on the "program_element" field. It's identical to ProgramElementEQ.
func ProgramElement(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldProgramElement, v))
}

// BriefSummary applies equality check predicate on the "brief_summary" field. It's identical to BriefSummaryEQ.
func BriefSummary(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldBriefSummary, v))
}

// DistrictImpact applies equality check predicate on the "district_impact" field. It's identical to DistrictImpactEQ.
func DistrictImpact(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDistrictImpact, v))
}

// BudgetLanguage applies equality check predicate on the "budget_language" field. It's identical to BudgetLanguageEQ.
func BudgetLanguage(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldBudgetLanguage, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDomain, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldTier, v))
}

// WarfighterImpact applies equality check predicate on the "warfighter_impact" field. It's identical to WarfighterImpactEQ.
func WarfighterImpact(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldWarfighterImpact, v))
}

// WarfighterServices applies equality check predicate on the "warfighter_services" field. It's identical to WarfighterServicesEQ.
func WarfighterServices(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldWarfighterServices, v))
}

// IsDrl applies equality check predicate on the "is_drl" field. It's identical to IsDrlEQ.
func IsDrl(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsDrl, v))
}

// DocumentPath applies equality check predicate on the "document_path" field. It's identical to DocumentPathEQ.
func DocumentPath(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDocumentPath, v))
}

// VoteStatus applies equality check predicate on the "vote_status" field. It's identical to VoteStatusEQ.
func VoteStatus(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldVoteStatus, v))
}

// IsStaffRecommended applies equality check predicate on the "is_staff_recommended" field. It's identical to IsStaffRecommendedEQ.
func IsStaffRecommended(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsStaffRecommended, v))
}

// MemberPriority applies equality check predicate on the "member_priority" field. It's identical to MemberPriorityEQ.
func MemberPriority(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldMemberPriority, v))
}

// HasValidOffset applies equality check predicate on the "has_valid_offset" field. It's identical to HasValidOffsetEQ.
func HasValidOffset(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldHasValidOffset, v))
}

// IsHascJurisdiction applies equality check predicate on the "is_hasc_jurisdiction" field. It's identical to IsHascJurisdictionEQ.
func IsHascJurisdiction(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsHascJurisdiction, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationNameEQ applies the EQ predicate on the "organization_name" field.
func OrganizationNameEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldOrganizationName, v))
}

// OrganizationNameNEQ applies the NEQ predicate on the "organization_name" field.
func OrganizationNameNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldOrganizationName, v))
}

// OrganizationNameIn applies the In predicate on the "organization_name" field.
func OrganizationNameIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldOrganizationName, vs...))
}

// OrganizationNameNotIn applies the NotIn predicate on the "organization_name" field.
func OrganizationNameNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldOrganizationName, vs...))
}

// OrganizationNameGT applies the GT predicate on the "organization_name" field.
func OrganizationNameGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldOrganizationName, v))
}

// OrganizationNameGTE applies the GTE predicate on the "organization_name" field.
func OrganizationNameGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldOrganizationName, v))
}

// OrganizationNameLT applies the LT predicate on the "organization_name" field.
func OrganizationNameLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldOrganizationName, v))
}

// OrganizationNameLTE applies the LTE predicate on the "organization_name" field.
func OrganizationNameLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldOrganizationName, v))
}

// OrganizationNameContains applies the Contains predicate on the "organization_name" field.
func OrganizationNameContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldOrganizationName, v))
}

// OrganizationNameHasPrefix applies the HasPrefix predicate on the "organization_name" field.
func OrganizationNameHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldOrganizationName, v))
}

// OrganizationNameHasSuffix applies the HasSuffix predicate on the "organization_name" field.
func OrganizationNameHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldOrganizationName, v))
}

// OrganizationNameEqualFold applies the EqualFold predicate on the "organization_name" field.
func OrganizationNameEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldOrganizationName, v))
}

// OrganizationNameContainsFold applies the ContainsFold predicate on the "organization_name" field.
func OrganizationNameContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldOrganizationName, v))
}

// RequestAmountCentsEQ applies the EQ predicate on the "request_amount_cents" field.
func RequestAmountCentsEQ(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldRequestAmountCents, v))
}

// RequestAmountCentsNEQ applies the NEQ predicate on the "request_amount_cents" field.
func RequestAmountCentsNEQ(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldRequestAmountCents, v))
}

// RequestAmountCentsIn applies the In predicate on the "request_amount_cents" field.
func RequestAmountCentsIn(vs ...int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldRequestAmountCents, vs...))
}

// RequestAmountCentsNotIn applies the NotIn predicate on the "request_amount_cents" field.
func RequestAmountCentsNotIn(vs ...int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldRequestAmountCents, vs...))
}

// RequestAmountCentsGT applies the GT predicate on the "request_amount_cents" field.
func RequestAmountCentsGT(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldRequestAmountCents, v))
}

// RequestAmountCentsGTE applies the GTE predicate on the "request_amount_cents" field.
func RequestAmountCentsGTE(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldRequestAmountCents, v))
}

// RequestAmountCentsLT applies the LT predicate on the "request_amount_cents" field.
func RequestAmountCentsLT(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldRequestAmountCents, v))
}

// RequestAmountCentsLTE applies the LTE predicate on the "request_amount_cents" field.
func RequestAmountCentsLTE(v int64) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldRequestAmountCents, v))
}

// FormattedAmountEQ applies the EQ predicate on the "formatted_amount" field.
func FormattedAmountEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldFormattedAmount, v))
}

// FormattedAmountNEQ applies the NEQ predicate on the "formatted_amount" field.
func FormattedAmountNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldFormattedAmount, v))
}

// FormattedAmountIn applies the In predicate on the "formatted_amount" field.
func FormattedAmountIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldFormattedAmount, vs...))
}

// FormattedAmountNotIn applies the NotIn predicate on the "formatted_amount" field.
func FormattedAmountNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldFormattedAmount, vs...))
}

// FormattedAmountGT applies the GT predicate on the "formatted_amount" field.
func FormattedAmountGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldFormattedAmount, v))
}

// FormattedAmountGTE applies the GTE predicate on the "formatted_amount" field.
func FormattedAmountGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldFormattedAmount, v))
}

// FormattedAmountLT applies the LT predicate on the "formatted_amount" field.
func FormattedAmountLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldFormattedAmount, v))
}

// FormattedAmountLTE applies the LTE predicate on the "formatted_amount" field.
func FormattedAmountLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldFormattedAmount, v))
}

// FormattedAmountContains applies the Contains predicate on the "formatted_amount" field.
func FormattedAmountContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldFormattedAmount, v))
}

// FormattedAmountHasPrefix applies the HasPrefix predicate on the "formatted_amount" field.
func FormattedAmountHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldFormattedAmount, v))
}

// FormattedAmountHasSuffix applies the HasSuffix predicate on the "formatted_amount" field.
func FormattedAmountHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldFormattedAmount, v))
}

// FormattedAmountEqualFold applies the EqualFold predicate on the "formatted_amount" field.
func FormattedAmountEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldFormattedAmount, v))
}

// FormattedAmountContainsFold applies the ContainsFold predicate on the "formatted_amount" field.
func FormattedAmountContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldFormattedAmount, v))
}

// ProgramElementEQ applies the EQ predicate on the "program_element" field.
func ProgramElementEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldProgramElement, v))
}

// ProgramElementNEQ applies the NEQ predicate on the "program_element" field.
func ProgramElementNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldProgramElement, v))
}

// ProgramElementIn applies the In predicate on the "program_element" field.
func ProgramElementIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldProgramElement, vs...))
}

// ProgramElementNotIn applies the NotIn predicate on the "program_element" field.
func ProgramElementNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldProgramElement, vs...))
}

// ProgramElementGT applies the GT predicate on the "program_element" field.
func ProgramElementGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldProgramElement, v))
}

// ProgramElementGTE applies the GTE predicate on the "program_element" field.
func ProgramElementGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldProgramElement, v))
}

// ProgramElementLT applies the LT predicate on the "program_element" field.
func ProgramElementLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldProgramElement, v))
}

// ProgramElementLTE applies the LTE predicate on the "program_element" field.
func ProgramElementLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldProgramElement, v))
}

// ProgramElementContains applies the Contains predicate on the "program_element" field.
func ProgramElementContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldProgramElement, v))
}

// ProgramElementHasPrefix applies the HasPrefix predicate on the "program_element" field.
func ProgramElementHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldProgramElement, v))
}

// ProgramElementHasSuffix applies the HasSuffix predicate on the "program_element" field.
func ProgramElementHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldProgramElement, v))
}

// ProgramElementEqualFold applies the EqualFold predicate on the "program_element" field.
func ProgramElementEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldProgramElement, v))
}

// ProgramElementContainsFold applies the ContainsFold predicate on the "program_element" field.
func ProgramElementContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldProgramElement, v))
}

// BriefSummaryEQ applies the EQ predicate on the "brief_summary" field.
func BriefSummaryEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldBriefSummary, v))
}

// BriefSummaryNEQ applies the NEQ predicate on the "brief_summary" field.
func BriefSummaryNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldBriefSummary, v))
}

// BriefSummaryIn applies the In predicate on the "brief_summary" field.
func BriefSummaryIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldBriefSummary, vs...))
}

// BriefSummaryNotIn applies the NotIn predicate on the "brief_summary" field.
func BriefSummaryNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldBriefSummary, vs...))
}

// BriefSummaryGT applies the GT predicate on the "brief_summary" field.
func BriefSummaryGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldBriefSummary, v))
}

// BriefSummaryGTE applies the GTE predicate on the "brief_summary" field.
func BriefSummaryGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldBriefSummary, v))
}

// BriefSummaryLT applies the LT predicate on the "brief_summary" field.
func BriefSummaryLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldBriefSummary, v))
}

// BriefSummaryLTE applies the LTE predicate on the "brief_summary" field.
func BriefSummaryLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldBriefSummary, v))
}

// BriefSummaryContains applies the Contains predicate on the "brief_summary" field.
func BriefSummaryContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldBriefSummary, v))
}

// BriefSummaryHasPrefix applies the HasPrefix predicate on the "brief_summary" field.
func BriefSummaryHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldBriefSummary, v))
}

// BriefSummaryHasSuffix applies the HasSuffix predicate on the "brief_summary" field.
func BriefSummaryHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldBriefSummary, v))
}

// BriefSummaryEqualFold applies the EqualFold predicate on the "brief_summary" field.
func BriefSummaryEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldBriefSummary, v))
}

// BriefSummaryContainsFold applies the ContainsFold predicate on the "brief_summary" field.
func BriefSummaryContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldBriefSummary, v))
}

// DistrictImpactEQ applies the EQ predicate on the "district_impact" field.
func DistrictImpactEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDistrictImpact, v))
}

// DistrictImpactNEQ applies the NEQ predicate on the "district_impact" field.
func DistrictImpactNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldDistrictImpact, v))
}

// DistrictImpactIn applies the In predicate on the "district_impact" field.
func DistrictImpactIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldDistrictImpact, vs...))
}

// DistrictImpactNotIn applies the NotIn predicate on the "district_impact" field.
func DistrictImpactNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldDistrictImpact, vs...))
}

// DistrictImpactGT applies the GT predicate on the "district_impact" field.
func DistrictImpactGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldDistrictImpact, v))
}

// DistrictImpactGTE applies the GTE predicate on the "district_impact" field.
func DistrictImpactGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldDistrictImpact, v))
}

// DistrictImpactLT applies the LT predicate on the "district_impact" field.
func DistrictImpactLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldDistrictImpact, v))
}

// DistrictImpactLTE applies the LTE predicate on the "district_impact" field.
func DistrictImpactLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldDistrictImpact, v))
}

// DistrictImpactContains applies the Contains predicate on the "district_impact" field.
func DistrictImpactContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldDistrictImpact, v))
}

// DistrictImpactHasPrefix applies the HasPrefix predicate on the "district_impact" field.
func DistrictImpactHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldDistrictImpact, v))
}

// DistrictImpactHasSuffix applies the HasSuffix predicate on the "district_impact" field.
func DistrictImpactHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldDistrictImpact, v))
}

// DistrictImpactEqualFold applies the EqualFold predicate on the "district_impact" field.
func DistrictImpactEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldDistrictImpact, v))
}

// DistrictImpactContainsFold applies the ContainsFold predicate on the "district_impact" field.
func DistrictImpactContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldDistrictImpact, v))
}

// BudgetLanguageEQ applies the EQ predicate on the "budget_language" field.
func BudgetLanguageEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldBudgetLanguage, v))
}

// BudgetLanguageNEQ applies the NEQ predicate on the "budget_language" field.
func BudgetLanguageNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldBudgetLanguage, v))
}

// BudgetLanguageIn applies the In predicate on the "budget_language" field.
func BudgetLanguageIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldBudgetLanguage, vs...))
}

// BudgetLanguageNotIn applies the NotIn predicate on the "budget_language" field.
func BudgetLanguageNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldBudgetLanguage, vs...))
}

// BudgetLanguageGT applies the GT predicate on the "budget_language" field.
func BudgetLanguageGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldBudgetLanguage, v))
}

// BudgetLanguageGTE applies the GTE predicate on the "budget_language" field.
func BudgetLanguageGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldBudgetLanguage, v))
}

// BudgetLanguageLT applies the LT predicate on the "budget_language" field.
func BudgetLanguageLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldBudgetLanguage, v))
}

// BudgetLanguageLTE applies the LTE predicate on the "budget_language" field.
func BudgetLanguageLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldBudgetLanguage, v))
}

// BudgetLanguageContains applies the Contains predicate on the "budget_language" field.
func BudgetLanguageContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldBudgetLanguage, v))
}

// BudgetLanguageHasPrefix applies the HasPrefix predicate on the "budget_language" field.
func BudgetLanguageHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldBudgetLanguage, v))
}

// BudgetLanguageHasSuffix applies the HasSuffix predicate on the "budget_language" field.
func BudgetLanguageHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldBudgetLanguage, v))
}

// BudgetLanguageEqualFold applies the EqualFold predicate on the "budget_language" field.
func BudgetLanguageEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldBudgetLanguage, v))
}

// BudgetLanguageContainsFold applies the ContainsFold predicate on the "budget_language" field.
func BudgetLanguageContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldBudgetLanguage, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldDomain, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldTier, v))
}

// WarfighterImpactEQ applies the EQ predicate on the "warfighter_impact" field.
func WarfighterImpactEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldWarfighterImpact, v))
}

// WarfighterImpactNEQ applies the NEQ predicate on the "warfighter_impact" field.
func WarfighterImpactNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldWarfighterImpact, v))
}

// WarfighterImpactIn applies the In predicate on the "warfighter_impact" field.
func WarfighterImpactIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldWarfighterImpact, vs...))
}

// WarfighterImpactNotIn applies the NotIn predicate on the "warfighter_impact" field.
func WarfighterImpactNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldWarfighterImpact, vs...))
}

// WarfighterImpactGT applies the GT predicate on the "warfighter_impact" field.
func WarfighterImpactGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldWarfighterImpact, v))
}

// WarfighterImpactGTE applies the GTE predicate on the "warfighter_impact" field.
func WarfighterImpactGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldWarfighterImpact, v))
}

// WarfighterImpactLT applies the LT predicate on the "warfighter_impact" field.
func WarfighterImpactLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldWarfighterImpact, v))
}

// WarfighterImpactLTE applies the LTE predicate on the "warfighter_impact" field.
func WarfighterImpactLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldWarfighterImpact, v))
}

// WarfighterImpactContains applies the Contains predicate on the "warfighter_impact" field.
func WarfighterImpactContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldWarfighterImpact, v))
}

// WarfighterImpactHasPrefix applies the HasPrefix predicate on the "warfighter_impact" field.
func WarfighterImpactHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldWarfighterImpact, v))
}

// WarfighterImpactHasSuffix applies the HasSuffix predicate on the "warfighter_impact" field.
func WarfighterImpactHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldWarfighterImpact, v))
}

// WarfighterImpactEqualFold applies the EqualFold predicate on the "warfighter_impact" field.
func WarfighterImpactEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldWarfighterImpact, v))
}

// WarfighterImpactContainsFold applies the ContainsFold predicate on the "warfighter_impact" field.
func WarfighterImpactContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldWarfighterImpact, v))
}

// WarfighterServicesEQ applies the EQ predicate on the "warfighter_services" field.
func WarfighterServicesEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldWarfighterServices, v))
}

// WarfighterServicesNEQ applies the NEQ predicate on the "warfighter_services" field.
func WarfighterServicesNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldWarfighterServices, v))
}

// WarfighterServicesIn applies the In predicate on the "warfighter_services" field.
func WarfighterServicesIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldWarfighterServices, vs...))
}

// WarfighterServicesNotIn applies the NotIn predicate on the "warfighter_services" field.
func WarfighterServicesNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldWarfighterServices, vs...))
}

// WarfighterServicesGT applies the GT predicate on the "warfighter_services" field.
func WarfighterServicesGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldWarfighterServices, v))
}

// WarfighterServicesGTE applies the GTE predicate on the "warfighter_services" field.
func WarfighterServicesGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldWarfighterServices, v))
}

// WarfighterServicesLT applies the LT predicate on the "warfighter_services" field.
func WarfighterServicesLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldWarfighterServices, v))
}

// WarfighterServicesLTE applies the LTE predicate on the "warfighter_services" field.
func WarfighterServicesLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldWarfighterServices, v))
}

// WarfighterServicesContains applies the Contains predicate on the "warfighter_services" field.
func WarfighterServicesContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldWarfighterServices, v))
}

// WarfighterServicesHasPrefix applies the HasPrefix predicate on the "warfighter_services" field.
func WarfighterServicesHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldWarfighterServices, v))
}

// WarfighterServicesHasSuffix applies the HasSuffix predicate on the "warfighter_services" field.
func WarfighterServicesHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldWarfighterServices, v))
}

// WarfighterServicesIsNil applies the IsNil predicate on the "warfighter_services" field.
func WarfighterServicesIsNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIsNull(FieldWarfighterServices))
}

// WarfighterServicesNotNil applies the NotNil predicate on the "warfighter_services" field.
func WarfighterServicesNotNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotNull(FieldWarfighterServices))
}

// WarfighterServicesEqualFold applies the EqualFold predicate on the "warfighter_services" field.
func WarfighterServicesEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldWarfighterServices, v))
}

// WarfighterServicesContainsFold applies the ContainsFold predicate on the "warfighter_services" field.
func WarfighterServicesContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldWarfighterServices, v))
}

// IsDrlEQ applies the EQ predicate on the "is_drl" field.
func IsDrlEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsDrl, v))
}

// IsDrlNEQ applies the NEQ predicate on the "is_drl" field.
func IsDrlNEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldIsDrl, v))
}

// DocumentPathEQ applies the EQ predicate on the "document_path" field.
func DocumentPathEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldDocumentPath, v))
}

// DocumentPathNEQ applies the NEQ predicate on the "document_path" field.
func DocumentPathNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldDocumentPath, v))
}

// DocumentPathIn applies the In predicate on the "document_path" field.
func DocumentPathIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldDocumentPath, vs...))
}

// DocumentPathNotIn applies the NotIn predicate on the "document_path" field.
func DocumentPathNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldDocumentPath, vs...))
}

// DocumentPathGT applies the GT predicate on the "document_path" field.
func DocumentPathGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldDocumentPath, v))
}

// DocumentPathGTE applies the GTE predicate on the "document_path" field.
func DocumentPathGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldDocumentPath, v))
}

// DocumentPathLT applies the LT predicate on the "document_path" field.
func DocumentPathLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldDocumentPath, v))
}

// DocumentPathLTE applies the LTE predicate on the "document_path" field.
func DocumentPathLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldDocumentPath, v))
}

// DocumentPathContains applies the Contains predicate on the "document_path" field.
func DocumentPathContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldDocumentPath, v))
}

// DocumentPathHasPrefix applies the HasPrefix predicate on the "document_path" field.
func DocumentPathHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldDocumentPath, v))
}

// DocumentPathHasSuffix applies the HasSuffix predicate on the "document_path" field.
func DocumentPathHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldDocumentPath, v))
}

// DocumentPathIsNil applies the IsNil predicate on the "document_path" field.
func DocumentPathIsNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIsNull(FieldDocumentPath))
}

// DocumentPathNotNil applies the NotNil predicate on the "document_path" field.
func DocumentPathNotNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotNull(FieldDocumentPath))
}

// DocumentPathEqualFold applies the EqualFold predicate on the "document_path" field.
func DocumentPathEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldDocumentPath, v))
}

// DocumentPathContainsFold applies the ContainsFold predicate on the "document_path" field.
func DocumentPathContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldDocumentPath, v))
}

// VoteStatusEQ applies the EQ predicate on the "vote_status" field.
func VoteStatusEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldVoteStatus, v))
}

// VoteStatusNEQ applies the NEQ predicate on the "vote_status" field.
func VoteStatusNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldVoteStatus, v))
}

// VoteStatusIn applies the In predicate on the "vote_status" field.
func VoteStatusIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldVoteStatus, vs...))
}

// VoteStatusNotIn applies the NotIn predicate on the "vote_status" field.
func VoteStatusNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldVoteStatus, vs...))
}

// VoteStatusGT applies the GT predicate on the "vote_status" field.
func VoteStatusGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldVoteStatus, v))
}

// VoteStatusGTE applies the GTE predicate on the "vote_status" field.
func VoteStatusGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldVoteStatus, v))
}

// VoteStatusLT applies the LT predicate on the "vote_status" field.
func VoteStatusLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldVoteStatus, v))
}

// VoteStatusLTE applies the LTE predicate on the "vote_status" field.
func VoteStatusLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldVoteStatus, v))
}

// VoteStatusContains applies the Contains predicate on the "vote_status" field.
func VoteStatusContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldVoteStatus, v))
}

// VoteStatusHasPrefix applies the HasPrefix predicate on the "vote_status" field.
func VoteStatusHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldVoteStatus, v))
}

// VoteStatusHasSuffix applies the HasSuffix predicate on the "vote_status" field.
func VoteStatusHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldVoteStatus, v))
}

// VoteStatusEqualFold applies the EqualFold predicate on the "vote_status" field.
func VoteStatusEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldVoteStatus, v))
}

// VoteStatusContainsFold applies the ContainsFold predicate on the "vote_status" field.
func VoteStatusContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldVoteStatus, v))
}

// IsStaffRecommendedEQ applies the EQ predicate on the "is_staff_recommended" field.
func IsStaffRecommendedEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsStaffRecommended, v))
}

// IsStaffRecommendedNEQ applies the NEQ predicate on the "is_staff_recommended" field.
func IsStaffRecommendedNEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldIsStaffRecommended, v))
}

// MemberPriorityEQ applies the EQ predicate on the "member_priority" field.
func MemberPriorityEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldMemberPriority, v))
}

// MemberPriorityNEQ applies the NEQ predicate on the "member_priority" field.
func MemberPriorityNEQ(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldMemberPriority, v))
}

// MemberPriorityIn applies the In predicate on the "member_priority" field.
func MemberPriorityIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldMemberPriority, vs...))
}

// MemberPriorityNotIn applies the NotIn predicate on the "member_priority" field.
func MemberPriorityNotIn(vs ...string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldMemberPriority, vs...))
}

// MemberPriorityGT applies the GT predicate on the "member_priority" field.
func MemberPriorityGT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldMemberPriority, v))
}

// MemberPriorityGTE applies the GTE predicate on the "member_priority" field.
func MemberPriorityGTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldMemberPriority, v))
}

// MemberPriorityLT applies the LT predicate on the "member_priority" field.
func MemberPriorityLT(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldMemberPriority, v))
}

// MemberPriorityLTE applies the LTE predicate on the "member_priority" field.
func MemberPriorityLTE(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldMemberPriority, v))
}

// MemberPriorityContains applies the Contains predicate on the "member_priority" field.
func MemberPriorityContains(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContains(FieldMemberPriority, v))
}

// MemberPriorityHasPrefix applies the HasPrefix predicate on the "member_priority" field.
func MemberPriorityHasPrefix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasPrefix(FieldMemberPriority, v))
}

// MemberPriorityHasSuffix applies the HasSuffix predicate on the "member_priority" field.
func MemberPriorityHasSuffix(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldHasSuffix(FieldMemberPriority, v))
}

// MemberPriorityIsNil applies the IsNil predicate on the "member_priority" field.
func MemberPriorityIsNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIsNull(FieldMemberPriority))
}

// MemberPriorityNotNil applies the NotNil predicate on the "member_priority" field.
func MemberPriorityNotNil() predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotNull(FieldMemberPriority))
}

// MemberPriorityEqualFold applies the EqualFold predicate on the "member_priority" field.
func MemberPriorityEqualFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEqualFold(FieldMemberPriority, v))
}

// MemberPriorityContainsFold applies the ContainsFold predicate on the "member_priority" field.
func MemberPriorityContainsFold(v string) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldContainsFold(FieldMemberPriority, v))
}

// HasValidOffsetEQ applies the EQ predicate on the "has_valid_offset" field.
func HasValidOffsetEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldHasValidOffset, v))
}

// HasValidOffsetNEQ applies the NEQ predicate on the "has_valid_offset" field.
func HasValidOffsetNEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldHasValidOffset, v))
}

// IsHascJurisdictionEQ applies the EQ predicate on the "is_hasc_jurisdiction" field.
func IsHascJurisdictionEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldIsHascJurisdiction, v))
}

// IsHascJurisdictionNEQ applies the NEQ predicate on the "is_hasc_jurisdiction" field.
func IsHascJurisdictionNEQ(v bool) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldIsHascJurisdiction, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FundingRequest {
	return predicate.FundingRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FundingRequest) predicate.FundingRequest {
	return predicate.FundingRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FundingRequest) predicate.FundingRequest {
	return predicate.FundingRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FundingRequest) predicate.FundingRequest {
	return predicate.FundingRequest(sql.NotPredicates(p))
}
