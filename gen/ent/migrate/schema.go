// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FundingRequestsColumns holds the columns for the "funding_requests" table.
	FundingRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_name", Type: field.TypeString},
		{Name: "request_amount_cents", Type: field.TypeInt64, SchemaType: map[string]string{"postgres": "bigint"}},
		{Name: "formatted_amount", Type: field.TypeString},
		{Name: "program_element", Type: field.TypeString, Default: "Standard PE"},
		{Name: "brief_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "district_impact", Type: field.TypeString},
		{Name: "budget_language", Type: field.TypeString, Size: 2147483647},
		{Name: "domain", Type: field.TypeString, Default: "General"},
		{Name: "tier", Type: field.TypeString, Default: "Tier 2 (Under Review)"},
		{Name: "warfighter_impact", Type: field.TypeString, Size: 2147483647},
		{Name: "warfighter_services", Type: field.TypeString, Nullable: true},
		{Name: "is_drl", Type: field.TypeBool, Default: false},
		{Name: "document_path", Type: field.TypeString, Nullable: true},
		{Name: "vote_status", Type: field.TypeString, Default: "pending"},
		{Name: "is_staff_recommended", Type: field.TypeBool, Default: false},
		{Name: "member_priority", Type: field.TypeString, Nullable: true},
		{Name: "has_valid_offset", Type: field.TypeBool, Default: false},
		{Name: "is_hasc_jurisdiction", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FundingRequestsTable holds the schema information for the "funding_requests" table.
	FundingRequestsTable = &schema.Table{
		Name:       "funding_requests",
		Columns:    FundingRequestsColumns,
		PrimaryKey: []*schema.Column{FundingRequestsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FundingRequestsTable,
	}
)

func init() {
	FundingRequestsTable.Annotation = &entsql.Annotation{
		Table: "funding_requests",
	}
}
