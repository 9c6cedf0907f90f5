package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/hasc-tools/ndaa-intake/constants"
)

type FundingRequest struct{ ent.Schema }

func (FundingRequest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "funding_requests"},
	}
}

func (FundingRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("organization_name").NotEmpty(),
		field.Int64("request_amount_cents").
			SchemaType(map[string]string{dialect.Postgres: "bigint"}),
		field.String("formatted_amount"),
		field.String("program_element").Default("Standard PE"),
		field.Text("brief_summary"),
		field.String("district_impact"),
		field.Text("budget_language"),
		field.String("domain").Default(string(constants.DomainGeneral)),
		field.String("tier").Default(constants.TierUnderReview),
		field.Text("warfighter_impact"),
		// Comma-joined service list; empty means "Joint / Unknown".
		field.String("warfighter_services").Optional(),
		field.Bool("is_drl").Default(false),
		field.String("document_path").Optional(),
		field.String("vote_status").Default(string(constants.VotePending)),
		field.Bool("is_staff_recommended").Default(false),
		field.String("member_priority").Optional(),
		field.Bool("has_valid_offset").Default(false),
		field.Bool("is_hasc_jurisdiction").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
