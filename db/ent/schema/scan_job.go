package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_job"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("contact_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").
			Default(string(constants.ScanStatusQueued)).
			Validate(utils.EnumValidator(constants.ScanStatuses...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Candidate set and auto-selected assignment, as produced by the
		// classifier. Stored verbatim so the client can re-render the
		// manual assignment overlay.
		field.JSON("candidates", json.RawMessage{}).Optional(),
		field.JSON("selection", json.RawMessage{}).Optional(),
		field.Float("name_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
	}
}

func (ScanJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("scans").
			Field("contact_id").
			Unique(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("contact_id"),
	}
}
