package schema

import (
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

type Contact struct{ ent.Schema }

func (Contact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contacts"},
	}
}

func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().MaxLen(100),
		field.String("company").Optional().Nillable().MaxLen(120),
		field.String("title").Optional().Nillable().MaxLen(120),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable().MaxLen(20),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Strings("tags").Optional(),
		field.String("source").
			Default(string(constants.SourceManual)).
			Validate(utils.EnumValidator(constants.ContactSources...)),
		field.String("hubspot_id").Optional().Nillable(),
		// explicit FK
		field.UUID("group_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY contacts -> ONE group (FK: contacts.group_id)
		edge.From("group", Group.Type).
			Ref("contacts").
			Field("group_id").
			Unique(),
		// ONE contact -> MANY scan jobs
		edge.To("scans", ScanJob.Type),
	}
}

func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("group_id", "created_at"),
	}
}
