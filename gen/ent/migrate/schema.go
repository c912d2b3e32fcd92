// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "company", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "MANUAL"},
		{Name: "hubspot_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_groups_contacts",
				Columns:    []*schema.Column{ContactsColumns[12]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[4]},
			},
			{
				Name:    "contact_group_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[12], ContactsColumns[10]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 80},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
	}
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "candidates", Type: field.TypeJSON, Nullable: true},
		{Name: "selection", Type: field.TypeJSON, Nullable: true},
		{Name: "name_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "contact_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_job_contacts_scans",
				Columns:    []*schema.Column{ScanJobColumns[10]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[1], ScanJobColumns[2]},
			},
			{
				Name:    "scanjob_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactsTable,
		GroupsTable,
		ScanJobTable,
	}
)

func init() {
	ContactsTable.ForeignKeys[0].RefTable = GroupsTable
	ContactsTable.Annotation = &entsql.Annotation{
		Table: "contacts",
	}
	GroupsTable.Annotation = &entsql.Annotation{
		Table: "groups",
	}
	ScanJobTable.ForeignKeys[0].RefTable = ContactsTable
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
}
