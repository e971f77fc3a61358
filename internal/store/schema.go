package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns are the leading columns every table shares: a global
// sequence number and a UTC creation time in Unix milliseconds.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
}

var (
	assessmentsColumns = append(append([]*schema.Column{
		{Name: "id", Type: field.TypeString},
	}, eventColumns()...),
		&schema.Column{Name: "locale", Type: field.TypeString, Default: "en"},
		&schema.Column{Name: "answers", Type: field.TypeString, Size: 2147483647},
		&schema.Column{Name: "results", Type: field.TypeString, Size: 2147483647},
	)
	assessmentsSchema = &schema.Table{
		Name:       assessmentsTable,
		Columns:    assessmentsColumns,
		PrimaryKey: []*schema.Column{assessmentsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "assessments_created_at", Columns: []*schema.Column{assessmentsColumns[2]}},
		},
	}

	roadmapsColumns = append(append([]*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString},
	}, eventColumns()...),
		&schema.Column{Name: "weeks_to_exam", Type: field.TypeInt},
		&schema.Column{Name: "hours_per_week", Type: field.TypeFloat64},
		&schema.Column{Name: "curriculum_version", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "feasible_label", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "document", Type: field.TypeString, Size: 2147483647},
	)
	roadmapsSchema = &schema.Table{
		Name:       roadmapsTable,
		Columns:    roadmapsColumns,
		PrimaryKey: []*schema.Column{roadmapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{{
			Symbol:     "roadmaps_assessments_roadmaps",
			Columns:    []*schema.Column{roadmapsColumns[1]},
			RefColumns: []*schema.Column{assessmentsColumns[0]},
			OnDelete:   schema.Cascade,
		}},
		Indexes: []*schema.Index{
			{Name: "roadmaps_assessment_id", Columns: []*schema.Column{roadmapsColumns[1]}},
		},
	}

	llmEventsColumns = append(append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
	}, eventColumns()...),
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	llmEventsSchema = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llm_request_events_provider", Columns: []*schema.Column{llmEventsColumns[3]}},
			{Name: "llm_request_events_purpose", Columns: []*schema.Column{llmEventsColumns[5]}},
			{Name: "llm_request_events_success", Columns: []*schema.Column{llmEventsColumns[9]}},
		},
	}

	tables = []*schema.Table{assessmentsSchema, roadmapsSchema, llmEventsSchema}
)

func init() {
	roadmapsSchema.ForeignKeys[0].RefTable = assessmentsSchema
}

// migrate creates missing tables, columns and indexes. The schema is
// additive only, so drops are never issued.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	return m.Create(ctx, tables...)
}
