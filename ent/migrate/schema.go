// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContextEventsColumns holds the columns for the "context_events" table.
	ContextEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "label", Type: field.TypeString, Size: 255},
		{Name: "kind", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "start_date", Type: field.TypeString, Size: 10},
		{Name: "end_date", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "context_event_tracker", Type: field.TypeUUID, Nullable: true},
	}
	// ContextEventsTable holds the schema information for the "context_events" table.
	ContextEventsTable = &schema.Table{
		Name:       "context_events",
		Columns:    ContextEventsColumns,
		PrimaryKey: []*schema.Column{ContextEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_events_trackers_tracker",
				Columns:    []*schema.Column{ContextEventsColumns[7]},
				RefColumns: []*schema.Column{TrackersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextevent_owner_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{ContextEventsColumns[1], ContextEventsColumns[4]},
			},
		},
	}
	// GrantsColumns holds the columns for the "grants" table.
	GrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"tracker", "template"}},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "subject_type", Type: field.TypeEnum, Enums: []string{"user", "group"}},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "editor", "commenter", "viewer"}},
		{Name: "granted_by", Type: field.TypeUUID},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GrantsTable holds the schema information for the "grants" table.
	GrantsTable = &schema.Table{
		Name:       "grants",
		Columns:    GrantsColumns,
		PrimaryKey: []*schema.Column{GrantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grant_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{GrantsColumns[1], GrantsColumns[2]},
			},
			{
				Name:    "grant_subject_type_subject_id",
				Unique:  false,
				Columns: []*schema.Column{GrantsColumns[3], GrantsColumns[4]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
	}
	// InterpretationsColumns holds the columns for the "interpretations" table.
	InterpretationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "start_date", Type: field.TypeString, Size: 10},
		{Name: "end_date", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "body", Type: field.TypeString, Size: 8000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "interpretation_tracker", Type: field.TypeUUID},
	}
	// InterpretationsTable holds the schema information for the "interpretations" table.
	InterpretationsTable = &schema.Table{
		Name:       "interpretations",
		Columns:    InterpretationsColumns,
		PrimaryKey: []*schema.Column{InterpretationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interpretations_trackers_tracker",
				Columns:    []*schema.Column{InterpretationsColumns[7]},
				RefColumns: []*schema.Column{TrackersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interpretation_owner_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{InterpretationsColumns[1], InterpretationsColumns[2]},
			},
		},
	}
	// ObservationLinksColumns holds the columns for the "observation_links" table.
	ObservationLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tracker_id", Type: field.TypeUUID},
		{Name: "observer_user_id", Type: field.TypeUUID},
		{Name: "context_type", Type: field.TypeEnum, Enums: []string{"guardrails_project", "team", "household"}},
		{Name: "context_id", Type: field.TypeUUID},
		{Name: "granted_by", Type: field.TypeUUID},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ObservationLinksTable holds the schema information for the "observation_links" table.
	ObservationLinksTable = &schema.Table{
		Name:       "observation_links",
		Columns:    ObservationLinksColumns,
		PrimaryKey: []*schema.Column{ObservationLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "observationlink_tracker_id_observer_user_id_context_type_context_id",
				Unique:  true,
				Columns: []*schema.Column{ObservationLinksColumns[1], ObservationLinksColumns[2], ObservationLinksColumns[3], ObservationLinksColumns[4]},
			},
			{
				Name:    "observationlink_observer_user_id",
				Unique:  false,
				Columns: []*schema.Column{ObservationLinksColumns[2]},
			},
		},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"entry_prompt", "reflection"}, Default: "entry_prompt"},
		{Name: "time_of_day", Type: field.TypeInt},
		{Name: "days_of_week", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "reminder_tracker", Type: field.TypeUUID},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reminders_trackers_tracker",
				Columns:    []*schema.Column{RemindersColumns[9]},
				RefColumns: []*schema.Column{TrackersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[1]},
			},
			{
				Name:    "reminder_owner_id_kind_reminder_tracker",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[1], RemindersColumns[2], RemindersColumns[9]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"user", "global"}, Default: "user"},
		{Name: "locked", Type: field.TypeBool, Default: false},
		{Name: "field_schema", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "template_owner", Type: field.TypeUUID, Nullable: true},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "templates_users_owner",
				Columns:    []*schema.Column{TemplatesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "template_template_owner",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[9]},
			},
			{
				Name:    "template_scope",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[3]},
			},
			{
				Name:    "template_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[8]},
			},
		},
	}
	// TemplateShareLinksColumns holds the columns for the "template_share_links" table.
	TemplateShareLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_uses", Type: field.TypeInt, Default: 0},
		{Name: "use_count", Type: field.TypeInt, Default: 0},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "template_share_link_template", Type: field.TypeUUID},
	}
	// TemplateShareLinksTable holds the schema information for the "template_share_links" table.
	TemplateShareLinksTable = &schema.Table{
		Name:       "template_share_links",
		Columns:    TemplateShareLinksColumns,
		PrimaryKey: []*schema.Column{TemplateShareLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "template_share_links_templates_template",
				Columns:    []*schema.Column{TemplateShareLinksColumns[8]},
				RefColumns: []*schema.Column{TemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "templatesharelink_created_by",
				Unique:  false,
				Columns: []*schema.Column{TemplateShareLinksColumns[2]},
			},
		},
	}
	// TrackersColumns holds the columns for the "trackers" table.
	TrackersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "granularity", Type: field.TypeEnum, Enums: []string{"daily", "session", "event", "range"}, Default: "daily"},
		{Name: "field_schema_snapshot", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "chart_config", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "icon", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "color", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tracker_owner", Type: field.TypeUUID},
		{Name: "tracker_template", Type: field.TypeUUID, Nullable: true},
	}
	// TrackersTable holds the schema information for the "trackers" table.
	TrackersTable = &schema.Table{
		Name:       "trackers",
		Columns:    TrackersColumns,
		PrimaryKey: []*schema.Column{TrackersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trackers_users_owner",
				Columns:    []*schema.Column{TrackersColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "trackers_templates_template",
				Columns:    []*schema.Column{TrackersColumns[13]},
				RefColumns: []*schema.Column{TemplatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tracker_tracker_owner",
				Unique:  false,
				Columns: []*schema.Column{TrackersColumns[12]},
			},
			{
				Name:    "tracker_display_order_tracker_owner",
				Unique:  false,
				Columns: []*schema.Column{TrackersColumns[5], TrackersColumns[12]},
			},
			{
				Name:    "tracker_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TrackersColumns[11]},
			},
		},
	}
	// TrackerEntriesColumns holds the columns for the "tracker_entries" table.
	TrackerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "entry_date", Type: field.TypeString, Size: 10},
		{Name: "granularity", Type: field.TypeEnum, Enums: []string{"daily", "session", "event", "range"}, Default: "daily"},
		{Name: "slot", Type: field.TypeInt, Default: 0},
		{Name: "field_values", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 4000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tracker_entry_tracker", Type: field.TypeUUID},
	}
	// TrackerEntriesTable holds the schema information for the "tracker_entries" table.
	TrackerEntriesTable = &schema.Table{
		Name:       "tracker_entries",
		Columns:    TrackerEntriesColumns,
		PrimaryKey: []*schema.Column{TrackerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracker_entries_trackers_tracker",
				Columns:    []*schema.Column{TrackerEntriesColumns[9]},
				RefColumns: []*schema.Column{TrackersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trackerentry_owner_id_entry_date_slot_tracker_entry_tracker",
				Unique:  true,
				Columns: []*schema.Column{TrackerEntriesColumns[1], TrackerEntriesColumns[2], TrackerEntriesColumns[4], TrackerEntriesColumns[9]},
			},
			{
				Name:    "trackerentry_owner_id_entry_date",
				Unique:  false,
				Columns: []*schema.Column{TrackerEntriesColumns[1], TrackerEntriesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "display_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserGroupsColumns holds the columns for the "user_groups" table.
	UserGroupsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "group_id", Type: field.TypeUUID},
	}
	// UserGroupsTable holds the schema information for the "user_groups" table.
	UserGroupsTable = &schema.Table{
		Name:       "user_groups",
		Columns:    UserGroupsColumns,
		PrimaryKey: []*schema.Column{UserGroupsColumns[0], UserGroupsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_groups_user_id",
				Columns:    []*schema.Column{UserGroupsColumns[0]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_groups_group_id",
				Columns:    []*schema.Column{UserGroupsColumns[1]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContextEventsTable,
		GrantsTable,
		GroupsTable,
		InterpretationsTable,
		ObservationLinksTable,
		RemindersTable,
		TemplatesTable,
		TemplateShareLinksTable,
		TrackersTable,
		TrackerEntriesTable,
		UsersTable,
		UserGroupsTable,
	}
)

func init() {
	ContextEventsTable.ForeignKeys[0].RefTable = TrackersTable
	InterpretationsTable.ForeignKeys[0].RefTable = TrackersTable
	RemindersTable.ForeignKeys[0].RefTable = TrackersTable
	TemplatesTable.ForeignKeys[0].RefTable = UsersTable
	TemplateShareLinksTable.ForeignKeys[0].RefTable = TemplatesTable
	TrackersTable.ForeignKeys[0].RefTable = UsersTable
	TrackersTable.ForeignKeys[1].RefTable = TemplatesTable
	TrackerEntriesTable.ForeignKeys[0].RefTable = TrackersTable
	UserGroupsTable.ForeignKeys[0].RefTable = UsersTable
	UserGroupsTable.ForeignKeys[1].RefTable = GroupsTable
}
