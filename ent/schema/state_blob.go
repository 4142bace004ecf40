package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateBlob is a keyed JSON document. All durable learner state (the
// lesson progress table, the started-lesson set, the notification
// version counter, the favorites set) lives in a handful of fixed keys.
type StateBlob struct {
	ent.Schema
}

func (StateBlob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed well-known key, e.g. progress.lessons"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized state document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time, informational only"),
	}
}

func (StateBlob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
