// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// StateBlobsColumns holds the columns for the "state_blobs" table.
	StateBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateBlobsTable holds the schema information for the "state_blobs" table.
	StateBlobsTable = &schema.Table{
		Name:       "state_blobs",
		Columns:    StateBlobsColumns,
		PrimaryKey: []*schema.Column{StateBlobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stateblob_key",
				Unique:  true,
				Columns: []*schema.Column{StateBlobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StateBlobsTable,
	}
)

func init() {
}
