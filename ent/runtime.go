// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pattarin/rianthai/ent/schema"
	"github.com/pattarin/rianthai/ent/stateblob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	stateblobFields := schema.StateBlob{}.Fields()
	_ = stateblobFields
	// stateblobDescKey is the schema descriptor for key field.
	stateblobDescKey := stateblobFields[0].Descriptor()
	// stateblob.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	stateblob.KeyValidator = stateblobDescKey.Validators[0].(func(string) error)
	// stateblobDescUpdatedAt is the schema descriptor for updated_at field.
	stateblobDescUpdatedAt := stateblobFields[2].Descriptor()
	// stateblob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateblob.DefaultUpdatedAt = stateblobDescUpdatedAt.Default.(func() time.Time)
	// stateblob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateblob.UpdateDefaultUpdatedAt = stateblobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
