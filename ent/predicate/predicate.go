// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// StateBlob is the predicate function for stateblob builders.
type StateBlob func(*sql.Selector)
