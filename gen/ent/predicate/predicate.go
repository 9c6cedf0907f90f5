// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FundingRequest is the predicate function for fundingrequest builders.
type FundingRequest func(*sql.Selector)
