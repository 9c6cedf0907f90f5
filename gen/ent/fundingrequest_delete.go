// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
	"github.com/hasc-tools/ndaa-intake/gen/ent/predicate"
)

// FundingRequestDelete is the builder for deleting a FundingRequest entity.
type FundingRequestDelete struct {
	config
	hooks    []Hook
	mutation *FundingRequestMutation
}

// Where appends a list predicates to the FundingRequestDelete builder.
func (_d *FundingRequestDelete) Where(ps ...predicate.FundingRequest) *FundingRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FundingRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FundingRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FundingRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fundingrequest.Table, sqlgraph.NewFieldSpec(fundingrequest.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FundingRequestDeleteOne is the builder for deleting a single FundingRequest entity.
type FundingRequestDeleteOne struct {
	_d *FundingRequestDelete
}

// Where appends a list predicates to the FundingRequestDelete builder.
func (_d *FundingRequestDeleteOne) Where(ps ...predicate.FundingRequest) *FundingRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FundingRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fundingrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FundingRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
