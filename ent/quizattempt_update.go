// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adelr/studypet/ent/predicate"
	"github.com/adelr/studypet/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdate) SetUserID(v string) *QuizAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableUserID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptUpdate) SetTopic(v string) *QuizAttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTopic(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *QuizAttemptUpdate) SetThemeID(v string) *QuizAttemptUpdate {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableThemeID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// ClearThemeID clears the value of the "theme_id" field.
func (_u *QuizAttemptUpdate) ClearThemeID() *QuizAttemptUpdate {
	_u.mutation.ClearThemeID()
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *QuizAttemptUpdate) SetNumQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableNumQuestions(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *QuizAttemptUpdate) AddNumQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetNumCorrect sets the "num_correct" field.
func (_u *QuizAttemptUpdate) SetNumCorrect(v int) *QuizAttemptUpdate {
	_u.mutation.ResetNumCorrect()
	_u.mutation.SetNumCorrect(v)
	return _u
}

// SetNillableNumCorrect sets the "num_correct" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableNumCorrect(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetNumCorrect(*v)
	}
	return _u
}

// AddNumCorrect adds value to the "num_correct" field.
func (_u *QuizAttemptUpdate) AddNumCorrect(v int) *QuizAttemptUpdate {
	_u.mutation.AddNumCorrect(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *QuizAttemptUpdate) SetXpAwarded(v int) *QuizAttemptUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableXpAwarded(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *QuizAttemptUpdate) AddXpAwarded(v int) *QuizAttemptUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(quizattempt.FieldThemeID, field.TypeString, value)
	}
	if _u.mutation.ThemeIDCleared() {
		_spec.ClearField(quizattempt.FieldThemeID, field.TypeString)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(quizattempt.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(quizattempt.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumCorrect(); ok {
		_spec.SetField(quizattempt.FieldNumCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumCorrect(); ok {
		_spec.AddField(quizattempt.FieldNumCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(quizattempt.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(quizattempt.FieldXpAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdateOne) SetUserID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableUserID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptUpdateOne) SetTopic(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTopic(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *QuizAttemptUpdateOne) SetThemeID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableThemeID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// ClearThemeID clears the value of the "theme_id" field.
func (_u *QuizAttemptUpdateOne) ClearThemeID() *QuizAttemptUpdateOne {
	_u.mutation.ClearThemeID()
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *QuizAttemptUpdateOne) SetNumQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableNumQuestions(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *QuizAttemptUpdateOne) AddNumQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetNumCorrect sets the "num_correct" field.
func (_u *QuizAttemptUpdateOne) SetNumCorrect(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetNumCorrect()
	_u.mutation.SetNumCorrect(v)
	return _u
}

// SetNillableNumCorrect sets the "num_correct" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableNumCorrect(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetNumCorrect(*v)
	}
	return _u
}

// AddNumCorrect adds value to the "num_correct" field.
func (_u *QuizAttemptUpdateOne) AddNumCorrect(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddNumCorrect(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *QuizAttemptUpdateOne) SetXpAwarded(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableXpAwarded(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *QuizAttemptUpdateOne) AddXpAwarded(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(quizattempt.FieldThemeID, field.TypeString, value)
	}
	if _u.mutation.ThemeIDCleared() {
		_spec.ClearField(quizattempt.FieldThemeID, field.TypeString)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(quizattempt.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(quizattempt.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumCorrect(); ok {
		_spec.SetField(quizattempt.FieldNumCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumCorrect(); ok {
		_spec.AddField(quizattempt.FieldNumCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(quizattempt.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(quizattempt.FieldXpAwarded, field.TypeInt, value)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
