// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adelr/studypet/ent/predicate"
	"github.com/adelr/studypet/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAnimalType sets the "animal_type" field.
func (_u *ProfileUpdate) SetAnimalType(v string) *ProfileUpdate {
	_u.mutation.SetAnimalType(v)
	return _u
}

// SetNillableAnimalType sets the "animal_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAnimalType(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAnimalType(*v)
	}
	return _u
}

// SetAnimalName sets the "animal_name" field.
func (_u *ProfileUpdate) SetAnimalName(v string) *ProfileUpdate {
	_u.mutation.SetAnimalName(v)
	return _u
}

// SetNillableAnimalName sets the "animal_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAnimalName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAnimalName(*v)
	}
	return _u
}

// SetAnimalColor sets the "animal_color" field.
func (_u *ProfileUpdate) SetAnimalColor(v string) *ProfileUpdate {
	_u.mutation.SetAnimalColor(v)
	return _u
}

// SetNillableAnimalColor sets the "animal_color" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAnimalColor(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAnimalColor(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdate) SetXp(v int) *ProfileUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdate) AddXp(v int) *ProfileUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdate) SetLevel(v string) *ProfileUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProfileUpdate) SetCurrentStreak(v int) *ProfileUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCurrentStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProfileUpdate) AddCurrentStreak(v int) *ProfileUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *ProfileUpdate) SetMaxStreak(v int) *ProfileUpdate {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableMaxStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *ProfileUpdate) AddMaxStreak(v int) *ProfileUpdate {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetLastStudyDate sets the "last_study_date" field.
func (_u *ProfileUpdate) SetLastStudyDate(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastStudyDate(v)
	return _u
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastStudyDate(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastStudyDate(*v)
	}
	return _u
}

// ClearLastStudyDate clears the value of the "last_study_date" field.
func (_u *ProfileUpdate) ClearLastStudyDate() *ProfileUpdate {
	_u.mutation.ClearLastStudyDate()
	return _u
}

// SetStudyGoalMinutes sets the "study_goal_minutes" field.
func (_u *ProfileUpdate) SetStudyGoalMinutes(v int) *ProfileUpdate {
	_u.mutation.ResetStudyGoalMinutes()
	_u.mutation.SetStudyGoalMinutes(v)
	return _u
}

// SetNillableStudyGoalMinutes sets the "study_goal_minutes" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStudyGoalMinutes(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStudyGoalMinutes(*v)
	}
	return _u
}

// AddStudyGoalMinutes adds value to the "study_goal_minutes" field.
func (_u *ProfileUpdate) AddStudyGoalMinutes(v int) *ProfileUpdate {
	_u.mutation.AddStudyGoalMinutes(v)
	return _u
}

// SetTotalStudyMinutes sets the "total_study_minutes" field.
func (_u *ProfileUpdate) SetTotalStudyMinutes(v int) *ProfileUpdate {
	_u.mutation.ResetTotalStudyMinutes()
	_u.mutation.SetTotalStudyMinutes(v)
	return _u
}

// SetNillableTotalStudyMinutes sets the "total_study_minutes" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalStudyMinutes(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalStudyMinutes(*v)
	}
	return _u
}

// AddTotalStudyMinutes adds value to the "total_study_minutes" field.
func (_u *ProfileUpdate) AddTotalStudyMinutes(v int) *ProfileUpdate {
	_u.mutation.AddTotalStudyMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := profile.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStreak(); ok {
		if err := profile.MaxStreakValidator(v); err != nil {
			return &ValidationError{Name: "max_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.max_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalType(); ok {
		_spec.SetField(profile.FieldAnimalType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalName(); ok {
		_spec.SetField(profile.FieldAnimalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalColor(); ok {
		_spec.SetField(profile.FieldAnimalColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(profile.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(profile.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStudyDate(); ok {
		_spec.SetField(profile.FieldLastStudyDate, field.TypeTime, value)
	}
	if _u.mutation.LastStudyDateCleared() {
		_spec.ClearField(profile.FieldLastStudyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StudyGoalMinutes(); ok {
		_spec.SetField(profile.FieldStudyGoalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyGoalMinutes(); ok {
		_spec.AddField(profile.FieldStudyGoalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudyMinutes(); ok {
		_spec.SetField(profile.FieldTotalStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyMinutes(); ok {
		_spec.AddField(profile.FieldTotalStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAnimalType sets the "animal_type" field.
func (_u *ProfileUpdateOne) SetAnimalType(v string) *ProfileUpdateOne {
	_u.mutation.SetAnimalType(v)
	return _u
}

// SetNillableAnimalType sets the "animal_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAnimalType(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAnimalType(*v)
	}
	return _u
}

// SetAnimalName sets the "animal_name" field.
func (_u *ProfileUpdateOne) SetAnimalName(v string) *ProfileUpdateOne {
	_u.mutation.SetAnimalName(v)
	return _u
}

// SetNillableAnimalName sets the "animal_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAnimalName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAnimalName(*v)
	}
	return _u
}

// SetAnimalColor sets the "animal_color" field.
func (_u *ProfileUpdateOne) SetAnimalColor(v string) *ProfileUpdateOne {
	_u.mutation.SetAnimalColor(v)
	return _u
}

// SetNillableAnimalColor sets the "animal_color" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAnimalColor(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAnimalColor(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdateOne) SetXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdateOne) AddXp(v int) *ProfileUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdateOne) SetLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProfileUpdateOne) SetCurrentStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCurrentStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProfileUpdateOne) AddCurrentStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *ProfileUpdateOne) SetMaxStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableMaxStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *ProfileUpdateOne) AddMaxStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetLastStudyDate sets the "last_study_date" field.
func (_u *ProfileUpdateOne) SetLastStudyDate(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastStudyDate(v)
	return _u
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastStudyDate(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastStudyDate(*v)
	}
	return _u
}

// ClearLastStudyDate clears the value of the "last_study_date" field.
func (_u *ProfileUpdateOne) ClearLastStudyDate() *ProfileUpdateOne {
	_u.mutation.ClearLastStudyDate()
	return _u
}

// SetStudyGoalMinutes sets the "study_goal_minutes" field.
func (_u *ProfileUpdateOne) SetStudyGoalMinutes(v int) *ProfileUpdateOne {
	_u.mutation.ResetStudyGoalMinutes()
	_u.mutation.SetStudyGoalMinutes(v)
	return _u
}

// SetNillableStudyGoalMinutes sets the "study_goal_minutes" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStudyGoalMinutes(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStudyGoalMinutes(*v)
	}
	return _u
}

// AddStudyGoalMinutes adds value to the "study_goal_minutes" field.
func (_u *ProfileUpdateOne) AddStudyGoalMinutes(v int) *ProfileUpdateOne {
	_u.mutation.AddStudyGoalMinutes(v)
	return _u
}

// SetTotalStudyMinutes sets the "total_study_minutes" field.
func (_u *ProfileUpdateOne) SetTotalStudyMinutes(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalStudyMinutes()
	_u.mutation.SetTotalStudyMinutes(v)
	return _u
}

// SetNillableTotalStudyMinutes sets the "total_study_minutes" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalStudyMinutes(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalStudyMinutes(*v)
	}
	return _u
}

// AddTotalStudyMinutes adds value to the "total_study_minutes" field.
func (_u *ProfileUpdateOne) AddTotalStudyMinutes(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalStudyMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := profile.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStreak(); ok {
		if err := profile.MaxStreakValidator(v); err != nil {
			return &ValidationError{Name: "max_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.max_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalType(); ok {
		_spec.SetField(profile.FieldAnimalType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalName(); ok {
		_spec.SetField(profile.FieldAnimalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnimalColor(); ok {
		_spec.SetField(profile.FieldAnimalColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(profile.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(profile.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStudyDate(); ok {
		_spec.SetField(profile.FieldLastStudyDate, field.TypeTime, value)
	}
	if _u.mutation.LastStudyDateCleared() {
		_spec.ClearField(profile.FieldLastStudyDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StudyGoalMinutes(); ok {
		_spec.SetField(profile.FieldStudyGoalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyGoalMinutes(); ok {
		_spec.AddField(profile.FieldStudyGoalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudyMinutes(); ok {
		_spec.SetField(profile.FieldTotalStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyMinutes(); ok {
		_spec.AddField(profile.FieldTotalStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
