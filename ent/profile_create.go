// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adelr/studypet/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProfileCreate) SetUserID(v string) *ProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAnimalType sets the "animal_type" field.
func (_c *ProfileCreate) SetAnimalType(v string) *ProfileCreate {
	_c.mutation.SetAnimalType(v)
	return _c
}

// SetNillableAnimalType sets the "animal_type" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAnimalType(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAnimalType(*v)
	}
	return _c
}

// SetAnimalName sets the "animal_name" field.
func (_c *ProfileCreate) SetAnimalName(v string) *ProfileCreate {
	_c.mutation.SetAnimalName(v)
	return _c
}

// SetNillableAnimalName sets the "animal_name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAnimalName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAnimalName(*v)
	}
	return _c
}

// SetAnimalColor sets the "animal_color" field.
func (_c *ProfileCreate) SetAnimalColor(v string) *ProfileCreate {
	_c.mutation.SetAnimalColor(v)
	return _c
}

// SetNillableAnimalColor sets the "animal_color" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAnimalColor(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAnimalColor(*v)
	}
	return _c
}

// SetXp sets the "xp" field.
func (_c *ProfileCreate) SetXp(v int) *ProfileCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableXp(v *int) *ProfileCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProfileCreate) SetLevel(v string) *ProfileCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLevel(v *string) *ProfileCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *ProfileCreate) SetCurrentStreak(v int) *ProfileCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCurrentStreak(v *int) *ProfileCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetMaxStreak sets the "max_streak" field.
func (_c *ProfileCreate) SetMaxStreak(v int) *ProfileCreate {
	_c.mutation.SetMaxStreak(v)
	return _c
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableMaxStreak(v *int) *ProfileCreate {
	if v != nil {
		_c.SetMaxStreak(*v)
	}
	return _c
}

// SetLastStudyDate sets the "last_study_date" field.
func (_c *ProfileCreate) SetLastStudyDate(v time.Time) *ProfileCreate {
	_c.mutation.SetLastStudyDate(v)
	return _c
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastStudyDate(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastStudyDate(*v)
	}
	return _c
}

// SetStudyGoalMinutes sets the "study_goal_minutes" field.
func (_c *ProfileCreate) SetStudyGoalMinutes(v int) *ProfileCreate {
	_c.mutation.SetStudyGoalMinutes(v)
	return _c
}

// SetNillableStudyGoalMinutes sets the "study_goal_minutes" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStudyGoalMinutes(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStudyGoalMinutes(*v)
	}
	return _c
}

// SetTotalStudyMinutes sets the "total_study_minutes" field.
func (_c *ProfileCreate) SetTotalStudyMinutes(v int) *ProfileCreate {
	_c.mutation.SetTotalStudyMinutes(v)
	return _c
}

// SetNillableTotalStudyMinutes sets the "total_study_minutes" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTotalStudyMinutes(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTotalStudyMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.AnimalType(); !ok {
		v := profile.DefaultAnimalType
		_c.mutation.SetAnimalType(v)
	}
	if _, ok := _c.mutation.AnimalName(); !ok {
		v := profile.DefaultAnimalName
		_c.mutation.SetAnimalName(v)
	}
	if _, ok := _c.mutation.AnimalColor(); !ok {
		v := profile.DefaultAnimalColor
		_c.mutation.SetAnimalColor(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := profile.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := profile.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := profile.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		v := profile.DefaultMaxStreak
		_c.mutation.SetMaxStreak(v)
	}
	if _, ok := _c.mutation.StudyGoalMinutes(); !ok {
		v := profile.DefaultStudyGoalMinutes
		_c.mutation.SetStudyGoalMinutes(v)
	}
	if _, ok := _c.mutation.TotalStudyMinutes(); !ok {
		v := profile.DefaultTotalStudyMinutes
		_c.mutation.SetTotalStudyMinutes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Profile.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if _, ok := _c.mutation.AnimalType(); !ok {
		return &ValidationError{Name: "animal_type", err: errors.New(`ent: missing required field "Profile.animal_type"`)}
	}
	if _, ok := _c.mutation.AnimalName(); !ok {
		return &ValidationError{Name: "animal_name", err: errors.New(`ent: missing required field "Profile.animal_name"`)}
	}
	if _, ok := _c.mutation.AnimalColor(); !ok {
		return &ValidationError{Name: "animal_color", err: errors.New(`ent: missing required field "Profile.animal_color"`)}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Profile.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Profile.level"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "Profile.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := profile.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		return &ValidationError{Name: "max_streak", err: errors.New(`ent: missing required field "Profile.max_streak"`)}
	}
	if v, ok := _c.mutation.MaxStreak(); ok {
		if err := profile.MaxStreakValidator(v); err != nil {
			return &ValidationError{Name: "max_streak", err: fmt.Errorf(`ent: validator failed for field "Profile.max_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudyGoalMinutes(); !ok {
		return &ValidationError{Name: "study_goal_minutes", err: errors.New(`ent: missing required field "Profile.study_goal_minutes"`)}
	}
	if _, ok := _c.mutation.TotalStudyMinutes(); !ok {
		return &ValidationError{Name: "total_study_minutes", err: errors.New(`ent: missing required field "Profile.total_study_minutes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AnimalType(); ok {
		_spec.SetField(profile.FieldAnimalType, field.TypeString, value)
		_node.AnimalType = value
	}
	if value, ok := _c.mutation.AnimalName(); ok {
		_spec.SetField(profile.FieldAnimalName, field.TypeString, value)
		_node.AnimalName = value
	}
	if value, ok := _c.mutation.AnimalColor(); ok {
		_spec.SetField(profile.FieldAnimalColor, field.TypeString, value)
		_node.AnimalColor = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(profile.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.MaxStreak(); ok {
		_spec.SetField(profile.FieldMaxStreak, field.TypeInt, value)
		_node.MaxStreak = value
	}
	if value, ok := _c.mutation.LastStudyDate(); ok {
		_spec.SetField(profile.FieldLastStudyDate, field.TypeTime, value)
		_node.LastStudyDate = &value
	}
	if value, ok := _c.mutation.StudyGoalMinutes(); ok {
		_spec.SetField(profile.FieldStudyGoalMinutes, field.TypeInt, value)
		_node.StudyGoalMinutes = value
	}
	if value, ok := _c.mutation.TotalStudyMinutes(); ok {
		_spec.SetField(profile.FieldTotalStudyMinutes, field.TypeInt, value)
		_node.TotalStudyMinutes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
