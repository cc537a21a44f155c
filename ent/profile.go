// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adelr/studypet/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque auth identity this profile belongs to
	UserID string `json:"user_id,omitempty"`
	// Student display name
	Name string `json:"name,omitempty"`
	// AnimalType holds the value of the "animal_type" field.
	AnimalType string `json:"animal_type,omitempty"`
	// AnimalName holds the value of the "animal_name" field.
	AnimalName string `json:"animal_name,omitempty"`
	// AnimalColor holds the value of the "animal_color" field.
	AnimalColor string `json:"animal_color,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int `json:"xp,omitempty"`
	// Derived from xp; stored for dashboard reads
	Level string `json:"level,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// MaxStreak holds the value of the "max_streak" field.
	MaxStreak int `json:"max_streak,omitempty"`
	// Most recent completed study session; unset before the first one
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
	// StudyGoalMinutes holds the value of the "study_goal_minutes" field.
	StudyGoalMinutes int `json:"study_goal_minutes,omitempty"`
	// TotalStudyMinutes holds the value of the "total_study_minutes" field.
	TotalStudyMinutes int `json:"total_study_minutes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldID, profile.FieldXp, profile.FieldCurrentStreak, profile.FieldMaxStreak, profile.FieldStudyGoalMinutes, profile.FieldTotalStudyMinutes:
			values[i] = new(sql.NullInt64)
		case profile.FieldUserID, profile.FieldName, profile.FieldAnimalType, profile.FieldAnimalName, profile.FieldAnimalColor, profile.FieldLevel:
			values[i] = new(sql.NullString)
		case profile.FieldLastStudyDate, profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case profile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case profile.FieldAnimalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field animal_type", values[i])
			} else if value.Valid {
				_m.AnimalType = value.String
			}
		case profile.FieldAnimalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field animal_name", values[i])
			} else if value.Valid {
				_m.AnimalName = value.String
			}
		case profile.FieldAnimalColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field animal_color", values[i])
			} else if value.Valid {
				_m.AnimalColor = value.String
			}
		case profile.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case profile.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case profile.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case profile.FieldMaxStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_streak", values[i])
			} else if value.Valid {
				_m.MaxStreak = int(value.Int64)
			}
		case profile.FieldLastStudyDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_study_date", values[i])
			} else if value.Valid {
				_m.LastStudyDate = new(time.Time)
				*_m.LastStudyDate = value.Time
			}
		case profile.FieldStudyGoalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_goal_minutes", values[i])
			} else if value.Valid {
				_m.StudyGoalMinutes = int(value.Int64)
			}
		case profile.FieldTotalStudyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_study_minutes", values[i])
			} else if value.Valid {
				_m.TotalStudyMinutes = int(value.Int64)
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("animal_type=")
	builder.WriteString(_m.AnimalType)
	builder.WriteString(", ")
	builder.WriteString("animal_name=")
	builder.WriteString(_m.AnimalName)
	builder.WriteString(", ")
	builder.WriteString("animal_color=")
	builder.WriteString(_m.AnimalColor)
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("max_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxStreak))
	builder.WriteString(", ")
	if v := _m.LastStudyDate; v != nil {
		builder.WriteString("last_study_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("study_goal_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyGoalMinutes))
	builder.WriteString(", ")
	builder.WriteString("total_study_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalStudyMinutes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
