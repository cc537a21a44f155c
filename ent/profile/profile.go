// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAnimalType holds the string denoting the animal_type field in the database.
	FieldAnimalType = "animal_type"
	// FieldAnimalName holds the string denoting the animal_name field in the database.
	FieldAnimalName = "animal_name"
	// FieldAnimalColor holds the string denoting the animal_color field in the database.
	FieldAnimalColor = "animal_color"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldMaxStreak holds the string denoting the max_streak field in the database.
	FieldMaxStreak = "max_streak"
	// FieldLastStudyDate holds the string denoting the last_study_date field in the database.
	FieldLastStudyDate = "last_study_date"
	// FieldStudyGoalMinutes holds the string denoting the study_goal_minutes field in the database.
	FieldStudyGoalMinutes = "study_goal_minutes"
	// FieldTotalStudyMinutes holds the string denoting the total_study_minutes field in the database.
	FieldTotalStudyMinutes = "total_study_minutes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldAnimalType,
	FieldAnimalName,
	FieldAnimalColor,
	FieldXp,
	FieldLevel,
	FieldCurrentStreak,
	FieldMaxStreak,
	FieldLastStudyDate,
	FieldStudyGoalMinutes,
	FieldTotalStudyMinutes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAnimalType holds the default value on creation for the "animal_type" field.
	DefaultAnimalType string
	// DefaultAnimalName holds the default value on creation for the "animal_name" field.
	DefaultAnimalName string
	// DefaultAnimalColor holds the default value on creation for the "animal_color" field.
	DefaultAnimalColor string
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	CurrentStreakValidator func(int) error
	// DefaultMaxStreak holds the default value on creation for the "max_streak" field.
	DefaultMaxStreak int
	// MaxStreakValidator is a validator for the "max_streak" field. It is called by the builders before save.
	MaxStreakValidator func(int) error
	// DefaultStudyGoalMinutes holds the default value on creation for the "study_goal_minutes" field.
	DefaultStudyGoalMinutes int
	// DefaultTotalStudyMinutes holds the default value on creation for the "total_study_minutes" field.
	DefaultTotalStudyMinutes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAnimalType orders the results by the animal_type field.
func ByAnimalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimalType, opts...).ToFunc()
}

// ByAnimalName orders the results by the animal_name field.
func ByAnimalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimalName, opts...).ToFunc()
}

// ByAnimalColor orders the results by the animal_color field.
func ByAnimalColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimalColor, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByMaxStreak orders the results by the max_streak field.
func ByMaxStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxStreak, opts...).ToFunc()
}

// ByLastStudyDate orders the results by the last_study_date field.
func ByLastStudyDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStudyDate, opts...).ToFunc()
}

// ByStudyGoalMinutes orders the results by the study_goal_minutes field.
func ByStudyGoalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyGoalMinutes, opts...).ToFunc()
}

// ByTotalStudyMinutes orders the results by the total_study_minutes field.
func ByTotalStudyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStudyMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
