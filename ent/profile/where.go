// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adelr/studypet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// AnimalType applies equality check predicate on the "animal_type" field. It's identical to AnimalTypeEQ.
func AnimalType(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalType, v))
}

// AnimalName applies equality check predicate on the "animal_name" field. It's identical to AnimalNameEQ.
func AnimalName(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalName, v))
}

// AnimalColor applies equality check predicate on the "animal_color" field. It's identical to AnimalColorEQ.
func AnimalColor(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalColor, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLevel, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCurrentStreak, v))
}

// MaxStreak applies equality check predicate on the "max_streak" field. It's identical to MaxStreakEQ.
func MaxStreak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMaxStreak, v))
}

// LastStudyDate applies equality check predicate on the "last_study_date" field. It's identical to LastStudyDateEQ.
func LastStudyDate(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastStudyDate, v))
}

// StudyGoalMinutes applies equality check predicate on the "study_goal_minutes" field. It's identical to StudyGoalMinutesEQ.
func StudyGoalMinutes(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStudyGoalMinutes, v))
}

// TotalStudyMinutes applies equality check predicate on the "total_study_minutes" field. It's identical to TotalStudyMinutesEQ.
func TotalStudyMinutes(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalStudyMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// AnimalTypeEQ applies the EQ predicate on the "animal_type" field.
func AnimalTypeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalType, v))
}

// AnimalTypeNEQ applies the NEQ predicate on the "animal_type" field.
func AnimalTypeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAnimalType, v))
}

// AnimalTypeIn applies the In predicate on the "animal_type" field.
func AnimalTypeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAnimalType, vs...))
}

// AnimalTypeNotIn applies the NotIn predicate on the "animal_type" field.
func AnimalTypeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAnimalType, vs...))
}

// AnimalTypeGT applies the GT predicate on the "animal_type" field.
func AnimalTypeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAnimalType, v))
}

// AnimalTypeGTE applies the GTE predicate on the "animal_type" field.
func AnimalTypeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAnimalType, v))
}

// AnimalTypeLT applies the LT predicate on the "animal_type" field.
func AnimalTypeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAnimalType, v))
}

// AnimalTypeLTE applies the LTE predicate on the "animal_type" field.
func AnimalTypeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAnimalType, v))
}

// AnimalTypeContains applies the Contains predicate on the "animal_type" field.
func AnimalTypeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAnimalType, v))
}

// AnimalTypeHasPrefix applies the HasPrefix predicate on the "animal_type" field.
func AnimalTypeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAnimalType, v))
}

// AnimalTypeHasSuffix applies the HasSuffix predicate on the "animal_type" field.
func AnimalTypeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAnimalType, v))
}

// AnimalTypeEqualFold applies the EqualFold predicate on the "animal_type" field.
func AnimalTypeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAnimalType, v))
}

// AnimalTypeContainsFold applies the ContainsFold predicate on the "animal_type" field.
func AnimalTypeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAnimalType, v))
}

// AnimalNameEQ applies the EQ predicate on the "animal_name" field.
func AnimalNameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalName, v))
}

// AnimalNameNEQ applies the NEQ predicate on the "animal_name" field.
func AnimalNameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAnimalName, v))
}

// AnimalNameIn applies the In predicate on the "animal_name" field.
func AnimalNameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAnimalName, vs...))
}

// AnimalNameNotIn applies the NotIn predicate on the "animal_name" field.
func AnimalNameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAnimalName, vs...))
}

// AnimalNameGT applies the GT predicate on the "animal_name" field.
func AnimalNameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAnimalName, v))
}

// AnimalNameGTE applies the GTE predicate on the "animal_name" field.
func AnimalNameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAnimalName, v))
}

// AnimalNameLT applies the LT predicate on the "animal_name" field.
func AnimalNameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAnimalName, v))
}

// AnimalNameLTE applies the LTE predicate on the "animal_name" field.
func AnimalNameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAnimalName, v))
}

// AnimalNameContains applies the Contains predicate on the "animal_name" field.
func AnimalNameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAnimalName, v))
}

// AnimalNameHasPrefix applies the HasPrefix predicate on the "animal_name" field.
func AnimalNameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAnimalName, v))
}

// AnimalNameHasSuffix applies the HasSuffix predicate on the "animal_name" field.
func AnimalNameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAnimalName, v))
}

// AnimalNameEqualFold applies the EqualFold predicate on the "animal_name" field.
func AnimalNameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAnimalName, v))
}

// AnimalNameContainsFold applies the ContainsFold predicate on the "animal_name" field.
func AnimalNameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAnimalName, v))
}

// AnimalColorEQ applies the EQ predicate on the "animal_color" field.
func AnimalColorEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAnimalColor, v))
}

// AnimalColorNEQ applies the NEQ predicate on the "animal_color" field.
func AnimalColorNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAnimalColor, v))
}

// AnimalColorIn applies the In predicate on the "animal_color" field.
func AnimalColorIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAnimalColor, vs...))
}

// AnimalColorNotIn applies the NotIn predicate on the "animal_color" field.
func AnimalColorNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAnimalColor, vs...))
}

// AnimalColorGT applies the GT predicate on the "animal_color" field.
func AnimalColorGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAnimalColor, v))
}

// AnimalColorGTE applies the GTE predicate on the "animal_color" field.
func AnimalColorGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAnimalColor, v))
}

// AnimalColorLT applies the LT predicate on the "animal_color" field.
func AnimalColorLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAnimalColor, v))
}

// AnimalColorLTE applies the LTE predicate on the "animal_color" field.
func AnimalColorLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAnimalColor, v))
}

// AnimalColorContains applies the Contains predicate on the "animal_color" field.
func AnimalColorContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAnimalColor, v))
}

// AnimalColorHasPrefix applies the HasPrefix predicate on the "animal_color" field.
func AnimalColorHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAnimalColor, v))
}

// AnimalColorHasSuffix applies the HasSuffix predicate on the "animal_color" field.
func AnimalColorHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAnimalColor, v))
}

// AnimalColorEqualFold applies the EqualFold predicate on the "animal_color" field.
func AnimalColorEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAnimalColor, v))
}

// AnimalColorContainsFold applies the ContainsFold predicate on the "animal_color" field.
func AnimalColorContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAnimalColor, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldXp, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldLevel, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCurrentStreak, v))
}

// MaxStreakEQ applies the EQ predicate on the "max_streak" field.
func MaxStreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMaxStreak, v))
}

// MaxStreakNEQ applies the NEQ predicate on the "max_streak" field.
func MaxStreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldMaxStreak, v))
}

// MaxStreakIn applies the In predicate on the "max_streak" field.
func MaxStreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldMaxStreak, vs...))
}

// MaxStreakNotIn applies the NotIn predicate on the "max_streak" field.
func MaxStreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldMaxStreak, vs...))
}

// MaxStreakGT applies the GT predicate on the "max_streak" field.
func MaxStreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldMaxStreak, v))
}

// MaxStreakGTE applies the GTE predicate on the "max_streak" field.
func MaxStreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldMaxStreak, v))
}

// MaxStreakLT applies the LT predicate on the "max_streak" field.
func MaxStreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldMaxStreak, v))
}

// MaxStreakLTE applies the LTE predicate on the "max_streak" field.
func MaxStreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldMaxStreak, v))
}

// LastStudyDateEQ applies the EQ predicate on the "last_study_date" field.
func LastStudyDateEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastStudyDate, v))
}

// LastStudyDateNEQ applies the NEQ predicate on the "last_study_date" field.
func LastStudyDateNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastStudyDate, v))
}

// LastStudyDateIn applies the In predicate on the "last_study_date" field.
func LastStudyDateIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastStudyDate, vs...))
}

// LastStudyDateNotIn applies the NotIn predicate on the "last_study_date" field.
func LastStudyDateNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastStudyDate, vs...))
}

// LastStudyDateGT applies the GT predicate on the "last_study_date" field.
func LastStudyDateGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastStudyDate, v))
}

// LastStudyDateGTE applies the GTE predicate on the "last_study_date" field.
func LastStudyDateGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastStudyDate, v))
}

// LastStudyDateLT applies the LT predicate on the "last_study_date" field.
func LastStudyDateLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastStudyDate, v))
}

// LastStudyDateLTE applies the LTE predicate on the "last_study_date" field.
func LastStudyDateLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastStudyDate, v))
}

// LastStudyDateIsNil applies the IsNil predicate on the "last_study_date" field.
func LastStudyDateIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastStudyDate))
}

// LastStudyDateNotNil applies the NotNil predicate on the "last_study_date" field.
func LastStudyDateNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastStudyDate))
}

// StudyGoalMinutesEQ applies the EQ predicate on the "study_goal_minutes" field.
func StudyGoalMinutesEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStudyGoalMinutes, v))
}

// StudyGoalMinutesNEQ applies the NEQ predicate on the "study_goal_minutes" field.
func StudyGoalMinutesNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStudyGoalMinutes, v))
}

// StudyGoalMinutesIn applies the In predicate on the "study_goal_minutes" field.
func StudyGoalMinutesIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStudyGoalMinutes, vs...))
}

// StudyGoalMinutesNotIn applies the NotIn predicate on the "study_goal_minutes" field.
func StudyGoalMinutesNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStudyGoalMinutes, vs...))
}

// StudyGoalMinutesGT applies the GT predicate on the "study_goal_minutes" field.
func StudyGoalMinutesGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStudyGoalMinutes, v))
}

// StudyGoalMinutesGTE applies the GTE predicate on the "study_goal_minutes" field.
func StudyGoalMinutesGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStudyGoalMinutes, v))
}

// StudyGoalMinutesLT applies the LT predicate on the "study_goal_minutes" field.
func StudyGoalMinutesLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStudyGoalMinutes, v))
}

// StudyGoalMinutesLTE applies the LTE predicate on the "study_goal_minutes" field.
func StudyGoalMinutesLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStudyGoalMinutes, v))
}

// TotalStudyMinutesEQ applies the EQ predicate on the "total_study_minutes" field.
func TotalStudyMinutesEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalStudyMinutes, v))
}

// TotalStudyMinutesNEQ applies the NEQ predicate on the "total_study_minutes" field.
func TotalStudyMinutesNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalStudyMinutes, v))
}

// TotalStudyMinutesIn applies the In predicate on the "total_study_minutes" field.
func TotalStudyMinutesIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalStudyMinutes, vs...))
}

// TotalStudyMinutesNotIn applies the NotIn predicate on the "total_study_minutes" field.
func TotalStudyMinutesNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalStudyMinutes, vs...))
}

// TotalStudyMinutesGT applies the GT predicate on the "total_study_minutes" field.
func TotalStudyMinutesGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalStudyMinutes, v))
}

// TotalStudyMinutesGTE applies the GTE predicate on the "total_study_minutes" field.
func TotalStudyMinutesGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalStudyMinutes, v))
}

// TotalStudyMinutesLT applies the LT predicate on the "total_study_minutes" field.
func TotalStudyMinutesLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalStudyMinutes, v))
}

// TotalStudyMinutesLTE applies the LTE predicate on the "total_study_minutes" field.
func TotalStudyMinutesLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalStudyMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
