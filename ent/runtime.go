// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adelr/studypet/ent/profile"
	"github.com/adelr/studypet/ent/quizattempt"
	"github.com/adelr/studypet/ent/schema"
	"github.com/adelr/studypet/ent/studysession"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescAnimalType is the schema descriptor for animal_type field.
	profileDescAnimalType := profileFields[2].Descriptor()
	// profile.DefaultAnimalType holds the default value on creation for the animal_type field.
	profile.DefaultAnimalType = profileDescAnimalType.Default.(string)
	// profileDescAnimalName is the schema descriptor for animal_name field.
	profileDescAnimalName := profileFields[3].Descriptor()
	// profile.DefaultAnimalName holds the default value on creation for the animal_name field.
	profile.DefaultAnimalName = profileDescAnimalName.Default.(string)
	// profileDescAnimalColor is the schema descriptor for animal_color field.
	profileDescAnimalColor := profileFields[4].Descriptor()
	// profile.DefaultAnimalColor holds the default value on creation for the animal_color field.
	profile.DefaultAnimalColor = profileDescAnimalColor.Default.(string)
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[5].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescLevel is the schema descriptor for level field.
	profileDescLevel := profileFields[6].Descriptor()
	// profile.DefaultLevel holds the default value on creation for the level field.
	profile.DefaultLevel = profileDescLevel.Default.(string)
	// profileDescCurrentStreak is the schema descriptor for current_streak field.
	profileDescCurrentStreak := profileFields[7].Descriptor()
	// profile.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	profile.DefaultCurrentStreak = profileDescCurrentStreak.Default.(int)
	// profile.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	profile.CurrentStreakValidator = profileDescCurrentStreak.Validators[0].(func(int) error)
	// profileDescMaxStreak is the schema descriptor for max_streak field.
	profileDescMaxStreak := profileFields[8].Descriptor()
	// profile.DefaultMaxStreak holds the default value on creation for the max_streak field.
	profile.DefaultMaxStreak = profileDescMaxStreak.Default.(int)
	// profile.MaxStreakValidator is a validator for the "max_streak" field. It is called by the builders before save.
	profile.MaxStreakValidator = profileDescMaxStreak.Validators[0].(func(int) error)
	// profileDescStudyGoalMinutes is the schema descriptor for study_goal_minutes field.
	profileDescStudyGoalMinutes := profileFields[10].Descriptor()
	// profile.DefaultStudyGoalMinutes holds the default value on creation for the study_goal_minutes field.
	profile.DefaultStudyGoalMinutes = profileDescStudyGoalMinutes.Default.(int)
	// profileDescTotalStudyMinutes is the schema descriptor for total_study_minutes field.
	profileDescTotalStudyMinutes := profileFields[11].Descriptor()
	// profile.DefaultTotalStudyMinutes holds the default value on creation for the total_study_minutes field.
	profile.DefaultTotalStudyMinutes = profileDescTotalStudyMinutes.Default.(int)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[12].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[13].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescCompletedAt is the schema descriptor for completed_at field.
	quizattemptDescCompletedAt := quizattemptFields[7].Descriptor()
	// quizattempt.DefaultCompletedAt holds the default value on creation for the completed_at field.
	quizattempt.DefaultCompletedAt = quizattemptDescCompletedAt.Default.(func() time.Time)
	// quizattemptDescID is the schema descriptor for id field.
	quizattemptDescID := quizattemptFields[0].Descriptor()
	// quizattempt.DefaultID holds the default value on creation for the id field.
	quizattempt.DefaultID = quizattemptDescID.Default.(func() uuid.UUID)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescDurationSeconds is the schema descriptor for duration_seconds field.
	studysessionDescDurationSeconds := studysessionFields[3].Descriptor()
	// studysession.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	studysession.DefaultDurationSeconds = studysessionDescDurationSeconds.Default.(int)
	// studysessionDescStatus is the schema descriptor for status field.
	studysessionDescStatus := studysessionFields[4].Descriptor()
	// studysession.DefaultStatus holds the default value on creation for the status field.
	studysession.DefaultStatus = studysessionDescStatus.Default.(string)
	// studysessionDescXpAwarded is the schema descriptor for xp_awarded field.
	studysessionDescXpAwarded := studysessionFields[5].Descriptor()
	// studysession.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	studysession.DefaultXpAwarded = studysessionDescXpAwarded.Default.(int)
	// studysessionDescStartedAt is the schema descriptor for started_at field.
	studysessionDescStartedAt := studysessionFields[6].Descriptor()
	// studysession.DefaultStartedAt holds the default value on creation for the started_at field.
	studysession.DefaultStartedAt = studysessionDescStartedAt.Default.(func() time.Time)
	// studysessionDescID is the schema descriptor for id field.
	studysessionDescID := studysessionFields[0].Descriptor()
	// studysession.DefaultID holds the default value on creation for the id field.
	studysession.DefaultID = studysessionDescID.Default.(func() uuid.UUID)
}
