package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adelr/studypet/ent"
	entprofile "github.com/adelr/studypet/ent/profile"
	"github.com/adelr/studypet/internal/progression"
)

// Profile is the stored companion profile row.
type Profile struct {
	UserID            string     `json:"userId"`
	Name              string     `json:"name"`
	AnimalType        string     `json:"animalType"`
	AnimalName        string     `json:"animalName"`
	AnimalColor       string     `json:"animalColor"`
	XP                int        `json:"xp"`
	Level             string     `json:"level"`
	CurrentStreak     int        `json:"currentStreak"`
	MaxStreak         int        `json:"maxStreak"`
	LastStudyDate     *time.Time `json:"lastStudyDate,omitempty"`
	StudyGoalMinutes  int        `json:"studyGoalMinutes"`
	TotalStudyMinutes int        `json:"totalStudyMinutes"`
}

// ProfileRepo manages companion profiles. It is the concrete
// implementation of the progression persistence port.
type ProfileRepo struct {
	client *ent.Client
}

// Fetch returns the profile for userID, or nil when none exists yet
// (the "needs onboarding" case, not an error).
func (r *ProfileRepo) Fetch(ctx context.Context, userID string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return fromEntProfile(p), nil
}

// Create inserts a fresh profile row. Progression fields start at their
// onboarding values regardless of what the caller passes.
func (r *ProfileRepo) Create(ctx context.Context, p *Profile) error {
	_, err := r.client.Profile.Create().
		SetUserID(p.UserID).
		SetName(p.Name).
		SetAnimalType(p.AnimalType).
		SetAnimalName(p.AnimalName).
		SetAnimalColor(p.AnimalColor).
		SetStudyGoalMinutes(p.StudyGoalMinutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// ApplyUpdate merges the non-nil fields of a progression update into
// the stored row. Satisfies progression.Store.
func (r *ProfileRepo) ApplyUpdate(ctx context.Context, userID string, u progression.Update) error {
	upd := r.client.Profile.Update().
		Where(entprofile.UserID(userID))

	if u.XP != nil {
		upd.SetXp(*u.XP)
	}
	if u.Level != nil {
		upd.SetLevel(string(*u.Level))
	}
	if u.CurrentStreak != nil {
		upd.SetCurrentStreak(*u.CurrentStreak)
	}
	if u.MaxStreak != nil {
		upd.SetMaxStreak(*u.MaxStreak)
	}
	if u.LastStudyDate != nil {
		upd.SetLastStudyDate(*u.LastStudyDate)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update profile: no row for user %s", userID)
	}
	return nil
}

// AddStudyMinutes bumps the lifetime study-time counter.
func (r *ProfileRepo) AddStudyMinutes(ctx context.Context, userID string, minutes int) error {
	_, err := r.client.Profile.Update().
		Where(entprofile.UserID(userID)).
		AddTotalStudyMinutes(minutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add study minutes: %w", err)
	}
	return nil
}

func fromEntProfile(p *ent.Profile) *Profile {
	return &Profile{
		UserID:            p.UserID,
		Name:              p.Name,
		AnimalType:        p.AnimalType,
		AnimalName:        p.AnimalName,
		AnimalColor:       p.AnimalColor,
		XP:                p.Xp,
		Level:             p.Level,
		CurrentStreak:     p.CurrentStreak,
		MaxStreak:         p.MaxStreak,
		LastStudyDate:     p.LastStudyDate,
		StudyGoalMinutes:  p.StudyGoalMinutes,
		TotalStudyMinutes: p.TotalStudyMinutes,
	}
}

// Progress rebuilds the engine snapshot from a stored profile.
func (p *Profile) Progress() progression.Progress {
	return progression.Restore(p.UserID, p.XP, p.CurrentStreak, p.MaxStreak, p.LastStudyDate)
}
