package services

import (
	"fmt"

	"github.com/molarhq/molarlog/internal/models"
)

const (
	MilestoneShadowing = "shadowing_target_met"
	MilestoneDental    = "dental_target_met"
	MilestoneNonDental = "non_dental_target_met"
	MilestoneCombined  = "combined_target_met"
)

// Achievement is a one-time "target reached" notification for a milestone.
type Achievement struct {
	Milestone string `json:"milestone"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

type AchievementUserWriter interface {
	UpdateByID(userID uint, updates map[string]any) error
}

type AchievementService struct {
	users AchievementUserWriter
}

func NewAchievementService(users AchievementUserWriter) *AchievementService {
	return &AchievementService{users: users}
}

// Evaluate compares category totals against the user's targets and emits
// each milestone at most once, persisting the flag in the same pass. Flags
// are monotonic: totals dropping back under target never clears them, and
// re-evaluating with the flag already set emits nothing.
func (service *AchievementService) Evaluate(user *models.User, totals HoursTotals) ([]Achievement, error) {
	achievements := make([]Achievement, 0, 4)
	updates := map[string]any{}

	if milestoneReached(totals.Shadowing, user.TargetShadowing, user.ShadowingTargetMet) {
		user.ShadowingTargetMet = true
		updates[MilestoneShadowing] = true
		achievements = append(achievements, Achievement{
			Milestone: MilestoneShadowing,
			Title:     "Shadowing Target Met",
			Message:   targetMetMessage("shadowing", user.TargetShadowing),
		})
	}
	if milestoneReached(totals.Dental, user.TargetDental, user.DentalTargetMet) {
		user.DentalTargetMet = true
		updates[MilestoneDental] = true
		achievements = append(achievements, Achievement{
			Milestone: MilestoneDental,
			Title:     "Dental Volunteering Target Met",
			Message:   targetMetMessage("dental volunteering", user.TargetDental),
		})
	}
	if milestoneReached(totals.NonDental, user.TargetNonDental, user.NonDentalTargetMet) {
		user.NonDentalTargetMet = true
		updates[MilestoneNonDental] = true
		achievements = append(achievements, Achievement{
			Milestone: MilestoneNonDental,
			Title:     "Non-Dental Volunteering Target Met",
			Message:   targetMetMessage("non-dental volunteering", user.TargetNonDental),
		})
	}
	if milestoneReached(totals.Grand, user.CombinedTargetHours(), user.CombinedTargetMet) {
		user.CombinedTargetMet = true
		updates[MilestoneCombined] = true
		achievements = append(achievements, Achievement{
			Milestone: MilestoneCombined,
			Title:     "Total Target Met",
			Message:   targetMetMessage("combined", user.CombinedTargetHours()),
		})
	}

	if len(updates) == 0 {
		return achievements, nil
	}
	if err := service.users.UpdateByID(user.ID, updates); err != nil {
		return nil, err
	}
	return achievements, nil
}

func milestoneReached(total float64, target int, alreadyMet bool) bool {
	return target > 0 && !alreadyMet && total >= float64(target)
}

func targetMetMessage(category string, target int) string {
	return fmt.Sprintf("You reached your %s target of %d hours. Congratulations!", category, target)
}
