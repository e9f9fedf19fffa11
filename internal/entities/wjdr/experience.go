package wjdr

import (
	"github.com/oldworld/wjdr-api/internal/errors"
)

// ExperienceSpendStep is the granularity of experience spending.
const ExperienceSpendStep = 100

// Experience is the character's experience ledger.
type Experience struct {
	Total int `json:"total"`
	Spent int `json:"spent"`
}

// Available returns the experience not yet spent.
func (e Experience) Available() int {
	return e.Total - e.Spent
}

// SpendableTicks returns the available remainder below one spend step.
func (e Experience) SpendableTicks() int {
	return e.Available() % ExperienceSpendStep
}

func (e Experience) validate(vb *errors.ValidationBuilder) {
	errors.ValidateMin("experience.total", e.Total, 0, vb)
	errors.ValidateMin("experience.spent", e.Spent, 0, vb)
	errors.ValidateMultipleOf("experience.spent", e.Spent, ExperienceSpendStep, vb)
	if e.Spent > e.Total {
		vb.Fieldf("experience.spent", "cannot exceed total %d", e.Total)
	}
}
