package wjdr

import (
	"fmt"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// SkillSlot is one entry of a career's skill plan: either a fixed skill
// (exactly one alternative) or a choice between several. Choice slots are
// resolved by the caller; Resolve(0) picks the first alternative, which is
// also the default when no explicit choice is supplied.
type SkillSlot struct {
	Alternatives []Skill `json:"alternatives"`
}

// FixedSkill builds a slot that grants exactly one skill.
func FixedSkill(skill Skill) SkillSlot {
	return SkillSlot{Alternatives: []Skill{skill}}
}

// OneOfSkills builds a slot whose skill is chosen among options.
func OneOfSkills(options ...Skill) SkillSlot {
	return SkillSlot{Alternatives: options}
}

// Fixed reports whether the slot offers no choice.
func (s SkillSlot) Fixed() bool {
	return len(s.Alternatives) == 1
}

// Resolve returns the chosen alternative.
func (s SkillSlot) Resolve(choice int) (Skill, error) {
	if choice < 0 || choice >= len(s.Alternatives) {
		return Skill{}, errors.InvalidArgumentf(
			"skill slot choice %d out of range: slot offers %d alternatives", choice, len(s.Alternatives))
	}
	return s.Alternatives[choice], nil
}

// TalentSlot is one entry of a career's talent plan, with the same fixed or
// one-of semantics as SkillSlot.
type TalentSlot struct {
	Alternatives []Talent `json:"alternatives"`
}

// FixedTalent builds a slot that grants exactly one talent.
func FixedTalent(talent Talent) TalentSlot {
	return TalentSlot{Alternatives: []Talent{talent}}
}

// OneOfTalents builds a slot whose talent is chosen among options.
func OneOfTalents(options ...Talent) TalentSlot {
	return TalentSlot{Alternatives: options}
}

// Fixed reports whether the slot offers no choice.
func (s TalentSlot) Fixed() bool {
	return len(s.Alternatives) == 1
}

// Resolve returns the chosen alternative.
func (s TalentSlot) Resolve(choice int) (Talent, error) {
	if choice < 0 || choice >= len(s.Alternatives) {
		return Talent{}, errors.InvalidArgumentf(
			"talent slot choice %d out of range: slot offers %d alternatives", choice, len(s.Alternatives))
	}
	return s.Alternatives[choice], nil
}

// Career is an immutable template of attribute targets, skill and talent
// slots, endowments and starting money representing one occupation stage.
// Characters reference careers from the external catalog and never mutate
// them.
type Career struct {
	Name              string                         `json:"name"`
	Basic             bool                           `json:"basic"`
	PrimaryTargets    map[PrimaryAttributeName]int   `json:"primary_targets"`
	SecondaryTargets  map[SecondaryAttributeName]int `json:"secondary_targets"`
	Skills            []SkillSlot                    `json:"skills,omitempty"`
	Talents           []TalentSlot                   `json:"talents,omitempty"`
	Endowments        []string                       `json:"endowments,omitempty"`
	StartingMoney     Money                          `json:"starting_money"`
	AccessibleCareers []string                       `json:"accessible_careers,omitempty"`
}

// NewCareer validates a career template and returns it. Construction fails
// with INCOMPLETE_CAREER_PLAN when any of the eight primary or four
// secondary attribute keys is absent from the target maps; every missing key
// is reported. A present key with a zero target is acceptable: this is a
// completeness check, not a range check.
func NewCareer(career Career) (*Career, error) {
	if err := career.Validate(); err != nil {
		return nil, err
	}
	return &career, nil
}

// Validate checks the career plan for completeness.
func (c *Career) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)

	for _, name := range PrimaryAttributeNames() {
		if _, ok := c.PrimaryTargets[name]; !ok {
			vb.CodedFieldf(errors.CodeIncompleteCareerPlan,
				fmt.Sprintf("primary_targets.%s", name), "must be in career plan")
		}
	}
	for _, name := range SecondaryAttributeNames() {
		if _, ok := c.SecondaryTargets[name]; !ok {
			vb.CodedFieldf(errors.CodeIncompleteCareerPlan,
				fmt.Sprintf("secondary_targets.%s", name), "must be in career plan")
		}
	}

	for i, slot := range c.Skills {
		if len(slot.Alternatives) == 0 {
			vb.Fieldf(fmt.Sprintf("skills[%d]", i), "slot must offer at least one alternative")
		}
	}
	for i, slot := range c.Talents {
		if len(slot.Alternatives) == 0 {
			vb.Fieldf(fmt.Sprintf("talents[%d]", i), "slot must offer at least one alternative")
		}
	}

	return vb.Build()
}

// ExperienceAmount returns the total experience cost of completing this
// career: 100 per 5 points of primary target, 100 per point of secondary
// target, and for advanced (non-basic) careers 100 per skill or talent slot.
// It is derived on demand and never cached.
func (c *Career) ExperienceAmount() int {
	amount := 0
	for _, target := range c.PrimaryTargets {
		amount += target / PrimaryAdvanceStep * AdvanceExperienceCost
	}
	for _, target := range c.SecondaryTargets {
		amount += target * AdvanceExperienceCost
	}
	if !c.Basic {
		amount += AdvanceExperienceCost * (len(c.Skills) + len(c.Talents))
	}
	return amount
}

// PrimaryTarget returns the advance ceiling this career imposes on a
// primary attribute.
func (c *Career) PrimaryTarget(name PrimaryAttributeName) int {
	return c.PrimaryTargets[name]
}

// SecondaryTarget returns the advance ceiling this career imposes on a
// secondary attribute.
func (c *Career) SecondaryTarget(name SecondaryAttributeName) int {
	return c.SecondaryTargets[name]
}
