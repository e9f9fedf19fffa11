package wjdr

import (
	"github.com/oldworld/wjdr-api/internal/errors"
)

// Skill bonus stacking bounds
const (
	// SkillBonusStep is the increment a repeated skill acquisition grants.
	SkillBonusStep = 10
	// MaxSkillBonus caps the per-character stacking bonus.
	MaxSkillBonus = 20
)

// Skill is an identity-bearing domain value. A base skill has an empty
// Specialization; the specialized variant carries a non-empty one that
// further refines its identity.
type Skill struct {
	Name           string               `json:"name"`
	Basic          bool                 `json:"basic"`
	Description    string               `json:"description"`
	Attribute      PrimaryAttributeName `json:"attribute"`
	Talents        []Talent             `json:"talents,omitempty"`
	Specialization string               `json:"specialization,omitempty"`
}

// Specialized reports whether the skill is the specialized variant.
func (s Skill) Specialized() bool {
	return s.Specialization != ""
}

// Equal is the value-equality contract for skills: two skills are the same
// skill when name, basic flag, governing attribute, related talent list, and
// specialization all match. Per-character bonuses never participate in
// identity; descriptions are display text and do not either.
func (s Skill) Equal(other Skill) bool {
	return s.Name == other.Name &&
		s.Basic == other.Basic &&
		s.Attribute == other.Attribute &&
		s.Specialization == other.Specialization &&
		talentListsEqual(s.Talents, other.Talents)
}

func (s Skill) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".name", s.Name, vb)
	if !ValidPrimaryAttributeName(s.Attribute) {
		vb.Fieldf(field+".attribute", "must be one of the eight primary attribute names, got %q", s.Attribute)
	}
}

// CharacterSkill pairs a skill with the per-character stacking bonus. The
// bonus is not part of skill identity.
type CharacterSkill struct {
	Skill Skill `json:"skill"`
	Bonus int   `json:"bonus"`
}

func (cs CharacterSkill) validate(field string, vb *errors.ValidationBuilder) {
	cs.Skill.validate(field+".skill", vb)
	errors.ValidateRange(field+".bonus", cs.Bonus, 0, MaxSkillBonus, vb)
	errors.ValidateMultipleOf(field+".bonus", cs.Bonus, SkillBonusStep, vb)
}
