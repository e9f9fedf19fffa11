package wjdr

import (
	"fmt"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// Character is the aggregate root of a character sheet. It exclusively owns
// its attribute blocks, skill and talent sets, inventory and experience
// ledger; careers are referenced by value from the external catalog and
// never mutated through the character.
//
// Every mutating method builds a candidate next state, runs the full
// invariant set once, and only commits when the candidate is valid. A failed
// mutation leaves the prior committed state observable. Instances are not
// safe for concurrent mutation; callers requiring that must serialize access
// externally.
type Character struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Gender Gender `json:"gender"`
	Race   Race   `json:"race"`

	Details DetailedInformation `json:"details,omitempty"`

	PrimaryAttributes   PrimaryAttributes   `json:"primary_attributes"`
	SecondaryAttributes SecondaryAttributes `json:"secondary_attributes"`

	MadnessPoints int `json:"madness_points"`
	DestinyPoints int `json:"destiny_points"`

	// Skills is a set keyed by skill identity, not by bonus.
	Skills []CharacterSkill `json:"skills,omitempty"`
	// Talents is a set keyed by talent value-equality.
	Talents []Talent `json:"talents,omitempty"`

	// Careers is the append-only career history. The last entry is the
	// current career and governs attribute advance ceilings.
	Careers []Career `json:"careers,omitempty"`

	Inventory  Inventory  `json:"inventory"`
	Experience Experience `json:"experience"`
}

// NewCharacter validates a character and returns an owned copy. The error,
// if any, lists every violated invariant, not just the first.
func NewCharacter(character Character) (*Character, error) {
	c := character.clone()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate runs the full cross-field invariant set over the current state.
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()

	if !ValidGender(c.Gender) {
		vb.Fieldf("gender", "must be one of: %s, %s", GenderMale, GenderFemale)
	}
	if !ValidRace(c.Race) {
		vb.Fieldf("race", "must be one of: %s, %s, %s, %s", RaceElf, RaceDwarf, RaceHuman, RaceHalfling)
	}

	c.Details.validate(vb)
	c.PrimaryAttributes.validate(vb)
	c.SecondaryAttributes.validate(vb)

	errors.ValidateMin("madness_points", c.MadnessPoints, 0, vb)
	errors.ValidateMin("destiny_points", c.DestinyPoints, 0, vb)

	c.validateSkills(vb)
	c.validateTalents(vb)
	c.validateCareers(vb)
	c.validateProgression(vb)

	c.Inventory.validate(vb)
	c.Experience.validate(vb)

	return vb.Build()
}

func (c *Character) validateSkills(vb *errors.ValidationBuilder) {
	for i, cs := range c.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		cs.validate(field, vb)
		for j := i + 1; j < len(c.Skills); j++ {
			if cs.Skill.Equal(c.Skills[j].Skill) {
				vb.Fieldf(fmt.Sprintf("skills[%d]", j), "duplicates skill %q", cs.Skill.Name)
			}
		}
	}
}

func (c *Character) validateTalents(vb *errors.ValidationBuilder) {
	for i, t := range c.Talents {
		for j := i + 1; j < len(c.Talents); j++ {
			if t.Equal(c.Talents[j]) {
				vb.Fieldf(fmt.Sprintf("talents[%d]", j), "duplicates talent %q", t.Name)
			}
		}
	}
}

func (c *Character) validateCareers(vb *errors.ValidationBuilder) {
	for i, career := range c.Careers {
		if err := career.Validate(); err != nil {
			vb.Fieldf(fmt.Sprintf("careers[%d]", i), "invalid career plan: %s", errors.GetMessage(err))
		}
	}
}

// validateProgression enforces the career-history state machine: with no
// career every advance must be 0; with at least one career the most recently
// applied career's targets are the ceilings, superseding earlier careers.
func (c *Character) validateProgression(vb *errors.ValidationBuilder) {
	current := c.CurrentCareer()

	if current == nil {
		for _, name := range PrimaryAttributeNames() {
			if adv := c.PrimaryAttributes.Get(name).Advanced; adv != 0 {
				vb.CodedFieldf(errors.CodeInvalidProgression,
					fmt.Sprintf("primary_attributes.%s.advanced", name),
					"must be 0 with no applied career, got %d", adv)
			}
		}
		for _, name := range SecondaryAttributeNames() {
			if adv := c.SecondaryAttributes.Get(name).Advanced; adv != 0 {
				vb.CodedFieldf(errors.CodeInvalidProgression,
					fmt.Sprintf("secondary_attributes.%s.advanced", name),
					"must be 0 with no applied career, got %d", adv)
			}
		}
		return
	}

	for _, name := range PrimaryAttributeNames() {
		adv := c.PrimaryAttributes.Get(name).Advanced
		if target := current.PrimaryTarget(name); adv > target {
			vb.CodedFieldf(errors.CodeCareerCeilingExceeded,
				fmt.Sprintf("primary_attributes.%s.advanced", name),
				"advance %d exceeds career %q target %d", adv, current.Name, target)
		}
	}
	for _, name := range SecondaryAttributeNames() {
		adv := c.SecondaryAttributes.Get(name).Advanced
		if target := current.SecondaryTarget(name); adv > target {
			vb.CodedFieldf(errors.CodeCareerCeilingExceeded,
				fmt.Sprintf("secondary_attributes.%s.advanced", name),
				"advance %d exceeds career %q target %d", adv, current.Name, target)
		}
	}
}

// CurrentCareer returns the most recently applied career, or nil for an
// uncareered character.
func (c *Character) CurrentCareer() *Career {
	if len(c.Careers) == 0 {
		return nil
	}
	return &c.Careers[len(c.Careers)-1]
}

// MaxClutter returns the carrying capacity: actual strength times the race
// carry modifier.
func (c *Character) MaxClutter() int {
	return c.PrimaryAttributes.Strength.Actual() * CarryModifier(c.Race)
}

// IsCluttered reports whether the carried load exceeds the carrying capacity.
func (c *Character) IsCluttered() bool {
	return c.Inventory.TotalClutter() > c.MaxClutter()
}

// FindSkill returns the stored character skill whose identity equals skill.
func (c *Character) FindSkill(skill Skill) (CharacterSkill, bool) {
	if i := c.skillIndex(skill); i >= 0 {
		return c.Skills[i], true
	}
	return CharacterSkill{}, false
}

// HasTalent reports whether the character has a value-equal talent.
func (c *Character) HasTalent(talent Talent) bool {
	return c.talentIndex(talent) >= 0
}

func (c *Character) skillIndex(skill Skill) int {
	for i := range c.Skills {
		if c.Skills[i].Skill.Equal(skill) {
			return i
		}
	}
	return -1
}

func (c *Character) talentIndex(talent Talent) int {
	for i := range c.Talents {
		if c.Talents[i].Equal(talent) {
			return i
		}
	}
	return -1
}

// clone deep-copies the owned state. Career templates are immutable and
// their inner maps are shared.
func (c *Character) clone() *Character {
	copied := *c
	copied.Skills = append([]CharacterSkill(nil), c.Skills...)
	copied.Talents = append([]Talent(nil), c.Talents...)
	copied.Careers = append([]Career(nil), c.Careers...)
	copied.Inventory.Equipments = append([]Equipment(nil), c.Inventory.Equipments...)
	copied.Details.DistinctiveSigns = append([]string(nil), c.Details.DistinctiveSigns...)
	copied.Details.ChaosMutations = append([]string(nil), c.Details.ChaosMutations...)
	return &copied
}

// apply runs mutate on a candidate copy, validates the candidate, and
// commits it only when the whole invariant set holds.
func (c *Character) apply(mutate func(candidate *Character) error) error {
	candidate := c.clone()
	if err := mutate(candidate); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}
	*c = *candidate
	return nil
}

// CareerChoices resolves a career's choice slots when it is applied: slot
// index to chosen alternative index. Slots without an entry resolve to their
// first alternative.
type CareerChoices struct {
	Skills  map[int]int
	Talents map[int]int
}

// AddCareer appends a career to the history. The career history is
// append-only: no removal, no reordering. When the career is basic, every
// skill and talent slot is resolved — through choices, defaulting to the
// first alternative — and granted as if by AddSkill/AddTalent.
func (c *Character) AddCareer(career Career, choices *CareerChoices) error {
	if err := career.Validate(); err != nil {
		return err
	}

	return c.apply(func(candidate *Character) error {
		candidate.Careers = append(candidate.Careers, career)
		if !career.Basic {
			return nil
		}

		for i, slot := range career.Skills {
			choice := 0
			if choices != nil {
				choice = choices.Skills[i]
			}
			skill, err := slot.Resolve(choice)
			if err != nil {
				return errors.Wrapf(err, "career %q skill slot %d", career.Name, i)
			}
			candidate.addSkill(CharacterSkill{Skill: skill})
		}
		for i, slot := range career.Talents {
			choice := 0
			if choices != nil {
				choice = choices.Talents[i]
			}
			talent, err := slot.Resolve(choice)
			if err != nil {
				return errors.Wrapf(err, "career %q talent slot %d", career.Name, i)
			}
			candidate.addTalent(talent)
		}
		return nil
	})
}

// AddSkill inserts a character skill. When a skill with equal identity is
// already present its bonus is raised by one step, capped at MaxSkillBonus;
// repeated additions past the cap are no-ops.
func (c *Character) AddSkill(skill CharacterSkill) error {
	return c.apply(func(candidate *Character) error {
		candidate.addSkill(skill)
		return nil
	})
}

func (c *Character) addSkill(skill CharacterSkill) {
	if i := c.skillIndex(skill.Skill); i >= 0 {
		bonus := c.Skills[i].Bonus + SkillBonusStep
		if bonus > MaxSkillBonus {
			bonus = MaxSkillBonus
		}
		c.Skills[i].Bonus = bonus
		return
	}
	c.Skills = append(c.Skills, skill)
}

// DeleteSkill lowers the stored bonus of the identity-equal skill by one
// step. When all is true, or the bonus is already 0, the entry is removed
// entirely.
func (c *Character) DeleteSkill(skill Skill, all bool) error {
	return c.apply(func(candidate *Character) error {
		i := candidate.skillIndex(skill)
		if i < 0 {
			return errors.NotFoundf("character has no skill %q", skill.Name)
		}
		if all || candidate.Skills[i].Bonus == 0 {
			candidate.Skills = append(candidate.Skills[:i], candidate.Skills[i+1:]...)
			return nil
		}
		candidate.Skills[i].Bonus -= SkillBonusStep
		if candidate.Skills[i].Bonus < 0 {
			candidate.Skills[i].Bonus = 0
		}
		return nil
	})
}

// AddTalent inserts a talent into the set. Inserting a value-equal talent
// again is a no-op. A talent carrying a permanent bonus raises the bonused
// attribute's base on insert.
func (c *Character) AddTalent(talent Talent) error {
	return c.apply(func(candidate *Character) error {
		candidate.addTalent(talent)
		return nil
	})
}

func (c *Character) addTalent(talent Talent) {
	if c.talentIndex(talent) >= 0 {
		return
	}
	c.Talents = append(c.Talents, talent)
	if talent.PermanentBonus != nil {
		if attr := c.PrimaryAttributes.Get(talent.PermanentBonus.Attribute); attr != nil {
			attr.Base += talent.PermanentBonus.Amount
		}
	}
}

// DeleteTalent removes a value-equal talent from the set, reverting its
// permanent bonus if it carried one.
func (c *Character) DeleteTalent(talent Talent) error {
	return c.apply(func(candidate *Character) error {
		i := candidate.talentIndex(talent)
		if i < 0 {
			return errors.NotFoundf("character has no talent %q", talent.Name)
		}
		removed := candidate.Talents[i]
		candidate.Talents = append(candidate.Talents[:i], candidate.Talents[i+1:]...)
		if removed.PermanentBonus != nil {
			if attr := candidate.PrimaryAttributes.Get(removed.PermanentBonus.Attribute); attr != nil {
				attr.Base -= removed.PermanentBonus.Amount
			}
		}
		return nil
	})
}

// SetPrimaryAttribute assigns the named primary attribute.
func (c *Character) SetPrimaryAttribute(name PrimaryAttributeName, attribute PrimaryAttribute) error {
	if !ValidPrimaryAttributeName(name) {
		return errors.InvalidArgumentf("unknown primary attribute %q", name)
	}
	return c.apply(func(candidate *Character) error {
		*candidate.PrimaryAttributes.Get(name) = attribute
		return nil
	})
}

// SetSecondaryAttribute assigns the named secondary attribute.
func (c *Character) SetSecondaryAttribute(name SecondaryAttributeName, attribute SecondaryAttribute) error {
	if !ValidSecondaryAttributeName(name) {
		return errors.InvalidArgumentf("unknown secondary attribute %q", name)
	}
	return c.apply(func(candidate *Character) error {
		*candidate.SecondaryAttributes.Get(name) = attribute
		return nil
	})
}

// AdvancePrimaryAttribute buys one advance step of the named primary
// attribute, debiting the experience ledger. The candidate validation
// rejects the advance when it exceeds the current career's target or when
// insufficient experience is available.
func (c *Character) AdvancePrimaryAttribute(name PrimaryAttributeName) error {
	if !ValidPrimaryAttributeName(name) {
		return errors.InvalidArgumentf("unknown primary attribute %q", name)
	}
	return c.apply(func(candidate *Character) error {
		candidate.PrimaryAttributes.Get(name).Advanced += PrimaryAdvanceStep
		candidate.Experience.Spent += AdvanceExperienceCost
		return nil
	})
}

// AdvanceSecondaryAttribute buys one advance point of the named secondary
// attribute, debiting the experience ledger.
func (c *Character) AdvanceSecondaryAttribute(name SecondaryAttributeName) error {
	if !ValidSecondaryAttributeName(name) {
		return errors.InvalidArgumentf("unknown secondary attribute %q", name)
	}
	return c.apply(func(candidate *Character) error {
		candidate.SecondaryAttributes.Get(name).Advanced++
		candidate.Experience.Spent += AdvanceExperienceCost
		return nil
	})
}

// GrantExperience credits points to the experience ledger.
func (c *Character) GrantExperience(points int) error {
	if points <= 0 {
		return errors.InvalidArgumentf("experience grant must be positive, got %d", points)
	}
	return c.apply(func(candidate *Character) error {
		candidate.Experience.Total += points
		return nil
	})
}

// SpendExperience debits points from the experience ledger. Points must be a
// positive multiple of the spend step and within the available balance.
func (c *Character) SpendExperience(points int) error {
	if points <= 0 {
		return errors.InvalidArgumentf("experience spend must be positive, got %d", points)
	}
	return c.apply(func(candidate *Character) error {
		candidate.Experience.Spent += points
		return nil
	})
}

// AddEquipment adds an item to the inventory.
func (c *Character) AddEquipment(equipment Equipment) error {
	return c.apply(func(candidate *Character) error {
		candidate.Inventory.Equipments = append(candidate.Inventory.Equipments, equipment)
		return nil
	})
}

// RemoveEquipment removes the first item with the given name from the
// inventory.
func (c *Character) RemoveEquipment(name string) error {
	return c.apply(func(candidate *Character) error {
		for i := range candidate.Inventory.Equipments {
			if candidate.Inventory.Equipments[i].Name == name {
				candidate.Inventory.Equipments = append(
					candidate.Inventory.Equipments[:i], candidate.Inventory.Equipments[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("character carries no equipment %q", name)
	})
}

// Receive credits money to the purse.
func (c *Character) Receive(money Money) error {
	return c.apply(func(candidate *Character) error {
		candidate.Inventory.Money = candidate.Inventory.Money.Add(money)
		return nil
	})
}

// Pay debits money from the purse. It fails with NEGATIVE_BALANCE when the
// purse is worth less than the price.
func (c *Character) Pay(price Money) error {
	return c.apply(func(candidate *Character) error {
		rest, err := candidate.Inventory.Money.Subtract(price)
		if err != nil {
			return err
		}
		candidate.Inventory.Money = rest
		return nil
	})
}
