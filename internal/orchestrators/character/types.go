package character

import (
	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
)

// CreateCharacterInput defines the input for creating a character sheet.
type CreateCharacterInput struct {
	Name   string
	Gender wjdr.Gender
	Race   wjdr.Race

	// Attributes optionally seeds the attribute blocks, typically from the
	// generation orchestrator. When nil the blocks start zeroed.
	PrimaryAttributes   *wjdr.PrimaryAttributes
	SecondaryAttributes *wjdr.SecondaryAttributes

	Details wjdr.DetailedInformation
	Money   wjdr.Money
}

// CreateCharacterOutput defines the output for creating a character sheet.
type CreateCharacterOutput struct {
	Character *wjdr.Character
}

// GetCharacterInput defines the input for getting a character.
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for getting a character.
type GetCharacterOutput struct {
	Character *wjdr.Character
}

// ListCharactersInput defines the input for listing characters.
type ListCharactersInput struct{}

// ListCharactersOutput defines the output for listing characters.
type ListCharactersOutput struct {
	Characters []*wjdr.Character
}

// DeleteCharacterInput defines the input for deleting a character.
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the output for deleting a character.
type DeleteCharacterOutput struct {
	Message string
}

// AddSkillInput defines the input for adding a skill to a character.
type AddSkillInput struct {
	CharacterID string
	Skill       wjdr.Skill
}

// AddSkillOutput defines the output for adding a skill.
type AddSkillOutput struct {
	Character *wjdr.Character
}

// RemoveSkillInput defines the input for removing a skill from a character.
type RemoveSkillInput struct {
	CharacterID string
	Skill       wjdr.Skill
	// All removes the entry outright instead of lowering its bonus by one
	// step.
	All bool
}

// RemoveSkillOutput defines the output for removing a skill.
type RemoveSkillOutput struct {
	Character *wjdr.Character
}

// AddTalentInput defines the input for adding a talent to a character.
type AddTalentInput struct {
	CharacterID string
	Talent      wjdr.Talent
}

// AddTalentOutput defines the output for adding a talent.
type AddTalentOutput struct {
	Character *wjdr.Character
}

// RemoveTalentInput defines the input for removing a talent from a character.
type RemoveTalentInput struct {
	CharacterID string
	Talent      wjdr.Talent
}

// RemoveTalentOutput defines the output for removing a talent.
type RemoveTalentOutput struct {
	Character *wjdr.Character
}

// ApplyCareerInput defines the input for entering a career.
type ApplyCareerInput struct {
	CharacterID string
	CareerName  string
	// Choices resolves the career's choice slots; nil picks the first
	// alternative of every slot.
	Choices *wjdr.CareerChoices
}

// ApplyCareerOutput defines the output for entering a career.
type ApplyCareerOutput struct {
	Character *wjdr.Character
}

// AdvanceAttributeInput defines the input for buying an attribute advance.
// Exactly one of Primary or Secondary must be set.
type AdvanceAttributeInput struct {
	CharacterID string
	Primary     wjdr.PrimaryAttributeName
	Secondary   wjdr.SecondaryAttributeName
}

// AdvanceAttributeOutput defines the output for buying an attribute advance.
type AdvanceAttributeOutput struct {
	Character *wjdr.Character
}

// GrantExperienceInput defines the input for crediting experience points.
type GrantExperienceInput struct {
	CharacterID string
	Points      int
}

// GrantExperienceOutput defines the output for crediting experience points.
type GrantExperienceOutput struct {
	Character *wjdr.Character
}
