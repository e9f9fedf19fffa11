// Package character implements the character sheet orchestrator.
package character

import (
	"context"
	"log/slog"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	"github.com/oldworld/wjdr-api/internal/pkg/idgen"
	careerrepo "github.com/oldworld/wjdr-api/internal/repositories/career"
	characterrepo "github.com/oldworld/wjdr-api/internal/repositories/character"
)

// Config holds the dependencies for the character orchestrator.
type Config struct {
	CharacterRepo characterrepo.Repository
	CareerRepo    careerrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CareerRepo == nil {
		vb.RequiredField("CareerRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator coordinates character sheet operations: every mutation loads
// the sheet, applies the domain operation, and persists the result only when
// the whole invariant set still holds.
type Orchestrator struct {
	characterRepo characterrepo.Repository
	careerRepo    careerrepo.Repository
	idGenerator   idgen.Generator
}

// New creates a new character orchestrator.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		careerRepo:    cfg.CareerRepo,
		idGenerator:   cfg.IDGenerator,
	}, nil
}

// CreateCharacter builds a new character sheet, validates it and stores it.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	candidate := wjdr.Character{
		ID:      o.idGenerator.Generate(),
		Name:    input.Name,
		Gender:  input.Gender,
		Race:    input.Race,
		Details: input.Details,
	}
	if input.PrimaryAttributes != nil {
		candidate.PrimaryAttributes = *input.PrimaryAttributes
	}
	if input.SecondaryAttributes != nil {
		candidate.SecondaryAttributes = *input.SecondaryAttributes
	}
	// Caller-supplied purses are re-normalized; negative denominations fail
	// here with the money error rather than a sheet-wide validation error.
	money, err := wjdr.NewMoney(input.Money.GoldenCrown, input.Money.SilverPistol, input.Money.CopperCoins)
	if err != nil {
		return nil, err
	}
	candidate.Inventory.Money = money

	char, err := wjdr.NewCharacter(candidate)
	if err != nil {
		return nil, err
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created character",
		"character_id", char.ID,
		"race", char.Race,
	)

	return &CreateCharacterOutput{Character: created.Character}, nil
}

// GetCharacter retrieves a character sheet by ID.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: output.Character}, nil
}

// ListCharacters retrieves every stored character sheet.
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	output, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListCharactersOutput{Characters: output.Characters}, nil
}

// DeleteCharacter removes a character sheet.
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted character", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{Message: "character deleted"}, nil
}

// AddSkill grants a skill, raising the bonus one step when the character
// already has it.
func (o *Orchestrator) AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.AddSkill(wjdr.CharacterSkill{Skill: input.Skill})
	})
	if err != nil {
		return nil, err
	}

	return &AddSkillOutput{Character: char}, nil
}

// RemoveSkill lowers a skill's bonus one step, or removes the entry outright.
func (o *Orchestrator) RemoveSkill(ctx context.Context, input *RemoveSkillInput) (*RemoveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.DeleteSkill(input.Skill, input.All)
	})
	if err != nil {
		return nil, err
	}

	return &RemoveSkillOutput{Character: char}, nil
}

// AddTalent grants a talent, applying its permanent bonus if it carries one.
func (o *Orchestrator) AddTalent(ctx context.Context, input *AddTalentInput) (*AddTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.AddTalent(input.Talent)
	})
	if err != nil {
		return nil, err
	}

	return &AddTalentOutput{Character: char}, nil
}

// RemoveTalent removes a talent, reverting its permanent bonus.
func (o *Orchestrator) RemoveTalent(ctx context.Context, input *RemoveTalentInput) (*RemoveTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.DeleteTalent(input.Talent)
	})
	if err != nil {
		return nil, err
	}

	return &RemoveTalentOutput{Character: char}, nil
}

// ApplyCareer fetches a career from the catalog and appends it to the
// character's history. Entering a career is free; only advances cost
// experience.
func (o *Orchestrator) ApplyCareer(ctx context.Context, input *ApplyCareerInput) (*ApplyCareerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("careerName", input.CareerName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	careerOutput, err := o.careerRepo.Get(ctx, careerrepo.GetInput{Name: input.CareerName})
	if err != nil {
		return nil, err
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.AddCareer(*careerOutput.Career, input.Choices)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "applied career",
		"character_id", input.CharacterID,
		"career", input.CareerName,
	)

	return &ApplyCareerOutput{Character: char}, nil
}

// AdvanceAttribute buys one advance of the named attribute, debiting the
// experience ledger. Exactly one of Primary or Secondary must be set.
func (o *Orchestrator) AdvanceAttribute(ctx context.Context, input *AdvanceAttributeInput) (*AdvanceAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if (input.Primary == "") == (input.Secondary == "") {
		return nil, errors.InvalidArgument("exactly one of primary or secondary attribute is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		if input.Primary != "" {
			return c.AdvancePrimaryAttribute(input.Primary)
		}
		return c.AdvanceSecondaryAttribute(input.Secondary)
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceAttributeOutput{Character: char}, nil
}

// GrantExperience credits experience points to the character's ledger.
func (o *Orchestrator) GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *wjdr.Character) error {
		return c.GrantExperience(input.Points)
	})
	if err != nil {
		return nil, err
	}

	return &GrantExperienceOutput{Character: char}, nil
}

// mutate loads a character, applies the domain operation and persists the
// result. The domain layer rejects any mutation that would break an
// invariant, so an error here means nothing was written.
func (o *Orchestrator) mutate(ctx context.Context, characterID string, op func(*wjdr.Character) error) (*wjdr.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, err
	}

	char := output.Character
	if err := op(char); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return nil, err
	}

	return char, nil
}
