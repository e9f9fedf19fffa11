// Package generation implements the character generation orchestrator:
// dice-driven starting attributes and purses.
package generation

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	"github.com/oldworld/wjdr-api/internal/pkg/dice"
)

const (
	// primaryAttributeExpression is the roll behind every starting primary
	// attribute.
	primaryAttributeExpression = "2d10+20"

	// startingWoundsExpression and startingMoneyExpression seed secondary
	// attributes and the purse of career-less characters.
	startingWoundsExpression = "1d10"
	startingMoneyExpression  = "1d10"
)

// raceMovement is the fixed starting movement per race.
var raceMovement = map[wjdr.Race]int{
	wjdr.RaceHuman:    4,
	wjdr.RaceElf:      5,
	wjdr.RaceDwarf:    3,
	wjdr.RaceHalfling: 4,
}

// Config holds the dependencies for the generation orchestrator.
type Config struct {
	// Rand is the randomness source behind every roll. Inject a seeded
	// source for reproducible generation.
	Rand *rand.Rand
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rand == nil {
		vb.RequiredField("Rand")
	}

	return vb.Build()
}

// Orchestrator rolls starting characters.
type Orchestrator struct {
	rand *rand.Rand
}

// New creates a new generation orchestrator.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{rand: cfg.Rand}, nil
}

// RollDice parses and rolls an arbitrary dice expression.
func (o *Orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pool, err := dice.Parse(input.Expression)
	if err != nil {
		return nil, err
	}

	total := pool.RollWith(o.rand)
	slog.DebugContext(ctx, "rolled dice",
		"expression", pool.String(),
		"total", total,
	)

	return &RollDiceOutput{
		Expression: pool.String(),
		Total:      total,
	}, nil
}

// RollAttributes rolls a starting attribute block: 2d10+20 for every primary
// attribute, plus race-seeded secondary attributes.
func (o *Orchestrator) RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !wjdr.ValidRace(input.Race) {
		return nil, errors.InvalidArgumentf("unknown race %q", input.Race)
	}

	primaryPool, err := dice.Parse(primaryAttributeExpression)
	if err != nil {
		return nil, errors.Wrap(err, "primary attribute pool")
	}
	woundsPool, err := dice.Parse(startingWoundsExpression)
	if err != nil {
		return nil, errors.Wrap(err, "starting wounds pool")
	}

	output := &RollAttributesOutput{}
	for _, name := range wjdr.PrimaryAttributeNames() {
		output.Primary.Get(name).Base = primaryPool.RollWith(o.rand)
	}

	output.Secondary.Attack.Base = 1
	output.Secondary.Wounds.Base = woundsPool.RollWith(o.rand)
	output.Secondary.Movement.Base = raceMovement[input.Race]

	slog.DebugContext(ctx, "rolled starting attributes", "race", input.Race)

	return output, nil
}

// RollStartingMoney rolls the purse of a career-less character: 1d10 golden
// crowns.
func (o *Orchestrator) RollStartingMoney(ctx context.Context, input *RollStartingMoneyInput) (*RollStartingMoneyOutput, error) {
	pool, err := dice.Parse(startingMoneyExpression)
	if err != nil {
		return nil, errors.Wrap(err, "starting money pool")
	}

	money, err := wjdr.NewMoney(pool.RollWith(o.rand), 0, 0)
	if err != nil {
		return nil, err
	}

	return &RollStartingMoneyOutput{Money: money}, nil
}
