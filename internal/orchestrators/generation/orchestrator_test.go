package generation_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	"github.com/oldworld/wjdr-api/internal/orchestrators/generation"
)

type GenerationTestSuite struct {
	suite.Suite

	orchestrator *generation.Orchestrator
	ctx          context.Context
}

func TestGenerationSuite(t *testing.T) {
	suite.Run(t, new(GenerationTestSuite))
}

func (s *GenerationTestSuite) SetupTest() {
	orchestrator, err := generation.New(&generation.Config{
		Rand: rand.New(rand.NewSource(42)),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
	s.ctx = context.Background()
}

func (s *GenerationTestSuite) TestNewRequiresRand() {
	_, err := generation.New(&generation.Config{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Rand")
}

func (s *GenerationTestSuite) TestRollDice() {
	output, err := s.orchestrator.RollDice(s.ctx, &generation.RollDiceInput{Expression: "2d10+20"})
	s.Require().NoError(err)
	s.Assert().Equal("2d10+20", output.Expression)
	s.Assert().GreaterOrEqual(output.Total, 22)
	s.Assert().LessOrEqual(output.Total, 40)
}

func (s *GenerationTestSuite) TestRollDiceInvalidExpression() {
	_, err := s.orchestrator.RollDice(s.ctx, &generation.RollDiceInput{Expression: "deux dés"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidExpression(err))
}

func (s *GenerationTestSuite) TestRollAttributes() {
	output, err := s.orchestrator.RollAttributes(s.ctx, &generation.RollAttributesInput{Race: wjdr.RaceElf})
	s.Require().NoError(err)

	for _, name := range wjdr.PrimaryAttributeNames() {
		base := output.Primary.Get(name).Base
		s.Assert().GreaterOrEqual(base, 22, "attribute %s", name)
		s.Assert().LessOrEqual(base, 40, "attribute %s", name)
		s.Assert().Equal(0, output.Primary.Get(name).Advanced)
	}

	s.Assert().Equal(1, output.Secondary.Attack.Base)
	s.Assert().GreaterOrEqual(output.Secondary.Wounds.Base, 1)
	s.Assert().LessOrEqual(output.Secondary.Wounds.Base, 10)
	s.Assert().Equal(5, output.Secondary.Movement.Base)
	s.Assert().Equal(0, output.Secondary.MagicPoint.Base)
}

func (s *GenerationTestSuite) TestRollAttributesUnknownRace() {
	_, err := s.orchestrator.RollAttributes(s.ctx, &generation.RollAttributesInput{Race: "RACE_OGRE"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GenerationTestSuite) TestRollAttributesFeedsValidCharacter() {
	rolled, err := s.orchestrator.RollAttributes(s.ctx, &generation.RollAttributesInput{Race: wjdr.RaceHuman})
	s.Require().NoError(err)

	_, err = wjdr.NewCharacter(wjdr.Character{
		ID:                  "char-1",
		Name:                "Else Sigisdottir",
		Gender:              wjdr.GenderFemale,
		Race:                wjdr.RaceHuman,
		PrimaryAttributes:   rolled.Primary,
		SecondaryAttributes: rolled.Secondary,
	})
	s.Assert().NoError(err)
}

func (s *GenerationTestSuite) TestRollStartingMoney() {
	output, err := s.orchestrator.RollStartingMoney(s.ctx, &generation.RollStartingMoneyInput{})
	s.Require().NoError(err)
	s.Assert().GreaterOrEqual(output.Money.GoldenCrown, 1)
	s.Assert().LessOrEqual(output.Money.GoldenCrown, 10)
	s.Assert().Equal(0, output.Money.SilverPistol)
	s.Assert().Equal(0, output.Money.CopperCoins)
}

func (s *GenerationTestSuite) TestReproducibleWithSameSeed() {
	other, err := generation.New(&generation.Config{Rand: rand.New(rand.NewSource(42))})
	s.Require().NoError(err)

	a, err := s.orchestrator.RollAttributes(s.ctx, &generation.RollAttributesInput{Race: wjdr.RaceDwarf})
	s.Require().NoError(err)
	b, err := other.RollAttributes(s.ctx, &generation.RollAttributesInput{Race: wjdr.RaceDwarf})
	s.Require().NoError(err)

	s.Assert().Equal(a.Primary, b.Primary)
	s.Assert().Equal(a.Secondary, b.Secondary)
}
