package wjdr_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	"github.com/oldworld/wjdr-api/internal/testutils"
)

type CareerTestSuite struct {
	suite.Suite
}

func TestCareerSuite(t *testing.T) {
	suite.Run(t, new(CareerTestSuite))
}

func (s *CareerTestSuite) TestNewCareerComplete() {
	career, err := wjdr.NewCareer(testutils.CreateTestCareer("Soldat"))
	s.Require().NoError(err)
	s.Assert().Equal("Soldat", career.Name)
}

func (s *CareerTestSuite) TestNewCareerZeroTargetsAcceptable() {
	// Completeness is about key presence, not values: explicit zero targets
	// are a valid plan.
	career := testutils.CreateTestCareer("Mendiant")
	career.PrimaryTargets[wjdr.PrimarySociability] = 0
	career.SecondaryTargets[wjdr.SecondaryMagicPoint] = 0

	_, err := wjdr.NewCareer(career)
	s.Assert().NoError(err)
}

func (s *CareerTestSuite) TestNewCareerIncompletePlan() {
	career := testutils.CreateTestCareer("Soldat")
	delete(career.PrimaryTargets, wjdr.PrimaryAgility)
	delete(career.PrimaryTargets, wjdr.PrimaryStrength)
	delete(career.SecondaryTargets, wjdr.SecondaryWounds)

	_, err := wjdr.NewCareer(career)
	s.Require().Error(err)
	s.Assert().True(errors.IsIncompleteCareerPlan(err))

	// Every missing key is reported, not just the first.
	s.Assert().Contains(err.Error(), "primary_targets.agility")
	s.Assert().Contains(err.Error(), "primary_targets.strength")
	s.Assert().Contains(err.Error(), "secondary_targets.wounds")
}

func (s *CareerTestSuite) TestNewCareerEmptySlot() {
	career := testutils.CreateTestCareer("Soldat")
	career.Skills = append(career.Skills, wjdr.OneOfSkills())

	_, err := wjdr.NewCareer(career)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "skills[1]")
}

func (s *CareerTestSuite) TestExperienceAmount() {
	primary := make(map[wjdr.PrimaryAttributeName]int, 8)
	for _, n := range wjdr.PrimaryAttributeNames() {
		primary[n] = 0
	}
	primary[wjdr.PrimaryStrength] = 10  // 200
	primary[wjdr.PrimaryToughness] = 5  // 100
	secondary := make(map[wjdr.SecondaryAttributeName]int, 4)
	for _, n := range wjdr.SecondaryAttributeNames() {
		secondary[n] = 0
	}
	secondary[wjdr.SecondaryWounds] = 6 // 600

	career := wjdr.Career{
		Name:             "Mercenaire",
		Basic:            false,
		PrimaryTargets:   primary,
		SecondaryTargets: secondary,
		Skills:           []wjdr.SkillSlot{wjdr.FixedSkill(testutils.CreateTestSkill("Esquive"))},
		Talents:          []wjdr.TalentSlot{wjdr.FixedTalent(testutils.CreateTestTalent("Sang-froid"))},
	}

	// 200 + 100 + 600 + 100x(1 skill slot + 1 talent slot) = 1100.
	s.Assert().Equal(1100, career.ExperienceAmount())

	// Basic careers do not charge for slots.
	career.Basic = true
	s.Assert().Equal(900, career.ExperienceAmount())
}

func (s *CareerTestSuite) TestSlotResolution() {
	esquive := testutils.CreateTestSkill("Esquive")
	conduite := testutils.CreateTestSkill("Conduite d'attelages")

	fixed := wjdr.FixedSkill(esquive)
	s.Assert().True(fixed.Fixed())
	got, err := fixed.Resolve(0)
	s.Require().NoError(err)
	s.Assert().True(got.Equal(esquive))

	choice := wjdr.OneOfSkills(esquive, conduite)
	s.Assert().False(choice.Fixed())

	got, err = choice.Resolve(1)
	s.Require().NoError(err)
	s.Assert().True(got.Equal(conduite))

	_, err = choice.Resolve(2)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = choice.Resolve(-1)
	s.Assert().Error(err)
}
