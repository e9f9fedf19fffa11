package wjdr_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
	"github.com/oldworld/wjdr-api/internal/testutils"
)

type CharacterTestSuite struct {
	suite.Suite

	character *wjdr.Character
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.character = testutils.CreateTestCharacter("char-1")
}

// applyCareer puts the character in a careered state with generous
// experience, so advancement tests exercise the ceiling rather than
// the ledger.
func (s *CharacterTestSuite) applyCareer(career wjdr.Career) {
	s.Require().NoError(s.character.GrantExperience(career.ExperienceAmount()))
	s.Require().NoError(s.character.AddCareer(career, nil))
}

func (s *CharacterTestSuite) TestNewCharacterValid() {
	got, err := wjdr.NewCharacter(*s.character)
	s.Require().NoError(err)
	s.Assert().Equal(s.character.ID, got.ID)
}

func (s *CharacterTestSuite) TestNewCharacterReportsEveryViolation() {
	broken := *s.character
	broken.Gender = "GENDER_UNKNOWN"
	broken.MadnessPoints = -1
	broken.Experience = wjdr.Experience{Total: 0, Spent: 100}

	_, err := wjdr.NewCharacter(broken)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "gender")
	s.Assert().Contains(err.Error(), "madness_points")
	s.Assert().Contains(err.Error(), "experience.spent")
}

func (s *CharacterTestSuite) TestUncareeredAdvanceRejected() {
	// A funded ledger isolates the progression violation.
	s.Require().NoError(s.character.GrantExperience(100))

	err := s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidProgression(err))
	s.Assert().Equal(0, s.character.PrimaryAttributes.Strength.Advanced)
	s.Assert().Equal(0, s.character.Experience.Spent)
}

func (s *CharacterTestSuite) TestUncareeredNonZeroAdvanceInvalid() {
	broken := *s.character
	broken.PrimaryAttributes.Strength.Advanced = 5

	_, err := wjdr.NewCharacter(broken)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidProgression(err))
}

func (s *CharacterTestSuite) TestCareerCeiling() {
	career := testutils.CreateTestCareer("Soldat")
	career.PrimaryTargets[wjdr.PrimaryStrength] = 15
	s.applyCareer(career)
	s.Require().NoError(s.character.GrantExperience(400))

	// 5, 10, 15 are within the target.
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength))
	}
	s.Assert().Equal(15, s.character.PrimaryAttributes.Strength.Advanced)
	s.Assert().Equal(45, s.character.PrimaryAttributes.Strength.Actual())

	// 20 exceeds the target of 15; the committed state is untouched.
	err := s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength)
	s.Require().Error(err)
	s.Assert().True(errors.IsCareerCeilingExceeded(err))
	s.Assert().Equal(15, s.character.PrimaryAttributes.Strength.Advanced)
	s.Assert().Equal(300, s.character.Experience.Spent)
}

func (s *CharacterTestSuite) TestNewCareerSupersedesCeiling() {
	first := testutils.CreateTestCareer("Soldat")
	first.PrimaryTargets[wjdr.PrimaryStrength] = 5
	s.applyCareer(first)
	s.Require().NoError(s.character.GrantExperience(200))
	s.Require().NoError(s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength))

	err := s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength)
	s.Require().True(errors.IsCareerCeilingExceeded(err))

	// The most recent career's targets govern from now on.
	second := testutils.CreateTestCareer("Mercenaire")
	second.PrimaryTargets[wjdr.PrimaryStrength] = 20
	s.Require().NoError(s.character.AddCareer(second, nil))
	s.Require().NoError(s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength))
	s.Assert().Equal(10, s.character.PrimaryAttributes.Strength.Advanced)
}

func (s *CharacterTestSuite) TestAdvanceSecondaryAttribute() {
	s.applyCareer(testutils.CreateTestCareer("Soldat"))
	s.Require().NoError(s.character.GrantExperience(200))

	s.Require().NoError(s.character.AdvanceSecondaryAttribute(wjdr.SecondaryWounds))
	s.Require().NoError(s.character.AdvanceSecondaryAttribute(wjdr.SecondaryWounds))
	s.Assert().Equal(2, s.character.SecondaryAttributes.Wounds.Advanced)
	s.Assert().Equal(3, s.character.SecondaryAttributes.Wounds.Actual())

	err := s.character.AdvanceSecondaryAttribute(wjdr.SecondaryWounds)
	s.Require().True(errors.IsCareerCeilingExceeded(err))
	s.Assert().Equal(2, s.character.SecondaryAttributes.Wounds.Advanced)
}

func (s *CharacterTestSuite) TestAdvanceWithoutExperience() {
	s.Require().NoError(s.character.AddCareer(testutils.CreateTestCareer("Soldat"), nil))

	// Spending 100 against an empty ledger breaks the spent<=total invariant.
	err := s.character.AdvancePrimaryAttribute(wjdr.PrimaryStrength)
	s.Require().Error(err)
	s.Assert().Equal(0, s.character.Experience.Spent)
	s.Assert().Equal(0, s.character.PrimaryAttributes.Strength.Advanced)
}

func (s *CharacterTestSuite) TestAddSkillRepeatedCapsBonus() {
	skill := testutils.CreateTestSkill("Esquive")

	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Require().Len(s.character.Skills, 1)
	s.Assert().Equal(0, s.character.Skills[0].Bonus)

	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Require().Len(s.character.Skills, 1)
	s.Assert().Equal(10, s.character.Skills[0].Bonus)

	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Assert().Equal(20, s.character.Skills[0].Bonus)

	// Capped, not 30.
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Require().Len(s.character.Skills, 1)
	s.Assert().Equal(20, s.character.Skills[0].Bonus)
}

func (s *CharacterTestSuite) TestAddSkillDistinctSpecializations() {
	metier := testutils.CreateTestSkill("Métier")
	metier.Specialization = "forgeron"
	autre := testutils.CreateTestSkill("Métier")
	autre.Specialization = "brasseur"

	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: metier}))
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: autre}))
	s.Assert().Len(s.character.Skills, 2)
}

func (s *CharacterTestSuite) TestDeleteSkill() {
	skill := testutils.CreateTestSkill("Esquive")
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))

	// One step down.
	s.Require().NoError(s.character.DeleteSkill(skill, false))
	got, ok := s.character.FindSkill(skill)
	s.Require().True(ok)
	s.Assert().Equal(0, got.Bonus)

	// Bonus already 0: the entry goes away.
	s.Require().NoError(s.character.DeleteSkill(skill, false))
	_, ok = s.character.FindSkill(skill)
	s.Assert().False(ok)

	err := s.character.DeleteSkill(skill, false)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestDeleteSkillAll() {
	skill := testutils.CreateTestSkill("Esquive")
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))

	s.Require().NoError(s.character.DeleteSkill(skill, true))
	s.Assert().Empty(s.character.Skills)
}

func (s *CharacterTestSuite) TestAddTalentIdempotent() {
	talent := testutils.CreateTestTalent("Sang-froid")

	s.Require().NoError(s.character.AddTalent(talent))
	s.Require().NoError(s.character.AddTalent(talent))
	s.Assert().Len(s.character.Talents, 1)
	s.Assert().True(s.character.HasTalent(talent))
}

func (s *CharacterTestSuite) TestTalentPermanentBonus() {
	talent := wjdr.Talent{
		Name: "Costaud",
		PermanentBonus: &wjdr.PermanentBonus{
			Attribute: wjdr.PrimaryStrength,
			Amount:    5,
		},
	}

	s.Require().NoError(s.character.AddTalent(talent))
	s.Assert().Equal(35, s.character.PrimaryAttributes.Strength.Base)

	s.Require().NoError(s.character.DeleteTalent(talent))
	s.Assert().Equal(30, s.character.PrimaryAttributes.Strength.Base)
	s.Assert().False(s.character.HasTalent(talent))
}

func (s *CharacterTestSuite) TestDeleteTalentNotFound() {
	err := s.character.DeleteTalent(testutils.CreateTestTalent("Sang-froid"))
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestAddCareerGrantsBasicSlots() {
	career := testutils.CreateTestCareer("Soldat")
	s.applyCareer(career)

	_, ok := s.character.FindSkill(testutils.CreateTestSkill("Esquive"))
	s.Assert().True(ok)
	s.Assert().True(s.character.HasTalent(testutils.CreateTestTalent("Sang-froid")))
}

func (s *CharacterTestSuite) TestAddCareerAdvancedGrantsNothing() {
	career := testutils.CreateTestCareer("Champion")
	career.Basic = false
	s.Require().NoError(s.character.AddCareer(career, nil))

	s.Assert().Empty(s.character.Skills)
	s.Assert().Empty(s.character.Talents)
	s.Require().NotNil(s.character.CurrentCareer())
	s.Assert().Equal("Champion", s.character.CurrentCareer().Name)
}

func (s *CharacterTestSuite) TestAddCareerChoices() {
	escalade := testutils.CreateTestSkill("Escalade")
	natation := testutils.CreateTestSkill("Natation")

	career := testutils.CreateTestCareer("Contrebandier")
	career.Skills = []wjdr.SkillSlot{wjdr.OneOfSkills(escalade, natation)}
	career.Talents = nil

	choices := &wjdr.CareerChoices{Skills: map[int]int{0: 1}}
	s.Require().NoError(s.character.AddCareer(career, choices))

	_, ok := s.character.FindSkill(natation)
	s.Assert().True(ok)
	_, ok = s.character.FindSkill(escalade)
	s.Assert().False(ok)
}

func (s *CharacterTestSuite) TestAddCareerChoiceOutOfRange() {
	career := testutils.CreateTestCareer("Contrebandier")
	choices := &wjdr.CareerChoices{Skills: map[int]int{0: 3}}

	err := s.character.AddCareer(career, choices)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Empty(s.character.Careers)
}

func (s *CharacterTestSuite) TestAddCareerInvalidPlanRejected() {
	career := testutils.CreateTestCareer("Soldat")
	delete(career.PrimaryTargets, wjdr.PrimaryAgility)

	err := s.character.AddCareer(career, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsIncompleteCareerPlan(err))
	s.Assert().Empty(s.character.Careers)
}

func (s *CharacterTestSuite) TestUnknownAttributeNameRejected() {
	before := *s.character

	err := s.character.SetPrimaryAttribute("charisma", wjdr.PrimaryAttribute{Base: 30})
	s.Require().True(errors.IsInvalidArgument(err))

	err = s.character.SetSecondaryAttribute("fate", wjdr.SecondaryAttribute{Base: 1})
	s.Require().True(errors.IsInvalidArgument(err))

	err = s.character.AdvanceSecondaryAttribute("fate")
	s.Require().True(errors.IsInvalidArgument(err))

	s.Assert().Equal(before.PrimaryAttributes, s.character.PrimaryAttributes)
	s.Assert().Equal(before.SecondaryAttributes, s.character.SecondaryAttributes)
}

func (s *CharacterTestSuite) TestDenormalizedPurseRejected() {
	broken := *s.character
	broken.Inventory.Money = wjdr.Money{SilverPistol: 45, CopperCoins: 300}

	_, err := wjdr.NewCharacter(broken)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "inventory.money")
	s.Assert().Contains(err.Error(), "normalized")
}

func (s *CharacterTestSuite) TestMoneyReceiveAndPay() {
	s.Require().NoError(s.character.Receive(wjdr.Money{SilverPistol: 5}))
	s.Require().NoError(s.character.Pay(wjdr.Money{CopperCoins: 12}))
	s.Assert().Equal("0gc 4sp 0cc", s.character.Inventory.Money.String())

	err := s.character.Pay(wjdr.Money{GoldenCrown: 1})
	s.Require().Error(err)
	s.Assert().True(errors.IsNegativeBalance(err))
	s.Assert().Equal("0gc 4sp 0cc", s.character.Inventory.Money.String())
}

func (s *CharacterTestSuite) TestClutter() {
	// Strength 30 actual, human carry modifier 10.
	s.Assert().Equal(300, s.character.MaxClutter())
	s.Assert().False(s.character.IsCluttered())

	s.Require().NoError(s.character.AddEquipment(wjdr.Equipment{
		Name:     "Enclume",
		Clutter:  301,
		Quantity: 1,
	}))
	s.Assert().True(s.character.IsCluttered())
}

func (s *CharacterTestSuite) TestRemoveEquipment() {
	s.Require().NoError(s.character.AddEquipment(wjdr.Equipment{
		Name:     "Corde",
		Clutter:  5,
		Quantity: 1,
	}))
	s.Require().NoError(s.character.RemoveEquipment("Corde"))
	s.Assert().Empty(s.character.Inventory.Equipments)

	err := s.character.RemoveEquipment("Corde")
	s.Require().True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestSpendExperience() {
	s.Require().NoError(s.character.GrantExperience(250))
	s.Require().NoError(s.character.SpendExperience(200))
	s.Assert().Equal(50, s.character.Experience.Available())

	// Spending past the balance breaks the ledger invariant.
	err := s.character.SpendExperience(100)
	s.Require().Error(err)
	s.Assert().Equal(200, s.character.Experience.Spent)
}

func (s *CharacterTestSuite) TestSpendExperienceOffStep() {
	s.Require().NoError(s.character.GrantExperience(300))
	err := s.character.SpendExperience(150)
	s.Require().Error(err)
	s.Assert().Equal(0, s.character.Experience.Spent)
}

func (s *CharacterTestSuite) TestFailedMutationPreservesState() {
	skill := testutils.CreateTestSkill("Esquive")
	s.Require().NoError(s.character.AddSkill(wjdr.CharacterSkill{Skill: skill}))
	before := *s.character

	err := s.character.SetPrimaryAttribute(wjdr.PrimaryStrength, wjdr.PrimaryAttribute{Base: 150})
	s.Require().Error(err)
	s.Assert().Equal(before.PrimaryAttributes, s.character.PrimaryAttributes)
	s.Assert().Equal(before.Skills, s.character.Skills)
}
