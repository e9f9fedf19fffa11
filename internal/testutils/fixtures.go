// Package testutils provides utilities for testing, including Redis test
// helpers and domain fixtures.
package testutils

import (
	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
)

// Fixture identifiers
const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Gotrek Fils-de-Personne"
)

// CreateTestSkill creates a basic agility skill with sensible defaults.
func CreateTestSkill(name string) wjdr.Skill {
	return wjdr.Skill{
		Name:        name,
		Basic:       true,
		Description: "test skill",
		Attribute:   wjdr.PrimaryAgility,
	}
}

// CreateTestTalent creates a talent with sensible defaults.
func CreateTestTalent(name string) wjdr.Talent {
	return wjdr.Talent{
		Name:        name,
		Description: "test talent",
	}
}

// CreateTestCareer creates a complete basic career whose every primary
// target is 10 and every secondary target is 2, with one fixed skill slot
// and one fixed talent slot.
func CreateTestCareer(name string) wjdr.Career {
	primary := make(map[wjdr.PrimaryAttributeName]int, 8)
	for _, n := range wjdr.PrimaryAttributeNames() {
		primary[n] = 10
	}
	secondary := make(map[wjdr.SecondaryAttributeName]int, 4)
	for _, n := range wjdr.SecondaryAttributeNames() {
		secondary[n] = 2
	}
	return wjdr.Career{
		Name:             name,
		Basic:            true,
		PrimaryTargets:   primary,
		SecondaryTargets: secondary,
		Skills:           []wjdr.SkillSlot{wjdr.FixedSkill(CreateTestSkill("Esquive"))},
		Talents:          []wjdr.TalentSlot{wjdr.FixedTalent(CreateTestTalent("Sang-froid"))},
		StartingMoney:    wjdr.Money{SilverPistol: 10},
	}
}

// CreateTestCharacter creates a valid uncareered human character with all
// primary bases at 30 and secondary bases at 1.
func CreateTestCharacter(id string) *wjdr.Character {
	character := wjdr.Character{
		ID:     id,
		Name:   TestCharacterName,
		Gender: wjdr.GenderMale,
		Race:   wjdr.RaceHuman,
	}
	for _, n := range wjdr.PrimaryAttributeNames() {
		character.PrimaryAttributes.Get(n).Base = 30
	}
	for _, n := range wjdr.SecondaryAttributeNames() {
		character.SecondaryAttributes.Get(n).Base = 1
	}
	return &character
}
