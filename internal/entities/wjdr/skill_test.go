package wjdr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/testutils"
)

func TestSkillEquality(t *testing.T) {
	base := testutils.CreateTestSkill("Esquive")

	t.Run("bonus never participates in identity", func(t *testing.T) {
		a := wjdr.CharacterSkill{Skill: base, Bonus: 0}
		b := wjdr.CharacterSkill{Skill: base, Bonus: 20}
		assert.True(t, a.Skill.Equal(b.Skill))
	})

	t.Run("description never participates in identity", func(t *testing.T) {
		other := base
		other.Description = "different display text"
		assert.True(t, base.Equal(other))
	})

	t.Run("name, basic flag and attribute participate", func(t *testing.T) {
		other := base
		other.Name = "Dissimulation"
		assert.False(t, base.Equal(other))

		other = base
		other.Basic = false
		assert.False(t, base.Equal(other))

		other = base
		other.Attribute = wjdr.PrimaryIntelligence
		assert.False(t, base.Equal(other))
	})

	t.Run("talent list participates", func(t *testing.T) {
		other := base
		other.Talents = []wjdr.Talent{testutils.CreateTestTalent("Acrobatie")}
		assert.False(t, base.Equal(other))

		same := base
		same.Talents = append([]wjdr.Talent(nil), other.Talents...)
		assert.True(t, other.Equal(same))
	})
}

func TestSpecializedSkillEquality(t *testing.T) {
	base := testutils.CreateTestSkill("Métier")
	smith := base
	smith.Specialization = "Forgeron"
	brewer := base
	brewer.Specialization = "Brasseur"

	assert.True(t, smith.Specialized())
	assert.False(t, base.Specialized())

	// Specialization refines identity: same base fields, different
	// specializations are different skills.
	assert.False(t, smith.Equal(brewer))
	assert.False(t, smith.Equal(base))
	assert.True(t, smith.Equal(smith))
}

func TestTalentEquality(t *testing.T) {
	a := testutils.CreateTestTalent("Sang-froid")
	b := testutils.CreateTestTalent("Sang-froid")
	assert.True(t, a.Equal(b))

	b.Specialization = "Combat"
	assert.False(t, a.Equal(b))

	c := testutils.CreateTestTalent("Sang-froid")
	c.PermanentBonus = &wjdr.PermanentBonus{Attribute: wjdr.PrimaryStrength, Amount: 5}
	assert.False(t, a.Equal(c))

	d := testutils.CreateTestTalent("Sang-froid")
	d.PermanentBonus = &wjdr.PermanentBonus{Attribute: wjdr.PrimaryStrength, Amount: 5}
	assert.True(t, c.Equal(d))
}
