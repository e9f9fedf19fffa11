package wjdr

import (
	"fmt"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// Advancement step sizes and bounds
const (
	// PrimaryAttributeMax bounds both the base and advanced components of a
	// primary attribute.
	PrimaryAttributeMax = 100
	// PrimaryAdvanceStep is the granularity of primary attribute advances.
	PrimaryAdvanceStep = 5
	// AdvanceExperienceCost is the experience debited per advance.
	AdvanceExperienceCost = 100
)

// PrimaryAttribute is a base value plus an experience-purchased advance.
// The actual total is always derived, never stored.
type PrimaryAttribute struct {
	Base     int `json:"base"`
	Advanced int `json:"advanced"`
}

// Actual returns the effective attribute value.
func (a PrimaryAttribute) Actual() int {
	return a.Base + a.Advanced
}

// Bonus returns the attribute bonus, the tens digit of the actual value.
func (a PrimaryAttribute) Bonus() int {
	return a.Actual() / 10
}

func (a PrimaryAttribute) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateRange(field+".base", a.Base, 0, PrimaryAttributeMax, vb)
	errors.ValidateRange(field+".advanced", a.Advanced, 0, PrimaryAttributeMax, vb)
	errors.ValidateMultipleOf(field+".advanced", a.Advanced, PrimaryAdvanceStep, vb)
}

// SecondaryAttribute is a base value plus an experience-purchased advance,
// without the percentile bounds of primary attributes.
type SecondaryAttribute struct {
	Base     int `json:"base"`
	Advanced int `json:"advanced"`
}

// Actual returns the effective attribute value.
func (a SecondaryAttribute) Actual() int {
	return a.Base + a.Advanced
}

func (a SecondaryAttribute) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateMin(field+".base", a.Base, 0, vb)
	errors.ValidateMin(field+".advanced", a.Advanced, 0, vb)
}

// PrimaryAttributes is the fixed block of eight primary attributes.
type PrimaryAttributes struct {
	FightCapacity    PrimaryAttribute `json:"fight_capacity"`
	ShootingCapacity PrimaryAttribute `json:"shooting_capacity"`
	Strength         PrimaryAttribute `json:"strength"`
	Toughness        PrimaryAttribute `json:"toughness"`
	Agility          PrimaryAttribute `json:"agility"`
	Intelligence     PrimaryAttribute `json:"intelligence"`
	MentalStrength   PrimaryAttribute `json:"mental_strength"`
	Sociability      PrimaryAttribute `json:"sociability"`
}

// Get returns a pointer to the named attribute, or nil for an unknown name.
func (p *PrimaryAttributes) Get(name PrimaryAttributeName) *PrimaryAttribute {
	switch name {
	case PrimaryFightCapacity:
		return &p.FightCapacity
	case PrimaryShootingCapacity:
		return &p.ShootingCapacity
	case PrimaryStrength:
		return &p.Strength
	case PrimaryToughness:
		return &p.Toughness
	case PrimaryAgility:
		return &p.Agility
	case PrimaryIntelligence:
		return &p.Intelligence
	case PrimaryMentalStrength:
		return &p.MentalStrength
	case PrimarySociability:
		return &p.Sociability
	default:
		return nil
	}
}

// StrengthBonus returns the strength bonus used for damage and carrying.
func (p *PrimaryAttributes) StrengthBonus() int {
	return p.Strength.Bonus()
}

// ToughnessBonus returns the toughness bonus used for damage soak.
func (p *PrimaryAttributes) ToughnessBonus() int {
	return p.Toughness.Bonus()
}

func (p *PrimaryAttributes) validate(vb *errors.ValidationBuilder) {
	for _, name := range PrimaryAttributeNames() {
		p.Get(name).validate(fmt.Sprintf("primary_attributes.%s", name), vb)
	}
}

// SecondaryAttributes is the fixed block of four secondary attributes.
type SecondaryAttributes struct {
	Attack     SecondaryAttribute `json:"attack"`
	Wounds     SecondaryAttribute `json:"wounds"`
	MagicPoint SecondaryAttribute `json:"magic_point"`
	Movement   SecondaryAttribute `json:"movement"`
}

// Get returns a pointer to the named attribute, or nil for an unknown name.
func (s *SecondaryAttributes) Get(name SecondaryAttributeName) *SecondaryAttribute {
	switch name {
	case SecondaryAttack:
		return &s.Attack
	case SecondaryWounds:
		return &s.Wounds
	case SecondaryMagicPoint:
		return &s.MagicPoint
	case SecondaryMovement:
		return &s.Movement
	default:
		return nil
	}
}

func (s *SecondaryAttributes) validate(vb *errors.ValidationBuilder) {
	for _, name := range SecondaryAttributeNames() {
		s.Get(name).validate(fmt.Sprintf("secondary_attributes.%s", name), vb)
	}
}
