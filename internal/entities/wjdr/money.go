package wjdr

import (
	"fmt"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// Exchange rule: 12 copper coins make a silver pistol, 20 silver pistols
// make a golden crown.
const (
	CopperPerSilver = 12
	SilverPerGold   = 20
	CopperPerGold   = CopperPerSilver * SilverPerGold
)

// Money is a three-denomination currency value. A Money built through
// NewMoney or produced by Add/Subtract is always normalized: fewer than 12
// copper coins and fewer than 20 silver pistols, with overflow carried
// upward.
type Money struct {
	GoldenCrown  int `json:"golden_crown"`
	SilverPistol int `json:"silver_pistol"`
	CopperCoins  int `json:"copper_coins"`
}

// NewMoney builds a normalized Money from non-negative denomination counts.
func NewMoney(goldenCrown, silverPistol, copperCoins int) (Money, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("golden_crown", goldenCrown, 0, vb)
	errors.ValidateMin("silver_pistol", silverPistol, 0, vb)
	errors.ValidateMin("copper_coins", copperCoins, 0, vb)
	if err := vb.Build(); err != nil {
		return Money{}, err
	}

	return fromCopper(goldenCrown*CopperPerGold + silverPistol*CopperPerSilver + copperCoins), nil
}

// fromCopper re-expresses a copper-equivalent total in the three
// denominations.
func fromCopper(total int) Money {
	return Money{
		GoldenCrown:  total / CopperPerGold,
		SilverPistol: (total % CopperPerGold) / CopperPerSilver,
		CopperCoins:  total % CopperPerSilver,
	}
}

// Value returns the copper-equivalent total.
func (m Money) Value() int {
	return m.GoldenCrown*CopperPerGold + m.SilverPistol*CopperPerSilver + m.CopperCoins
}

// Add returns the normalized componentwise sum. It never fails.
func (m Money) Add(other Money) Money {
	return fromCopper(m.Value() + other.Value())
}

// Subtract returns the normalized difference. It fails with NEGATIVE_BALANCE
// when m is worth less than other.
func (m Money) Subtract(other Money) (Money, error) {
	rem := m.Value() - other.Value()
	if rem < 0 {
		return Money{}, errors.NegativeBalancef(
			"cannot subtract %s from %s: short %d copper coins", other, m, -rem).
			WithMeta("shortfall_copper", -rem)
	}
	return fromCopper(rem), nil
}

// IsZero reports whether the value is worth nothing.
func (m Money) IsZero() bool {
	return m.Value() == 0
}

// Normalized reports whether the value carries no overflow in the lower
// denominations.
func (m Money) Normalized() bool {
	return m.CopperCoins < CopperPerSilver && m.SilverPistol < SilverPerGold
}

func (m Money) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateMin(field+".golden_crown", m.GoldenCrown, 0, vb)
	errors.ValidateMin(field+".silver_pistol", m.SilverPistol, 0, vb)
	errors.ValidateMin(field+".copper_coins", m.CopperCoins, 0, vb)
	if !m.Normalized() {
		vb.Fieldf(field, "must be normalized: fewer than %d copper coins and %d silver pistols, got %s",
			CopperPerSilver, SilverPerGold, m)
	}
}

// String renders the value as "Xgc Ysp Zcc".
func (m Money) String() string {
	return fmt.Sprintf("%dgc %dsp %dcc", m.GoldenCrown, m.SilverPistol, m.CopperCoins)
}
