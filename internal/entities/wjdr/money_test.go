package wjdr_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
)

type MoneyTestSuite struct {
	suite.Suite
}

func TestMoneySuite(t *testing.T) {
	suite.Run(t, new(MoneyTestSuite))
}

func (s *MoneyTestSuite) TestNormalization() {
	testCases := []struct {
		name                       string
		gold, silver, copper       int
		wantGold, wantSilver, wantCopper int
	}{
		{"no coercion needed", 1, 19, 11, 1, 19, 11},
		{"copper to silver and gold", 1, 19, 20, 2, 0, 8},
		{"silver to gold", 1, 40, 0, 3, 0, 0},
		{"copper to silver", 0, 0, 50, 0, 4, 2},
		{"large copper to gold and silver", 0, 0, 300, 1, 5, 0},
		{"zero", 0, 0, 0, 0, 0, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, err := wjdr.NewMoney(tc.gold, tc.silver, tc.copper)
			s.Require().NoError(err)
			s.Assert().Equal(tc.wantGold, m.GoldenCrown)
			s.Assert().Equal(tc.wantSilver, m.SilverPistol)
			s.Assert().Equal(tc.wantCopper, m.CopperCoins)
			s.Assert().Less(m.CopperCoins, wjdr.CopperPerSilver)
			s.Assert().Less(m.SilverPistol, wjdr.SilverPerGold)

			// Normalization preserves the copper-equivalent value.
			s.Assert().Equal(tc.gold*240+tc.silver*12+tc.copper, m.Value())
		})
	}
}

func (s *MoneyTestSuite) TestNegativeDenominationsRejected() {
	_, err := wjdr.NewMoney(-1, 0, 0)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = wjdr.NewMoney(0, -5, -2)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "silver_pistol")
	s.Assert().Contains(err.Error(), "copper_coins")
}

func (s *MoneyTestSuite) TestAdd() {
	a, err := wjdr.NewMoney(0, 19, 11)
	s.Require().NoError(err)
	b, err := wjdr.NewMoney(0, 0, 1)
	s.Require().NoError(err)

	sum := a.Add(b)
	s.Assert().Equal(1, sum.GoldenCrown)
	s.Assert().Equal(0, sum.SilverPistol)
	s.Assert().Equal(0, sum.CopperCoins)

	// Commutative and associative on normalized values.
	c, err := wjdr.NewMoney(2, 3, 4)
	s.Require().NoError(err)
	s.Assert().Equal(a.Add(b), b.Add(a))
	s.Assert().Equal(a.Add(b).Add(c), a.Add(b.Add(c)))
}

func (s *MoneyTestSuite) TestSubtract() {
	a, err := wjdr.NewMoney(1, 0, 0)
	s.Require().NoError(err)
	b, err := wjdr.NewMoney(0, 19, 11)
	s.Require().NoError(err)

	diff, err := a.Subtract(b)
	s.Require().NoError(err)
	s.Assert().Equal(wjdr.Money{CopperCoins: 1}, diff)

	// Subtracting a value from itself yields zero.
	zero, err := a.Subtract(a)
	s.Require().NoError(err)
	s.Assert().True(zero.IsZero())
}

func (s *MoneyTestSuite) TestSubtractNegativeBalance() {
	a, err := wjdr.NewMoney(0, 0, 5)
	s.Require().NoError(err)
	b, err := wjdr.NewMoney(0, 1, 0)
	s.Require().NoError(err)

	_, err = a.Subtract(b)
	s.Require().Error(err)
	s.Assert().True(errors.IsNegativeBalance(err))
	s.Assert().Equal(7, errors.GetMeta(err)["shortfall_copper"])
}

func (s *MoneyTestSuite) TestNormalized() {
	s.Assert().True(wjdr.Money{}.Normalized())
	s.Assert().True(wjdr.Money{GoldenCrown: 3, SilverPistol: 19, CopperCoins: 11}.Normalized())
	s.Assert().False(wjdr.Money{CopperCoins: 12}.Normalized())
	s.Assert().False(wjdr.Money{SilverPistol: 20}.Normalized())
	s.Assert().False(wjdr.Money{SilverPistol: 45, CopperCoins: 300}.Normalized())
}

func (s *MoneyTestSuite) TestString() {
	m, err := wjdr.NewMoney(1, 5, 0)
	s.Require().NoError(err)
	s.Assert().Equal("1gc 5sp 0cc", m.String())
}
