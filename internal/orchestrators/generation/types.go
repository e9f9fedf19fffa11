package generation

import (
	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
)

// RollDiceInput defines the request for rolling an arbitrary dice expression.
type RollDiceInput struct {
	Expression string
}

// RollDiceOutput defines the response for rolling a dice expression.
type RollDiceOutput struct {
	// Expression is the canonical form of the parsed expression.
	Expression string
	Total      int
}

// RollAttributesInput defines the request for rolling a starting attribute
// block.
type RollAttributesInput struct {
	Race wjdr.Race
}

// RollAttributesOutput defines the response for rolling starting attributes.
type RollAttributesOutput struct {
	Primary   wjdr.PrimaryAttributes
	Secondary wjdr.SecondaryAttributes
}

// RollStartingMoneyInput defines the request for rolling a starting purse.
type RollStartingMoneyInput struct{}

// RollStartingMoneyOutput defines the response for rolling a starting purse.
type RollStartingMoneyOutput struct {
	Money wjdr.Money
}
