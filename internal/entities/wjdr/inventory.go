package wjdr

import (
	"fmt"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// Equipment is a carried item. Clutter is the abstract carrying-capacity
// load of a single unit.
type Equipment struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Clutter     int    `json:"clutter"`
	Quantity    int    `json:"quantity"`
}

func (e Equipment) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".name", e.Name, vb)
	errors.ValidateMin(field+".clutter", e.Clutter, 0, vb)
	errors.ValidateMin(field+".quantity", e.Quantity, 1, vb)
}

// Inventory is the character's carried equipment and purse.
type Inventory struct {
	Equipments []Equipment `json:"equipments,omitempty"`
	Money      Money       `json:"money"`
}

// TotalClutter returns the carried load, summing clutter times quantity over
// all equipment.
func (i *Inventory) TotalClutter() int {
	total := 0
	for _, e := range i.Equipments {
		total += e.Clutter * e.Quantity
	}
	return total
}

func (i *Inventory) validate(vb *errors.ValidationBuilder) {
	for idx, e := range i.Equipments {
		e.validate(fmt.Sprintf("inventory.equipments[%d]", idx), vb)
	}
	i.Money.validate("inventory.money", vb)
}
