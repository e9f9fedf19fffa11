package wjdr

// PermanentBonus is a flat attribute increase a talent confers for as long
// as the character has the talent.
type PermanentBonus struct {
	Attribute PrimaryAttributeName `json:"attribute"`
	Amount    int                  `json:"amount"`
}

// Talent is an identity-bearing domain value. A specialized talent carries a
// non-empty Specialization that further refines its identity.
type Talent struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Specialization string          `json:"specialization,omitempty"`
	PermanentBonus *PermanentBonus `json:"permanent_bonus,omitempty"`
}

// Specialized reports whether the talent is the specialized variant.
func (t Talent) Specialized() bool {
	return t.Specialization != ""
}

// Equal is the value-equality contract for talents: every field participates
// in identity, including the specialization of the specialized variant.
func (t Talent) Equal(other Talent) bool {
	if t.Name != other.Name || t.Description != other.Description || t.Specialization != other.Specialization {
		return false
	}
	if (t.PermanentBonus == nil) != (other.PermanentBonus == nil) {
		return false
	}
	if t.PermanentBonus != nil && *t.PermanentBonus != *other.PermanentBonus {
		return false
	}
	return true
}

func talentListsEqual(a, b []Talent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
