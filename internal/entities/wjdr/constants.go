// Package wjdr implements the WFRP character sheet entities and the rule
// engine that keeps them mutually consistent: attribute ceilings imposed by
// career history, currency normalization, skill-bonus stacking, and career
// plan completeness.
package wjdr

// PrimaryAttributeName identifies one of the eight primary attributes.
type PrimaryAttributeName string

// Primary attribute names
const (
	PrimaryFightCapacity    PrimaryAttributeName = "fight_capacity"
	PrimaryShootingCapacity PrimaryAttributeName = "shooting_capacity"
	PrimaryStrength         PrimaryAttributeName = "strength"
	PrimaryToughness        PrimaryAttributeName = "toughness"
	PrimaryAgility          PrimaryAttributeName = "agility"
	PrimaryIntelligence     PrimaryAttributeName = "intelligence"
	PrimaryMentalStrength   PrimaryAttributeName = "mental_strength"
	PrimarySociability      PrimaryAttributeName = "sociability"
)

// SecondaryAttributeName identifies one of the four secondary attributes.
type SecondaryAttributeName string

// Secondary attribute names
const (
	SecondaryAttack     SecondaryAttributeName = "attack"
	SecondaryWounds     SecondaryAttributeName = "wounds"
	SecondaryMagicPoint SecondaryAttributeName = "magic_point"
	SecondaryMovement   SecondaryAttributeName = "movement"
)

// PrimaryAttributeNames returns the eight primary attribute names in their
// canonical order. Every career plan must cover all of them.
func PrimaryAttributeNames() []PrimaryAttributeName {
	return []PrimaryAttributeName{
		PrimaryFightCapacity,
		PrimaryShootingCapacity,
		PrimaryStrength,
		PrimaryToughness,
		PrimaryAgility,
		PrimaryIntelligence,
		PrimaryMentalStrength,
		PrimarySociability,
	}
}

// SecondaryAttributeNames returns the four secondary attribute names in their
// canonical order.
func SecondaryAttributeNames() []SecondaryAttributeName {
	return []SecondaryAttributeName{
		SecondaryAttack,
		SecondaryWounds,
		SecondaryMagicPoint,
		SecondaryMovement,
	}
}

// Gender is the closed gender enumeration.
type Gender string

// Gender constants
const (
	GenderMale   Gender = "GENDER_MALE"
	GenderFemale Gender = "GENDER_FEMALE"
)

// Race is the closed race enumeration.
type Race string

// Race constants
const (
	RaceElf      Race = "RACE_ELF"
	RaceDwarf    Race = "RACE_DWARF"
	RaceHuman    Race = "RACE_HUMAN"
	RaceHalfling Race = "RACE_HALFLING"
)

// Races returns the closed race enumeration.
func Races() []Race {
	return []Race{RaceElf, RaceDwarf, RaceHuman, RaceHalfling}
}

// Genders returns the closed gender enumeration.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// raceCarryModifiers maps each race to its carrying-capacity multiplier.
var raceCarryModifiers = map[Race]int{
	RaceElf:      10,
	RaceDwarf:    20,
	RaceHuman:    10,
	RaceHalfling: 10,
}

// CarryModifier returns the carrying-capacity multiplier for a race, or 0
// for an unknown race.
func CarryModifier(race Race) int {
	return raceCarryModifiers[race]
}

// ValidGender reports whether g is part of the closed enumeration.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidRace reports whether r is part of the closed enumeration.
func ValidRace(r Race) bool {
	_, ok := raceCarryModifiers[r]
	return ok
}

// ValidPrimaryAttributeName reports whether name is one of the eight keys.
func ValidPrimaryAttributeName(name PrimaryAttributeName) bool {
	for _, n := range PrimaryAttributeNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ValidSecondaryAttributeName reports whether name is one of the four keys.
func ValidSecondaryAttributeName(name SecondaryAttributeName) bool {
	for _, n := range SecondaryAttributeNames() {
		if n == name {
			return true
		}
	}
	return false
}

// EyeColors returns the closed list of eye colors from the rulebook tables.
func EyeColors() []string {
	return []string{
		"Gris-bleu", "Bleu", "Vert", "Cuivre", "Marron clair", "Marron",
		"Marron foncé", "Argent", "Mauve", "Noir", "Noisette",
	}
}

// HairColors returns the closed list of hair colors from the rulebook tables.
func HairColors() []string {
	return []string{
		"Argenté", "Blond cendré", "Paille", "Blond", "Auburn",
		"Châtain clair", "Châtain", "Brun", "Noir", "Roux", "Bleu foncé",
	}
}

// AstralSigns returns the closed list of astral signs from the rulebook tables.
func AstralSigns() []string {
	return []string{
		"Wymund l'Anachorète", "La Grande Croix", "Le Trait du Peintre",
		"Gnutus le Buffle", "Dragomas le Dragon", "Le Crépuscule",
		"Le Fourreau de Grungni", "Mammit le Sage", "Mummit le Fou",
		"Les Deux Boeufs", "Le Danseur", "Le Tambour", "Le Flûtiste",
		"Vobist le Pâle", "La Charrette Brisée", "La Chèvre Sauvage",
		"Le Chaudron de Rhya", "Cackelfax le Coq", "Le Grimoire",
		"L'Étoile du Sorcier",
	}
}
