package wjdr

import (
	"github.com/oldworld/wjdr-api/internal/errors"
)

// DetailedInformation is the optional descriptive block of a character
// sheet. Zero values mean the detail was not filled in; bounds are only
// checked on filled-in values.
type DetailedInformation struct {
	Age              int      `json:"age,omitempty"`
	EyeColor         string   `json:"eye_color,omitempty"`
	HairColor        string   `json:"hair_color,omitempty"`
	AstralSign       string   `json:"astral_sign,omitempty"`
	BirthPlace       string   `json:"birth_place,omitempty"`
	Height           float64  `json:"height,omitempty"`
	Weight           float64  `json:"weight,omitempty"`
	SiblingNumber    int      `json:"sibling_number,omitempty"`
	DistinctiveSigns []string `json:"distinctive_signs,omitempty"`
	ChaosMutations   []string `json:"chaos_mutations,omitempty"`
}

func (d DetailedInformation) validate(vb *errors.ValidationBuilder) {
	if d.Age != 0 {
		errors.ValidateRange("details.age", d.Age, 1, 200, vb)
	}
	if d.EyeColor != "" {
		errors.ValidateEnum("details.eye_color", d.EyeColor, EyeColors(), vb)
	}
	if d.HairColor != "" {
		errors.ValidateEnum("details.hair_color", d.HairColor, HairColors(), vb)
	}
	if d.AstralSign != "" {
		errors.ValidateEnum("details.astral_sign", d.AstralSign, AstralSigns(), vb)
	}
	if d.Height != 0 && (d.Height < 100.0 || d.Height > 200.0) {
		vb.Field("details.height", "must be between 100 and 200 centimeters")
	}
	if d.Weight != 0 && (d.Weight < 30.0 || d.Weight > 200.0) {
		vb.Field("details.weight", "must be between 30 and 200 kilograms")
	}
	errors.ValidateMin("details.sibling_number", d.SiblingNumber, 0, vb)
}
