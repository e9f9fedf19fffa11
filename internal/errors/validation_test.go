package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oldworld/wjdr-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("gender", "is required")
	ve.AddFieldError("race", "must be one of: RACE_ELF, RACE_DWARF, RACE_HUMAN, RACE_HALFLING")

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "gender: is required")
	s.Assert().Contains(ve.Error(), "race: must be one of")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("destiny_points", "must be at least %d", 0).
		RequiredField("race").
		InvalidField("gender", "not a known gender")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().Contains(err.Error(), "gender: is invalid: not a known gender")
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.Assert().False(vb.HasErrors())
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestUniformCodedViolationsSurfaceDomainCode() {
	vb := errors.NewValidationBuilder()
	vb.CodedField(errors.CodeInvalidProgression, "primary_attributes.strength.advanced", "must be 0 with no career").
		CodedFieldf(errors.CodeInvalidProgression, "primary_attributes.agility.advanced", "must be 0 with no career")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidProgression(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Len(fields, 2)
}

func (s *ValidationTestSuite) TestMixedCodedViolationsSurfaceInvalidArgument() {
	vb := errors.NewValidationBuilder()
	vb.CodedField(errors.CodeInvalidProgression, "primary_attributes.strength.advanced", "must be 0 with no career").
		Field("madness_points", "must be at least 0")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "madness_points")
	s.Assert().Contains(err.Error(), "primary_attributes.strength.advanced")
}

func (s *ValidationTestSuite) TestValidationHelpers() {
	s.Run("ValidateRequired", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "  ", vb)
		s.Assert().Error(vb.Build())
	})

	s.Run("ValidateRange", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("base", 120, 0, 100, vb)
		err := vb.Build()
		s.Require().Error(err)
		s.Assert().Contains(err.Error(), "must be between 0 and 100")
	})

	s.Run("ValidateMin", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateMin("destiny_points", -1, 0, vb)
		s.Assert().Error(vb.Build())
	})

	s.Run("ValidateMultipleOf", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateMultipleOf("advanced", 7, 5, vb)
		err := vb.Build()
		s.Require().Error(err)
		s.Assert().Contains(err.Error(), "must be a multiple of 5")

		vb = errors.NewValidationBuilder()
		errors.ValidateMultipleOf("advanced", 15, 5, vb)
		s.Assert().NoError(vb.Build())
	})

	s.Run("ValidateEnum", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("race", "RACE_ORC", []string{"RACE_ELF", "RACE_DWARF"}, vb)
		s.Assert().Error(vb.Build())

		vb = errors.NewValidationBuilder()
		errors.ValidateEnum("race", "RACE_ELF", []string{"RACE_ELF", "RACE_DWARF"}, vb)
		s.Assert().NoError(vb.Build())
	})
}
