// Package errors provides the structured error handling used across wjdr-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Domain codes for the character rule engine (career plan completeness,
//     progression ceilings, currency balance, dice notation)
//   - Error context preservation through wrapping
//   - A validation builder that collects every violated field before failing
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid destiny points: %d", points)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Validation Errors
//
// Rule-engine mutations must report every violated invariant, not just the
// first. Use the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("madness_points", input.MadnessPoints, 0, 100, vb)
//	errors.ValidateMultipleOf("bonus", input.Bonus, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Checking
//
//	if errors.IsCareerCeilingExceeded(err) {
//	    // advancement rejected, prior state still authoritative
//	}
//
// # Layer-Specific Guidelines
//
// Entities (rule engine):
//   - Return domain codes (IncompleteCareerPlan, InvalidProgression,
//     CareerCeilingExceeded, NegativeBalance, InvalidExpression)
//   - Collect every violation of a candidate state into one error
//
// Repository layer:
//   - Return NotFound / AlreadyExists with relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Pass domain errors through unchanged so callers can branch on codes
package errors
