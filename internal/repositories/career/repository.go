// Package career provides the interface for the career catalog: the
// pre-parsed career templates characters draw their occupations from.
package career

//go:generate mockgen -destination=mock/mock_repository.go -package=careermock github.com/oldworld/wjdr-api/internal/repositories/career Repository

import (
	"context"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
)

// Repository defines the interface for the career catalog. Careers are keyed
// by name; the catalog stores validated templates only.
type Repository interface {
	// Save stores a career template under its name, overwriting any
	// previous template of that name.
	// Returns errors.InvalidArgument for invalid input
	// Returns the career's own validation error for incomplete plans
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a career template by name.
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if the career doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves every stored career template.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for storing a career.
type SaveInput struct {
	Career wjdr.Career
}

// SaveOutput defines the output for storing a career.
type SaveOutput struct {
	Career *wjdr.Career
}

// GetInput defines the input for getting a career.
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a career.
type GetOutput struct {
	Career *wjdr.Career
}

// ListInput defines the input for listing careers.
type ListInput struct {
	// BasicOnly restricts the listing to basic careers.
	BasicOnly bool
}

// ListOutput defines the output for listing careers.
type ListOutput struct {
	Careers []*wjdr.Career
}
