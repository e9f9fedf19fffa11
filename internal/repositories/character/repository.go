// Package character provides the interface for character sheet persistence.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/oldworld/wjdr-api/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
)

// Repository defines the interface for character persistence.
type Repository interface {
	// Create stores a new character.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID.
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing character.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by ID.
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every stored character.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character.
type CreateInput struct {
	Character *wjdr.Character
}

// CreateOutput defines the output for creating a character.
type CreateOutput struct {
	Character *wjdr.Character
	CreatedAt time.Time
}

// GetInput defines the input for getting a character.
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character.
type GetOutput struct {
	Character *wjdr.Character
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateInput defines the input for updating a character.
type UpdateInput struct {
	Character *wjdr.Character
}

// UpdateOutput defines the output for updating a character.
type UpdateOutput struct {
	Character *wjdr.Character
	UpdatedAt time.Time
}

// DeleteInput defines the input for deleting a character.
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character.
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing characters.
type ListInput struct {
	// Empty for now; filtering can be added later
}

// ListOutput defines the output for listing characters.
type ListOutput struct {
	Characters []*wjdr.Character
}
