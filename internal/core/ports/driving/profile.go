package driving

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// ProfileService manages the singleton career profile.
type ProfileService interface {
	// Get returns the stored profile, or an empty one if none exists.
	Get(ctx context.Context) (*domain.Profile, error)

	// Save persists the profile, assigning IDs to new list entries.
	Save(ctx context.Context, profile *domain.Profile) error

	// AddExperience appends a role and returns it with its assigned ID.
	AddExperience(ctx context.Context, exp domain.Experience) (*domain.Experience, error)

	// RemoveExperience deletes a role by ID.
	RemoveExperience(ctx context.Context, id string) error

	// AddProject appends a project and returns it with its assigned ID.
	AddProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// RemoveProject deletes a project by ID.
	RemoveProject(ctx context.Context, id string) error

	// AddEducation appends an education entry and returns it with its assigned ID.
	AddEducation(ctx context.Context, edu domain.Education) (*domain.Education, error)

	// RemoveEducation deletes an education entry by ID.
	RemoveEducation(ctx context.Context, id string) error

	// AddSkill adds a skill. Returns domain.ErrAlreadyExists for duplicates.
	AddSkill(ctx context.Context, skill string) error

	// RemoveSkill removes a skill. Returns domain.ErrNotFound if absent.
	RemoveSkill(ctx context.Context, skill string) error

	// Import replaces the profile with the contents of a TOML file.
	Import(ctx context.Context, path string) (*domain.Profile, error)

	// Export writes the profile to a TOML file.
	Export(ctx context.Context, path string) error

	// Watch re-imports path every time it changes until ctx is cancelled.
	// onChange receives the imported profile or the import error.
	Watch(ctx context.Context, path string, onChange func(*domain.Profile, error)) error
}
