package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages the singleton career profile.
type ProfileService struct {
	store driven.ProfileStore
	now   func() time.Time
}

// NewProfileService creates a new profile service.
func NewProfileService(store driven.ProfileStore) *ProfileService {
	return &ProfileService{
		store: store,
		now:   time.Now,
	}
}

// Get returns the stored profile, or an empty one if none exists.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.store.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		empty := domain.NewProfile()
		return &empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Save persists the profile, assigning IDs to new list entries.
func (s *ProfileService) Save(ctx context.Context, profile *domain.Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", domain.ErrInvalidInput)
	}

	for i := range profile.Experience {
		if profile.Experience[i].ID == "" {
			profile.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range profile.Projects {
		if profile.Projects[i].ID == "" {
			profile.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range profile.Education {
		if profile.Education[i].ID == "" {
			profile.Education[i].ID = uuid.NewString()
		}
	}
	profile.DedupeSkills()
	profile.ID = domain.ProfileID
	profile.UpdatedAt = s.now()

	if err := s.store.Put(ctx, *profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// update loads the profile, applies fn and saves the result.
func (s *ProfileService) update(ctx context.Context, fn func(*domain.Profile) error) error {
	profile, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if err := fn(profile); err != nil {
		return err
	}
	return s.Save(ctx, profile)
}

// AddExperience appends a role and returns it with its assigned ID.
func (s *ProfileService) AddExperience(ctx context.Context, exp domain.Experience) (*domain.Experience, error) {
	if exp.Company == "" || exp.Role == "" {
		return nil, fmt.Errorf("%w: company and role are required", domain.ErrInvalidInput)
	}
	exp.ID = uuid.NewString()
	err := s.update(ctx, func(p *domain.Profile) error {
		p.Experience = append(p.Experience, exp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// RemoveExperience deletes a role by ID.
func (s *ProfileService) RemoveExperience(ctx context.Context, id string) error {
	return s.update(ctx, func(p *domain.Profile) error {
		var ok bool
		p.Experience, ok = removeByID(p.Experience, id, func(e domain.Experience) string { return e.ID })
		if !ok {
			return fmt.Errorf("experience %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// AddProject appends a project and returns it with its assigned ID.
func (s *ProfileService) AddProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if project.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}
	project.ID = uuid.NewString()
	err := s.update(ctx, func(p *domain.Profile) error {
		p.Projects = append(p.Projects, project)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// RemoveProject deletes a project by ID.
func (s *ProfileService) RemoveProject(ctx context.Context, id string) error {
	return s.update(ctx, func(p *domain.Profile) error {
		var ok bool
		p.Projects, ok = removeByID(p.Projects, id, func(pr domain.Project) string { return pr.ID })
		if !ok {
			return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// AddEducation appends an education entry and returns it with its assigned ID.
func (s *ProfileService) AddEducation(ctx context.Context, edu domain.Education) (*domain.Education, error) {
	if edu.School == "" {
		return nil, fmt.Errorf("%w: school is required", domain.ErrInvalidInput)
	}
	edu.ID = uuid.NewString()
	err := s.update(ctx, func(p *domain.Profile) error {
		p.Education = append(p.Education, edu)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

// RemoveEducation deletes an education entry by ID.
func (s *ProfileService) RemoveEducation(ctx context.Context, id string) error {
	return s.update(ctx, func(p *domain.Profile) error {
		var ok bool
		p.Education, ok = removeByID(p.Education, id, func(e domain.Education) string { return e.ID })
		if !ok {
			return fmt.Errorf("education %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// AddSkill adds a skill. Returns domain.ErrAlreadyExists for duplicates.
func (s *ProfileService) AddSkill(ctx context.Context, skill string) error {
	return s.update(ctx, func(p *domain.Profile) error {
		if p.HasSkill(skill) {
			return fmt.Errorf("skill %q: %w", skill, domain.ErrAlreadyExists)
		}
		if !p.AddSkill(skill) {
			return fmt.Errorf("%w: skill is empty", domain.ErrInvalidInput)
		}
		return nil
	})
}

// RemoveSkill removes a skill. Returns domain.ErrNotFound if absent.
func (s *ProfileService) RemoveSkill(ctx context.Context, skill string) error {
	return s.update(ctx, func(p *domain.Profile) error {
		if !p.RemoveSkill(skill) {
			return fmt.Errorf("skill %q: %w", skill, domain.ErrNotFound)
		}
		return nil
	})
}

// Import replaces the profile with the contents of a TOML file.
func (s *ProfileService) Import(ctx context.Context, path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	profile := domain.NewProfile()
	if err := toml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, filepath.Base(path), err)
	}

	if err := s.Save(ctx, &profile); err != nil {
		return nil, err
	}
	logger.Info("Imported profile from %s (%d roles, %d skills)", path, len(profile.Experience), len(profile.Skills))
	return &profile, nil
}

// Export writes the profile to a TOML file.
func (s *ProfileService) Export(ctx context.Context, path string) error {
	profile, err := s.Get(ctx)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	//nolint:gosec // profile files are meant to be user-readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}
	return nil
}

// watchInterval is the minimum spacing between re-imports.
const watchInterval = 200 * time.Millisecond

// Watch re-imports path every time it changes until ctx is cancelled.
// The parent directory is watched so editors that replace the file on
// save are still picked up.
func (s *ProfileService) Watch(ctx context.Context, path string, onChange func(*domain.Profile, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("stat profile file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	logger.Debug("Watching %s", abs)

	// Editors often save in several writes. Each import waits at least one
	// interval after the event that triggered it, and events queued while
	// waiting fold into one import.
	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Profile file changed: %s", event.Op)
			// Spend any idle token so the first write of a save waits too.
			limiter.Allow()
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drainEvents(watcher.Events)
			onChange(s.Import(ctx, abs))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// drainEvents discards events already queued.
func drainEvents(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func removeByID[T any](items []T, id string, key func(T) string) ([]T, bool) {
	for i, item := range items {
		if key(item) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
