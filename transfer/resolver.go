package transfer

import (
	"context"
	"errors"
	"fmt"

	"clocktransfer/clockify"
	"clocktransfer/config"
)

var (
	// ErrProjectUnmapped means the project key has no mapping entry.
	ErrProjectUnmapped = errors.New("project unmapped")
	// ErrProjectNotFoundRemotely means a mapped project name matched no
	// project in the workspace.
	ErrProjectNotFoundRemotely = errors.New("project not found remotely")
)

// ProjectNotFoundError names the mapped project that the workspace lacks.
type ProjectNotFoundError struct {
	ProjectKey  string
	ProjectName string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q (key %s) not found in workspace", e.ProjectName, e.ProjectKey)
}

func (e *ProjectNotFoundError) Is(target error) bool {
	return target == ErrProjectNotFoundRemotely
}

type ProjectLister interface {
	ListProjects(ctx context.Context, workspaceID string) ([]clockify.Project, error)
}

// Resolver turns a project key into a Clockify project ID. Name mappings are
// resolved against a fresh project listing on every call.
type Resolver struct {
	Mapping     config.ProjectMapping
	Projects    ProjectLister
	WorkspaceID string
}

func (r *Resolver) Resolve(ctx context.Context, projectKey string) (string, error) {
	ref, ok := r.Mapping.Lookup(projectKey)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProjectUnmapped, projectKey)
	}

	switch ref.Kind {
	case config.ProjectRefID:
		return ref.Value, nil
	case config.ProjectRefName:
		if r.Projects == nil {
			return "", fmt.Errorf("resolve project %q: no project lister configured", ref.Value)
		}
		projects, err := r.Projects.ListProjects(ctx, r.WorkspaceID)
		if err != nil {
			return "", fmt.Errorf("list projects for %q: %w", ref.Value, err)
		}
		if project, found := FindProjectByName(projects, ref.Value); found {
			return project.ID, nil
		}
		return "", &ProjectNotFoundError{ProjectKey: projectKey, ProjectName: ref.Value}
	default:
		return "", fmt.Errorf("project key %s has unsupported mapping kind %s", projectKey, ref.Kind)
	}
}

// FindProjectByName returns the first project whose name equals name exactly.
func FindProjectByName(projects []clockify.Project, name string) (clockify.Project, bool) {
	for _, project := range projects {
		if project.Name == name {
			return project, true
		}
	}
	return clockify.Project{}, false
}
