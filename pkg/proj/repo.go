package proj

import (
	"context"
	"errors"
)

var (
	ErrProjectNotFound = errors.New("proj: project not found")
	ErrDuplicateTitle  = errors.New("proj: a project with this title already exists")
)

// Repository is the persistence boundary for projects. Implementations own
// the unique index on title; a violated constraint surfaces as
// ErrDuplicateTitle, lookups that match nothing surface ErrProjectNotFound.
type Repository interface {
	FindProjectByID(ctx context.Context, id string) (*Project, error)
	FindProjectByTitle(ctx context.Context, title string) (*Project, error)
	// FindProjectByTitleExcluding matches a title held by any project other
	// than the one with id excludeID.
	FindProjectByTitleExcluding(ctx context.Context, title, excludeID string) (*Project, error)
	FindProjectsByTitles(ctx context.Context, titles []string) ([]*Project, error)
	// FindProjects invokes fn once per matched project, in cursor order.
	// Iteration stops at the first error from fn or when ctx is done.
	FindProjects(ctx context.Context, filters map[string]string, fn func(*Project) error) error
	CreateProject(ctx context.Context, project *Project) (*Project, error)
	CreateProjects(ctx context.Context, projects []*Project) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	Close(ctx context.Context) error
}
