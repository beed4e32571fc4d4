package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ProjectItem is a single work entry in the portfolio. The ID is assigned
// by the store at creation and never changes afterwards; it is unique
// across all categories.
type ProjectItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"` // HTML from the admin editor
	Year        string `json:"year"`        // free-form, may be a range like "2019-2022"
	Upfront     bool   `json:"upfront"`
	Queuenumber int    `json:"queuenumber"`
}

// CategoryRecord groups projects under a category. The category name is the
// identity and lives as the key of the Portfolio mapping, not in the record.
type CategoryRecord struct {
	GeneralInfo string        `json:"generalInfo"` // HTML free text
	Projects    []ProjectItem `json:"projects"`
}

// Portfolio is the full persisted mapping, category name -> record.
// Stored project order is insertion order; display order is derived at
// query time.
type Portfolio map[string]CategoryRecord

// ProjectInput carries the client-supplied fields of a project. Every
// update is a full replace: omitted optional fields fall back to their
// zero defaults rather than keeping previous values.
type ProjectInput struct {
	Category    string
	Title       string
	Description string
	Year        string
	Upfront     bool
	Queuenumber int
}

type PortfolioRepository interface {
	Fetch(ctx context.Context) (Portfolio, error)
	// CreateProject assigns a fresh ID, creating the category on demand.
	CreateProject(ctx context.Context, category string, item ProjectItem) (ProjectItem, error)
	// UpdateProject locates the project by ID across all categories and
	// replaces it, moving it to the target category if that differs.
	// Returns ErrNotFound if no project carries the ID.
	UpdateProject(ctx context.Context, id string, category string, item ProjectItem) (ProjectItem, error)
	SetGeneralInfo(ctx context.Context, category string, generalInfo string) error
	// DeleteProject removes a single project from the named category.
	// Returns ErrNotFound if the category does not exist.
	DeleteProject(ctx context.Context, category string, id string) error
	// DeleteCategory removes the category and every project in it.
	DeleteCategory(ctx context.Context, category string) error
}

type PortfolioUsecase interface {
	List(ctx context.Context) (Portfolio, error)
	Create(ctx context.Context, in ProjectInput) (ProjectItem, error)
	Update(ctx context.Context, id string, in ProjectInput) (ProjectItem, error)
	// SetGeneralInfo distinguishes "field absent" (rejected) from an
	// explicit empty string (valid), hence the pointer.
	SetGeneralInfo(ctx context.Context, category string, generalInfo *string) error
	DeleteProject(ctx context.Context, category string, id string) error
	DeleteCategory(ctx context.Context, category string) error
}
