package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type portfolioUsecase struct {
	repo domain.PortfolioRepository
}

func NewPortfolioUsecase(repo domain.PortfolioRepository) domain.PortfolioUsecase {
	return &portfolioUsecase{repo: repo}
}

// List returns the full category mapping with each category's projects in
// display order: queuenumber ascending, ties broken by most recent year
// first. Ordering is derived here at query time; stored order stays
// insertion order.
func (u *portfolioUsecase) List(ctx context.Context) (domain.Portfolio, error) {
	p, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for cat, rec := range p {
		// Files written by older versions may carry null project lists;
		// the client iterates the field, so it must come back as [].
		if rec.Projects == nil {
			rec.Projects = []domain.ProjectItem{}
		}
		sortProjects(rec.Projects)
		p[cat] = rec
	}
	return p, nil
}

// sortProjects is stable so that repeated listings without intervening
// mutations come back in identical order.
func sortProjects(items []domain.ProjectItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Queuenumber != items[j].Queuenumber {
			return items[i].Queuenumber < items[j].Queuenumber
		}
		return yearKey(items[i].Year) > yearKey(items[j].Year)
	})
}

// yearKey extracts the numeric sort key from a free-form year value. For
// ranges like "2019-2022" the substring before the first '-' counts.
// Unparsable years sort as 0.
func yearKey(year string) int {
	prefix, _, _ := strings.Cut(year, "-")
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return 0
	}
	return n
}

func validateProjectInput(in domain.ProjectInput) error {
	if in.Category == "" || in.Title == "" || in.Description == "" || in.Year == "" {
		return apperror.BadRequest("category, title, description and year are required")
	}
	return nil
}

func (u *portfolioUsecase) Create(ctx context.Context, in domain.ProjectInput) (domain.ProjectItem, error) {
	if err := validateProjectInput(in); err != nil {
		return domain.ProjectItem{}, err
	}

	item := domain.ProjectItem{
		Title:       in.Title,
		Description: in.Description,
		Year:        in.Year,
		Upfront:     in.Upfront,
		Queuenumber: in.Queuenumber,
	}
	return u.repo.CreateProject(ctx, in.Category, item)
}

func (u *portfolioUsecase) Update(ctx context.Context, id string, in domain.ProjectInput) (domain.ProjectItem, error) {
	if id == "" {
		return domain.ProjectItem{}, apperror.BadRequest("id is required")
	}
	if err := validateProjectInput(in); err != nil {
		return domain.ProjectItem{}, err
	}

	item := domain.ProjectItem{
		Title:       in.Title,
		Description: in.Description,
		Year:        in.Year,
		Upfront:     in.Upfront,
		Queuenumber: in.Queuenumber,
	}
	updated, err := u.repo.UpdateProject(ctx, id, in.Category, item)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ProjectItem{}, apperror.NotFound("Project not found")
	}
	return updated, err
}

func (u *portfolioUsecase) SetGeneralInfo(ctx context.Context, category string, generalInfo *string) error {
	if category == "" || generalInfo == nil {
		return apperror.BadRequest("category and generalInfo are required")
	}
	return u.repo.SetGeneralInfo(ctx, category, *generalInfo)
}

func (u *portfolioUsecase) DeleteProject(ctx context.Context, category string, id string) error {
	if category == "" {
		return apperror.BadRequest("category is required")
	}
	err := u.repo.DeleteProject(ctx, category, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Category not found")
	}
	return err
}

func (u *portfolioUsecase) DeleteCategory(ctx context.Context, category string) error {
	if category == "" {
		return apperror.BadRequest("category is required")
	}
	err := u.repo.DeleteCategory(ctx, category)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Category not found")
	}
	return err
}
