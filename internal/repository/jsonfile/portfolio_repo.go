package jsonfile

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type portfolioRepository struct {
	store
}

func NewPortfolioRepository(path string) domain.PortfolioRepository {
	return &portfolioRepository{store: store{path: path}}
}

func (r *portfolioRepository) load() (domain.Portfolio, error) {
	var p domain.Portfolio
	if err := r.read(&p); err != nil {
		return nil, err
	}
	if p == nil {
		p = domain.Portfolio{}
	}
	return p, nil
}

func (r *portfolioRepository) Fetch(ctx context.Context) (domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *portfolioRepository) CreateProject(ctx context.Context, category string, item domain.ProjectItem) (domain.ProjectItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load()
	if err != nil {
		return domain.ProjectItem{}, err
	}

	item.ID = uuid.NewString()

	rec := p[category] // zero CategoryRecord if the category is new
	rec.Projects = append(rec.Projects, item)
	p[category] = rec

	if err := r.write(p); err != nil {
		return domain.ProjectItem{}, err
	}
	return item, nil
}

func (r *portfolioRepository) UpdateProject(ctx context.Context, id string, category string, item domain.ProjectItem) (domain.ProjectItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load()
	if err != nil {
		return domain.ProjectItem{}, err
	}

	// IDs are globally unique, so the first match wins.
	origCategory, origIndex := "", -1
	for cat, rec := range p {
		for i, existing := range rec.Projects {
			if existing.ID == id {
				origCategory, origIndex = cat, i
				break
			}
		}
		if origIndex != -1 {
			break
		}
	}
	if origIndex == -1 {
		return domain.ProjectItem{}, domain.ErrNotFound
	}

	item.ID = id

	if origCategory == category {
		rec := p[category]
		rec.Projects[origIndex] = item
		p[category] = rec
	} else {
		from := p[origCategory]
		from.Projects = append(from.Projects[:origIndex], from.Projects[origIndex+1:]...)
		p[origCategory] = from

		to := p[category]
		to.Projects = append(to.Projects, item)
		p[category] = to
	}

	if err := r.write(p); err != nil {
		return domain.ProjectItem{}, err
	}
	return item, nil
}

func (r *portfolioRepository) SetGeneralInfo(ctx context.Context, category string, generalInfo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load()
	if err != nil {
		return err
	}

	rec := p[category]
	rec.GeneralInfo = generalInfo
	if rec.Projects == nil {
		// A category created through a general-info update must still
		// serialize its projects as [], not null.
		rec.Projects = []domain.ProjectItem{}
	}
	p[category] = rec

	return r.write(p)
}

func (r *portfolioRepository) DeleteProject(ctx context.Context, category string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load()
	if err != nil {
		return err
	}

	rec, ok := p[category]
	if !ok {
		return domain.ErrNotFound
	}

	kept := rec.Projects[:0]
	for _, existing := range rec.Projects {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	rec.Projects = kept
	p[category] = rec

	return r.write(p)
}

func (r *portfolioRepository) DeleteCategory(ctx context.Context, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := p[category]; !ok {
		return domain.ErrNotFound
	}
	delete(p, category)

	return r.write(p)
}
