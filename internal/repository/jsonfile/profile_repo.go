package jsonfile

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type profileRepository struct {
	store
}

func NewProfileRepository(path string) domain.ProfileRepository {
	return &profileRepository{store: store{path: path}}
}

func (r *profileRepository) Get(ctx context.Context) (domain.ProfileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rec domain.ProfileRecord
	if err := r.read(&rec); err != nil {
		return domain.ProfileRecord{}, err
	}
	return rec, nil
}

func (r *profileRepository) Replace(ctx context.Context, record domain.ProfileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(record)
}
