package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{repo: repo, validate: validate}
}

// GetProfile degrades an unreadable store to the empty skeleton instead of
// failing, so the public page always renders. Files written by older
// versions may predate some fields; nil collections are normalized so the
// client sees [] and {} rather than null.
func (u *profileUsecase) GetProfile(ctx context.Context) domain.ProfileRecord {
	rec, err := u.repo.Get(ctx)
	if err != nil {
		return domain.EmptyProfile()
	}
	if rec.Socials == nil {
		rec.Socials = []domain.SocialLink{}
	}
	if rec.Languages == nil {
		rec.Languages = map[string]domain.LanguageSkill{}
	}
	if rec.Programming == nil {
		rec.Programming = map[string]domain.ProgrammingSkill{}
	}
	return rec
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) error {
	if err := u.validate.Struct(upd); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if upd.Socials == nil || upd.Languages == nil || upd.Programming == nil {
		return apperror.BadRequest("socials, languages and programming must be arrays")
	}

	// Merge over whatever is persisted: fields absent from the payload keep
	// their stored values. A missing or corrupt file merges over the
	// skeleton instead.
	rec, err := u.repo.Get(ctx)
	if err != nil {
		rec = domain.EmptyProfile()
	}

	rec.Name = upd.Name
	rec.BioShort = upd.BioShort
	if upd.Bio != nil {
		rec.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		rec.Avatar = *upd.Avatar
	}
	if upd.Email != nil {
		rec.Email = *upd.Email
	}
	if upd.Phone != nil {
		rec.Phone = *upd.Phone
	}
	rec.Socials = upd.Socials
	rec.Languages = foldLanguages(upd.Languages)
	rec.Programming = foldProgramming(upd.Programming)

	return u.repo.Replace(ctx, rec)
}

// foldLanguages collapses the ordered wire array into the persisted map.
// Array order is discarded and duplicate lang keys keep the last entry.
func foldLanguages(entries []domain.LanguageEntry) map[string]domain.LanguageSkill {
	m := make(map[string]domain.LanguageSkill, len(entries))
	for _, e := range entries {
		m[e.Lang] = domain.LanguageSkill{
			Reading:   e.Reading,
			Writing:   e.Writing,
			Speaking:  e.Speaking,
			Listening: e.Listening,
		}
	}
	return m
}

// foldProgramming does the same for technologies, renaming the wire field
// "skills" to the persisted "skill".
func foldProgramming(entries []domain.ProgrammingEntry) map[string]domain.ProgrammingSkill {
	m := make(map[string]domain.ProgrammingSkill, len(entries))
	for _, e := range entries {
		m[e.Lang] = domain.ProgrammingSkill{
			Level: e.Level,
			Skill: e.Skills,
		}
	}
	return m
}
