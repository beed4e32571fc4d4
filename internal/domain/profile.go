package domain

import "context"

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// LanguageSkill holds 0-100 proficiency scores for one spoken language.
type LanguageSkill struct {
	Reading   int `json:"reading"`
	Writing   int `json:"writing"`
	Speaking  int `json:"speaking"`
	Listening int `json:"listening"`
}

// ProgrammingSkill holds the 0-100 level and a free-text skill note for one
// technology.
type ProgrammingSkill struct {
	Level int    `json:"level"`
	Skill string `json:"skill"`
}

// ProfileRecord is the singleton record describing the site owner. On disk
// and on reads, languages and programming are maps keyed by language /
// technology name; updates submit them as ordered arrays instead (see
// ProfileUpdate).
type ProfileRecord struct {
	Name        string                      `json:"name"`
	BioShort    string                      `json:"bioshort"`
	Bio         string                      `json:"bio"` // HTML
	Avatar      string                      `json:"avatar"`
	Email       string                      `json:"email"`
	Phone       string                      `json:"phone"`
	Socials     []SocialLink                `json:"socials"`
	Languages   map[string]LanguageSkill    `json:"languages"`
	Programming map[string]ProgrammingSkill `json:"programming"`
}

// EmptyProfile is the skeleton served when the backing file is unreadable,
// so the public page always has something to render.
func EmptyProfile() ProfileRecord {
	return ProfileRecord{
		Socials:     []SocialLink{},
		Languages:   map[string]LanguageSkill{},
		Programming: map[string]ProgrammingSkill{},
	}
}

// LanguageEntry is the wire shape of one language row in an update.
type LanguageEntry struct {
	Lang      string `json:"lang"`
	Reading   int    `json:"reading"`
	Writing   int    `json:"writing"`
	Speaking  int    `json:"speaking"`
	Listening int    `json:"listening"`
}

// ProgrammingEntry is the wire shape of one technology row in an update.
// The "skills" field is persisted as ProgrammingSkill.Skill.
type ProgrammingEntry struct {
	Lang   string `json:"lang"`
	Level  int    `json:"level"`
	Skills string `json:"skills"`
}

// ProfileUpdate is a wholesale replacement of the profile. Pointer fields
// distinguish "absent from the payload" (keep the persisted value) from an
// explicit empty value. Nil slices mean the payload lacked the array
// entirely, which is rejected.
type ProfileUpdate struct {
	Name        string `validate:"required"`
	BioShort    string `validate:"required"`
	Bio         *string
	Avatar      *string
	Email       *string
	Phone       *string
	Socials     []SocialLink
	Languages   []LanguageEntry
	Programming []ProgrammingEntry
}

type ProfileRepository interface {
	Get(ctx context.Context) (ProfileRecord, error)
	Replace(ctx context.Context, record ProfileRecord) error
}

type ProfileUsecase interface {
	// GetProfile never fails: an unreadable store degrades to EmptyProfile.
	GetProfile(ctx context.Context) ProfileRecord
	UpdateProfile(ctx context.Context, upd ProfileUpdate) error
}
