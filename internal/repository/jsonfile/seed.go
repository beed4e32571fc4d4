package jsonfile

import "go-portfolio-backend/internal/domain"

// Seed creates any missing backing files with empty documents so that a
// fresh deployment serves an empty portfolio and profile instead of 500s.
// Existing files are left untouched.
func Seed(portfolioPath, profilePath string) error {
	portfolio := &store{path: portfolioPath}
	if err := portfolio.ensure(domain.Portfolio{}); err != nil {
		return err
	}
	profile := &store{path: profilePath}
	return profile.ensure(domain.EmptyProfile())
}
