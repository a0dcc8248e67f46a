package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug = errors.New("invalid slug format")
)

const maxSlugLength = 50

// slugs: letras, números, hífen e underscore
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Slug é um value object para identificadores URL-safe de
// categorias e gêneros
type Slug struct {
	value string
}

// NewSlug cria um novo Slug validado
func NewSlug(slug string) (Slug, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))

	if slug == "" || len(slug) > maxSlugLength || !slugPattern.MatchString(slug) {
		return Slug{}, ErrInvalidSlug
	}

	return Slug{value: slug}, nil
}

// String retorna o valor do slug
func (s Slug) String() string {
	return s.value
}
