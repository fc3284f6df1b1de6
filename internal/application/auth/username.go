package auth

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics descompone (NFD), elimina marcas combinantes y recompone.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeUsername convierte un candidato arbitrario (username del proveedor,
// parte local del email o display name) en un username válido: minúsculas,
// sin tildes y solo [a-z0-9._-].
func normalizeUsername(s string) string {
	if folded, _, err := transform.String(stripDiacritics, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, s)
}

// usernameCandidate deriva el username base de un perfil OAuth: el username
// del proveedor si existe, si no la parte local del email.
func usernameCandidate(p Profile) string {
	base := p.Username
	if base == "" && p.Email != "" {
		base = strings.SplitN(p.Email, "@", 2)[0]
	}
	base = normalizeUsername(base)
	if base == "" {
		base = "user"
	}
	return base
}
