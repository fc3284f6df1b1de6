// Package oauth adapta proveedores de identidad externos sobre
// golang.org/x/oauth2: intercambio de código por token y descarga del perfil.
package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jcamargo/tienda-api/internal/application/auth"
	"golang.org/x/oauth2"
)

// Provider un proveedor OAuth2 concreto. mapProfile traduce el JSON de la API
// de userinfo del proveedor al perfil normalizado; el payload crudo se
// conserva entero en Profile.Data.
type Provider struct {
	name            string
	cfg             *oauth2.Config
	userInfoURL     string
	identifierField string
	mapProfile      func(raw []byte) (auth.Profile, error)
}

// Name nombre del proveedor (google, facebook).
func (p *Provider) Name() string { return p.name }

// AuthCodeURL URL de consentimiento del proveedor con el state firmado.
func (p *Provider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state)
}

// FetchProfile intercambia el código de autorización y descarga el perfil.
func (p *Provider) FetchProfile(ctx context.Context, code string) (*auth.Profile, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: intercambiar código: %w", p.name, err)
	}
	client := p.cfg.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%s: obtener perfil: %w", p.name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: userinfo respondió %d", p.name, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: leer perfil: %w", p.name, err)
	}
	profile, err := p.mapProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: mapear perfil: %w", p.name, err)
	}
	profile.Provider = p.name
	profile.IdentifierField = p.identifierField
	profile.Data = raw
	return &profile, nil
}
