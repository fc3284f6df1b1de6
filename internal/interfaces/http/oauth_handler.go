package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/auth"
	"github.com/jcamargo/tienda-api/internal/application/dto"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/infrastructure/oauth"
	"github.com/jcamargo/tienda-api/pkg/oauthstate"
)

// SigninURL destino de los flujos OAuth fallidos.
const SigninURL = "/#!/signin"

// OAuthHandler flujos de autorización OAuth: redirección al proveedor,
// callback y desvinculación de proveedores.
type OAuthHandler struct {
	uc          *auth.UseCase
	sessions    *Sessions
	providers   map[string]*oauth.Provider
	stateSecret string
	stateExp    int
}

// NewOAuthHandler construye el handler con los proveedores configurados.
func NewOAuthHandler(uc *auth.UseCase, sessions *Sessions, providers []*oauth.Provider, stateSecret string, stateExpMinutes int) *OAuthHandler {
	byName := make(map[string]*oauth.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &OAuthHandler{
		uc:          uc,
		sessions:    sessions,
		providers:   byName,
		stateSecret: stateSecret,
		stateExp:    stateExpMinutes,
	}
}

// Redirect envía al usuario a la página de consentimiento del proveedor con
// un state firmado.
func (h *OAuthHandler) Redirect(c *fiber.Ctx) error {
	p, ok := h.providers[c.Params("provider")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Unknown provider"})
	}
	state, err := oauthstate.Generate(h.stateSecret, p.Name(), h.stateExp)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.Redirect(p.AuthCodeURL(state))
}

// Callback completa el flujo: valida el state, intercambia el código,
// resuelve o crea la cuenta y abre sesión. Cualquier fallo redirige a la
// página de signin; el éxito redirige al hint del flujo o a la raíz.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	p, ok := h.providers[c.Params("provider")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Unknown provider"})
	}
	provider, err := oauthstate.Parse(h.stateSecret, c.Query("state"))
	if err != nil || provider != p.Name() {
		return c.Redirect(SigninURL)
	}
	code := c.Query("code")
	if code == "" {
		return c.Redirect(SigninURL)
	}
	profile, err := p.FetchProfile(c.UserContext(), code)
	if err != nil {
		return c.Redirect(SigninURL)
	}
	user, hint, err := h.uc.SaveOAuthProfile(SessionUser(c), *profile)
	if err != nil {
		return c.Redirect(SigninURL)
	}
	if SessionID(c) != "" {
		err = h.sessions.Refresh(c, user)
	} else {
		err = h.sessions.Establish(c, user)
	}
	if err != nil {
		return c.Redirect(SigninURL)
	}
	if hint == "" {
		hint = "/"
	}
	return c.Redirect(hint)
}

// RemoveProvider desvincula un proveedor adicional de la cuenta de la sesión
// y re-establece la sesión con el usuario actualizado.
func (h *OAuthHandler) RemoveProvider(c *fiber.Ctx) error {
	provider := c.Query("provider")
	if provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Provider is required"})
	}
	user, err := h.uc.RemoveProvider(SessionUser(c), provider)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotSignedIn):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "User is not signed in"})
		case errors.Is(err, domain.ErrProviderNotLinked):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Provider is not linked"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
	}
	if err := h.sessions.Refresh(c, user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.NewUserResponse(user))
}
