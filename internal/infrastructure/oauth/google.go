package oauth

import (
	"encoding/json"

	"github.com/jcamargo/tienda-api/internal/application/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// NewGoogle construye el proveedor Google (scopes profile + email).
func NewGoogle(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		name: "google",
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL:     googleUserInfoURL,
		identifierField: "id",
		mapProfile: func(raw []byte) (auth.Profile, error) {
			var info struct {
				ID         string `json:"id"`
				Email      string `json:"email"`
				Name       string `json:"name"`
				GivenName  string `json:"given_name"`
				FamilyName string `json:"family_name"`
			}
			if err := json.Unmarshal(raw, &info); err != nil {
				return auth.Profile{}, err
			}
			return auth.Profile{
				ID:          info.ID,
				Email:       info.Email,
				FirstName:   info.GivenName,
				LastName:    info.FamilyName,
				DisplayName: info.Name,
			}, nil
		},
	}
}
