package oauth

import (
	"encoding/json"

	"github.com/jcamargo/tienda-api/internal/application/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email,first_name,last_name"

// NewFacebook construye el proveedor Facebook.
func NewFacebook(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		name: "facebook",
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email"},
			Endpoint:     facebook.Endpoint,
		},
		userInfoURL:     facebookUserInfoURL,
		identifierField: "id",
		mapProfile: func(raw []byte) (auth.Profile, error) {
			var info struct {
				ID        string `json:"id"`
				Email     string `json:"email"`
				Name      string `json:"name"`
				FirstName string `json:"first_name"`
				LastName  string `json:"last_name"`
			}
			if err := json.Unmarshal(raw, &info); err != nil {
				return auth.Profile{}, err
			}
			return auth.Profile{
				ID:          info.ID,
				Email:       info.Email,
				FirstName:   info.FirstName,
				LastName:    info.LastName,
				DisplayName: info.Name,
			}, nil
		},
	}
}
