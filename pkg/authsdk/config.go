package authsdk

import (
	"strings"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

// Config identifies the user pool and the app client acting on it. All four
// fields are required.
type Config struct {
	Region       string
	UserPoolID   string
	ClientID     string
	ClientSecret string
}

// Validate reports every missing field in a single configuration error.
func (c Config) Validate() error {
	var missing []string
	if c.Region == "" {
		missing = append(missing, "region")
	}
	if c.UserPoolID == "" {
		missing = append(missing, "user pool id")
	}
	if c.ClientID == "" {
		missing = append(missing, "client id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client secret")
	}

	if len(missing) > 0 {
		return autherr.New(autherr.KindConfiguration, "missing "+strings.Join(missing, ", "))
	}
	return nil
}
