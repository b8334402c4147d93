package holidaze

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"holidaze/internal/app/policies"
)

type loginWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResultWire struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

func (c *Client) Login(ctx context.Context, email, password string) (policies.LoginResult, error) {
	var w loginResultWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginWire{Email: email, Password: password}, &w); err != nil {
		return policies.LoginResult{}, err
	}
	return policies.LoginResult{
		Name:        w.Name,
		Email:       w.Email,
		AccessToken: w.AccessToken,
		ExpiresAt:   tokenExpiry(w.AccessToken),
	}, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the API
// remains the one that accepts or rejects the token.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

var (
	_ policies.VenueAPI   = (*Client)(nil)
	_ policies.BookingAPI = (*Client)(nil)
	_ policies.AuthAPI    = (*Client)(nil)
)
