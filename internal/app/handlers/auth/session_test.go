package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	authapp "holidaze/internal/app/handlers/auth"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/policies/mock"
	domainauth "holidaze/internal/domain/auth"
	"holidaze/internal/infra/storage/memory"
)

func TestLoginLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)
	api.EXPECT().Login(gomock.Any(), "ola@stud.noroff.no", "secret").
		Return(policies.LoginResult{Name: "ola", Email: "ola@stud.noroff.no", AccessToken: "tok"}, nil)

	sessions := memory.NewSessionStore()
	now := time.Now()
	login := &authapp.LoginHandler{API: api, Sessions: sessions, TTL: time.Hour, Now: func() time.Time { return now }}

	res, err := login.Handle(context.Background(), authapp.LoginCommand{Email: " ola@stud.noroff.no ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.WithinDuration(t, now.Add(time.Hour), res.ExpiresAt, time.Second)

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "ola", stored.Name)

	logout := &authapp.LogoutHandler{Sessions: sessions}
	_, err = logout.Handle(domainauth.ContextWithSession(context.Background(), stored), authapp.LogoutCommand{})
	require.NoError(t, err)
	_, err = sessions.Get(context.Background(), "tok")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	_, err = logout.Handle(context.Background(), authapp.LogoutCommand{})
	assert.ErrorIs(t, err, middleware.ErrUnauthenticated)
}

func TestLogin_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)
	login := &authapp.LoginHandler{API: api, Sessions: memory.NewSessionStore(), TTL: time.Hour}

	_, err := login.Handle(context.Background(), authapp.LoginCommand{Email: "a@b.no"})
	assert.ErrorIs(t, err, authapp.ErrCredentialsRequired)

	denied := errors.New("invalid email or password")
	api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(policies.LoginResult{}, denied)
	_, err = login.Handle(context.Background(), authapp.LoginCommand{Email: "a@b.no", Password: "x"})
	assert.ErrorIs(t, err, denied)
}

func TestLogin_SessionNeverOutlivesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)
	now := time.Now()
	login := &authapp.LoginHandler{API: api, Sessions: memory.NewSessionStore(), TTL: 24 * time.Hour, Now: func() time.Time { return now }}

	api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(policies.LoginResult{Name: "ola", AccessToken: "short", ExpiresAt: now.Add(30 * time.Minute)}, nil)
	res, err := login.Handle(context.Background(), authapp.LoginCommand{Email: "a@b.no", Password: "x"})
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(30*time.Minute), res.ExpiresAt, time.Second)

	api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(policies.LoginResult{Name: "ola", AccessToken: "stale", ExpiresAt: now.Add(-time.Minute)}, nil)
	_, err = login.Handle(context.Background(), authapp.LoginCommand{Email: "a@b.no", Password: "x"})
	assert.ErrorIs(t, err, domainauth.ErrTTLInvalid)
}
