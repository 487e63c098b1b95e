package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/luxeshop/internal/auth"
	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/user"
)

var testJWT = &config.JWTConfig{Secret: "test-secret"}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWT)

	res, err := svc.Register(context.Background(), "alice@luxe.com", "Passw0rd!", "Alice", "13800000000")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, user.RoleUser, res.Role)

	// 密码只存加盐哈希
	stored, err := repo.GetByEmail(context.Background(), "alice@luxe.com")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", stored.Password)
	require.NotEmpty(t, stored.Salt)

	res, err = svc.Login(context.Background(), "alice@luxe.com", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "Alice", res.FullName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(&user.User{ID: 1, Email: "alice@luxe.com"}), testJWT)

	_, err := svc.Register(context.Background(), "alice@luxe.com", "x", "", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWT)

	_, err := svc.Register(context.Background(), "alice@luxe.com", "right", "Alice", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@luxe.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@luxe.com", "right")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	salt := NewSalt()
	u := &user.User{
		ID:       1,
		Email:    "alice@luxe.com",
		Salt:     salt,
		Password: HashPassword("right", salt),
		Enabled:  false,
	}
	svc := NewAuthService(newFakeUserRepo(u), testJWT)

	_, err := svc.Login(context.Background(), "alice@luxe.com", "right")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWT)

	res, err := svc.Register(context.Background(), "admin@luxe.com", "Admin@123", "Admin", "")
	require.NoError(t, err)

	claims, err := auth.ParseToken(testJWT, res.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@luxe.com", claims.Email)
	require.Equal(t, user.RoleUser, claims.Role)

	// 换密钥解析失败
	_, err = auth.ParseToken(&config.JWTConfig{Secret: "other"}, res.Token)
	require.Error(t, err)
}
