package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/auth"
	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/user"
)

// AuthService 注册 / 登录并签发 JWT
type AuthService struct {
	repo user.Repository
	jwt  *config.JWTConfig
}

func NewAuthService(repo user.Repository, jwt *config.JWTConfig) *AuthService {
	return &AuthService{repo: repo, jwt: jwt}
}

// HashPassword 加盐 sha256
func HashPassword(raw, salt string) string {
	h := sha256.Sum256([]byte(raw + salt))
	return hex.EncodeToString(h[:])
}

// NewSalt 生成随机盐
func NewSalt() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// AuthResult 签发结果
type AuthResult struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Register 注册新用户并直接签发 token
func (s *AuthService) Register(ctx context.Context, email, password, fullName, phone string) (*AuthResult, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	u := &user.User{
		Email:    email,
		Salt:     NewSalt(),
		FullName: fullName,
		Phone:    phone,
		Role:     user.RoleUser,
		Enabled:  true,
	}
	u.Password = HashPassword(password, u.Salt)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

// Login 校验密码并签发 token
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.Enabled || HashPassword(password, u.Salt) != u.Password {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *user.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(s.jwt, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:    token,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}, nil
}
