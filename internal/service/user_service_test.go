package service

import (
	"context"
	"testing"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) UserService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return NewUserService(repository.NewUserRepository(db))
}

func adminRequest() CreateUserRequest {
	return CreateUserRequest{
		Username: "admin1",
		Email:    "admin1@example.com",
		Password: "password123",
		Role:     model.RoleAdmin,
	}
}

func TestCreateUser(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.CreateUser(context.Background(), adminRequest())
	require.NoError(t, err)
	assert.Equal(t, "admin1", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := setupUserService(t)

	req := adminRequest()
	req.Role = "superuser"
	_, err := svc.CreateUser(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminRequest())
	require.NoError(t, err)

	dup := adminRequest()
	dup.Email = "other@example.com"
	_, err = svc.CreateUser(ctx, dup)
	assert.Error(t, err, "duplicate username")

	dup = adminRequest()
	dup.Username = "other"
	_, err = svc.CreateUser(ctx, dup)
	assert.Error(t, err, "duplicate email")
}

func TestLogin(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminRequest())
	require.NoError(t, err)

	tokenRes, err := svc.Login(ctx, LoginUserRequest{Email: "admin1@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenRes.Token)

	token, err := jwt.Parse(tokenRes.Token, func(token *jwt.Token) (interface{}, error) {
		return middleware.GetJWTSecret(), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.NotEmpty(t, claims["sub"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginUserRequest{Email: "admin1@example.com", Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, LoginUserRequest{Email: "ghost@example.com", Password: "password123"})
	assert.Error(t, err)
}
