package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.JWT.Secret = "test-secret-that-is-long-enough!!"
	env.cfg.JWT.ExpireTime = time.Hour

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22!"}
	require.NoError(t, env.auth.Register(user))
	assert.Equal(t, model.Student, user.Role)
	assert.NotEqual(t, "hunter22!", user.Password, "password is stored hashed")

	// Duplicate email.
	dup := &model.User{Name: "Ada 2", Email: "ada@example.com", Password: "hunter22!"}
	assert.ErrorIs(t, env.auth.Register(dup), util.ErrEmailRegistered)

	token, logged, err := env.auth.Login("ada@example.com", "hunter22!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := util.ParseJWT(token, env.cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = env.auth.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = env.auth.Login("nobody@example.com", "hunter22!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.JWT.Secret = "test-secret-that-is-long-enough!!"

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22!"}
	require.NoError(t, env.auth.Register(user))

	user.Disabled = true
	require.NoError(t, env.db.Save(user).Error)

	_, _, err := env.auth.Login("ada@example.com", "hunter22!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
