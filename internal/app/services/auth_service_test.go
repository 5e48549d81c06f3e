package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	registered, err := svc.Auth.Register(ctx, dto.RegisterRequest{
		Email:     "grace@school.test",
		Username:  "grace",
		FirstName: "Grace",
		LastName:  "Hopper",
		Password:  "cobol-1959",
	})
	require.NoError(t, err)
	assert.False(t, registered.Employee.IsAdmin)
	assert.Equal(t, "Bearer", registered.Token.TokenType)
	assert.NotEmpty(t, registered.Token.AccessToken)

	loggedIn, err := svc.Auth.Login(ctx, dto.LoginRequest{Email: "grace@school.test", Password: "cobol-1959"})
	require.NoError(t, err)
	assert.Equal(t, registered.Employee.ID, loggedIn.Employee.ID)

	_, err = svc.Auth.Login(ctx, dto.LoginRequest{Email: "grace@school.test", Password: "wrong-password"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = svc.Auth.Login(ctx, dto.LoginRequest{Email: "nobody@school.test", Password: "whatever1"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	me, err := svc.Auth.Me(ctx, registered.Employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "grace", me.Username)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	req := dto.RegisterRequest{
		Email: "linus@school.test", Username: "linus", FirstName: "Linus", LastName: "T", Password: "kernel-1991",
	}
	_, err := svc.Auth.Register(ctx, req)
	require.NoError(t, err)

	req.Username = "linus2"
	_, err = svc.Auth.Register(ctx, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Error: employee email already exists.", err.Error())
}
