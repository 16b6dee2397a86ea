package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// UserServiceMock is a testify mock for services.UserService.
// Used to test the HTTP handlers without real business logic.
type UserServiceMock struct{ mock.Mock }

func (m *UserServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	args := m.Called(ctx, req, jwtSecret, exp)
	return args.String(0), args.Error(1)
}

func (m *UserServiceMock) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) ListUsers(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicUser], error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*core.QueryResult[models.PublicUser]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.PublicUser, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *UserServiceMock) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
