package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// UserRepositoryMock is a testify mock for repositories.UserRepository.
// Used to unit-test the service layer without touching Mongo.
type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) Update(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepositoryMock) IncrementLoginAttempt(ctx context.Context, email string, at time.Time) error {
	return m.Called(ctx, email, at).Error(0)
}

func (m *UserRepositoryMock) ResetLoginAttempt(ctx context.Context, email string, at time.Time) error {
	return m.Called(ctx, email, at).Error(0)
}
