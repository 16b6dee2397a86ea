package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// PurchaseRepositoryMock is a testify mock for repositories.PurchaseRepository.
type PurchaseRepositoryMock struct{ mock.Mock }

func (m *PurchaseRepositoryMock) Create(ctx context.Context, p *models.Purchase) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PurchaseRepositoryMock) FindAll(ctx context.Context) ([]models.Purchase, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseRepositoryMock) FindByID(ctx context.Context, id string) (*models.Purchase, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseRepositoryMock) AddItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error) {
	args := m.Called(ctx, id, productID)
	if v := args.Get(0); v != nil {
		return v.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseRepositoryMock) RemoveItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error) {
	args := m.Called(ctx, id, productID)
	if v := args.Get(0); v != nil {
		return v.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
