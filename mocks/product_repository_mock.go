package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// ProductRepositoryMock is a testify mock for repositories.ProductRepository.
type ProductRepositoryMock struct{ mock.Mock }

func (m *ProductRepositoryMock) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepositoryMock) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepositoryMock) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	args := m.Called(ctx, sku)
	if v := args.Get(0); v != nil {
		return v.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepositoryMock) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepositoryMock) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepositoryMock) Delete(ctx context.Context, sku string) error {
	return m.Called(ctx, sku).Error(0)
}
