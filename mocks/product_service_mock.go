package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// ProductServiceMock is a testify mock for services.ProductService.
type ProductServiceMock struct{ mock.Mock }

func (m *ProductServiceMock) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.PublicProduct, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductServiceMock) GetProduct(ctx context.Context, sku string) (*models.PublicProduct, error) {
	args := m.Called(ctx, sku)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductServiceMock) ListProducts(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicProduct], error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*core.QueryResult[models.PublicProduct]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductServiceMock) UpdateProduct(ctx context.Context, sku string, req models.UpdateProductRequest) (*models.PublicProduct, error) {
	args := m.Called(ctx, sku, req)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductServiceMock) DeleteProduct(ctx context.Context, sku string) error {
	return m.Called(ctx, sku).Error(0)
}

func (m *ProductServiceMock) SKURegistered(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}
