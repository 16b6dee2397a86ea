package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// PurchaseServiceMock is a testify mock for services.PurchaseService.
type PurchaseServiceMock struct{ mock.Mock }

func (m *PurchaseServiceMock) CreatePurchase(ctx context.Context, req models.CreatePurchaseRequest) (*models.PublicPurchase, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.PublicPurchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseServiceMock) GetPurchase(ctx context.Context, id string) (*models.PurchaseDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.PurchaseDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseServiceMock) ListPurchases(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicPurchase], error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*core.QueryResult[models.PublicPurchase]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseServiceMock) AddProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error) {
	args := m.Called(ctx, id, sku)
	if v := args.Get(0); v != nil {
		return v.(*models.PurchaseDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseServiceMock) RemoveProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error) {
	args := m.Called(ctx, id, sku)
	if v := args.Get(0); v != nil {
		return v.(*models.PurchaseDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PurchaseServiceMock) DeletePurchase(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
