package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
	"github.com/MarKarl30/UTS-BackEnd-Prog/repositories"
	"github.com/MarKarl30/UTS-BackEnd-Prog/utils/redislog"
)

// PurchaseService lists the purchase use-cases handlers can call.
// Reads that expose items join them against the product collection, so
// this service depends on both repositories.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, req models.CreatePurchaseRequest) (*models.PublicPurchase, error)
	GetPurchase(ctx context.Context, id string) (*models.PurchaseDetail, error)
	ListPurchases(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicPurchase], error)
	AddProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error)
	RemoveProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error)
	DeletePurchase(ctx context.Context, id string) error
}

type purchaseService struct {
	repo     repositories.PurchaseRepository
	products repositories.ProductRepository
	log      *redislog.Logger
}

// NewPurchaseService constructs the service with its dependencies injected.
func NewPurchaseService(repo repositories.PurchaseRepository, products repositories.ProductRepository, rlog *redislog.Logger) PurchaseService {
	return &purchaseService{repo: repo, products: products, log: rlog}
}

// Default sort field for purchase lists.
const purchaseDefaultSort = "email"

func purchaseSearchFields(p models.Purchase) []string {
	return []string{p.Name, p.Email, p.Address}
}

func purchaseSortKey(p models.Purchase, field string) string {
	switch field {
	case "name":
		return p.Name
	case "email":
		return p.Email
	case "address":
		return p.Address
	default:
		return ""
	}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req models.CreatePurchaseRequest) (*models.PublicPurchase, error) {
	p := &models.Purchase{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("create purchase db error", map[string]string{"email": req.Email, "err": err.Error()})
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	s.log.Info("create purchase success", map[string]string{"purchase_id": p.ID.Hex()})
	pub := p.Public()
	return &pub, nil
}

// GetPurchase returns the entry with its item references resolved to
// product documents (the read-time join).
func (s *purchaseService) GetPurchase(ctx context.Context, id string) (*models.PurchaseDetail, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, p)
}

// ListPurchases fetches the whole collection and runs the shared query
// pipeline over it. The list projection keeps items as ids; the join
// happens only on detail reads.
func (s *purchaseService) ListPurchases(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicPurchase], error) {
	purchases, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("list purchases db error", map[string]string{"err": err.Error()})
		return nil, err
	}
	return core.RunQuery(purchases, q.ToQueryRequest(purchaseDefaultSort), purchaseSearchFields, purchaseSortKey, models.Purchase.Public)
}

// AddProduct resolves the sku and pushes the product reference onto the
// purchase entry.
func (s *purchaseService) AddProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error) {
	product, err := s.products.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err // NotFound when the sku is unknown
	}

	p, err := s.repo.AddItem(ctx, id, product.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		s.log.Error("add product to purchase db error", map[string]string{"purchase_id": id, "sku": sku, "err": err.Error()})
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	s.log.Info("add product to purchase", map[string]string{"purchase_id": id, "sku": sku})
	return s.withItems(ctx, p)
}

// RemoveProduct pulls the product reference from the purchase entry.
func (s *purchaseService) RemoveProduct(ctx context.Context, id, sku string) (*models.PurchaseDetail, error) {
	product, err := s.products.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.RemoveItem(ctx, id, product.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		s.log.Error("remove product from purchase db error", map[string]string{"purchase_id": id, "sku": sku, "err": err.Error()})
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	s.log.Info("remove product from purchase", map[string]string{"purchase_id": id, "sku": sku})
	return s.withItems(ctx, p)
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		s.log.Error("delete purchase db error", map[string]string{"purchase_id": id, "err": err.Error()})
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	s.log.Info("delete purchase success", map[string]string{"purchase_id": id})
	return nil
}

// withItems joins the entry's item ids against the product collection.
// Dangling references (product deleted after being added) are dropped
// silently from the detail view.
func (s *purchaseService) withItems(ctx context.Context, p *models.Purchase) (*models.PurchaseDetail, error) {
	products, err := s.products.FindByIDs(ctx, p.Items)
	if err != nil {
		return nil, err
	}
	items := make([]models.PublicProduct, len(products))
	for i, prod := range products {
		items[i] = prod.Public()
	}
	return &models.PurchaseDetail{
		ID:      p.ID.Hex(),
		Name:    p.Name,
		Email:   p.Email,
		Address: p.Address,
		Items:   items,
	}, nil
}
