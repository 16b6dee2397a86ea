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

// ProductService lists the product use-cases handlers can call.
type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.PublicProduct, error)
	GetProduct(ctx context.Context, sku string) (*models.PublicProduct, error)
	ListProducts(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicProduct], error)
	UpdateProduct(ctx context.Context, sku string, req models.UpdateProductRequest) (*models.PublicProduct, error)
	DeleteProduct(ctx context.Context, sku string) error
	SKURegistered(ctx context.Context, sku string) (bool, error)
}

type productService struct {
	repo repositories.ProductRepository
	log  *redislog.Logger
}

// NewProductService constructs the service with its dependencies injected.
func NewProductService(repo repositories.ProductRepository, rlog *redislog.Logger) ProductService {
	return &productService{repo: repo, log: rlog}
}

// Default sort field for product lists.
const productDefaultSort = "product_name"

func productSearchFields(p models.Product) []string {
	return []string{p.ProductName, p.Brand, p.Category}
}

func productSortKey(p models.Product, field string) string {
	switch field {
	case "product_name":
		return p.ProductName
	case "brand":
		return p.Brand
	case "category":
		return p.Category
	case "sku":
		return p.SKU
	default:
		return ""
	}
}

func (s *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.PublicProduct, error) {
	p := &models.Product{
		SKU:         req.SKU,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, core.ErrConflict) {
			s.log.Warn("create product sku exists", map[string]string{"sku": req.SKU})
			return nil, core.ErrConflict
		}
		s.log.Error("create product db error", map[string]string{"sku": req.SKU, "err": err.Error()})
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.log.Info("create product success", map[string]string{"sku": p.SKU})
	pub := p.Public()
	return &pub, nil
}

func (s *productService) GetProduct(ctx context.Context, sku string) (*models.PublicProduct, error) {
	p, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	pub := p.Public()
	return &pub, nil
}

// ListProducts fetches the whole collection and runs the shared query
// pipeline over it.
func (s *productService) ListProducts(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicProduct], error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("list products db error", map[string]string{"err": err.Error()})
		return nil, err
	}
	return core.RunQuery(products, q.ToQueryRequest(productDefaultSort), productSearchFields, productSortKey, models.Product.Public)
}

// UpdateProduct applies partial updates to a product addressed by sku.
func (s *productService) UpdateProduct(ctx context.Context, sku string, req models.UpdateProductRequest) (*models.PublicProduct, error) {
	p, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		p.ProductName = *req.ProductName
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Category != nil {
		p.Category = *req.Category
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		s.log.Error("update product db error", map[string]string{"sku": sku, "err": err.Error()})
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.log.Info("update product success", map[string]string{"sku": sku})
	pub := p.Public()
	return &pub, nil
}

func (s *productService) DeleteProduct(ctx context.Context, sku string) error {
	if err := s.repo.Delete(ctx, sku); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		s.log.Error("delete product db error", map[string]string{"sku": sku, "err": err.Error()})
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.log.Info("delete product success", map[string]string{"sku": sku})
	return nil
}

// SKURegistered reports whether a product with the sku exists.
func (s *productService) SKURegistered(ctx context.Context, sku string) (bool, error) {
	_, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
