package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// ProductRepository is the data access surface for the products collection.
// Products are addressed by sku externally and by ObjectID internally
// (purchase item references).
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, sku string) error
}

type productRepo struct{ col *mongo.Collection }

// NewProductRepository injects the database handle and returns the interface.
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepo{col: db.Collection(global.ProductsCollection)}
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return core.ErrConflict // unique sku index hit
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, bson.M{"sku": sku}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDs resolves purchase item references to product documents.
// Missing ids are simply absent from the result, not an error.
func (r *productRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"sku": p.SKU}, bson.M{"$set": bson.M{
		"product_name": p.ProductName,
		"brand":        p.Brand,
		"price":        p.Price,
		"category":     p.Category,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, sku string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"sku": sku})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
