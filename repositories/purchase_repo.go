package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// PurchaseRepository is the data access surface for purchase entries.
// Item membership changes use $push/$pull so each add/remove is a single
// atomic document update.
type PurchaseRepository interface {
	Create(ctx context.Context, p *models.Purchase) error
	FindAll(ctx context.Context) ([]models.Purchase, error)
	FindByID(ctx context.Context, id string) (*models.Purchase, error)
	AddItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error)
	RemoveItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error)
	Delete(ctx context.Context, id string) error
}

type purchaseRepo struct{ col *mongo.Collection }

// NewPurchaseRepository injects the database handle and returns the interface.
func NewPurchaseRepository(db *mongo.Database) PurchaseRepository {
	return &purchaseRepo{col: db.Collection(global.PurchasesCollection)}
}

func (r *purchaseRepo) Create(ctx context.Context, p *models.Purchase) error {
	if p.Items == nil {
		p.Items = []primitive.ObjectID{} // new entries start with an empty cart
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *purchaseRepo) FindAll(ctx context.Context) ([]models.Purchase, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var purchases []models.Purchase
	if err := cur.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepo) FindByID(ctx context.Context, id string) (*models.Purchase, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotFound
	}
	var p models.Purchase
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// AddItem appends a product reference and returns the updated document.
func (r *purchaseRepo) AddItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$push": bson.M{"items": productID}})
}

// RemoveItem pulls every occurrence of the product reference.
func (r *purchaseRepo) RemoveItem(ctx context.Context, id string, productID primitive.ObjectID) (*models.Purchase, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$pull": bson.M{"items": productID}})
}

func (r *purchaseRepo) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.Purchase, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotFound
	}
	var p models.Purchase
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
