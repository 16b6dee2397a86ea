// Data-access layer for users. Hides mongo-driver details behind an
// interface so services stay testable with mocks. Only talks to the
// database, no HTTP/JSON here.
package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

// UserRepository defines the operations the service layer expects.
// Depending on interfaces (not concrete types) helps testability and
// swapping implementations.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error

	// Lockout counter writes. Both are single-document atomic updates so
	// concurrent logins against one account never lose an increment.
	IncrementLoginAttempt(ctx context.Context, email string, at time.Time) error
	ResetLoginAttempt(ctx context.Context, email string, at time.Time) error
}

type userRepo struct{ col *mongo.Collection }

// NewUserRepository injects the database handle and returns the interface.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepo{col: db.Collection(global.UsersCollection)}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return core.ErrConflict // unique email index hit
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotFound // malformed id can't match anything
	}
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll loads the full collection; the list pipeline filters and pages
// in memory.
func (r *userRepo) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": u.ID}, bson.M{"$set": bson.M{
		"name":       u.Name,
		"email":      u.Email,
		"password":   u.Password,
		"updated_at": u.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return core.ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
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

// IncrementLoginAttempt bumps the failed-attempt counter and stamps the
// attempt time in one document update ($inc + $set), so the classic
// read-then-write race between concurrent logins cannot drop a failure.
func (r *userRepo) IncrementLoginAttempt(ctx context.Context, email string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$inc": bson.M{"login_attempt": 1},
		"$set": bson.M{"last_attempt": at},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ResetLoginAttempt zeroes the counter (successful login or expired lock).
func (r *userRepo) ResetLoginAttempt(ctx context.Context, email string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"login_attempt": 0, "last_attempt": at},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
