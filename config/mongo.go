// Mongo bootstrap: connect, verify, and ensure the unique indexes the
// repositories rely on (email for users, sku for products).

package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
)

// InitMongo connects to the configured MongoDB, pings it, and returns the
// database handle repositories are built on. Fatal on failure; the app
// cannot serve anything without its store.
func InitMongo(cfg *Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] connect error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping failed: %v (uri=%s)", err, cfg.MongoURI)
	}

	db := client.Database(cfg.MongoDB)
	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatalf("[mongo] index setup error: %v", err)
	}

	log.Printf("[mongo] connected: db=%s", cfg.MongoDB)
	return db
}

// ensureIndexes creates the unique indexes backing the Conflict error
// paths. CreateOne is idempotent for an identical existing index.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(global.UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	products := db.Collection(global.ProductsCollection)
	_, err = products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
