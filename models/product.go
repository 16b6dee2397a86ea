package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product document in the products collection.
// SKU is the external identifier used in URLs; it is unique-indexed.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SKU         string             `bson:"sku" json:"sku"`
	ProductName string             `bson:"product_name" json:"product_name"`
	Brand       string             `bson:"brand" json:"brand"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
}

// PublicProduct is the projection returned by list/detail endpoints.
type PublicProduct struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Public projects a Product to its response shape.
func (p Product) Public() PublicProduct {
	return PublicProduct{
		SKU:         p.SKU,
		ProductName: p.ProductName,
		Brand:       p.Brand,
		Price:       p.Price,
		Category:    p.Category,
	}
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Brand       string  `json:"brand" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateProductRequest allows partial updates; nil fields mean "no change".
type UpdateProductRequest struct {
	ProductName *string  `json:"product_name,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
}
