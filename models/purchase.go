package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Purchase represents a purchase document in the purchases collection.
// Items holds product ObjectIDs; the product documents themselves are
// joined in at read time by the service layer.
type Purchase struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name    string               `bson:"name" json:"name"`
	Email   string               `bson:"email" json:"email"`
	Address string               `bson:"address" json:"address"`
	Items   []primitive.ObjectID `bson:"items" json:"-"`
}

// PublicPurchase is the list projection: item references stay as ids.
type PublicPurchase struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Items   []string `json:"items"`
}

// Public projects a Purchase to its list shape.
func (p Purchase) Public() PublicPurchase {
	items := make([]string, len(p.Items))
	for i, id := range p.Items {
		items[i] = id.Hex()
	}
	return PublicPurchase{
		ID:      p.ID.Hex(),
		Name:    p.Name,
		Email:   p.Email,
		Address: p.Address,
		Items:   items,
	}
}

// PurchaseDetail is the detail projection with the product join resolved.
type PurchaseDetail struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Address string          `json:"address"`
	Items   []PublicProduct `json:"items"`
}

// CreatePurchaseRequest is the payload for opening a purchase entry.
type CreatePurchaseRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

// PurchaseItemRequest names the product (by sku) to add to a purchase.
type PurchaseItemRequest struct {
	SKU string `json:"sku" binding:"required"`
}
