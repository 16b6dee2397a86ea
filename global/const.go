package global

const (
	AppVersion = "1.0.0" // project version shown in logs or health endpoint

	// Gin context keys for values injected by the auth middleware.
	// String constants reduce the risk of typos and collisions.
	CtxUserIDKey    = "uid"
	CtxUserEmailKey = "eml"

	// Mongo collection names, shared by config (index setup) and repositories.
	UsersCollection     = "users"
	ProductsCollection  = "products"
	PurchasesCollection = "purchases"
)
