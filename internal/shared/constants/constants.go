package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 15
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Business number prefixes
	ServiceNumberPrefix  = "SRV"
	InvoiceNumberPrefix  = "INV"
	PurchaseNumberPrefix = "PO"

	// Database table names
	TableUsers         = "users"
	TableCustomers     = "customers"
	TableProducts      = "products"
	TableServices      = "services"
	TableServiceParts  = "service_parts"
	TableSales         = "sales"
	TableSaleItems     = "sale_items"
	TablePurchases     = "purchases"
	TablePurchaseItems = "purchase_items"
)
