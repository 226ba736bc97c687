package domain

// AccountContext is the store/tenant context and credentials of one connected
// provider account. It is resolved once at an entry point and passed down.
type AccountContext struct {
	AccountID         string
	ProviderAccountID string
	StoreID           string
	TenantID          string
	AccessToken       string
	DefaultCurrency   string
	Enabled           bool
}
