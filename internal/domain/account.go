package domain

import "time"

// DefaultFreeTranslationLimit is how many translations a free account gets
// before checkout is required.
const DefaultFreeTranslationLimit = 100

// Account represents an authenticated translation account. Rows are created
// lazily the first time an authenticated session touches the API and are
// never deleted by this service.
type Account struct {
	ID               string
	Email            string
	TranslationCount int
	HasPaid          bool
	StripeCustomerID *string
	SubscriptionID   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Unlimited reports whether the account has an active paid subscription.
func (a Account) Unlimited() bool {
	return a.HasPaid
}
