package billing

import (
	"context"

	"aipolyglot/internal/infra"
	"aipolyglot/internal/sqlinline"
)

// PGAccountStore applies billing state changes to the accounts table.
type PGAccountStore struct {
	sql infra.SQLExecutor
}

func NewPGAccountStore(sql infra.SQLExecutor) *PGAccountStore {
	return &PGAccountStore{sql: sql}
}

func (s *PGAccountStore) ActivateSubscription(ctx context.Context, userID, customerID, subscriptionID string) error {
	_, err := s.sql.Exec(ctx, sqlinline.QActivateSubscription, userID, customerID, subscriptionID)
	return err
}

// DeactivateBySubscription matches on the stored subscription id because
// cancellation events do not carry the checkout metadata.
func (s *PGAccountStore) DeactivateBySubscription(ctx context.Context, subscriptionID string) error {
	_, err := s.sql.Exec(ctx, sqlinline.QCancelSubscription, subscriptionID)
	return err
}

var _ AccountStore = (*PGAccountStore)(nil)
