package quota

import (
	"context"
	"fmt"
	"strings"

	"aipolyglot/internal/domain"
	"aipolyglot/internal/infra"
	"aipolyglot/internal/sqlinline"
)

// Ledger tracks how many free translations each account has consumed.
// Paid accounts are unmetered; everyone else gets FreeLimit translations
// before the gate closes.
type Ledger struct {
	sql   infra.SQLExecutor
	limit int
}

func NewLedger(sql infra.SQLExecutor, freeLimit int) *Ledger {
	if freeLimit <= 0 {
		freeLimit = domain.DefaultFreeTranslationLimit
	}
	return &Ledger{sql: sql, limit: freeLimit}
}

// FreeLimit returns the configured free-tier ceiling.
func (l *Ledger) FreeLimit() int {
	return l.limit
}

// Ensure upserts the account row for the given session so later reads and
// increments always have a row to hit. Safe to call on every request.
func (l *Ledger) Ensure(ctx context.Context, userID, email string) (domain.Account, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Account{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	row := l.sql.QueryRow(ctx, sqlinline.QUpsertAccount, userID, email)
	return scanAccount(row)
}

// Account loads the ledger row without creating it.
func (l *Ledger) Account(ctx context.Context, userID string) (domain.Account, error) {
	row := l.sql.QueryRow(ctx, sqlinline.QSelectAccountByID, userID)
	acct, err := scanAccount(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	return acct, nil
}

// CanTranslate reports whether the account may run another translation.
// Paid accounts always pass. Free accounts pass while their counter is
// strictly below the limit.
func (l *Ledger) CanTranslate(acct domain.Account) bool {
	if acct.Unlimited() {
		return true
	}
	return acct.TranslationCount < l.limit
}

// Remaining returns how many free translations are left. Paid accounts
// report -1, meaning unmetered.
func (l *Ledger) Remaining(acct domain.Account) int {
	if acct.Unlimited() {
		return -1
	}
	left := l.limit - acct.TranslationCount
	if left < 0 {
		return 0
	}
	return left
}

// Record charges one translation against the account. The increment happens
// in a single SQL statement so concurrent requests cannot lose updates; the
// statement's predicate skips paid accounts, making Record a no-op for them.
// The returned count is the value after the increment, or the prior count
// when nothing was charged.
func (l *Ledger) Record(ctx context.Context, acct domain.Account) (int, error) {
	if acct.Unlimited() {
		return acct.TranslationCount, nil
	}
	row := l.sql.QueryRow(ctx, sqlinline.QIncrementTranslationCount, acct.ID)
	var count int
	if err := row.Scan(&count); err != nil {
		if infra.IsNoRows(err) {
			// The account flipped to paid between the read and the
			// increment. Treat as uncharged.
			return acct.TranslationCount, nil
		}
		return 0, err
	}
	return count, nil
}

// Reset zeroes the free-tier counter. Operator tooling only.
func (l *Ledger) Reset(ctx context.Context, userID string) error {
	_, err := l.sql.Exec(ctx, sqlinline.QResetTranslationCount, userID)
	return err
}

func scanAccount(row interface{ Scan(dest ...any) error }) (domain.Account, error) {
	var acct domain.Account
	err := row.Scan(
		&acct.ID,
		&acct.Email,
		&acct.TranslationCount,
		&acct.HasPaid,
		&acct.StripeCustomerID,
		&acct.SubscriptionID,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return acct, nil
}
