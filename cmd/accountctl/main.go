package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aipolyglot/internal/infra"
	"aipolyglot/internal/sqlinline"
)

func main() {
	var (
		idFlag         string
		emailFlag      string
		grantFlag      bool
		revokeFlag     bool
		resetCountFlag bool
	)

	flag.StringVar(&idFlag, "id", "", "account ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "account email to update")
	flag.BoolVar(&grantFlag, "grant-unlimited", false, "mark the account as paid (unmetered translations)")
	flag.BoolVar(&revokeFlag, "revoke-unlimited", false, "mark the account as free tier")
	flag.BoolVar(&resetCountFlag, "reset-count", false, "reset the free translation counter to 0")
	flag.Parse()

	accountID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)

	if accountID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}
	if grantFlag && revokeFlag {
		exitWithError(errors.New("-grant-unlimited and -revoke-unlimited are mutually exclusive"))
	}
	if !grantFlag && !revokeFlag && !resetCountFlag {
		exitWithError(errors.New("nothing to do: pass -grant-unlimited, -revoke-unlimited, or -reset-count"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "accountctl").Logger()
	runner := infra.NewSQLRunner(pool, logger)

	if accountID == "" {
		lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
		row := runner.QueryRow(lookupCtx, sqlinline.QSelectAccountByEmail, email)
		var (
			count      int
			paid       bool
			customerID *string
			subID      *string
			createdAt  time.Time
			updatedAt  time.Time
			foundEmail string
		)
		scanErr := row.Scan(&accountID, &foundEmail, &count, &paid, &customerID, &subID, &createdAt, &updatedAt)
		cancelLookup()
		if scanErr != nil {
			exitWithError(fmt.Errorf("failed to load account by email: %w", scanErr))
		}
	}

	if grantFlag || revokeFlag {
		updateCtx, cancelUpdate := context.WithTimeout(context.Background(), 5*time.Second)
		row := runner.QueryRow(updateCtx, sqlinline.QSetUnlimited, accountID, grantFlag)
		var (
			updatedID    string
			updatedEmail string
			count        int
			paid         bool
		)
		scanErr := row.Scan(&updatedID, &updatedEmail, &count, &paid)
		cancelUpdate()
		if scanErr != nil {
			exitWithError(fmt.Errorf("failed to update account: %w", scanErr))
		}
		fmt.Printf("Account %s (%s): has_paid=%v translation_count=%d\n", updatedID, updatedEmail, paid, count)
	}

	if resetCountFlag {
		resetCtx, cancelReset := context.WithTimeout(context.Background(), 5*time.Second)
		_, execErr := runner.Exec(resetCtx, sqlinline.QResetTranslationCount, accountID)
		cancelReset()
		if execErr != nil {
			exitWithError(fmt.Errorf("failed to reset translation count: %w", execErr))
		}
		fmt.Printf("Account %s: translation_count reset to 0\n", accountID)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
