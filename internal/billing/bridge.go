package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aipolyglot/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

// AccountStore is the slice of account persistence the billing bridge needs.
type AccountStore interface {
	ActivateSubscription(ctx context.Context, userID, customerID, subscriptionID string) error
	DeactivateBySubscription(ctx context.Context, subscriptionID string) error
}

// Config carries the Stripe credentials and the redirect targets handed to
// checkout sessions.
type Config struct {
	SecretKey      string
	PublishableKey string
	PriceID        string
	WebhookSecret  string
	SuccessURL     string
	CancelURL      string
}

// Bridge owns the Stripe integration: it creates subscription checkout
// sessions and applies signed webhook events to the account store.
type Bridge struct {
	cfg    Config
	store  AccountStore
	logger zerolog.Logger

	newSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewBridge(cfg Config, store AccountStore, logger zerolog.Logger) *Bridge {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &Bridge{
		cfg:        cfg,
		store:      store,
		logger:     logger,
		newSession: session.New,
	}
}

// Configured reports whether checkout can be offered at all.
func (b *Bridge) Configured() bool {
	return b.cfg.SecretKey != "" && b.cfg.PriceID != ""
}

// PublishableKey returns the client-side key, empty when billing is off.
func (b *Bridge) PublishableKey() string {
	return b.cfg.PublishableKey
}

// PriceID returns the subscription price offered at checkout.
func (b *Bridge) PriceID() string {
	return b.cfg.PriceID
}

// CreateCheckoutSession starts a subscription checkout for the given
// account. The account id travels in the session metadata and in the
// subscription metadata so both webhook shapes can find their way back.
func (b *Bridge) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	if !b.Configured() {
		return "", fmt.Errorf("%w: stripe is not configured", domain.ErrNotConfigured)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(b.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(b.cfg.SuccessURL),
		CancelURL:         stripe.String(b.cfg.CancelURL),
		ClientReferenceID: stripe.String(userID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"user_id": userID},
		},
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := b.newSession(params)
	if err != nil {
		b.logger.Error().Err(err).Str("user_id", userID).Msg("stripe checkout session failed")
		return "", fmt.Errorf("%w: checkout session: %v", domain.ErrUpstream, err)
	}
	return sess.URL, nil
}

// HandleWebhook verifies the Stripe signature and applies the event.
// Unknown event types are acknowledged without side effects. A bad
// signature returns domain.ErrBadSignature and mutates nothing.
func (b *Bridge) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if b.cfg.WebhookSecret == "" {
		return fmt.Errorf("%w: webhook secret is not configured", domain.ErrNotConfigured)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, b.cfg.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSignature, err)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return b.applyCheckoutCompleted(ctx, event)
	case stripe.EventTypeCustomerSubscriptionDeleted:
		return b.applySubscriptionDeleted(ctx, event)
	default:
		b.logger.Debug().Str("event_type", string(event.Type)).Msg("ignoring stripe event")
		return nil
	}
}

func (b *Bridge) applyCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}
	if sess.Mode != stripe.CheckoutSessionModeSubscription {
		b.logger.Debug().
			Str("session_id", sess.ID).
			Str("mode", string(sess.Mode)).
			Msg("ignoring non-subscription checkout")
		return nil
	}
	userID := sess.Metadata["user_id"]
	if userID == "" {
		userID = sess.ClientReferenceID
	}
	if userID == "" {
		b.logger.Warn().Str("session_id", sess.ID).Msg("checkout completed without user metadata")
		return nil
	}
	var customerID, subscriptionID string
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		subscriptionID = sess.Subscription.ID
	}
	if err := b.store.ActivateSubscription(ctx, userID, customerID, subscriptionID); err != nil {
		return fmt.Errorf("activate subscription: %w", err)
	}
	b.logger.Info().
		Str("user_id", userID).
		Str("subscription_id", subscriptionID).
		Msg("subscription activated")
	return nil
}

func (b *Bridge) applySubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}
	if sub.ID == "" {
		return nil
	}
	if err := b.store.DeactivateBySubscription(ctx, sub.ID); err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	b.logger.Info().Str("subscription_id", sub.ID).Msg("subscription cancelled")
	return nil
}
