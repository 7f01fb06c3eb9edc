package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"aipolyglot/internal/domain"
	"aipolyglot/internal/infra"

	"github.com/stripe/stripe-go/v82"
)

type fakeStore struct {
	activated   []string
	deactivated []string
	customerID  string
	subID       string
	err         error
}

func (f *fakeStore) ActivateSubscription(_ context.Context, userID, customerID, subscriptionID string) error {
	if f.err != nil {
		return f.err
	}
	f.activated = append(f.activated, userID)
	f.customerID = customerID
	f.subID = subscriptionID
	return nil
}

func (f *fakeStore) DeactivateBySubscription(_ context.Context, subscriptionID string) error {
	if f.err != nil {
		return f.err
	}
	f.deactivated = append(f.deactivated, subscriptionID)
	return nil
}

func testBridge(store AccountStore) *Bridge {
	return NewBridge(Config{
		SecretKey:      "sk_test_123",
		PublishableKey: "pk_test_123",
		PriceID:        "price_123",
		WebhookSecret:  "whsec_test",
		SuccessURL:     "https://app.example.com/?success=true",
		CancelURL:      "https://app.example.com/?canceled=true",
	}, store, infra.NewLogger("test"))
}

func signPayload(secret string, payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType string, object string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","type":%q,"data":{"object":%s}}`, eventType, object))
}

func TestCheckoutSessionCarriesAccountMetadata(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	var captured *stripe.CheckoutSessionParams
	bridge.newSession = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		captured = params
		return &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test"}, nil
	}

	url, err := bridge.CreateCheckoutSession(context.Background(), "user-1", "a@example.com")
	if err != nil {
		t.Fatalf("CreateCheckoutSession() error: %v", err)
	}
	if url != "https://checkout.stripe.com/c/pay/cs_test" {
		t.Fatalf("url = %q", url)
	}
	if captured == nil {
		t.Fatalf("session params not captured")
	}
	if got := stripe.StringValue(captured.Mode); got != string(stripe.CheckoutSessionModeSubscription) {
		t.Fatalf("mode = %q", got)
	}
	if captured.Metadata["user_id"] != "user-1" {
		t.Fatalf("session metadata user_id = %q", captured.Metadata["user_id"])
	}
	if captured.SubscriptionData == nil || captured.SubscriptionData.Metadata["user_id"] != "user-1" {
		t.Fatalf("subscription metadata missing user_id")
	}
	if len(captured.LineItems) != 1 || stripe.StringValue(captured.LineItems[0].Price) != "price_123" {
		t.Fatalf("line items = %+v", captured.LineItems)
	}
	if got := stripe.StringValue(captured.CustomerEmail); got != "a@example.com" {
		t.Fatalf("customer email = %q", got)
	}
}

func TestCheckoutSessionRequiresConfiguration(t *testing.T) {
	bridge := NewBridge(Config{}, &fakeStore{}, infra.NewLogger("test"))
	_, err := bridge.CreateCheckoutSession(context.Background(), "user-1", "")
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestCheckoutSessionRequiresUser(t *testing.T) {
	bridge := testBridge(&fakeStore{})
	_, err := bridge.CreateCheckoutSession(context.Background(), "  ", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCheckoutSessionUpstreamFailure(t *testing.T) {
	bridge := testBridge(&fakeStore{})
	bridge.newSession = func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, errors.New("stripe is down")
	}
	_, err := bridge.CreateCheckoutSession(context.Background(), "user-1", "")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	payload := eventPayload("checkout.session.completed", `{"id":"cs_1","metadata":{"user_id":"user-1"}}`)
	err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_wrong", payload))
	if !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("error = %v, want ErrBadSignature", err)
	}
	if len(store.activated) != 0 {
		t.Fatalf("bad signature must not mutate accounts")
	}
}

func TestWebhookCheckoutCompletedActivates(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	object := `{"id":"cs_1","mode":"subscription","client_reference_id":"ref-1","metadata":{"user_id":"user-1"},"customer":{"id":"cus_9"},"subscription":{"id":"sub_9"}}`
	payload := eventPayload("checkout.session.completed", object)
	if err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload)); err != nil {
		t.Fatalf("HandleWebhook() error: %v", err)
	}
	if len(store.activated) != 1 || store.activated[0] != "user-1" {
		t.Fatalf("activated = %v", store.activated)
	}
	if store.customerID != "cus_9" || store.subID != "sub_9" {
		t.Fatalf("stored ids = %q %q", store.customerID, store.subID)
	}
}

func TestWebhookIgnoresNonSubscriptionCheckout(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	object := `{"id":"cs_1","mode":"payment","metadata":{"user_id":"user-1"},"customer":{"id":"cus_9"}}`
	payload := eventPayload("checkout.session.completed", object)
	if err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload)); err != nil {
		t.Fatalf("HandleWebhook() error: %v", err)
	}
	if len(store.activated) != 0 {
		t.Fatalf("one-time payment session must not activate, got %v", store.activated)
	}
}

func TestWebhookCheckoutWithoutUserIsAcknowledged(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	payload := eventPayload("checkout.session.completed", `{"id":"cs_1","mode":"subscription"}`)
	if err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload)); err != nil {
		t.Fatalf("HandleWebhook() error: %v", err)
	}
	if len(store.activated) != 0 {
		t.Fatalf("activated = %v, want none", store.activated)
	}
}

func TestWebhookSubscriptionDeletedDeactivates(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	payload := eventPayload("customer.subscription.deleted", `{"id":"sub_9"}`)
	if err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload)); err != nil {
		t.Fatalf("HandleWebhook() error: %v", err)
	}
	if len(store.deactivated) != 1 || store.deactivated[0] != "sub_9" {
		t.Fatalf("deactivated = %v", store.deactivated)
	}
}

func TestWebhookUnknownEventIsAcknowledged(t *testing.T) {
	store := &fakeStore{}
	bridge := testBridge(store)

	payload := eventPayload("invoice.paid", `{"id":"in_1"}`)
	if err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload)); err != nil {
		t.Fatalf("HandleWebhook() error: %v", err)
	}
	if len(store.activated) != 0 || len(store.deactivated) != 0 {
		t.Fatalf("unknown event must not mutate accounts")
	}
}

func TestWebhookStoreFailurePropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	bridge := testBridge(store)

	payload := eventPayload("customer.subscription.deleted", `{"id":"sub_9"}`)
	err := bridge.HandleWebhook(context.Background(), payload, signPayload("whsec_test", payload))
	if err == nil {
		t.Fatalf("expected error from store")
	}
}
