package plaid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Options{
		ClientID:    "test-client-id",
		Secret:      "test-secret",
		Environment: "sandbox",
		BaseURL:     server.URL,
		HTTPClient:  server.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(&Options{Secret: "s"})
	assert.Error(t, err, "missing client id should be rejected")

	_, err = NewClient(&Options{ClientID: "c", Secret: "s", Environment: "staging"})
	assert.Error(t, err, "unknown environment should be rejected")

	client, err := NewClient(&Options{ClientID: "c", Secret: "s"})
	require.NoError(t, err)
	assert.True(t, client.Sandbox(), "empty environment defaults to sandbox")
	assert.Equal(t, SandboxBaseURL, client.baseURL)
}

func TestItemPublicTokenExchange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/public_token/exchange", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-client-id", body["client_id"], "credentials belong in the request body")
		assert.Equal(t, "public-sandbox-abc", body["public_token"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "access-sandbox-xyz",
			"item_id":      "item-1",
			"request_id":   "req-1",
		})
	})

	result, err := client.ItemPublicTokenExchange(context.Background(), "public-sandbox-abc")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-xyz", result.AccessToken)
	assert.Equal(t, "item-1", result.ItemID)
}

func TestSandboxPublicTokenCreate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sandbox/public_token/create", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultSandboxInstitution, body["institution_id"], "empty institution falls back to the default")

		json.NewEncoder(w).Encode(map[string]string{"public_token": "public-sandbox-abc"})
	})

	token, err := client.SandboxPublicTokenCreate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "public-sandbox-abc", token)
}

func TestSandboxPublicTokenCreateRequiresSandbox(t *testing.T) {
	client, err := NewClient(&Options{
		ClientID:    "c",
		Secret:      "s",
		Environment: "production",
	})
	require.NoError(t, err)

	_, err = client.SandboxPublicTokenCreate(context.Background(), "")
	assert.Error(t, err)
}

func TestGetAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/get", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"accounts": []map[string]interface{}{
				{"account_id": "a1", "name": "Plaid Checking", "subtype": "checking"},
				{"account_id": "a2", "name": "Plaid Saving", "subtype": "savings"},
			},
		})
	})

	accounts, err := client.GetAccounts(context.Background(), "access-token")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, progress.Account{AccountID: "a1", Name: "Plaid Checking", Subtype: "checking"}, accounts[0])
}

func TestGetTransactionsParsesDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/get", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-02-13", body["start_date"])
		assert.Equal(t, "2025-03-15", body["end_date"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": []map[string]interface{}{
				{
					"account_id": "a1",
					"date":       "2025-03-14",
					"amount":     12.5,
					"name":       "Uber",
					"category":   []string{"Travel", "Taxi"},
				},
			},
			"total_transactions": 1,
		})
	})

	start, err := progress.ParseDate("2025-02-13")
	require.NoError(t, err)
	end, err := progress.ParseDate("2025-03-15")
	require.NoError(t, err)

	transactions, err := client.GetTransactions(context.Background(), "access-token", start, end)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "a1", transactions[0].AccountID)
	assert.Equal(t, "2025-03-14", transactions[0].Date.String())
	assert.Equal(t, 12.5, transactions[0].Amount)
	assert.Equal(t, []string{"Travel", "Taxi"}, transactions[0].Category)
}

func TestAPIErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error_type":    "INVALID_INPUT",
			"error_code":    "INVALID_ACCESS_TOKEN",
			"error_message": "could not find matching access token",
		})
	})

	_, err := client.GetAccounts(context.Background(), "bogus")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok, "expected an APIError, got %T", err)
	assert.Equal(t, "INVALID_INPUT", apiErr.ErrorType)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "INVALID_ACCESS_TOKEN")
}

func TestAPIErrorKeepsMessageWithoutType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error_message": "planned maintenance",
		})
	})

	_, err := client.GetAccounts(context.Background(), "tok")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "planned maintenance", apiErr.Message, "decoded error_message must survive a missing error_type")
	assert.Contains(t, apiErr.Error(), "planned maintenance")
}

// recordingSentryTransport stands in for Sentry's HTTP transport so
// captured events can be inspected without network access.
type recordingSentryTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *recordingSentryTransport) Configure(options sentry.ClientOptions) {}

func (t *recordingSentryTransport) SendEvent(event *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *recordingSentryTransport) Flush(timeout time.Duration) bool { return true }

func (t *recordingSentryTransport) FlushWithContext(ctx context.Context) bool { return true }

func (t *recordingSentryTransport) captured() []*sentry.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*sentry.Event(nil), t.events...)
}

func TestSentryCapturesRequestFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error_type":    "INVALID_INPUT",
			"error_code":    "INVALID_ACCESS_TOKEN",
			"error_message": "could not find matching access token",
		})
	}))
	t.Cleanup(server.Close)

	transport := &recordingSentryTransport{}
	client, err := NewClient(&Options{
		ClientID:   "c",
		Secret:     "s",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		SentryOptions: &sentry.ClientOptions{
			Dsn:       "https://public@sentry.example.com/1",
			Transport: transport,
		},
	})
	require.NoError(t, err)

	_, err = client.GetAccounts(context.Background(), "bogus")
	require.Error(t, err)
	client.Close()

	events := transport.captured()
	require.Len(t, events, 1, "a failed provider call must be captured")
	assert.Equal(t, "/accounts/get", events[0].Tags["plaid.endpoint"])
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.GetAccounts(context.Background(), "tok")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "502")
}
