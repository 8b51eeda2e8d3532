package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/WanderingWalnut/HomeRun/config"
	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
)

const (
	// SandboxBaseURL is the Plaid sandbox environment base URL
	SandboxBaseURL = "https://sandbox.plaid.com"

	// DevelopmentBaseURL is the Plaid development environment base URL
	DevelopmentBaseURL = "https://development.plaid.com"

	// ProductionBaseURL is the Plaid production environment base URL
	ProductionBaseURL = "https://production.plaid.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultSandboxInstitution is the fake bank used for sandbox tokens
	DefaultSandboxInstitution = "ins_109511"
)

// Options configures the Plaid client.
type Options struct {
	// ClientID and Secret are the Plaid API credentials, injected into
	// every request body per the Plaid wire protocol.
	ClientID string
	Secret   string

	// Environment selects the base URL: sandbox, development or production.
	Environment string

	// BaseURL overrides the environment-derived base URL.
	BaseURL string

	// HTTPClient allows using a custom HTTP client.
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout.
	Timeout time.Duration

	// RetryMax caps transient-failure retries.
	RetryMax int

	// SentryDSN enables Sentry error tracking when set.
	SentryDSN string

	// SentryOptions allows full control over the Sentry client. When set,
	// SentryDSN overrides its Dsn field.
	SentryOptions *sentry.ClientOptions
}

// Client talks to the Plaid REST API. It is safe for concurrent use.
type Client struct {
	baseURL       string
	clientID      string
	secret        string
	sandbox       bool
	httpClient    *http.Client
	sentryEnabled bool
}

// NewClient creates a Plaid client from options.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.ClientID == "" || opts.Secret == "" {
		return nil, errors.New("plaid: missing client id or secret")
	}

	sentryEnabled := false
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = opts.Environment
		}
		if err := sentry.Init(sentryOpts); err != nil {
			return nil, errors.Wrap(err, "plaid: sentry init")
		}
		sentryEnabled = true
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		switch opts.Environment {
		case "production":
			baseURL = ProductionBaseURL
		case "development":
			baseURL = DevelopmentBaseURL
		case "sandbox", "":
			baseURL = SandboxBaseURL
		default:
			return nil, errors.Errorf("plaid: unknown environment %q", opts.Environment)
		}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = opts.RetryMax
		if retryClient.RetryMax == 0 {
			retryClient.RetryMax = 3
		}
		retryClient.Logger = nil
		httpClient = retryClient.StandardClient()
	}
	if opts.Timeout > 0 {
		httpClient.Timeout = opts.Timeout
	} else if httpClient.Timeout == 0 {
		httpClient.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:       baseURL,
		clientID:      opts.ClientID,
		secret:        opts.Secret,
		sandbox:       opts.Environment == "sandbox" || opts.Environment == "",
		httpClient:    httpClient,
		sentryEnabled: sentryEnabled,
	}, nil
}

// NewClientFromConfig builds a client from app configuration.
func NewClientFromConfig(cfg *config.Config) (*Client, error) {
	return NewClient(&Options{
		ClientID:    cfg.Plaid.ClientID,
		Secret:      cfg.Plaid.Secret,
		Environment: cfg.Plaid.Environment,
		SentryDSN:   cfg.Plaid.SentryDSN,
	})
}

// Sandbox reports whether the client targets the sandbox environment.
func (c *Client) Sandbox() bool {
	return c.sandbox
}

// Close flushes pending Sentry events. Call it on shutdown when the
// client was built with a Sentry DSN.
func (c *Client) Close() {
	if c.sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

func (c *Client) captureError(ctx context.Context, path string, err error) {
	if !c.sentryEnabled {
		return
	}
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("plaid.endpoint", path)
			hub.CaptureException(err)
		})
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("plaid.endpoint", path)
		sentry.CaptureException(err)
	})
}

// ItemPublicTokenExchange trades a public token from the Link flow for a
// long-lived access token.
func (c *Client) ItemPublicTokenExchange(ctx context.Context, publicToken string) (*ExchangeResult, error) {
	var resp itemPublicTokenExchangeResponse
	err := c.post(ctx, "/item/public_token/exchange", &itemPublicTokenExchangeRequest{
		credentials: c.credentials(),
		PublicToken: publicToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ExchangeResult{AccessToken: resp.AccessToken, ItemID: resp.ItemID}, nil
}

// SandboxPublicTokenCreate generates a public token against a sandbox
// institution. Only valid for sandbox clients.
func (c *Client) SandboxPublicTokenCreate(ctx context.Context, institutionID string) (string, error) {
	if !c.sandbox {
		return "", errors.New("plaid: sandbox token creation requires the sandbox environment")
	}
	if institutionID == "" {
		institutionID = DefaultSandboxInstitution
	}

	var resp sandboxPublicTokenCreateResponse
	err := c.post(ctx, "/sandbox/public_token/create", &sandboxPublicTokenCreateRequest{
		credentials:     c.credentials(),
		InstitutionID:   institutionID,
		InitialProducts: []string{"transactions"},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.PublicToken, nil
}

// GetAccounts returns the accounts behind an access token.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]progress.Account, error) {
	var resp accountsGetResponse
	err := c.post(ctx, "/accounts/get", &accountsGetRequest{
		credentials: c.credentials(),
		AccessToken: accessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	accounts := make([]progress.Account, 0, len(resp.Accounts))
	for _, account := range resp.Accounts {
		accounts = append(accounts, progress.Account{
			AccountID: account.AccountID,
			Name:      account.Name,
			Subtype:   account.Subtype,
		})
	}
	return accounts, nil
}

// GetBalances returns current balances for the accounts behind an access
// token.
func (c *Client) GetBalances(ctx context.Context, accessToken string) ([]AccountBalance, error) {
	var resp accountsGetResponse
	err := c.post(ctx, "/accounts/balance/get", &accountsGetRequest{
		credentials: c.credentials(),
		AccessToken: accessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	balances := make([]AccountBalance, 0, len(resp.Accounts))
	for _, account := range resp.Accounts {
		balances = append(balances, AccountBalance{
			AccountID: account.AccountID,
			Name:      account.Name,
			Subtype:   account.Subtype,
			Current:   account.Balances.Current,
			Available: account.Balances.Available,
		})
	}
	return balances, nil
}

// GetTransactions returns transactions dated within [start, end]. A
// provider failure is always a non-nil error, never an empty slice.
func (c *Client) GetTransactions(ctx context.Context, accessToken string, start, end progress.Date) ([]progress.Transaction, error) {
	var resp transactionsGetResponse
	err := c.post(ctx, "/transactions/get", &transactionsGetRequest{
		credentials: c.credentials(),
		AccessToken: accessToken,
		StartDate:   start.String(),
		EndDate:     end.String(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) credentials() credentials {
	return credentials{ClientID: c.clientID, Secret: c.secret}
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "plaid: encode %s request", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "plaid: build %s request", path)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "plaid: %s", path)
		c.captureError(ctx, path, err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "plaid: read %s response", path)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		c.captureError(ctx, path, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrapf(err, "plaid: decode %s response", path)
	}
	return nil
}
