package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jotterhq/jotter/client/auth/store"
	"github.com/jotterhq/jotter/client/auth/transport"
	"github.com/jotterhq/jotter/schema"
)

// Client is a thin wrapper over the notes service REST API. The only state
// it holds between calls is the session token kept in the token store.
type Client struct {
	baseURL    string
	store      store.Store
	base       http.RoundTripper
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a notes service client for the given base URL. The token store
// keeps the session across calls; pass a file-backed store to keep it across
// processes, or nil for an in-memory one.
func New(baseURL string, tokenStore store.Store, options ...Option) (*Client, error) {
	ret := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		store:   tokenStore,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	if ret.httpClient == nil {
		transportOptions := []transport.Option{transport.WithStore(ret.store)}
		if ret.base != nil {
			transportOptions = append(transportOptions, transport.WithTransport(ret.base))
		}
		roundTripper, err := transport.New(transportOptions...)
		if err != nil {
			return nil, err
		}
		ret.httpClient = &http.Client{Transport: roundTripper, Timeout: ret.timeout}
	}
	return ret, nil
}

// Store returns the token store backing this client.
func (c *Client) Store() store.Store {
	return c.store
}

// Register creates a new account. The service replies 201 on success; any
// other status surfaces as *schema.StatusError.
func (c *Client) Register(ctx context.Context, email, password string) error {
	credentials := &schema.Credentials{Email: email, Password: password}
	_, err := send[schema.Message](ctx, c, http.MethodPost, schema.PathRegister, credentials, http.StatusCreated, false)
	return err
}

// Login authenticates and saves the issued token in the token store. It is
// the only call that writes a token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	credentials := &schema.Credentials{Email: email, Password: password}
	result, err := send[schema.TokenResponse](ctx, c, http.MethodPost, schema.PathLogin, credentials, http.StatusOK, false)
	if err != nil {
		return err
	}
	if result.AccessToken == "" {
		return fmt.Errorf("login reply missing access_token")
	}
	return c.store.Save(result.AccessToken)
}

// Logout clears the stored session token. The service keeps no session
// state, so no call is made.
func (c *Client) Logout(ctx context.Context) error {
	return c.store.Clear()
}

// ListNotes returns the user's notes, newest first.
func (c *Client) ListNotes(ctx context.Context) ([]schema.Note, error) {
	result, err := send[[]schema.Note](ctx, c, http.MethodGet, schema.PathNotes, nil, http.StatusOK, true)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// CreateNote stores a new note and returns it with the assigned id.
func (c *Client) CreateNote(ctx context.Context, note *schema.NoteRequest) (*schema.Note, error) {
	return send[schema.Note](ctx, c, http.MethodPost, schema.PathNotes, note, http.StatusCreated, true)
}

// UpdateNote replaces the title and content of the note with the given id.
func (c *Client) UpdateNote(ctx context.Context, id int64, note *schema.NoteRequest) (*schema.Note, error) {
	return send[schema.Note](ctx, c, http.MethodPut, notePath(id), note, http.StatusOK, true)
}

// DeleteNote removes the note with the given id.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	_, err := send[schema.Message](ctx, c, http.MethodDelete, notePath(id), nil, http.StatusOK, true)
	return err
}

func notePath(id int64) string {
	return schema.PathNotes + "/" + strconv.FormatInt(id, 10)
}

func send[R any](ctx context.Context, c *Client, method, path string, payload any, expectStatus int, authenticated bool) (*R, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	if authenticated {
		ctx = transport.WithAuth(ctx)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != expectStatus {
		// a rejected token on a protected endpoint means the session is gone
		if authenticated && resp.StatusCode == http.StatusUnauthorized {
			return nil, schema.ErrSessionExpired
		}
		return nil, schema.NewStatusError(resp.StatusCode, string(data))
	}
	var result R
	if len(data) > 0 {
		if err = json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
	}
	return &result, nil
}
