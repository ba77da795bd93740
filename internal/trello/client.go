package trello

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/termllo/internal/models"
)

const (
	// DefaultBaseURL is the public Trello API root
	DefaultBaseURL = "https://api.trello.com/1"

	// maxErrorBody bounds how much of an error response ends up in messages
	maxErrorBody = 512
)

// Client talks to the Trello REST API with key/token authentication
type Client struct {
	apiKey  string
	token   string
	baseURL string
	client  *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root (tests use httptest)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Trello client
func NewClient(apiKey, token string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		token:   token,
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ API = (*Client)(nil)

// GetBoards returns every board of the authenticated member
func (c *Client) GetBoards(ctx context.Context) ([]models.Board, error) {
	var records []boardRecord
	query := url.Values{"fields": {"id,name,starred,dateLastView,dateLastActivity"}}
	if err := c.do(ctx, http.MethodGet, "/members/me/boards", query, nil, &records); err != nil {
		return nil, err
	}
	boards := make([]models.Board, len(records))
	for i, r := range records {
		boards[i] = r.toModel()
	}
	return boards, nil
}

// GetLists returns the open lists of a board in display order
func (c *Client) GetLists(ctx context.Context, boardID string) ([]models.List, error) {
	var records []listRecord
	query := url.Values{"fields": {"id,name,closed"}, "filter": {"open"}}
	if err := c.do(ctx, http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/lists", query, nil, &records); err != nil {
		return nil, err
	}
	lists := make([]models.List, 0, len(records))
	for _, r := range records {
		if r.Closed {
			continue
		}
		lists = append(lists, r.toModel())
	}
	return lists, nil
}

// GetCards returns the open cards of a board as a flat sequence
func (c *Client) GetCards(ctx context.Context, boardID string) ([]models.Card, error) {
	var records []cardRecord
	query := url.Values{"fields": {"id,name,desc,idList,pos"}}
	if err := c.do(ctx, http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/cards", query, nil, &records); err != nil {
		return nil, err
	}
	cards := make([]models.Card, len(records))
	for i, r := range records {
		cards[i] = r.toModel()
	}
	return cards, nil
}

// UpdateCardPosition moves a card to listID at pos and returns the pos the
// service actually assigned
func (c *Client) UpdateCardPosition(ctx context.Context, cardID, listID string, pos models.Position) (float64, error) {
	form := url.Values{
		"idList": {listID},
		"pos":    {pos.WireValue()},
	}
	var record cardRecord
	if err := c.do(ctx, http.MethodPut, "/cards/"+url.PathEscape(cardID), nil, form, &record); err != nil {
		return 0, err
	}
	return record.Pos, nil
}

// CreateCard creates a card and returns it as stored by the service
func (c *Client) CreateCard(ctx context.Context, card NewCard) (models.Card, error) {
	form := url.Values{
		"name":   {card.Name},
		"desc":   {card.Desc},
		"idList": {card.ListID},
		"pos":    {card.Pos.WireValue()},
	}
	var record cardRecord
	if err := c.do(ctx, http.MethodPost, "/cards", nil, form, &record); err != nil {
		return models.Card{}, err
	}
	return record.toModel(), nil
}

// UpdateCardFields replaces a card's name and description
func (c *Client) UpdateCardFields(ctx context.Context, cardID, name, desc string) error {
	form := url.Values{
		"name": {name},
		"desc": {desc},
	}
	return c.do(ctx, http.MethodPut, "/cards/"+url.PathEscape(cardID), nil, form, nil)
}

// do performs one request. Credentials travel as query parameters, write
// payloads as a form body. out may be nil when the response is ignored.
func (c *Client) do(ctx context.Context, method, path string, query, form url.Values, out any) error {
	op := method + " " + path

	if query == nil {
		query = url.Values{}
	}
	query.Set("key", c.apiKey)
	query.Set("token", c.token)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &models.TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &models.TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	if out == nil {
		return nil
	}
	if err := sonic.ConfigStd.Unmarshal(respBody, out); err != nil {
		return &models.TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
