package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// searchFields limits the response to the fields we map onto domain.Book.
	searchFields = "key,title,author_name,subject,first_sentence,isbn,number_of_pages_median,first_publish_year,cover_i"

	coverURLFormat = "https://covers.openlibrary.org/b/id/%d-M.jpg"
)

// RateLimitConfig holds rate limiting configuration for the search endpoint.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit stays well below Open Library's published courtesy
// limits so interactive type-ahead traffic never trips a block.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 3.0, BurstSize: 5}

// Client queries the Open Library search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ driven.MetadataSearcher = (*Client)(nil)

// NewClient creates a client against the given base URL. An empty baseURL
// selects the public Open Library endpoint.
func NewClient(baseURL string) *Client {
	return NewClientWithConfig(baseURL, DefaultRateLimit, nil)
}

// NewClientWithConfig creates a client with custom rate limiting and an
// optional http.Client (nil selects a default with DefaultTimeout).
func NewClientWithConfig(baseURL string, limits RateLimitConfig, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultMetadataBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(limits.RequestsPerSecond), limits.BurstSize),
	}
}

// searchResponse mirrors the subset of the /search.json payload we consume.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	AuthorName     []string `json:"author_name"`
	Subject        []string `json:"subject"`
	FirstSentence  []string `json:"first_sentence"`
	ISBN           []string `json:"isbn"`
	PageCount      int      `json:"number_of_pages_median"`
	FirstPublished int      `json:"first_publish_year"`
	CoverID        int      `json:"cover_i"`
}

// Search queries the API and maps matching works onto domain books.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Book, error) {
	if query == "" {
		return []domain.Book{}, nil
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint, err := c.searchURL(query, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("openlibrary: GET %s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", domain.ErrMetadataUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrMetadataUnavailable, err)
	}

	books := make([]domain.Book, 0, len(payload.Docs))
	for _, doc := range payload.Docs {
		if doc.Title == "" {
			continue
		}
		books = append(books, doc.toBook())
	}

	logger.Debug("openlibrary: %d results for %q", len(books), query)
	return books, nil
}

func (c *Client) searchURL(query string, limit int) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	base.Path = "/search.json"

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", searchFields)
	base.RawQuery = params.Encode()

	return base.String(), nil
}

func (d searchDoc) toBook() domain.Book {
	book := domain.Book{
		ID:            d.Key,
		Title:         d.Title,
		PageCount:     d.PageCount,
		PublishedYear: d.FirstPublished,
	}
	if len(d.AuthorName) > 0 {
		book.Author = d.AuthorName[0]
	}
	if len(d.Subject) > 0 {
		book.Genre = d.Subject[0]
	}
	if len(d.FirstSentence) > 0 {
		book.Description = d.FirstSentence[0]
	}
	if len(d.ISBN) > 0 {
		book.ISBN = d.ISBN[0]
	}
	if d.CoverID > 0 {
		book.CoverURL = fmt.Sprintf(coverURLFormat, d.CoverID)
	}
	return book
}
