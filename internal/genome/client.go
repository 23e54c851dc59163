package genome

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"team-fit/internal/domain"
)

// ErrProfileNotFound indica que el upstream no conoce ese username.
var ErrProfileNotFound = errors.New("profile not found")

// Client define la interfaz hacia la API de genomas upstream.
type Client interface {
	FetchBio(ctx context.Context, username string) (domain.Profile, error)
	SearchPeople(ctx context.Context, query SearchQuery) ([]PersonSummary, error)
}

// SearchQuery es la busqueda que reenviamos al upstream.
type SearchQuery struct {
	Term  string `json:"term"`
	Limit int    `json:"limit,omitempty"`
}

// PersonSummary es una entrada de autocompletado de personas.
type PersonSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Headline string `json:"professionalHeadline,omitempty"`
	Picture  string `json:"picture,omitempty"`
}

// HTTPClient implementa Client contra la API real de bios y busqueda.
type HTTPClient struct {
	bioBaseURL    string
	searchBaseURL string
	client        *http.Client
	logger        *zap.Logger
}

// NewHTTPClient construye el cliente upstream con timeouts razonables.
func NewHTTPClient(bioBaseURL, searchBaseURL string, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		bioBaseURL:    strings.TrimRight(bioBaseURL, "/"),
		searchBaseURL: strings.TrimRight(searchBaseURL, "/"),
		client:        &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
	}
}

// FetchBio recupera y parsea el genoma publico de un username.
func (c *HTTPClient) FetchBio(ctx context.Context, username string) (domain.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Profile{}, errors.New("username is empty")
	}

	endpoint := c.bioBaseURL + "/bios/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetch bio %s: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Profile{}, fmt.Errorf("bio %s: %w", username, ErrProfileNotFound)
	}
	if resp.StatusCode >= 400 {
		c.logger.Warn("upstream bio error", zap.String("username", username), zap.Int("status", resp.StatusCode))
		return domain.Profile{}, fmt.Errorf("bio %s: upstream status %d", username, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read bio response: %w", err)
	}

	return ParseBio(username, body)
}

// SearchPeople reenvia la busqueda de personas al upstream.
func (c *HTTPClient) SearchPeople(ctx context.Context, query SearchQuery) ([]PersonSummary, error) {
	if strings.TrimSpace(query.Term) == "" {
		return []PersonSummary{}, nil
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal search query: %w", err)
	}

	endpoint := c.searchBaseURL + "/people/_search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn("upstream search error", zap.String("term", query.Term), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("search people: upstream status %d", resp.StatusCode)
	}

	var parsed struct {
		Results []PersonSummary `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if parsed.Results == nil {
		parsed.Results = []PersonSummary{}
	}
	return parsed.Results, nil
}
