package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source lists available node implementations from a remote directory,
// queried by search term. Implementations may be unavailable at any time;
// the catalog degrades to its static lists.
type Source interface {
	Search(ctx context.Context, term string) ([]Entry, error)
}

// searchTerms drive remote enrichment, batched to respect rate limits.
var searchTerms = []string{
	"trigger", "webhook", "schedule", "http", "email", "slack", "google",
	"database", "ai", "crm", "file", "message",
}

const defaultSourceTimeout = 15 * time.Second

// HTTPSource queries a directory-style HTTP listing of node implementations.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source against the given base URL. A nil client
// gets a default with a bounded timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: defaultSourceTimeout}
	}

	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

type sourceItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Group       string `json:"group"`
}

type sourceListing struct {
	Items []sourceItem `json:"items"`
}

// Search queries the directory for node implementations matching the term.
func (s *HTTPSource) Search(ctx context.Context, term string) ([]Entry, error) {
	endpoint := s.baseURL + "/nodes?search=" + url.QueryEscape(term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build source request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status %d", resp.StatusCode)
	}

	var listing sourceListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode source listing: %w", err)
	}

	entries := make([]Entry, 0, len(listing.Items))

	for _, item := range listing.Items {
		if item.Name == "" {
			continue
		}

		entries = append(entries, Entry{
			Type:        item.Name,
			Category:    categoryFromGroup(item.Name, item.Group),
			DisplayName: item.DisplayName,
		})
	}

	return entries, nil
}

// categoryFromGroup maps the directory's group label onto a vocabulary
// category, keyed off the type identifier where the label is ambiguous.
func categoryFromGroup(typeName, group string) Category {
	switch {
	case typeName == IfType || typeName == SwitchType:
		return CategoryBranching
	case strings.HasPrefix(typeName, "@n8n/n8n-nodes-langchain."):
		return CategoryLangChain
	case strings.Contains(strings.ToLower(group), "trigger"):
		return CategoryTrigger
	default:
		return CategoryAction
	}
}
