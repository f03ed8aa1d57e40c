package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant_dashboard/internal/models"
)

const (
	DefaultAirtableBaseURL = "https://api.airtable.com/v0"
	airtablePageSize       = 100
	// maxAirtablePages bounds pagination if the API keeps handing out offsets.
	maxAirtablePages = 1000
)

// AirtableConfig holds the credentials and endpoint for the Airtable REST API.
type AirtableConfig struct {
	Token   string
	BaseID  string
	BaseURL string
	Timeout time.Duration
}

// Enabled reports whether enough credentials are present to call Airtable.
func (c AirtableConfig) Enabled() bool {
	return c.Token != "" && c.BaseID != ""
}

type airtableRecordSource struct {
	cfg    AirtableConfig
	client *http.Client
}

// NewAirtableRecordSource creates a RecordSource backed by the Airtable REST API.
func NewAirtableRecordSource(cfg AirtableConfig, client *http.Client) RecordSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAirtableBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &airtableRecordSource{cfg: cfg, client: client}
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type airtablePage struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

// FetchAll follows the offset cursor until every page of the table is read.
func (s *airtableRecordSource) FetchAll(ctx context.Context, table string) ([]models.RawRecord, error) {
	records := []models.RawRecord{}
	offset := ""
	for page := 0; page < maxAirtablePages; page++ {
		p, err := s.fetchPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}
		for _, r := range p.Records {
			fields := r.Fields
			if fields == nil {
				fields = map[string]any{}
			}
			records = append(records, models.RawRecord{ID: r.ID, Fields: fields})
		}
		if p.Offset == "" {
			return records, nil
		}
		offset = p.Offset
	}
	return nil, fmt.Errorf("%w: %s: too many pages", ErrUpstream, table)
}

func (s *airtableRecordSource) fetchPage(ctx context.Context, table, offset string) (*airtablePage, error) {
	q := url.Values{}
	q.Set("pageSize", fmt.Sprint(airtablePageSize))
	if offset != "" {
		q.Set("offset", offset)
	}
	endpoint := fmt.Sprintf("%s/%s/%s?%s", s.cfg.BaseURL, url.PathEscape(s.cfg.BaseID), url.PathEscape(table), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrUpstream, table, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstream, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: status %d: %s", ErrUpstream, table, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var page airtablePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrUpstream, table, err)
	}
	return &page, nil
}
