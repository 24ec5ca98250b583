package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"txn-search/internal/dictionary"
	"txn-search/internal/models"

	"github.com/shopspring/decimal"
)

const (
	interpretPath = "/v1/interpret"
	dateLayout    = "2006-01-02"
)

// interpretRequest is the wire request to the NL understanding service. The
// reference date anchors relative phrases ("last month") so resolution is
// deterministic for a given server date.
type interpretRequest struct {
	Query         string `json:"query"`
	ReferenceDate string `json:"reference_date"`
}

// interpretResponse is the wire response. Phrases arrive raw; the client
// expands them through the dictionary into canonical category identifiers
// and merchant aliases.
type interpretResponse struct {
	DateFrom            string   `json:"date_from,omitempty"`
	DateTo              string   `json:"date_to,omitempty"`
	AmountMinCents      *int64   `json:"amount_min_cents,omitempty"`
	AmountMaxCents      *int64   `json:"amount_max_cents,omitempty"`
	CategoryPhrases     []string `json:"category_phrases,omitempty"`
	MerchantPhrases     []string `json:"merchant_phrases,omitempty"`
	DescriptionKeywords []string `json:"description_keywords,omitempty"`
	Summary             string   `json:"summary,omitempty"`
}

// Client calls the external NL understanding service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dict       *dictionary.Dictionary
	breaker    *CircuitBreaker
}

// NewClient creates an interpreter client. The http.Client carries no
// timeout of its own; every call is bounded by the caller's context.
func NewClient(baseURL string, dict *dictionary.Dictionary, breaker *CircuitBreaker) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		dict:       dict,
		breaker:    breaker,
	}
}

// Interpret sends the query to the understanding service and converts the
// reply into an Interpretation. Every failure is a typed *Error; none abort
// the surrounding search request.
func (c *Client) Interpret(ctx context.Context, query string, referenceDate time.Time) (*models.Interpretation, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		return nil, unavailable(errors.New("circuit breaker is open"))
	}

	body, err := json.Marshal(interpretRequest{
		Query:         query,
		ReferenceDate: referenceDate.Format(dateLayout),
	})
	if err != nil {
		return nil, unavailable(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+interpretPath, bytes.NewReader(body))
	if err != nil {
		return nil, unavailable(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		if isTimeout(err) {
			return nil, timeout(err)
		}
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		return nil, unavailable(fmt.Errorf("interpret service returned status %d", resp.StatusCode))
	}

	// A well-formed HTTP exchange counts as service availability even when
	// the payload turns out to be unusable.
	c.recordSuccess()

	var wire interpretResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, malformed(fmt.Errorf("decode response: %w", err))
	}

	return c.buildInterpretation(&wire)
}

func (c *Client) buildInterpretation(wire *interpretResponse) (*models.Interpretation, error) {
	interp := &models.Interpretation{Summary: wire.Summary}

	if wire.DateFrom != "" {
		from, err := time.Parse(dateLayout, wire.DateFrom)
		if err != nil {
			return nil, malformed(fmt.Errorf("invalid date_from %q", wire.DateFrom))
		}
		interp.DateFrom = &from
	}
	if wire.DateTo != "" {
		to, err := time.Parse(dateLayout, wire.DateTo)
		if err != nil {
			return nil, malformed(fmt.Errorf("invalid date_to %q", wire.DateTo))
		}
		interp.DateTo = &to
	}
	if interp.DateFrom != nil && interp.DateTo != nil && interp.DateFrom.After(*interp.DateTo) {
		return nil, malformed(fmt.Errorf("date_from %q after date_to %q", wire.DateFrom, wire.DateTo))
	}

	if wire.AmountMinCents != nil {
		amountMin := decimal.New(*wire.AmountMinCents, -2)
		interp.AmountMin = &amountMin
	}
	if wire.AmountMaxCents != nil {
		amountMax := decimal.New(*wire.AmountMaxCents, -2)
		interp.AmountMax = &amountMax
	}

	categoryIDs, categoryAliases := c.dict.ExpandCategories(wire.CategoryPhrases)
	interp.CategoryIDs = categoryIDs

	merchantKeywords := c.dict.ExpandMerchants(wire.MerchantPhrases)
	merchantKeywords = appendMissing(merchantKeywords, categoryAliases)
	interp.MerchantKeywords = merchantKeywords

	for _, kw := range wire.DescriptionKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			interp.DescriptionKeywords = append(interp.DescriptionKeywords, kw)
		}
	}

	return interp, nil
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func appendMissing(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}
