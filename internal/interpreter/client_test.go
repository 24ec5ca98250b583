package interpreter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"txn-search/internal/dictionary"
	"txn-search/internal/models"

	"github.com/stretchr/testify/suite"
)

// ClientSuite defines the test suite for the interpreter client
type ClientSuite struct {
	suite.Suite
	dict          *dictionary.Dictionary
	referenceDate time.Time
}

func (s *ClientSuite) SetupTest() {
	s.dict = dictionary.Load()
	s.referenceDate = time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) newServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)
	return server, NewClient(server.URL, s.dict, nil)
}

func (s *ClientSuite) TestInterpret_Success() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/interpret", r.URL.Path)

		var req map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("coffee purchases last month", req["query"])
		s.Equal("2026-02-09", req["reference_date"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"date_from":        "2026-01-01",
			"date_to":          "2026-01-31",
			"category_phrases": []string{"coffee"},
			"merchant_phrases": []string{"Starbucks"},
			"summary":          "coffee purchases in January 2026",
		})
	})

	interp, err := client.Interpret(context.Background(), "coffee purchases last month", s.referenceDate)
	s.NoError(err)
	s.Require().NotNil(interp)

	s.Require().NotNil(interp.DateFrom)
	s.Equal("2026-01-01", interp.DateFrom.Format("2006-01-02"))
	s.Require().NotNil(interp.DateTo)
	s.Equal("2026-01-31", interp.DateTo.Format("2006-01-02"))

	s.Equal([]string{models.CategoryCoffeeTea}, interp.CategoryIDs)
	s.Contains(interp.MerchantKeywords, "starbucks")
	s.Equal("coffee purchases in January 2026", interp.Summary)
}

func (s *ClientSuite) TestInterpret_AmountCentsToDecimal() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"amount_min_cents": 5000,
			"amount_max_cents": 20000,
		})
	})

	interp, err := client.Interpret(context.Background(), "between fifty and two hundred dollars", s.referenceDate)
	s.NoError(err)
	s.Require().NotNil(interp.AmountMin)
	s.Equal("50", interp.AmountMin.String())
	s.Require().NotNil(interp.AmountMax)
	s.Equal("200", interp.AmountMax.String())
}

func (s *ClientSuite) TestInterpret_ServerErrorIsUnavailable() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	interp, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureUnavailable, KindOf(err))
}

func (s *ClientSuite) TestInterpret_ConnectionRefusedIsUnavailable() {
	client := NewClient("http://127.0.0.1:1", s.dict, nil)

	interp, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureUnavailable, KindOf(err))
}

func (s *ClientSuite) TestInterpret_ContextDeadlineIsTimeout() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	interp, err := client.Interpret(ctx, "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureTimeout, KindOf(err))
}

func (s *ClientSuite) TestInterpret_InvalidJSONIsMalformed() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	interp, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureMalformed, KindOf(err))
}

func (s *ClientSuite) TestInterpret_InvertedDateRangeIsMalformed() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"date_from": "2026-02-01",
			"date_to":   "2026-01-01",
		})
	})

	interp, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureMalformed, KindOf(err))
}

func (s *ClientSuite) TestInterpret_UnparseableDateIsMalformed() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"date_from": "January 1st",
		})
	})

	interp, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Nil(interp)
	s.Equal(FailureMalformed, KindOf(err))
}

func (s *ClientSuite) TestInterpret_BreakerOpensAfterRepeatedFailures() {
	server, _ := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	client := NewClient(server.URL, s.dict, breaker)

	for i := 0; i < 3; i++ {
		_, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
		s.Error(err)
	}
	s.Equal(StateOpen, breaker.GetState())

	// Open breaker short-circuits without touching the network
	_, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
	s.Equal(FailureUnavailable, KindOf(err))
}

func (s *ClientSuite) TestInterpret_MalformedPayloadCountsAsAvailability() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	s.T().Cleanup(server.Close)

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     1,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	client := NewClient(server.URL, s.dict, breaker)

	// Repeated malformed payloads never trip the breaker; the transport
	// exchange itself succeeded.
	for i := 0; i < 3; i++ {
		_, err := client.Interpret(context.Background(), "coffee", s.referenceDate)
		s.Equal(FailureMalformed, KindOf(err))
	}
	s.Equal(StateClosed, breaker.GetState())
}
