package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pcpart-scraper/config"
	"pcpart-scraper/utils"
)

// newChatServer fakes the analysis endpoint, answering every request with
// the given assistant contents in order (the last one repeats).
func newChatServer(t *testing.T, contents ...string) (*httptest.Server, *[]chatRequest) {
	t.Helper()
	var seen []chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if r.Header.Get("Authorization") == "" {
			t.Error("request missing Authorization header")
		}
		seen = append(seen, req)

		idx := len(seen) - 1
		if idx >= len(contents) {
			idx = len(contents) - 1
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": contents[idx]}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func testClient(url string) *Client {
	return NewClient(&config.Config{
		OpenRouterAPIKey: "test-key",
		AnalysisModel:    "x-ai/grok-4-fast:free",
		AnalysisBaseURL:  url,
	})
}

func keylessClient() *Client {
	return NewClient(&config.Config{
		AnalysisModel:   "x-ai/grok-4-fast:free",
		AnalysisBaseURL: "http://127.0.0.1:1",
	})
}

func testLogger() *utils.Logger { return utils.NewLogger(false) }
