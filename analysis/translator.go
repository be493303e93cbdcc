package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pcpart-scraper/models"
	"pcpart-scraper/utils"
)

const (
	queryTemperature = 0.4
	queryMaxTokens   = 800
	queryTimeout     = 20 * time.Second
)

const querySystemPrompt = `You are a PC hardware expert. Analyze user intent and generate optimal search parameters for finding PC components.

Return a JSON object with:
- "keywords": array of search keywords
- "components": array of relevant component types
- "price_range": object with "min" and "max" price suggestions
- "reasoning": explanation of your choices`

// Translator converts free-text user intent into structured search
// parameters via the analysis service.
type Translator struct {
	client *Client
	log    *utils.Logger
}

func NewTranslator(client *Client, log *utils.Logger) *Translator {
	return &Translator{client: client, log: log}
}

// Translate never fails: a missing key, an unreachable service, a non-2xx
// status, an empty body and undecodable output each degrade to a fallback
// suggestion whose reasoning names the cause. Components in the result are
// always a subset of available; an empty subset widens back to everything
// so the suggestion stays usable.
func (t *Translator) Translate(ctx context.Context, intent string, available []string) models.QuerySuggestion {
	if !t.client.Ready() {
		return fallbackSuggestion(available, "No API key provided for smart query generation")
	}

	user := fmt.Sprintf("User wants to: %s\n\nAvailable component types: %s\n\nGenerate smart search parameters to find the best matches.",
		intent, strings.Join(available, ", "))

	content, err := t.client.Complete(ctx, querySystemPrompt, user, queryTemperature, queryMaxTokens, queryTimeout)
	if err != nil {
		t.log.Warn("Smart query generation failed: %v", err)
		return fallbackSuggestion(available, fmt.Sprintf("Smart query generation failed: %v", err))
	}

	var suggestion models.QuerySuggestion
	if err := json.Unmarshal([]byte(extractJSON(content)), &suggestion); err != nil {
		t.log.Warn("Could not parse smart query response: %v", err)
		return fallbackSuggestion(available, fmt.Sprintf("AI response parsing failed. Raw response: %s...", truncate(content, 100)))
	}

	suggestion.Components = intersect(suggestion.Components, available)
	if len(suggestion.Components) == 0 {
		suggestion.Components = append([]string(nil), available...)
	}
	if suggestion.Keywords == nil {
		suggestion.Keywords = []string{}
	}
	return suggestion
}

func fallbackSuggestion(available []string, reasoning string) models.QuerySuggestion {
	return models.QuerySuggestion{
		Keywords:   []string{},
		Components: append([]string(nil), available...),
		Reasoning:  reasoning,
	}
}

// intersect keeps the members of got that appear in allowed, preserving
// got's order.
func intersect(got, allowed []string) []string {
	allow := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allow[a] = struct{}{}
	}
	var kept []string
	for _, g := range got {
		if _, ok := allow[g]; ok {
			kept = append(kept, g)
		}
	}
	return kept
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
