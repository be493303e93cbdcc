package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"pcpart-scraper/models"
	"pcpart-scraper/utils"
)

const (
	dealTemperature = 0.3
	dealMaxTokens   = 1000
	dealTimeout     = 30 * time.Second
)

const dealSystemPrompt = `You are an expert PC hardware analyst. Analyze PC component deals and determine if they represent good value.

Consider these factors:
1. Component type and specifications
2. Price compared to typical market value
3. Brand reputation and reliability
4. Age and condition (if mentioned)
5. Market trends and availability

Respond with a JSON object containing:
- "is_good_deal": boolean
- "confidence": float (0.0 to 1.0)
- "reasoning": string explaining your analysis
- "recommendation": string with specific advice
- "market_value_estimate": string with estimated fair price range
- "deal_score": integer (1-10, where 10 is exceptional deal)`

// Annotator attaches deal analyses to the cheapest records first. The cap
// bounds calls to a paid, rate-limited service; the cheapest-first order
// puts the likeliest bargains in front of the reader.
type Annotator struct {
	client *Client
	log    *utils.Logger
}

func NewAnnotator(client *Client, log *utils.Logger) *Annotator {
	return &Annotator{client: client, log: log}
}

// Annotate returns the records in ascending price order with an analysis
// attached to at most limit of them. The remainder rides along unannotated.
// One record's failed analysis never stops the next: every failure becomes
// a fallback analysis on that record alone.
func (a *Annotator) Annotate(ctx context.Context, records []*models.Record, limit int) []*models.Record {
	sorted := sortByPrice(records)

	n := limit
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}

	a.log.Info("Analyzing %d of %d products...", n, len(sorted))
	for i := 0; i < n; i++ {
		rec := sorted[i]
		a.log.Info("Analyzing %d/%d: %s", i+1, n, truncate(rec.Name, 50))
		rec.AttachAnalysis(a.analyzeDeal(ctx, rec))
	}
	return sorted
}

func (a *Annotator) analyzeDeal(ctx context.Context, rec *models.Record) *models.DealAnalysis {
	if !a.client.Ready() {
		return &models.DealAnalysis{
			Reasoning:      "No API key provided",
			Recommendation: "Unable to analyze without API key",
		}
	}

	user := fmt.Sprintf("Analyze this PC component deal:\n\nProduct: %s\nPrice: %s\nDetails: %s\nURL: %s\n\nIs this a good deal? Provide detailed analysis.",
		rec.Name, rec.Price, rec.RawText, rec.URL)

	content, err := a.client.Complete(ctx, dealSystemPrompt, user, dealTemperature, dealMaxTokens, dealTimeout)
	if err != nil {
		a.log.Warn("Deal analysis failed for %s: %v", truncate(rec.Name, 50), err)
		return &models.DealAnalysis{
			Reasoning:           fmt.Sprintf("AI analysis failed: %v", err),
			Recommendation:      "Manual review recommended",
			MarketValueEstimate: "Unknown",
		}
	}

	var analysis models.DealAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &analysis); err != nil {
		// The model answered in prose. Salvage a coarse judgment from the
		// text instead of discarding the round-trip.
		lower := strings.ToLower(content)
		return &models.DealAnalysis{
			IsGoodDeal:          strings.Contains(lower, "good deal") || strings.Contains(lower, "excellent"),
			Confidence:          0.5,
			DealScore:           5,
			Reasoning:           ellipsize(content, 200),
			Recommendation:      "See reasoning for details",
			MarketValueEstimate: "Unable to determine",
		}
	}
	return &analysis
}

// sortByPrice orders records cheapest first without mutating the input
// slice. Records without a readable price sort after every priced record,
// keeping their relative order.
func sortByPrice(records []*models.Record) []*models.Record {
	sorted := make([]*models.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, iok := sorted[i].PriceValue()
		pj, jok := sorted[j].PriceValue()
		if iok && jok {
			return pi < pj
		}
		return iok && !jok
	})
	return sorted
}

func ellipsize(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
