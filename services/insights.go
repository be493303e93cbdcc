package services

import (
	"fmt"
	"sort"
	"strings"

	"pcpart-scraper/models"
	"pcpart-scraper/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(records []*models.Record) *models.InsightReport {
	report := &models.InsightReport{
		RecordsByCategory: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	var analyzed []*models.Record
	var dealScoreTotal int
	first := true

	for _, rec := range records {
		if cat := rec.Attributes["component"]; cat != "" {
			report.RecordsByCategory[cat]++
		}

		price, ok := rec.PriceValue()
		if ok {
			report.PricedRecords++
			if first {
				report.MinPrice = price
				report.MaxPrice = price
				report.Cheapest = rec
				report.MostExpensive = rec
				first = false
			}
			report.AveragePrice += price
			if price < report.MinPrice {
				report.MinPrice = price
				report.Cheapest = rec
			}
			if price > report.MaxPrice {
				report.MaxPrice = price
				report.MostExpensive = rec
			}
		}

		if rec.Analysis != nil {
			analyzed = append(analyzed, rec)
			dealScoreTotal += rec.Analysis.DealScore
			if rec.Analysis.IsGoodDeal {
				report.GoodDeals++
			}
		}
	}

	if report.PricedRecords > 0 {
		report.AveragePrice = round2(report.AveragePrice / float64(report.PricedRecords))
		report.MinPrice = round2(report.MinPrice)
		report.MaxPrice = round2(report.MaxPrice)
	}

	// Top 5 by deal score, good deals only
	report.AnalyzedRecords = len(analyzed)
	if len(analyzed) > 0 {
		report.AverageDealScore = round1(float64(dealScoreTotal) / float64(len(analyzed)))

		good := make([]*models.Record, 0, len(analyzed))
		for _, rec := range analyzed {
			if rec.Analysis.IsGoodDeal {
				good = append(good, rec)
			}
		}
		sort.SliceStable(good, func(i, j int) bool {
			return good[i].Analysis.DealScore > good[j].Analysis.DealScore
		})
		if len(good) > 5 {
			good = good[:5]
		}
		report.TopDeals = good
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 PC PART SCRAPE INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total records     : \033[1m%d\033[0m\n", r.TotalRecords)
	fmt.Printf("  With usable price : \033[1m%d\033[0m\n", r.PricedRecords)
	fmt.Println()

	// Price Stats
	fmt.Printf("\033[1;33m  Price Statistics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.PricedRecords > 0 {
		fmt.Printf("  Average price : \033[1;32m€%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum price : \033[1;32m€%.2f\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum price : \033[1;32m€%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	// Cheapest / most expensive
	if r.Cheapest != nil {
		fmt.Printf("\033[1;33m  Price Extremes\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Cheapest : %s (%s)\n", truncate(r.Cheapest.Name, 42), r.Cheapest.Price)
		fmt.Printf("  Priciest : %s (%s)\n", truncate(r.MostExpensive.Name, 42), r.MostExpensive.Price)
		fmt.Println()
	}

	// Category breakdown, only for mixed datasets
	if len(r.RecordsByCategory) > 0 {
		fmt.Printf("\033[1;33m  Records by Component\033[0m\n")
		fmt.Printf("  %s\n", thin)

		type catCount struct {
			cat   string
			count int
		}
		var cats []catCount
		maxCount := 0
		for cat, cnt := range r.RecordsByCategory {
			cats = append(cats, catCount{cat, cnt})
			if cnt > maxCount {
				maxCount = cnt
			}
		}
		sort.Slice(cats, func(i, j int) bool {
			if cats[i].count != cats[j].count {
				return cats[i].count > cats[j].count
			}
			return cats[i].cat < cats[j].cat
		})
		for _, cc := range cats {
			width := cc.count * 30 / maxCount
			if width < 1 {
				width = 1
			}
			bar := strings.Repeat("█", width)
			fmt.Printf("  %-16s %s (%d)\n", cc.cat, bar, cc.count)
		}
		fmt.Println()
	}

	// Deal summary, only when analyses are present
	if r.AnalyzedRecords > 0 {
		fmt.Printf("\033[1;33m  AI Deal Analysis\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Records analyzed   : \033[1m%d\033[0m\n", r.AnalyzedRecords)
		fmt.Printf("  Good deals found   : \033[1;32m%d\033[0m\n", r.GoodDeals)
		fmt.Printf("  Average deal score : \033[1m%.1f/10\033[0m\n", r.AverageDealScore)
		fmt.Println()

		if len(r.TopDeals) > 0 {
			fmt.Printf("\033[1;33m  Top AI-Recommended Deals\033[0m\n")
			fmt.Printf("  %s\n", thin)
			for i, rec := range r.TopDeals {
				fmt.Printf("  \033[1m%d.\033[0m %-44s \033[1;32m%d/10\033[0m\n",
					i+1, truncate(rec.Name, 42), rec.Analysis.DealScore)
				fmt.Printf("     %s | %s\n", rec.Price, truncate(rec.Analysis.Reasoning, 60))
			}
			fmt.Println()
		}
	}

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
