package models

// InsightReport summarizes one record set for terminal display.
type InsightReport struct {
	TotalRecords  int
	PricedRecords int

	// RecordsByCategory counts records per component key. Only mixed
	// datasets carry the component attribute, so it may stay empty.
	RecordsByCategory map[string]int

	AveragePrice float64
	MinPrice     float64
	MaxPrice     float64

	Cheapest      *Record
	MostExpensive *Record

	// Deal fields are populated only when records carry analyses.
	AnalyzedRecords  int
	GoodDeals        int
	AverageDealScore float64
	TopDeals         []*Record
}
