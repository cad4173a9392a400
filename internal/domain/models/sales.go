package models

// SalesRecord is a single sales line item submitted for analysis or
// ingested from the bus. Revenue is derived during aggregation and
// never stored on the record itself.
type SalesRecord struct {
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ProductTotals holds per-product aggregates.
type ProductTotals struct {
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SalesSummary is the result of aggregating a batch of sales records.
// Products preserves first-appearance order of the product keys so a
// given input ordering always yields the same iteration order.
type SalesSummary struct {
	TotalRevenue   float64                  `json:"total_revenue"`
	TotalQuantity  int                      `json:"total_quantity"`
	AveragePrice   float64                  `json:"average_price"`
	ProductSummary map[string]ProductTotals `json:"product_summary"`
	RecordCount    int                      `json:"record_count"`
	Products       []string                 `json:"-"`
}

// DemoSales is a generated batch of sample sales records.
type DemoSales struct {
	SalesData []SalesRecord `json:"sales_data"`
	Count     int           `json:"count"`
}
