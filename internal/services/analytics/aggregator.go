package analytics

import "SolarAPI/internal/domain/models"

// Aggregate groups sales records by product and computes per-product and
// global totals. Revenue per record is quantity times price. Products are
// matched by exact, case-sensitive name; the summary's Products slice holds
// product keys in first-appearance order.
//
// The average price is the arithmetic mean over records, not weighted by
// quantity.
func Aggregate(items []models.SalesRecord) (*models.SalesSummary, error) {
	if len(items) == 0 {
		return nil, &EmptyInputError{Op: "aggregate sales"}
	}

	summary := &models.SalesSummary{
		ProductSummary: make(map[string]models.ProductTotals, len(items)),
		RecordCount:    len(items),
	}

	var priceSum float64
	for _, item := range items {
		revenue := float64(item.Quantity) * item.Price

		totals, seen := summary.ProductSummary[item.Product]
		if !seen {
			summary.Products = append(summary.Products, item.Product)
		}
		totals.Quantity += item.Quantity
		totals.Revenue += revenue
		summary.ProductSummary[item.Product] = totals

		summary.TotalRevenue += revenue
		summary.TotalQuantity += item.Quantity
		priceSum += item.Price
	}

	summary.AveragePrice = priceSum / float64(len(items))
	return summary, nil
}
