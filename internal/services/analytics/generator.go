package analytics

import (
	"math/rand"
	"time"

	"SolarAPI/internal/domain/models"
)

// Generated-sample distribution parameters.
const (
	sampleMean   = 100.0
	sampleStdDev = 15.0
)

var demoProducts = []string{"Laptop", "Mouse", "Keyboard", "Monitor"}

// GenerateSample draws count values from a normal(100, 15) distribution.
// count is checked against the configured bounds.
func (c *Calculator) GenerateSample(count int) ([]float64, error) {
	if count < c.bounds.Min || count > c.bounds.Max {
		return nil, &RangeError{
			Param: "count",
			Min:   c.bounds.Min,
			Max:   c.bounds.Max,
			Value: count,
		}
	}

	sample := make([]float64, count)
	for i := range sample {
		sample[i] = rand.NormFloat64()*sampleStdDev + sampleMean
	}
	return sample, nil
}

// GenerateDemoSales produces one record per product per day over the last
// `days` days ending at now, with random quantities and prices.
func GenerateDemoSales(days int, now time.Time) *models.DemoSales {
	data := make([]models.SalesRecord, 0, days*len(demoProducts))
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		for _, product := range demoProducts {
			data = append(data, models.SalesRecord{
				Date:     date,
				Product:  product,
				Quantity: 1 + rand.Intn(19),
				Price:    10 + rand.Float64()*990,
			})
		}
	}
	return &models.DemoSales{SalesData: data, Count: len(data)}
}

// NextChartValue advances a chart random walk by one step.
func NextChartValue(prev float64) float64 {
	return prev + rand.NormFloat64()
}

// GenerateChartSeries produces a daily cumulative random walk around 100,
// one point per day ending at now.
func GenerateChartSeries(points int, now time.Time) *models.ChartSeries {
	labels := make([]string, points)
	values := make([]float64, points)

	level := 100.0
	for i := 0; i < points; i++ {
		labels[i] = now.AddDate(0, 0, i-points+1).Format("2006-01-02")
		level += rand.NormFloat64()
		values[i] = level
	}

	return &models.ChartSeries{
		Labels: labels,
		Values: values,
		Type:   "time_series",
	}
}
