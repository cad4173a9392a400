package models

// Quartiles holds the 25th, 50th and 75th percentiles of a sample.
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// Statistics is the descriptive summary of a numeric sample, including
// quartiles. Std is the population standard deviation.
type Statistics struct {
	Mean      float64   `json:"mean"`
	Median    float64   `json:"median"`
	Std       float64   `json:"std"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Count     int       `json:"count"`
	Quartiles Quartiles `json:"quartiles"`
}

// NumberAnalysis is the companion summary shape for ad-hoc numeric
// submissions: aggregate totals instead of quartiles. Variance is the
// population variance (Std squared).
type NumberAnalysis struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Count    int     `json:"count"`
	Sum      float64 `json:"sum"`
	Variance float64 `json:"variance"`
}

// Trend direction values.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendFlat       = "flat"
)

// TrendForecast is a least-squares line fit plus forward extrapolation.
type TrendForecast struct {
	Slope       float64   `json:"slope"`
	Intercept   float64   `json:"intercept"`
	Predictions []float64 `json:"predictions"`
	Trend       string    `json:"trend"`
}

// ChartSeries is a generated time series for chart rendering.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Type   string    `json:"type"`
}
