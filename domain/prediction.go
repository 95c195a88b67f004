package domain

// Record is the caller-supplied feature set for one prediction request.
// Values arrive as JSON strings or numbers; coercion happens at encoding time.
type Record map[string]any

type Prediction struct {
	Value   int    `json:"prediction"`
	Version string `json:"version"`
}

// Metric is one named, dimensioned data point emitted per prediction
// or per input feature.
type Metric struct {
	Name       string
	Value      float64
	Unit       string
	Dimensions map[string]string
}
