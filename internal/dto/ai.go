package dto

// ScanResponse represents a plant-disease prediction result
type ScanResponse struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Advice     string  `json:"advice,omitempty"`
}
