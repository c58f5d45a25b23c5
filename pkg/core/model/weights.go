package model

import "fmt"

// Weights is the evaluation weight vector applied to the six normalized
// score components. Weights are not required to sum to 1: the composite
// score is a weighted sum, not a weighted average, so its absolute
// magnitude carries no meaning on its own — only the ordering of scores
// computed in the same ranking call is meaningful.
type Weights struct {
	Social     float64
	Messaging  float64
	Awards     float64
	Feedback   float64
	Attendance float64
	Reports    float64
}

// DefaultWeights returns the standard weight distribution used when no
// weights row has been configured yet.
func DefaultWeights() Weights {
	return Weights{
		Social:     0.30,
		Messaging:  0.20,
		Awards:     0.20,
		Feedback:   0.15,
		Attendance: 0.15,
		Reports:    0.10,
	}
}

// Validate checks that no weight is negative
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"social":     w.Social,
		"messaging":  w.Messaging,
		"awards":     w.Awards,
		"feedback":   w.Feedback,
		"attendance": w.Attendance,
		"reports":    w.Reports,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative, got %v", name, v)
		}
	}
	return nil
}
