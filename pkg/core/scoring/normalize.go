package scoring

// Normalize rescales values onto [0,1] via min-max scaling across the
// input. If all values are equal (including singleton inputs) every output
// is 0.0: a metric with no variance across the candidate set carries no
// discriminative signal and contributes nothing to the composite score.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	vmin, vmax := values[0], values[0]
	for _, v := range values[1:] {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}

	normalized := make([]float64, len(values))
	if vmax == vmin {
		return normalized
	}

	for i, v := range values {
		normalized[i] = (v - vmin) / (vmax - vmin)
	}
	return normalized
}
