package metrics

import "strings"

// Keyword lists for the report scoring heuristic. Occurrences are counted
// per keyword over the lowercased document text, so keywords may overlap
// each other in the source.
var positiveKeywords = []string{
	"successful", "collaboration", "won", "first place", "mentorship",
	"improved", "impact", "innovation", "praise", "excellent",
	"record attendance", "strong engagement", "high satisfaction",
}

var negativeKeywords = []string{
	"postponements", "lower turnout", "challenges", "conflicts",
	"cancelled", "delay",
}

// ScoreReport computes the keyword sentiment score for one report
// document: clamp((positives - 0.5*negatives) / 10, 0, 1). This is a
// deterministic heuristic proxy, not NLP; the keyword lists and the /10
// scaling are part of the output contract.
func ScoreReport(text string) float64 {
	lowered := strings.ToLower(text)

	var positives, negatives int
	for _, keyword := range positiveKeywords {
		positives += strings.Count(lowered, keyword)
	}
	for _, keyword := range negativeKeywords {
		negatives += strings.Count(lowered, keyword)
	}

	score := (float64(positives) - 0.5*float64(negatives)) / 10.0
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
