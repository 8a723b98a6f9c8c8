package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/steelyard-audit/steelyard/internal/model"
)

// Rating and description each contribute up to half the SEO ceiling.
const (
	ratingExcellent = 4.7
	ratingDecent    = 4.0

	ratingExcellentScore = 10.0
	ratingDecentScore    = 7.0
	ratingLowScore       = 3.0
	ratingUnknownScore   = 5.0

	descriptionFullChars = 1000
	descriptionOkChars   = 500

	descriptionFullScore  = 10.0
	descriptionOkScore    = 7.0
	descriptionShortScore = 3.0

	minKeywords = 5
)

// scoreSEO scores content quality and buyer rating, up to 20 points.
//
// A missing rating earns a neutral 5, not the low-rating penalty; a new
// listing without reviews is not the same as a badly reviewed one.
func (e *Engine) scoreSEO(acc *accumulator, rating *float64, description string, keywords []string) float64 {
	score := 0.0

	switch {
	case rating == nil:
		score += ratingUnknownScore
	case *rating >= ratingExcellent:
		score += ratingExcellentScore
		acc.recommend(fmt.Sprintf("Excellent rating: %.1f", *rating))
	case *rating >= ratingDecent:
		score += ratingDecentScore
		acc.recommend(fmt.Sprintf("Rating %.1f: keep working on quality", *rating))
	default:
		score += ratingLowScore
		acc.addRisk(model.RiskLowRating, model.SeverityHigh,
			fmt.Sprintf("Low rating %.1f", *rating),
			"Improve product quality and returns handling")
	}

	// Descriptions are frequently non-ASCII, so measure characters, not bytes.
	descriptionLen := utf8.RuneCountInString(description)

	switch {
	case descriptionLen >= descriptionFullChars:
		score += descriptionFullScore
		acc.recommend("Thorough product description")
	case descriptionLen >= descriptionOkChars:
		score += descriptionOkScore
		acc.recommend("Description could be extended")
	default:
		score += descriptionShortScore
		acc.addRisk(model.RiskIncompleteDescription, model.SeverityMedium,
			"Description is not detailed enough",
			"Add specifications, benefits, and usage instructions")
	}

	// Keyword coverage affects ranking but not the score.
	if len(keywords) < minKeywords {
		acc.addRisk(model.RiskInsufficientKeywords, model.SeverityLow,
			"Too few SEO keywords",
			"Work popular search phrases into the description")
	}

	return minFloat(score, model.MaxSEOScore)
}
