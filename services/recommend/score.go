package recommend

import (
	"math"
	"strings"

	"coursebot/models"
)

const (
	interestBase     = 1.0
	tagMatchBonus    = 0.5
	nameExactBonus   = 0.3
	highRelevanceMin = 1.5
	relevanceMin     = 1.2
)

// Score computes the relevance of a course for a child of the given age with
// the given free-text interests. Pure and total: any course with a valid age
// range produces a finite score, including a degenerate minAge == maxAge one.
func Score(age int, interests string, course models.Course) float64 {
	return ageScore(age, course) * interestScore(interests, course)
}

// ageScore peaks at 1.0 when the age sits exactly on the midpoint of the
// course range and decays as it diverges, normalized by the range width.
func ageScore(age int, course models.Course) float64 {
	center := float64(course.MinAge+course.MaxAge) / 2
	distance := math.Abs(float64(age) - center)

	width := float64(course.MaxAge - course.MinAge)
	normalized := distance
	if width > 0 {
		normalized = distance / width
	}
	return 1 / (1 + normalized)
}

// interestScore starts neutral at 1.0 and grows by 0.5 for every interest
// token that matches the course tag set (or, when the course carries no tags,
// the words of its name and description), plus 0.3 for every token that
// literally appears in the course name.
func interestScore(interests string, course models.Course) float64 {
	tokens := strings.Fields(strings.ToLower(interests))
	if len(tokens) == 0 {
		return interestBase
	}

	matchSet := tagSet(course)
	nameWords := wordSet(course.Name)

	score := interestBase
	for _, token := range tokens {
		for _, term := range Expand(token) {
			if matchSet[term] {
				score += tagMatchBonus
				break
			}
		}
		if nameWords[token] {
			score += nameExactBonus
		}
	}
	return score
}

// tagSet returns the course's explicit tags, falling back to the lowercase
// words of its name and description when no tags were assigned.
func tagSet(course models.Course) map[string]bool {
	if len(course.Tags) > 0 {
		set := make(map[string]bool, len(course.Tags))
		for _, t := range course.Tags {
			set[strings.ToLower(t)] = true
		}
		return set
	}
	return wordSet(course.Name + " " + course.Description)
}

func wordSet(text string) map[string]bool {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.Trim(w, ".,!?:;()\"'")] = true
	}
	return set
}
