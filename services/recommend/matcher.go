package recommend

import (
	"fmt"
	"sort"

	courseRepo "coursebot/database/repository/course"
	"coursebot/models"

	"go.uber.org/zap"
)

// Tier is a presentation-only relevance bucket derived from the score.
type Tier int

const (
	TierOther Tier = iota
	TierRelevant
	TierHigh
)

// RankedCourse pairs a candidate course with its computed relevance.
type RankedCourse struct {
	Course models.Course
	Score  float64
	Tier   Tier
}

// Matcher ranks age-eligible courses for a dialog profile.
type Matcher interface {
	Rank(age int, interests string) ([]RankedCourse, error)
}

// DefaultMatcher implements Matcher against the course repository.
type DefaultMatcher struct {
	CourseRepo courseRepo.CourseRepository
	Logger     *zap.Logger
}

// Rank queries the age-eligible candidates, scores each one and returns them
// sorted by descending score. Ties keep ascending course id order (the order
// the repository returns), so repeated runs over identical data are stable.
// An empty result is returned as an empty slice, not an error.
func (m *DefaultMatcher) Rank(age int, interests string) ([]RankedCourse, error) {
	courses, err := m.CourseRepo.FindByAge(age)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses for age %d: %w", age, err)
	}
	if len(courses) == 0 {
		m.Logger.Info("No courses matched", zap.Int("age", age))
		return []RankedCourse{}, nil
	}

	ranked := make([]RankedCourse, 0, len(courses))
	for _, c := range courses {
		s := Score(age, interests, c)
		ranked = append(ranked, RankedCourse{Course: c, Score: s, Tier: tierFor(s)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

func tierFor(score float64) Tier {
	switch {
	case score > highRelevanceMin:
		return TierHigh
	case score > relevanceMin:
		return TierRelevant
	default:
		return TierOther
	}
}
