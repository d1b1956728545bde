package recommend

import (
	"math"
	"testing"

	"coursebot/models"

	"github.com/stretchr/testify/assert"
)

func TestExpandKnownKeyword(t *testing.T) {
	terms := Expand("программирование")
	assert.Contains(t, terms, "программирование")
	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "код")
}

func TestExpandIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Expand("дизайн"), Expand("ДИЗАЙН"))
}

func TestExpandUnknownKeyword(t *testing.T) {
	assert.Equal(t, []string{"шахматы"}, Expand("шахматы"))
}

func TestDeriveTags(t *testing.T) {
	tags := DeriveTags("Python-разработка", "Учимся программированию на Python")
	assert.Contains(t, tags, "python")
	assert.Contains(t, tags, "программирование")
	assert.Contains(t, tags, "код")
}

func TestDeriveTagsDeterministic(t *testing.T) {
	first := DeriveTags("Геймдизайн и программирование", "создаём игры")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveTags("Геймдизайн и программирование", "создаём игры"))
	}
}

func TestDeriveTagsNoMatches(t *testing.T) {
	assert.Empty(t, DeriveTags("Шахматы", "турнирная подготовка"))
}

func TestScorePeaksAtRangeMidpoint(t *testing.T) {
	course := models.Course{Name: "Python", MinAge: 8, MaxAge: 12}

	mid := Score(10, "", course)
	edge := Score(12, "", course)
	outside := Score(14, "", course)

	assert.InDelta(t, 1.0, mid, 1e-9)
	assert.Greater(t, mid, edge)
	assert.Greater(t, edge, outside)
}

func TestScoreDegenerateAgeRange(t *testing.T) {
	course := models.Course{Name: "Подготовка к ЕГЭ", MinAge: 17, MaxAge: 17}

	exact := Score(17, "", course)
	off := Score(15, "", course)

	assert.InDelta(t, 1.0, exact, 1e-9)
	assert.False(t, math.IsNaN(off))
	assert.False(t, math.IsInf(off, 0))
	assert.Greater(t, exact, off)
}

func TestScoreNeutralWithoutInterests(t *testing.T) {
	course := models.Course{Name: "Робототехника", MinAge: 8, MaxAge: 12, Tags: []string{"роботы"}}
	assert.InDelta(t, Score(10, "", course), Score(10, "   ", course), 1e-9)
	assert.InDelta(t, 1.0, Score(10, "", course), 1e-9)
}

func TestScoreTagMatchRaisesScore(t *testing.T) {
	course := models.Course{Name: "Робототехника", MinAge: 8, MaxAge: 12, Tags: []string{"роботы", "механика"}}

	plain := Score(10, "шахматы", course)
	matched := Score(10, "роботы", course)

	assert.Greater(t, matched, plain)
	assert.InDelta(t, 1.5, matched, 1e-9)
}

func TestScoreSynonymExpansionMatchesTags(t *testing.T) {
	course := models.Course{Name: "Курс по кодингу", MinAge: 8, MaxAge: 12, Tags: []string{"python"}}

	// "программирование" expands to "python" and should hit the tag set.
	assert.InDelta(t, 1.5, Score(10, "программирование", course), 1e-9)
}

func TestScoreNameWordBonusStacks(t *testing.T) {
	course := models.Course{Name: "Python для начинающих", MinAge: 8, MaxAge: 12, Tags: []string{"python"}}

	// Token hits both the tag set (0.5) and a name word (0.3).
	assert.InDelta(t, 1.8, Score(10, "python", course), 1e-9)
}

func TestScoreFallsBackToTextWhenNoTags(t *testing.T) {
	course := models.Course{
		Name:        "Веб-разработка",
		Description: "Создание сайтов на javascript",
		MinAge:      10, MaxAge: 14,
	}

	assert.InDelta(t, 1.5, Score(12, "javascript", course), 1e-9)
}
