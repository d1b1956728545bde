package recommend

import (
	"sort"
	"strings"
)

// tagTable maps a substring of a course name or description to the tags that
// course should carry. Used to auto-derive a tag set when staff create a
// course without assigning tags explicitly.
var tagTable = map[string][]string{
	"программирован": {"программирование", "код", "алгоритмы"},
	"логик":          {"логика", "математика", "программирование"},
	"python":         {"python", "программирование", "код"},
	"веб-сайт":       {"веб", "html", "css", "javascript", "программирование"},
	"фронтенд":       {"веб", "html", "css", "javascript", "программирование"},
	"компьютер":      {"компьютер", "грамотность"},
	"дизайн":         {"дизайн", "графика", "креатив"},
	"график":         {"графика", "дизайн", "арт"},
	"видеоблог":      {"блогинг", "видео", "ютуб"},
	"геймдизайн":     {"игры", "геймдизайн"},
	"игр":            {"игры", "геймдизайн"},
	"математик":      {"математика", "логика"},
	"предпринимат":   {"предпринимательство", "бизнес"},
	"бизнес":         {"предпринимательство", "бизнес"},
	"егэ":            {"егэ", "математика", "информатика"},
	"робот":          {"робототехника", "роботы"},
	"визуальн":       {"программирование", "скретч"},
}

// DeriveTags builds a tag set for a course from its name and description by
// substring-matching against the fixed keyword table. The result is
// deduplicated and sorted so derivation is deterministic.
func DeriveTags(name, description string) []string {
	haystack := strings.ToLower(name + " " + description)
	seen := make(map[string]bool)
	var tags []string
	for needle, derived := range tagTable {
		if !strings.Contains(haystack, needle) {
			continue
		}
		for _, t := range derived {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
