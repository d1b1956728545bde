package recommend

import "strings"

// synonyms maps a canonical interest keyword to related terms a parent may
// type instead. Static configuration, loaded once, never mutated at runtime.
var synonyms = map[string][]string{
	"программирование":    {"кодирование", "разработка", "программировать", "код", "алгоритмы", "python", "javascript"},
	"дизайн":              {"графика", "рисование", "креатив", "арт", "иллюстрация", "фотошоп", "веб-дизайн"},
	"математика":          {"алгебра", "геометрия", "математик", "цифры", "логика", "уравнения", "статистика"},
	"робототехника":       {"роботы", "робот", "механика", "электроника", "автоматизация", "arduino", "микроконтроллеры"},
	"блогинг":             {"видео", "ютуб", "контент", "медиа", "соцсети", "видеомонтаж", "продвижение"},
	"игры":                {"геймдизайн", "игростроение", "игровая индустрия", "игровые миры", "unity", "unreal engine"},
	"предпринимательство": {"бизнес", "стартап", "финансы", "маркетинг", "управление", "экономика", "продажи"},
}

// Expand returns the keyword itself plus its known synonyms. Unknown keywords
// expand to themselves only; the function is total over text input.
func Expand(keyword string) []string {
	keyword = strings.ToLower(keyword)
	out := make([]string, 0, len(synonyms[keyword])+1)
	out = append(out, keyword)
	out = append(out, synonyms[keyword]...)
	return out
}
