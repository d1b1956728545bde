package catalog

import (
	"fmt"

	"coursebot/config"
	"coursebot/models"
	"coursebot/services/recommend"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedCourse struct {
	name        string
	description string
	minAge      int
	maxAge      int
}

var seedCourses = []seedCourse{
	{"Основы логики и программирования", "🧠 Развиваем логическое мышление и изучаем основы программирования. Идеально для начинающих!", 6, 7},
	{"Компьютерная грамотность", "💻 Освойте основы работы с компьютером. Навыки, которые пригодятся каждому!", 7, 9},
	{"Создание веб-сайтов", "🌐 Научим создавать современные веб-сайты с нуля. От HTML до CSS и JavaScript!", 11, 13},
	{"Графический дизайн", "🎨 Курс по созданию графики и дизайну. Развиваем креативность и художественный вкус!", 9, 14},
	{"Визуальное программирование", "🖥️ Программирование через визуальные блоки. Идеально для детей!", 9, 10},
	{"Python", "🐍 Изучение языка программирования Python. От основ до создания реальных проектов!", 12, 17},
	{"Видеоблогинг", "🎥 Как создавать и продвигать видеоконтент. Стань звездой YouTube!", 9, 11},
	{"Фронтенд-разработка", "🖥️ Курс по созданию интерфейсов для веб-сайтов. Освой HTML, CSS и JavaScript!", 15, 18},
	{"Геймдизайн", "🎮 Создание игр и игровых миров. Развиваем воображение и технические навыки!", 10, 11},
	{"Математика", "🧮 Углубленное изучение математики для школьников. Подготовка к олимпиадам и экзаменам!", 6, 13},
	{"Предпринимательство", "💼 Основы бизнеса и предпринимательства для детей. Как превратить идею в успешный проект!", 13, 16},
	{"Подготовка к ЕГЭ", "📚 Подготовка к ЕГЭ по математике и информатике. Максимальные баллы гарантированы!", 17, 18},
}

var seedLocations = [][2]string{
	{"Выя", "ул. Черных, д. 23"},
	{"Центр", "просп. Мира, д. 49 (этаж 3)"},
	{"ГГМ", "ул. Захарова, д. 10А"},
	{"Вогонка", "ул. Володарского, д. 1"},
}

// EnsureSeedData populates reference data on an empty deployment: the main
// admin from configuration, the default locations and the starter courses
// (with auto-derived tags). Existing data is left untouched.
func (s *DefaultCatalogService) EnsureSeedData() error {
	if id := config.AppConfig.MainAdminChatID; id != 0 {
		if err := s.Admins.Add(&models.Admin{ChatID: id}); err != nil {
			return fmt.Errorf("failed to seed main admin: %w", err)
		}
	}

	n, err := s.Locations.Count()
	if err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}
	if n == 0 {
		for _, l := range seedLocations {
			loc := models.Location{ID: uuid.New().String(), District: l[0], Address: l[1]}
			if err := s.Locations.Create(&loc); err != nil {
				return fmt.Errorf("failed to seed location %q: %w", l[1], err)
			}
		}
		s.Logger.Info("Seeded default locations", zap.Int("count", len(seedLocations)))
	}

	n, err = s.Courses.Count()
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if n == 0 {
		for _, c := range seedCourses {
			course := models.Course{
				ID:          uuid.New().String(),
				Name:        c.name,
				Description: c.description,
				MinAge:      c.minAge,
				MaxAge:      c.maxAge,
				Tags:        recommend.DeriveTags(c.name, c.description),
			}
			if err := s.Courses.Create(&course); err != nil {
				return fmt.Errorf("failed to seed course %q: %w", c.name, err)
			}
		}
		s.Logger.Info("Seeded starter courses", zap.Int("count", len(seedCourses)))
	}

	return nil
}
