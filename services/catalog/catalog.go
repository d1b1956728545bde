package catalog

import (
	"fmt"
	"strings"

	adminRepo "coursebot/database/repository/admin"
	courseRepo "coursebot/database/repository/course"
	locationRepo "coursebot/database/repository/location"
	trialRepo "coursebot/database/repository/trial"
	userRepo "coursebot/database/repository/user"
	"coursebot/models"
	"coursebot/services/recommend"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CourseInput is the staff-facing payload for creating or editing a course.
type CourseInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MinAge      int      `json:"minAge"`
	MaxAge      int      `json:"maxAge"`
	Tags        []string `json:"tags,omitempty"`
}

// CatalogService is the administrative surface: course, location, tag and
// trial management plus admin registration.
type CatalogService interface {
	ListCourses() ([]models.Course, error)
	CreateCourse(input CourseInput) (*models.Course, error)
	UpdateCourse(id string, input CourseInput) (*models.Course, error)
	SetCourseTags(id string, tags []string) error
	DeleteCourse(id string) error

	ListLocations() ([]models.Location, error)
	CreateLocation(district, address string) (*models.Location, error)
	DeleteLocation(id string) error

	ListTrials(unconfirmedOnly bool) ([]models.TrialLessonView, error)
	ConfirmTrial(id string) error
	ClearTrials() (int64, error)

	AddAdmin(chatID int64) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Courses   courseRepo.CourseRepository
	Locations locationRepo.LocationRepository
	Trials    trialRepo.TrialRepository
	Users     userRepo.UserRepository
	Admins    adminRepo.AdminRepository
	Logger    *zap.Logger
}

func (s *DefaultCatalogService) ListCourses() ([]models.Course, error) {
	return s.Courses.GetAll()
}

// CreateCourse validates the input and inserts the course. When staff assign
// no tags, a tag set is auto-derived from the name and description so the
// recommender has something to match on.
func (s *DefaultCatalogService) CreateCourse(input CourseInput) (*models.Course, error) {
	if err := validateCourseInput(input); err != nil {
		return nil, err
	}

	tags := normalizeTags(input.Tags)
	if len(tags) == 0 {
		tags = recommend.DeriveTags(input.Name, input.Description)
	}

	course := models.Course{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		Tags:        tags,
	}
	if err := s.Courses.Create(&course); err != nil {
		return nil, err
	}
	s.Logger.Info("Course created", zap.String("courseId", course.ID), zap.String("name", course.Name))
	return &course, nil
}

func (s *DefaultCatalogService) UpdateCourse(id string, input CourseInput) (*models.Course, error) {
	if err := validateCourseInput(input); err != nil {
		return nil, err
	}
	existing, err := s.Courses.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.MinAge = input.MinAge
	existing.MaxAge = input.MaxAge
	if tags := normalizeTags(input.Tags); len(tags) > 0 {
		existing.Tags = tags
	} else if len(existing.Tags) == 0 {
		existing.Tags = recommend.DeriveTags(input.Name, input.Description)
	}

	if err := s.Courses.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultCatalogService) SetCourseTags(id string, tags []string) error {
	return s.Courses.SetTags(id, normalizeTags(tags))
}

func (s *DefaultCatalogService) DeleteCourse(id string) error {
	return s.Courses.Delete(id)
}

func (s *DefaultCatalogService) ListLocations() ([]models.Location, error) {
	return s.Locations.GetAll()
}

func (s *DefaultCatalogService) CreateLocation(district, address string) (*models.Location, error) {
	if district == "" || address == "" {
		return nil, fmt.Errorf("district and address are required")
	}
	location := models.Location{
		ID:       uuid.New().String(),
		District: district,
		Address:  address,
	}
	if err := s.Locations.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *DefaultCatalogService) DeleteLocation(id string) error {
	return s.Locations.Delete(id)
}

// ListTrials joins trials with their user, course and location rows. A trial
// whose references were deleted since is skipped with a warning rather than
// failing the whole listing.
func (s *DefaultCatalogService) ListTrials(unconfirmedOnly bool) ([]models.TrialLessonView, error) {
	trials, err := s.Trials.GetAll(unconfirmedOnly)
	if err != nil {
		return nil, err
	}

	views := make([]models.TrialLessonView, 0, len(trials))
	for _, t := range trials {
		user, err := s.Users.GetByID(t.UserID)
		if err != nil {
			s.Logger.Warn("Trial references missing user",
				zap.String("trialId", t.ID), zap.Error(err))
			continue
		}
		course, err := s.Courses.GetByID(t.CourseID)
		if err != nil {
			s.Logger.Warn("Trial references missing course",
				zap.String("trialId", t.ID), zap.Error(err))
			continue
		}

		view := models.TrialLessonView{Trial: t, User: *user, Course: *course}
		if t.LocationID != "" {
			if location, err := s.Locations.GetByID(t.LocationID); err == nil {
				view.Location = location
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *DefaultCatalogService) ConfirmTrial(id string) error {
	return s.Trials.Confirm(id)
}

func (s *DefaultCatalogService) ClearTrials() (int64, error) {
	return s.Trials.Clear()
}

func (s *DefaultCatalogService) AddAdmin(chatID int64) error {
	if chatID == 0 {
		return fmt.Errorf("invalid admin chat id")
	}
	return s.Admins.Add(&models.Admin{ChatID: chatID})
}

func validateCourseInput(input CourseInput) error {
	switch {
	case input.Name == "":
		return fmt.Errorf("course name is required")
	case input.MinAge < 0:
		return fmt.Errorf("minimum age must not be negative")
	case input.MaxAge <= input.MinAge:
		return fmt.Errorf("maximum age must be greater than minimum age")
	}
	return nil
}

// normalizeTags lowercases, trims and deduplicates an incoming tag list.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
