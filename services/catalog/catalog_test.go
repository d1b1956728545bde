package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCourseRepo struct {
	courses []models.Course
}

func (r *memCourseRepo) GetByID(id string) (*models.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, errors.New("course not found")
}

func (r *memCourseRepo) GetAll() ([]models.Course, error) { return r.courses, nil }

func (r *memCourseRepo) FindByAge(age int) ([]models.Course, error) {
	var out []models.Course
	for _, c := range r.courses {
		if c.AgeEligible(age) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCourseRepo) Create(course *models.Course) error {
	r.courses = append(r.courses, *course)
	return nil
}

func (r *memCourseRepo) Update(course *models.Course) error {
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			r.courses[i] = *course
			return nil
		}
	}
	return errors.New("course not found")
}

func (r *memCourseRepo) SetTags(id string, tags []string) error {
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses[i].Tags = tags
			return nil
		}
	}
	return errors.New("course not found")
}

func (r *memCourseRepo) Delete(id string) error {
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return errors.New("course not found")
}

func (r *memCourseRepo) Count() (int64, error) { return int64(len(r.courses)), nil }

type memLocationRepo struct {
	locations []models.Location
}

func (r *memLocationRepo) GetByID(id string) (*models.Location, error) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			l := r.locations[i]
			return &l, nil
		}
	}
	return nil, errors.New("location not found")
}

func (r *memLocationRepo) GetAll() ([]models.Location, error) { return r.locations, nil }

func (r *memLocationRepo) Create(location *models.Location) error {
	r.locations = append(r.locations, *location)
	return nil
}

func (r *memLocationRepo) Delete(id string) error {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return errors.New("location not found")
}

func (r *memLocationRepo) Count() (int64, error) { return int64(len(r.locations)), nil }

type memTrialRepo struct {
	trials []models.TrialLesson
}

func (r *memTrialRepo) CreateWithUser(_ context.Context, user *models.User, trial *models.TrialLesson) error {
	r.trials = append(r.trials, *trial)
	return nil
}

func (r *memTrialRepo) GetByID(id string) (*models.TrialLesson, error) {
	for i := range r.trials {
		if r.trials[i].ID == id {
			t := r.trials[i]
			return &t, nil
		}
	}
	return nil, errors.New("trial not found")
}

func (r *memTrialRepo) GetAll(unconfirmedOnly bool) ([]models.TrialLesson, error) {
	if !unconfirmedOnly {
		return r.trials, nil
	}
	var out []models.TrialLesson
	for _, t := range r.trials {
		if !t.Confirmed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTrialRepo) Confirm(id string) error {
	for i := range r.trials {
		if r.trials[i].ID == id {
			r.trials[i].Confirmed = true
			return nil
		}
	}
	return errors.New("trial not found")
}

func (r *memTrialRepo) Clear() (int64, error) {
	n := int64(len(r.trials))
	r.trials = nil
	return n, nil
}

type memUserRepo struct {
	users []models.User
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memUserRepo) GetAll() ([]models.User, error) { return r.users, nil }

func (r *memUserRepo) Create(user *models.User) error {
	r.users = append(r.users, *user)
	return nil
}

type memAdminRepo struct {
	chatIDs []int64
}

func (r *memAdminRepo) GetAllChatIDs() ([]int64, error) { return r.chatIDs, nil }

func (r *memAdminRepo) IsAdmin(chatID int64) (bool, error) {
	for _, id := range r.chatIDs {
		if id == chatID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAdminRepo) Add(admin *models.Admin) error {
	for _, id := range r.chatIDs {
		if id == admin.ChatID {
			return nil
		}
	}
	r.chatIDs = append(r.chatIDs, admin.ChatID)
	return nil
}

func newTestCatalog() (*DefaultCatalogService, *memCourseRepo, *memTrialRepo, *memUserRepo) {
	courses := &memCourseRepo{}
	trials := &memTrialRepo{}
	users := &memUserRepo{}
	svc := &DefaultCatalogService{
		Courses:   courses,
		Locations: &memLocationRepo{},
		Trials:    trials,
		Users:     users,
		Admins:    &memAdminRepo{},
		Logger:    zap.NewNop(),
	}
	return svc, courses, trials, users
}

func TestCreateCourseValidation(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	_, err := svc.CreateCourse(CourseInput{Name: "", MinAge: 6, MaxAge: 10})
	assert.Error(t, err)

	_, err = svc.CreateCourse(CourseInput{Name: "Python", MinAge: -1, MaxAge: 10})
	assert.Error(t, err)

	_, err = svc.CreateCourse(CourseInput{Name: "Python", MinAge: 10, MaxAge: 10})
	assert.Error(t, err)
}

func TestCreateCourseDerivesTagsWhenNoneGiven(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	course, err := svc.CreateCourse(CourseInput{
		Name:        "Python",
		Description: "Изучение языка программирования Python",
		MinAge:      12,
		MaxAge:      17,
	})
	require.NoError(t, err)
	assert.Contains(t, course.Tags, "python")
	assert.Contains(t, course.Tags, "программирование")
}

func TestCreateCourseNormalizesExplicitTags(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	course, err := svc.CreateCourse(CourseInput{
		Name:   "Шахматы",
		MinAge: 6,
		MaxAge: 16,
		Tags:   []string{" Шахматы ", "логика", "шахматы", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"шахматы", "логика"}, course.Tags)
}

func TestUpdateCourse(t *testing.T) {
	svc, courses, _, _ := newTestCatalog()
	created, err := svc.CreateCourse(CourseInput{
		Name: "Python", Description: "основы", MinAge: 12, MaxAge: 17,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(created.ID, CourseInput{
		Name: "Python PRO", Description: "продвинутый уровень", MinAge: 13, MaxAge: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, "Python PRO", updated.Name)
	assert.Equal(t, 13, updated.MinAge)

	stored, err := courses.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python PRO", stored.Name)
}

func TestSetCourseTags(t *testing.T) {
	svc, courses, _, _ := newTestCatalog()
	created, err := svc.CreateCourse(CourseInput{
		Name: "Python", MinAge: 12, MaxAge: 17,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetCourseTags(created.ID, []string{"Python", "КОД"}))
	stored, err := courses.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "код"}, stored.Tags)
}

func TestCreateLocationRequiresFields(t *testing.T) {
	svc, _, _, _ := newTestCatalog()

	_, err := svc.CreateLocation("", "ул. Ленина, 1")
	assert.Error(t, err)
	_, err = svc.CreateLocation("Центр", "")
	assert.Error(t, err)

	location, err := svc.CreateLocation("Центр", "ул. Ленина, 1")
	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)
}

func TestListTrialsJoinsReferences(t *testing.T) {
	svc, courses, trials, users := newTestCatalog()

	courses.Create(&models.Course{ID: "c1", Name: "Python", MinAge: 10, MaxAge: 14})
	users.Create(&models.User{ID: "u1", ParentName: "Анна", ChildName: "Миша"})
	trials.trials = append(trials.trials, models.TrialLesson{
		ID: "t1", UserID: "u1", CourseID: "c1", Date: time.Now(),
	})

	views, err := svc.ListTrials(false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Python", views[0].Course.Name)
	assert.Equal(t, "Анна", views[0].User.ParentName)
	assert.Nil(t, views[0].Location)
}

func TestListTrialsSkipsDanglingReferences(t *testing.T) {
	svc, courses, trials, users := newTestCatalog()

	courses.Create(&models.Course{ID: "c1", Name: "Python", MinAge: 10, MaxAge: 14})
	users.Create(&models.User{ID: "u1"})
	trials.trials = append(trials.trials,
		models.TrialLesson{ID: "t1", UserID: "u1", CourseID: "c1"},
		models.TrialLesson{ID: "t2", UserID: "missing", CourseID: "c1"},
		models.TrialLesson{ID: "t3", UserID: "u1", CourseID: "missing"},
	)

	views, err := svc.ListTrials(false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "t1", views[0].Trial.ID)
}

func TestListTrialsUnconfirmedOnly(t *testing.T) {
	svc, courses, trials, users := newTestCatalog()

	courses.Create(&models.Course{ID: "c1", Name: "Python", MinAge: 10, MaxAge: 14})
	users.Create(&models.User{ID: "u1"})
	trials.trials = append(trials.trials,
		models.TrialLesson{ID: "t1", UserID: "u1", CourseID: "c1", Confirmed: true},
		models.TrialLesson{ID: "t2", UserID: "u1", CourseID: "c1"},
	)

	views, err := svc.ListTrials(true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "t2", views[0].Trial.ID)
}

func TestConfirmAndClearTrials(t *testing.T) {
	svc, _, trials, _ := newTestCatalog()
	trials.trials = append(trials.trials,
		models.TrialLesson{ID: "t1"},
		models.TrialLesson{ID: "t2"},
	)

	require.NoError(t, svc.ConfirmTrial("t1"))
	assert.True(t, trials.trials[0].Confirmed)

	n, err := svc.ClearTrials()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Empty(t, trials.trials)
}

func TestAddAdminRejectsZeroChatID(t *testing.T) {
	svc, _, _, _ := newTestCatalog()
	assert.Error(t, svc.AddAdmin(0))
	assert.NoError(t, svc.AddAdmin(100500))
}
