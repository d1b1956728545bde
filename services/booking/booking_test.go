package booking

import (
	"context"
	"errors"
	"testing"

	"coursebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTrialRepo struct {
	users  []models.User
	trials []models.TrialLesson
	err    error
}

func (f *fakeTrialRepo) CreateWithUser(ctx context.Context, user *models.User, trial *models.TrialLesson) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *user)
	f.trials = append(f.trials, *trial)
	return nil
}

func (f *fakeTrialRepo) GetByID(string) (*models.TrialLesson, error) { return nil, nil }
func (f *fakeTrialRepo) GetAll(bool) ([]models.TrialLesson, error)   { return f.trials, nil }
func (f *fakeTrialRepo) Confirm(string) error                        { return nil }
func (f *fakeTrialRepo) Clear() (int64, error)                       { return 0, nil }

type fakeCourseRepo struct {
	course *models.Course
}

func (f *fakeCourseRepo) GetByID(id string) (*models.Course, error) {
	if f.course == nil || f.course.ID != id {
		return nil, errors.New("course not found")
	}
	c := *f.course
	return &c, nil
}

func (f *fakeCourseRepo) GetAll() ([]models.Course, error)       { return nil, nil }
func (f *fakeCourseRepo) FindByAge(int) ([]models.Course, error) { return nil, nil }
func (f *fakeCourseRepo) Create(*models.Course) error            { return nil }
func (f *fakeCourseRepo) Update(*models.Course) error            { return nil }
func (f *fakeCourseRepo) SetTags(string, []string) error         { return nil }
func (f *fakeCourseRepo) Delete(string) error                    { return nil }
func (f *fakeCourseRepo) Count() (int64, error)                  { return 0, nil }

type fakeLocationRepo struct {
	location *models.Location
}

func (f *fakeLocationRepo) GetByID(id string) (*models.Location, error) {
	if f.location == nil || f.location.ID != id {
		return nil, errors.New("location not found")
	}
	l := *f.location
	return &l, nil
}

func (f *fakeLocationRepo) GetAll() ([]models.Location, error) { return nil, nil }
func (f *fakeLocationRepo) Create(*models.Location) error      { return nil }
func (f *fakeLocationRepo) Delete(string) error                { return nil }
func (f *fakeLocationRepo) Count() (int64, error)              { return 0, nil }

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) BookingCreated(ctx context.Context, user models.User, course models.Course, location *models.Location, trial models.TrialLesson) error {
	n.calls++
	return n.err
}

func completeSession() models.DialogSession {
	return models.DialogSession{
		ChatID:           42,
		ChildName:        "Миша",
		ChildAge:         12,
		ChildInterests:   "программирование",
		ParentName:       "Анна",
		Phone:            "+79161234567",
		SelectedCourseID: "1",
	}
}

func newTestService() (*DefaultBookingService, *fakeTrialRepo, *recordingNotifier) {
	trials := &fakeTrialRepo{}
	notif := &recordingNotifier{}
	svc := &DefaultBookingService{
		Trials: trials,
		Courses: &fakeCourseRepo{course: &models.Course{
			ID: "1", Name: "Python", MinAge: 10, MaxAge: 14,
		}},
		Locations: &fakeLocationRepo{location: &models.Location{
			ID: "10", District: "Центральный", Address: "ул. Ленина, 1",
		}},
		Notifier: notif,
		Logger:   zap.NewNop(),
	}
	return svc, trials, notif
}

func TestCommitPersistsUserAndTrial(t *testing.T) {
	svc, trials, notif := newTestService()

	trial, err := svc.Commit(context.Background(), completeSession())
	require.NoError(t, err)

	require.Len(t, trials.users, 1)
	require.Len(t, trials.trials, 1)
	assert.Equal(t, int64(42), trials.users[0].ChatID)
	assert.Equal(t, trials.users[0].ID, trials.trials[0].UserID)
	assert.Equal(t, "1", trial.CourseID)
	assert.False(t, trial.Confirmed)
	assert.Equal(t, 1, notif.calls)
}

func TestCommitWithLocation(t *testing.T) {
	svc, trials, _ := newTestService()
	session := completeSession()
	session.SelectedLocationID = "10"

	trial, err := svc.Commit(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "10", trial.LocationID)
	require.Len(t, trials.trials, 1)
}

func TestCommitRejectsIncompleteProfile(t *testing.T) {
	svc, trials, notif := newTestService()

	incomplete := []func(*models.DialogSession){
		func(s *models.DialogSession) { s.ChildName = "" },
		func(s *models.DialogSession) { s.ChildAge = 0 },
		func(s *models.DialogSession) { s.ParentName = "" },
		func(s *models.DialogSession) { s.Phone = "" },
		func(s *models.DialogSession) { s.SelectedCourseID = "" },
	}
	for _, mutate := range incomplete {
		session := completeSession()
		mutate(&session)
		_, err := svc.Commit(context.Background(), session)
		assert.Error(t, err)
	}
	assert.Empty(t, trials.trials)
	assert.Zero(t, notif.calls)
}

func TestCommitRejectsIneligibleAge(t *testing.T) {
	svc, trials, _ := newTestService()
	session := completeSession()
	session.ChildAge = 7

	_, err := svc.Commit(context.Background(), session)
	assert.Error(t, err)
	assert.Empty(t, trials.trials)
}

func TestCommitPropagatesStorageError(t *testing.T) {
	svc, trials, notif := newTestService()
	trials.err = errors.New("transaction aborted")

	_, err := svc.Commit(context.Background(), completeSession())
	assert.Error(t, err)
	assert.Zero(t, notif.calls)
}

func TestCommitSucceedsDespiteNotifierFailure(t *testing.T) {
	svc, trials, notif := newTestService()
	notif.err = errors.New("queue unavailable")

	trial, err := svc.Commit(context.Background(), completeSession())
	require.NoError(t, err)
	assert.NotNil(t, trial)
	require.Len(t, trials.trials, 1)
}
