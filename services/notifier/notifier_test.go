package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coursebot/channel"
	"coursebot/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBookingParts() (models.User, models.Course, models.TrialLesson) {
	user := models.User{
		ParentName:     "Анна",
		Phone:          "+79161234567",
		ChildName:      "Миша",
		ChildAge:       12,
		ChildInterests: "программирование",
	}
	course := models.Course{
		Name:        "Python для начинающих",
		Description: "Основы Python",
		MinAge:      10,
		MaxAge:      14,
	}
	trial := models.TrialLesson{
		Date: time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC),
	}
	return user, course, trial
}

func TestFormatBookingMessage(t *testing.T) {
	user, course, trial := testBookingParts()

	msg := FormatBookingMessage(user, course, nil, trial)

	assert.Contains(t, msg, "Новая запись на пробное занятие:")
	assert.Contains(t, msg, "Родитель: Анна")
	assert.Contains(t, msg, "Телефон: +79161234567")
	assert.Contains(t, msg, "Ребенок: Миша (12 лет)")
	assert.Contains(t, msg, "Выбранный курс: Python для начинающих")
	assert.Contains(t, msg, "Возрастные ограничения курса: 10-14 лет")
	assert.Contains(t, msg, "Дата записи: 14.03.2025 15:30")
	assert.NotContains(t, msg, "Локация:")
}

func TestFormatBookingMessageWithLocation(t *testing.T) {
	user, course, trial := testBookingParts()
	location := &models.Location{District: "Центральный", Address: "ул. Ленина, 1"}

	msg := FormatBookingMessage(user, course, location, trial)

	assert.Contains(t, msg, "Локация: Центральный, ул. Ленина, 1")
}

func TestNewBookingNotifyTaskRoundTrip(t *testing.T) {
	task, err := NewBookingNotifyTask("hello admins")
	require.NoError(t, err)
	assert.Equal(t, TypeBookingNotify, task.Type())

	var p BookingNotifyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "hello admins", p.Message)
}

type fakeAdminRepo struct {
	ids []int64
	err error
}

func (f *fakeAdminRepo) GetAllChatIDs() ([]int64, error) { return f.ids, f.err }
func (f *fakeAdminRepo) IsAdmin(int64) (bool, error)     { return false, nil }
func (f *fakeAdminRepo) Add(*models.Admin) error         { return nil }

type fanoutChannel struct {
	sent    map[int64]string
	failFor int64
}

func (c *fanoutChannel) SendText(ctx context.Context, chatID int64, text string) error {
	if chatID == c.failFor {
		return errors.New("chat unreachable")
	}
	if c.sent == nil {
		c.sent = make(map[int64]string)
	}
	c.sent[chatID] = text
	return nil
}

func (c *fanoutChannel) SendChoice(ctx context.Context, chatID int64, text string, options []channel.Option) error {
	return nil
}

func TestHandleBookingNotifyFansOutToAllAdmins(t *testing.T) {
	admins := &fakeAdminRepo{ids: []int64{1, 2, 3}}
	ch := &fanoutChannel{}
	handler := handleBookingNotify(admins, ch, zap.NewNop())

	task, err := NewBookingNotifyTask("новая запись")
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	assert.Len(t, ch.sent, 3)
	assert.Equal(t, "новая запись", ch.sent[2])
}

func TestHandleBookingNotifyOneFailureDoesNotBlockOthers(t *testing.T) {
	admins := &fakeAdminRepo{ids: []int64{1, 2, 3}}
	ch := &fanoutChannel{failFor: 2}
	handler := handleBookingNotify(admins, ch, zap.NewNop())

	task, err := NewBookingNotifyTask("новая запись")
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	assert.Len(t, ch.sent, 2)
	assert.Contains(t, ch.sent, int64(1))
	assert.Contains(t, ch.sent, int64(3))
}

func TestHandleBookingNotifyBadPayload(t *testing.T) {
	handler := handleBookingNotify(&fakeAdminRepo{}, &fanoutChannel{}, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(TypeBookingNotify, []byte("{not json")))
	assert.Error(t, err)
}
