package dialog

import (
	"context"
	"errors"
	"strings"

	"coursebot/channel"
	courseRepo "coursebot/database/repository/course"
	locationRepo "coursebot/database/repository/location"
	"coursebot/models"
	"coursebot/services/booking"
	"coursebot/services/recommend"

	"go.uber.org/zap"
)

// Commands routable to the dialog from any state.
const (
	cmdStart  = "/start"
	cmdCancel = "/cancel"
)

// Engine drives the registration dialog. The channel collaborator guarantees
// events for one chat arrive serially, so the engine never locks a session.
type Engine struct {
	Sessions  SessionStore
	Courses   courseRepo.CourseRepository
	Locations locationRepo.LocationRepository
	Matcher   recommend.Matcher
	Booking   booking.BookingService
	Channel   channel.Channel
	Logger    *zap.Logger
}

// StartDialog discards any in-progress session for the chat and begins a
// fresh one at the child-name step.
func (e *Engine) StartDialog(ctx context.Context, chatID int64) error {
	if err := e.Sessions.Delete(ctx, chatID); err != nil {
		e.Logger.Warn("Failed to discard previous dialog session",
			zap.Int64("chatId", chatID), zap.Error(err))
	}

	session := &models.DialogSession{ChatID: chatID, State: models.StateName}
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, chatID, msgGenericError)
		return err
	}
	return e.Channel.SendText(ctx, chatID, msgGreeting)
}

// CancelDialog clears any in-progress session and acknowledges the cancel.
func (e *Engine) CancelDialog(ctx context.Context, chatID int64) error {
	if err := e.Sessions.Delete(ctx, chatID); err != nil {
		e.Logger.Warn("Failed to clear dialog session on cancel",
			zap.Int64("chatId", chatID), zap.Error(err))
	}
	return e.Channel.SendText(ctx, chatID, msgCancelled)
}

// HandleText processes an inbound free-text message for the chat.
func (e *Engine) HandleText(ctx context.Context, chatID int64, text string) error {
	switch strings.TrimSpace(text) {
	case cmdStart:
		return e.StartDialog(ctx, chatID)
	case cmdCancel:
		return e.CancelDialog(ctx, chatID)
	}

	session, err := e.Sessions.Get(ctx, chatID)
	if errors.Is(err, ErrNoSession) {
		return e.Channel.SendText(ctx, chatID, msgStartHint)
	}
	if err != nil {
		e.Logger.Error("Failed to load dialog session",
			zap.Int64("chatId", chatID), zap.Error(err))
		e.sendText(ctx, chatID, msgGenericError)
		return err
	}

	switch session.State {
	case models.StateName:
		return e.stepName(ctx, session, text)
	case models.StateAge:
		return e.stepAge(ctx, session, text)
	case models.StateInterests:
		return e.stepInterests(ctx, session, text)
	case models.StateParentName:
		return e.stepParentName(ctx, session, text)
	case models.StatePhone:
		return e.stepPhone(ctx, session, text)
	case models.StateCourse, models.StateLocation, models.StateConfirm:
		// Those states expect a button press; nudge instead of advancing.
		return e.Channel.SendText(ctx, chatID, msgUseButtons)
	default:
		e.Logger.Warn("Dialog session in unknown state",
			zap.Int64("chatId", chatID), zap.String("state", string(session.State)))
		return e.Channel.SendText(ctx, chatID, msgStaleAction)
	}
}

// HandleCallback processes an inbound button press for the chat. Tokens that
// no longer fit the session state are answered with a stale-action notice:
// this is also what makes a repeated confirmation press a no-op, since the
// first press deletes the session.
func (e *Engine) HandleCallback(ctx context.Context, chatID int64, token string) error {
	session, err := e.Sessions.Get(ctx, chatID)
	if errors.Is(err, ErrNoSession) {
		return e.Channel.SendText(ctx, chatID, msgStaleAction)
	}
	if err != nil {
		e.Logger.Error("Failed to load dialog session",
			zap.Int64("chatId", chatID), zap.Error(err))
		e.sendText(ctx, chatID, msgGenericError)
		return err
	}

	if token == tokenExit {
		return e.exitDialog(ctx, session)
	}

	switch session.State {
	case models.StateCourse:
		return e.stepCourseSelection(ctx, session, token)
	case models.StateLocation:
		return e.stepLocationSelection(ctx, session, token)
	case models.StateConfirm:
		return e.stepConfirmation(ctx, session, token)
	default:
		return e.Channel.SendText(ctx, chatID, msgStaleAction)
	}
}

// exitDialog handles the explicit exit button from any selection state.
func (e *Engine) exitDialog(ctx context.Context, session *models.DialogSession) error {
	if err := e.Sessions.Delete(ctx, session.ChatID); err != nil {
		e.Logger.Warn("Failed to clear dialog session on exit",
			zap.Int64("chatId", session.ChatID), zap.Error(err))
	}
	return e.Channel.SendText(ctx, session.ChatID, msgExited)
}

// sendText is a fire-and-forget send used on error paths where the original
// error matters more than the delivery result.
func (e *Engine) sendText(ctx context.Context, chatID int64, text string) {
	if err := e.Channel.SendText(ctx, chatID, text); err != nil {
		e.Logger.Warn("Failed to send message",
			zap.Int64("chatId", chatID), zap.Error(err))
	}
}
