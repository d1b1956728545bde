package dialog

import (
	"context"
	"fmt"
	"strings"

	"coursebot/channel"
	"coursebot/models"
	"coursebot/services/recommend"

	"go.uber.org/zap"
)

func (e *Engine) stepName(ctx context.Context, session *models.DialogSession, text string) error {
	name := strings.TrimSpace(text)
	if name == "" {
		return e.Channel.SendText(ctx, session.ChatID, msgGreeting)
	}

	session.ChildName = name
	session.State = models.StateAge
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendText(ctx, session.ChatID, fmt.Sprintf(msgAskAgeFmt, name))
}

func (e *Engine) stepAge(ctx context.Context, session *models.DialogSession, text string) error {
	age, issue := ParseAge(text)
	switch issue {
	case AgeNotANumber:
		return e.Channel.SendText(ctx, session.ChatID, msgAgeNotNumber)
	case AgeOutOfRange:
		return e.Channel.SendText(ctx, session.ChatID, msgAgeOutOfRange)
	}

	session.ChildAge = age
	session.State = models.StateInterests
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendText(ctx, session.ChatID, msgAskInterests)
}

func (e *Engine) stepInterests(ctx context.Context, session *models.DialogSession, text string) error {
	session.ChildInterests = strings.TrimSpace(text)
	session.State = models.StateParentName
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendText(ctx, session.ChatID, msgAskParentName)
}

func (e *Engine) stepParentName(ctx context.Context, session *models.DialogSession, text string) error {
	session.ParentName = strings.TrimSpace(text)
	session.State = models.StatePhone
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendText(ctx, session.ChatID, msgAskPhone)
}

// stepPhone validates the number, then runs the ranking and presents the
// course choice. A ranking failure keeps the session in the phone state so
// re-sending the number retries the search.
func (e *Engine) stepPhone(ctx context.Context, session *models.DialogSession, text string) error {
	phone := strings.TrimSpace(text)
	if !ValidPhone(phone) {
		return e.Channel.SendText(ctx, session.ChatID, msgBadPhone)
	}
	session.Phone = phone

	ranked, err := e.Matcher.Rank(session.ChildAge, session.ChildInterests)
	if err != nil {
		e.Logger.Error("Course ranking failed",
			zap.Int64("chatId", session.ChatID), zap.Error(err))
		return e.Channel.SendText(ctx, session.ChatID, msgGenericError)
	}
	if len(ranked) == 0 {
		if err := e.Sessions.Delete(ctx, session.ChatID); err != nil {
			e.Logger.Warn("Failed to clear dialog session",
				zap.Int64("chatId", session.ChatID), zap.Error(err))
		}
		return e.Channel.SendText(ctx, session.ChatID, msgNoCourses)
	}

	options := make([]channel.Option, 0, len(ranked)+1)
	offered := make([]string, 0, len(ranked))
	for _, rc := range ranked {
		options = append(options, channel.Option{
			Label: tierMark(rc.Tier) + rc.Course.Name,
			Token: coursePrefix + rc.Course.ID,
		})
		offered = append(offered, rc.Course.ID)
	}
	options = append(options, channel.Option{Label: btnExitLabel, Token: tokenExit})

	session.OfferedCourseIDs = offered
	session.State = models.StateCourse
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendChoice(ctx, session.ChatID, msgChooseCourse, options)
}

// stepCourseSelection records the chosen course and moves on to the location
// choice, or straight to confirmation when the deployment has no locations.
func (e *Engine) stepCourseSelection(ctx context.Context, session *models.DialogSession, token string) error {
	courseID := strings.TrimPrefix(token, coursePrefix)
	if courseID == token || !session.Offered(courseID) {
		return e.Channel.SendText(ctx, session.ChatID, msgStaleAction)
	}

	course, err := e.Courses.GetByID(courseID)
	if err != nil {
		e.Logger.Error("Failed to load selected course",
			zap.String("courseId", courseID), zap.Error(err))
		return e.Channel.SendText(ctx, session.ChatID, msgGenericError)
	}
	session.SelectedCourseID = course.ID

	locations, err := e.Locations.GetAll()
	if err != nil {
		e.Logger.Error("Failed to load locations",
			zap.Int64("chatId", session.ChatID), zap.Error(err))
		return e.Channel.SendText(ctx, session.ChatID, msgGenericError)
	}

	if len(locations) == 0 {
		return e.askConfirmation(ctx, session, course, nil)
	}

	options := make([]channel.Option, 0, len(locations)*2+1)
	lastDistrict := ""
	for _, loc := range locations {
		if loc.District != lastDistrict {
			options = append(options, channel.Option{
				Label: markDistrict + loc.District,
				Token: districtPrefix + loc.District,
			})
			lastDistrict = loc.District
		}
		options = append(options, channel.Option{
			Label: loc.Address,
			Token: locationPrefix + loc.ID,
		})
	}
	options = append(options, channel.Option{Label: btnExitLabel, Token: tokenExit})

	session.State = models.StateLocation
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendChoice(ctx, session.ChatID, msgChooseLoc, options)
}

func (e *Engine) stepLocationSelection(ctx context.Context, session *models.DialogSession, token string) error {
	// District headers are decoration; pressing one changes nothing.
	if strings.HasPrefix(token, districtPrefix) {
		return nil
	}

	locationID := strings.TrimPrefix(token, locationPrefix)
	if locationID == token {
		return e.Channel.SendText(ctx, session.ChatID, msgStaleAction)
	}

	location, err := e.Locations.GetByID(locationID)
	if err != nil {
		e.Logger.Error("Failed to load selected location",
			zap.String("locationId", locationID), zap.Error(err))
		return e.Channel.SendText(ctx, session.ChatID, msgGenericError)
	}

	course, err := e.Courses.GetByID(session.SelectedCourseID)
	if err != nil {
		e.Logger.Error("Failed to load selected course",
			zap.String("courseId", session.SelectedCourseID), zap.Error(err))
		return e.Channel.SendText(ctx, session.ChatID, msgGenericError)
	}

	session.SelectedLocationID = location.ID
	return e.askConfirmation(ctx, session, course, location)
}

func (e *Engine) askConfirmation(ctx context.Context, session *models.DialogSession, course *models.Course, location *models.Location) error {
	var text string
	if location != nil {
		text = fmt.Sprintf(msgConfirmLocFmt, course.Name, course.Description, location.District, location.Address)
	} else {
		text = fmt.Sprintf(msgConfirmFmt, course.Name, course.Description)
	}

	options := []channel.Option{
		{Label: btnYesLabel, Token: tokenConfirmYes},
		{Label: btnNoLabel, Token: tokenConfirmNo},
		{Label: btnExitLabel, Token: tokenExit},
	}

	session.State = models.StateConfirm
	if err := e.Sessions.Put(ctx, session); err != nil {
		e.sendText(ctx, session.ChatID, msgGenericError)
		return err
	}
	return e.Channel.SendChoice(ctx, session.ChatID, text, options)
}

// stepConfirmation finishes the dialog. Every branch is terminal and clears
// the session, which is what makes a duplicated press harmless.
func (e *Engine) stepConfirmation(ctx context.Context, session *models.DialogSession, token string) error {
	switch token {
	case tokenConfirmNo:
		if err := e.Sessions.Delete(ctx, session.ChatID); err != nil {
			e.Logger.Warn("Failed to clear dialog session",
				zap.Int64("chatId", session.ChatID), zap.Error(err))
		}
		return e.Channel.SendText(ctx, session.ChatID, msgDeclined)

	case tokenConfirmYes:
		_, err := e.Booking.Commit(ctx, *session)
		if delErr := e.Sessions.Delete(ctx, session.ChatID); delErr != nil {
			e.Logger.Warn("Failed to clear dialog session",
				zap.Int64("chatId", session.ChatID), zap.Error(delErr))
		}
		if err != nil {
			e.Logger.Error("Booking commit failed",
				zap.Int64("chatId", session.ChatID), zap.Error(err))
			return e.Channel.SendText(ctx, session.ChatID, msgCommitError)
		}
		return e.Channel.SendText(ctx, session.ChatID, msgBooked)

	default:
		return e.Channel.SendText(ctx, session.ChatID, msgStaleAction)
	}
}

func tierMark(tier recommend.Tier) string {
	switch tier {
	case recommend.TierHigh:
		return markHighTier
	case recommend.TierRelevant:
		return markRelevantTier
	default:
		return ""
	}
}
