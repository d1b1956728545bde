package models

// DialogState names the step a registration dialog is currently waiting on.
// Registration states are their own enumeration; admin edit flows use separate
// types so the two can never collide.
type DialogState string

const (
	StateName       DialogState = "name"
	StateAge        DialogState = "age"
	StateInterests  DialogState = "interests"
	StateParentName DialogState = "parent_name"
	StatePhone      DialogState = "phone"
	StateCourse     DialogState = "course_selection"
	StateLocation   DialogState = "location_selection"
	StateConfirm    DialogState = "confirmation"
)

// DialogSession holds context accumulated across the registration dialog.
// It lives in Redis keyed by chat id and is cleared on every terminal
// transition (completion, cancel, decline, exit).
type DialogSession struct {
	ChatID         int64       `json:"chatId"`
	State          DialogState `json:"state"`
	ChildName      string      `json:"childName,omitempty"`
	ChildAge       int         `json:"childAge,omitempty"`
	ChildInterests string      `json:"childInterests,omitempty"`
	ParentName     string      `json:"parentName,omitempty"`
	Phone          string      `json:"phone,omitempty"`

	// OfferedCourseIDs pins the courses that were actually presented, so a
	// selection token is only accepted for something the user saw.
	OfferedCourseIDs []string `json:"offeredCourseIds,omitempty"`

	SelectedCourseID   string `json:"selectedCourseId,omitempty"`
	SelectedLocationID string `json:"selectedLocationId,omitempty"`
}

// Offered reports whether the given course id was presented in this session.
func (s DialogSession) Offered(courseID string) bool {
	for _, id := range s.OfferedCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
