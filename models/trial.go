package models

import "time"

// TrialLesson is a booked, unconfirmed-by-default attendance slot for a
// prospective student. Confirmed is flipped later by staff.
type TrialLesson struct {
	ID         string    `json:"id" bson:"id"`
	UserID     string    `json:"userId" bson:"userId"`
	CourseID   string    `json:"courseId" bson:"courseId"`
	LocationID string    `json:"locationId,omitempty" bson:"locationId,omitempty"`
	Date       time.Time `json:"date" bson:"date"`
	Confirmed  bool      `json:"confirmed" bson:"confirmed"`
}

// TrialLessonView is the joined representation shown to staff.
type TrialLessonView struct {
	Trial    TrialLesson `json:"trial"`
	User     User        `json:"user"`
	Course   Course      `json:"course"`
	Location *Location   `json:"location,omitempty"`
}
