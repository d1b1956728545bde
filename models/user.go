package models

import "time"

// User is a parent/child profile persisted when a trial lesson is booked.
// It is written exactly once at booking commit and never mutated afterwards.
type User struct {
	ID             string    `json:"id" bson:"id"`
	ChatID         int64     `json:"chatId" bson:"chatId"`
	ParentName     string    `json:"parentName" bson:"parentName"`
	Phone          string    `json:"phone" bson:"phone"`
	ChildName      string    `json:"childName" bson:"childName"`
	ChildAge       int       `json:"childAge" bson:"childAge"`
	ChildInterests string    `json:"childInterests" bson:"childInterests"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
