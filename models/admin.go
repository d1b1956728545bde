package models

// Admin identifies a staff member by the chat they receive notifications on.
type Admin struct {
	ChatID int64 `json:"chatId" bson:"chatId"`
}
