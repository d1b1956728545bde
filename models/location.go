package models

// Location is a physical classroom location, grouped by district.
type Location struct {
	ID       string `json:"id" bson:"id"`
	District string `json:"district" bson:"district"`
	Address  string `json:"address" bson:"address"`
}
