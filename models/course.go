package models

// Course is long-lived reference data describing one offered course.
// Tags hold the curated interest keywords used by the recommender; when an
// admin creates a course without tags they are auto-derived from the name
// and description.
type Course struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	MinAge      int      `json:"minAge" bson:"minAge"`
	MaxAge      int      `json:"maxAge" bson:"maxAge"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// AgeEligible reports whether a child of the given age may attend the course.
func (c Course) AgeEligible(age int) bool {
	return c.MinAge <= age && age <= c.MaxAge
}
