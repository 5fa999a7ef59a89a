package domain

// Metric is a dated biometric sample for one user.
// Duplicate dates are allowed; the sequence per user is append-only.
type Metric struct {
	Date          string   `bson:"date" json:"date"` // YYYY-MM-DD
	Weight        float64  `bson:"weight" json:"weight"`
	BodyFat       *float64 `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	StrengthScore float64  `bson:"strengthScore" json:"strengthScore"`
	Energy        *int     `bson:"energy,omitempty" json:"energy,omitempty"`
}
