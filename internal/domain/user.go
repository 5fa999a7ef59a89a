package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// TodayStatus is the derived progress marker shown on the coach's roster.
type TodayStatus string

const (
	StatusNotStarted TodayStatus = "Not Started"
	StatusInProgress TodayStatus = "In Progress"
	StatusCompleted  TodayStatus = "Completed"
)

// User represents a user in the system (either the coach or a Client).
// Users are seeded at startup; the roster never changes at runtime.
type User struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Role        Role        `bson:"role" json:"role"`
	Avatar      string      `bson:"avatar,omitempty" json:"avatar,omitempty"`
	TodayStatus TodayStatus `bson:"todayStatus,omitempty" json:"todayStatus,omitempty"` // Derived from workout progress, seed value otherwise
}

// IsAdmin reports whether u is the coach.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}
