package models

// Role defines the user role type
type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganization Role = "organization"
	RoleDean         Role = "dean"
)

// User defines the user model based on the 'studentuser' table.
// The institutional email is the primary key; there is no surrogate ID.
type User struct {
	FirstName    string  `json:"firstName" db:"first_name" example:"Sofia"`
	LastName     string  `json:"lastName" db:"last_name" example:"Ramirez"`
	StudentID    string  `json:"studentId" db:"student_id" example:"20481234"`
	Email        string  `json:"email" db:"email" example:"sofia.ramirez01@utrgv.edu"`
	Major        string  `json:"major" db:"major" example:"Computer Science"`
	Password     string  `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role         Role    `json:"role" db:"role" example:"student"`
	Organization *string `json:"organization,omitempty" db:"organization"` // set once a dean approves the org request
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
