package domain

// Role classifies what a user may do once logged in.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
	RoleUser      Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleRecruiter, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User is the stored identity record. Password holds the obfuscated
// (base64) form, never the cleartext.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SessionUser is the authenticated identity handed back at login: the
// user's public fields plus a session token and a generated avatar URL.
// It is the identity the rest of the app operates on; its fields are not
// re-read from storage after login.
type SessionUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Token        string `json:"token"`
	ProfileImage string `json:"profileImage"`
}
