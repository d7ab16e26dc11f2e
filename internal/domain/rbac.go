package domain

const (
	RoleAdmin   = "admin"
	RoleHR      = "hr"
	RoleManager = "manager"
)

// Roles lists every role a user profile may hold.
func Roles() []string {
	return []string{RoleAdmin, RoleHR, RoleManager}
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleManager:
		return true
	}
	return false
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
