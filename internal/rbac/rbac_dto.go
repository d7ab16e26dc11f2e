package rbac

type PolicyRequest struct {
	Role     string `json:"role" binding:"required,oneof=admin hr manager"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type PolicyResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
