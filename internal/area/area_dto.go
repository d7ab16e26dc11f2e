package area

type CreateAreaRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description *string `json:"description"`
}

type UpdateAreaRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description *string `json:"description"`
}

type AreaResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
