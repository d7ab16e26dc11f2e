package company

type CreateCompanyRequest struct {
	Name    string  `json:"name" binding:"required,max=150"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address"`
}

type UpdateCompanyRequest struct {
	Name    string  `json:"name" binding:"required,max=150"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address"`
}

type CompanyResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"is_active"`
}
