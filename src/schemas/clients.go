package schemas

type ClientCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	IsActive *bool  `json:"is_active"`
}

// ClientUpdateRequest is a sparse patch: nil means "leave the field as is".
// Present-but-empty strings are ignored as well.
type ClientUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

type ClientSearchRequest struct {
	Name     string
	Email    string
	IsActive *bool
	Skip     int
	Limit    int
}

type ClientCountResponse struct {
	Count int `json:"count"`
}
