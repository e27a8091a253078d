package dto

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Ana Souza"`
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"s3cret-pass"`
}

// FindUserQuery is the query string of GET /users
type FindUserQuery struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}
