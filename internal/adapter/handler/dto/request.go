package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	StartsAt    string   `json:"starts_at" validate:"required"`
	Location    string   `json:"location" validate:"required,max=200"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gt=0"`
	Price       string   `json:"price" validate:"money"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=500"`
	Categories  []string `json:"categories" validate:"omitempty,dive,uuid"`
}

type UpdateEventRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description"`
	StartsAt    *string   `json:"starts_at"`
	Location    *string   `json:"location" validate:"omitempty,min=1,max=200"`
	Capacity    *int      `json:"capacity" validate:"omitempty,gt=0"`
	Price       *string   `json:"price" validate:"omitempty,money"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,max=500"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Categories  *[]string `json:"categories" validate:"omitempty,dive,uuid"`

	UnlimitedCapacity bool `json:"unlimited_capacity" validate:"excluded_with=Capacity"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=mahasiswa admin"`
}

type BlogRequest struct {
	Title      *string   `json:"title" validate:"omitempty,max=200"`
	Content    *string   `json:"content"`
	ImageURL   *string   `json:"image_url" validate:"omitempty,max=500"`
	Status     *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Categories *[]string `json:"categories" validate:"omitempty,dive,uuid"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type EventListQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit" validate:"gte=0"`
}

type SalesReportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
