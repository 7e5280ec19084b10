package dto

import (
	"time"

	"github.com/srgjo27/campus_event/internal/core/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, ToUserResponse(&users[i]))
	}
	return resp
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserDetailResponse struct {
	UserResponse
	Registrations []RegistrationDetailResponse `json:"registrations"`
}

func ToUserDetailResponse(u *domain.UserWithRegistrations) UserDetailResponse {
	return UserDetailResponse{
		UserResponse:  ToUserResponse(&u.User),
		Registrations: ToRegistrationDetailResponses(u.Registrations),
	}
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Kind:      string(c.Kind),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCategoryResponses(cats []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		resp = append(resp, ToCategoryResponse(&cats[i]))
	}
	return resp
}

type EventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	StartsAt    time.Time          `json:"starts_at"`
	Location    string             `json:"location"`
	Capacity    *int               `json:"capacity"`
	Price       string             `json:"price"`
	ImageURL    *string            `json:"image_url"`
	Status      string             `json:"status"`
	CreatedBy   string             `json:"created_by"`
	Organizer   string             `json:"organizer_name,omitempty"`
	Categories  []CategoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		Location:    e.Location,
		Capacity:    e.Capacity,
		Price:       e.Price.StringFixed(2),
		ImageURL:    e.ImageURL,
		Status:      string(e.Status),
		CreatedBy:   e.CreatedBy.String(),
		Organizer:   e.OrganizerName,
		Categories:  ToCategoryResponses(e.Categories),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEventResponses(events []domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, ToEventResponse(&events[i]))
	}
	return resp
}

type EventDetailResponse struct {
	EventResponse
	RegisteredCount int  `json:"registered_count"`
	AvailableSeats  *int `json:"available_seats"`
}

func ToEventDetailResponse(d *domain.EventDetail) EventDetailResponse {
	return EventDetailResponse{
		EventResponse:   ToEventResponse(&d.Event),
		RegisteredCount: d.RegisteredCount,
		AvailableSeats:  d.AvailableSeats(),
	}
}

type RegistrationResponse struct {
	ID                 string     `json:"id"`
	EventID            string     `json:"event_id"`
	UserID             string     `json:"user_id"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	AmountPaid         string     `json:"amount_paid"`
	PaymentProofURL    *string    `json:"payment_proof_url"`
	PaymentNotes       *string    `json:"payment_notes"`
	PaymentDate        *time.Time `json:"payment_date"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at"`
	ConfirmedBy        *string    `json:"confirmed_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:                 r.ID.String(),
		EventID:            r.EventID.String(),
		UserID:             r.UserID.String(),
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		AmountPaid:         r.AmountPaid.StringFixed(2),
		PaymentProofURL:    r.PaymentProofURL,
		PaymentNotes:       r.PaymentNotes,
		PaymentDate:        r.PaymentDate,
		PaymentConfirmedAt: r.PaymentConfirmedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.ConfirmedBy != nil {
		id := r.ConfirmedBy.String()
		resp.ConfirmedBy = &id
	}
	return resp
}

type RegistrationDetailResponse struct {
	RegistrationResponse
	EventTitle      string    `json:"event_title"`
	EventStartsAt   time.Time `json:"event_starts_at"`
	EventLocation   string    `json:"event_location"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	ConfirmedByName *string   `json:"confirmed_by_name"`
}

func ToRegistrationDetailResponses(details []domain.RegistrationDetail) []RegistrationDetailResponse {
	resp := make([]RegistrationDetailResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		resp = append(resp, RegistrationDetailResponse{
			RegistrationResponse: ToRegistrationResponse(&d.Registration),
			EventTitle:           d.EventTitle,
			EventStartsAt:        d.EventStartsAt,
			EventLocation:        d.EventLocation,
			UserName:             d.UserName,
			UserEmail:            d.UserEmail,
			ConfirmedByName:      d.ConfirmedByName,
		})
	}
	return resp
}

type SalesLineResponse struct {
	RegistrationID string    `json:"registration_id"`
	EventTitle     string    `json:"event_title"`
	UserName       string    `json:"user_name"`
	AmountPaid     string    `json:"amount_paid"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentDate    time.Time `json:"payment_date"`
}

type SalesReportResponse struct {
	Sales      []SalesLineResponse `json:"sales"`
	TotalSales string              `json:"total_sales"`
	TotalCount int                 `json:"total_transactions"`
}

func ToSalesReportResponse(r *domain.SalesReport) SalesReportResponse {
	lines := make([]SalesLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, SalesLineResponse{
			RegistrationID: l.RegistrationID.String(),
			EventTitle:     l.EventTitle,
			UserName:       l.UserName,
			AmountPaid:     l.AmountPaid.StringFixed(2),
			PaymentStatus:  string(l.PaymentStatus),
			PaymentDate:    l.PaymentDate,
		})
	}
	return SalesReportResponse{Sales: lines, TotalSales: r.Total.StringFixed(2), TotalCount: r.Count}
}

type EventReportResponse struct {
	EventID         string    `json:"event_id"`
	Title           string    `json:"title"`
	StartsAt        time.Time `json:"starts_at"`
	Capacity        *int      `json:"capacity"`
	RegisteredUsers int       `json:"registered_users"`
	TotalRevenue    string    `json:"total_revenue"`
}

func ToEventReportResponses(lines []domain.EventReportLine) []EventReportResponse {
	resp := make([]EventReportResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, EventReportResponse{
			EventID:         l.EventID.String(),
			Title:           l.Title,
			StartsAt:        l.StartsAt,
			Capacity:        l.Capacity,
			RegisteredUsers: l.RegisteredUsers,
			TotalRevenue:    l.TotalRevenue.StringFixed(2),
		})
	}
	return resp
}

type BlogResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	ImageURL   *string            `json:"image_url"`
	Status     string             `json:"status"`
	CreatedBy  string             `json:"created_by"`
	Categories []CategoryResponse `json:"categories"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func ToBlogResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:         b.ID.String(),
		Title:      b.Title,
		Content:    b.Content,
		ImageURL:   b.ImageURL,
		Status:     string(b.Status),
		CreatedBy:  b.CreatedBy.String(),
		Categories: ToCategoryResponses(b.Categories),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func ToBlogResponses(blogs []domain.Blog) []BlogResponse {
	resp := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		resp = append(resp, ToBlogResponse(&blogs[i]))
	}
	return resp
}
