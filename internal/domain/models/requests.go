package models

import "time"

// Requests for HTTP endpoints. Defined in domain for consistency and reuse.

type CalculationRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type CalculationResponse struct {
	Result    float64 `json:"result"`
	Operation string  `json:"operation"`
}

type GenerateStatisticsRequest struct {
	Count int `query:"count" json:"count" default:"100"`
}

type UserCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UserUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type TaskCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      string `json:"user_id" validate:"required,uuid"`
}

type TaskUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type ListUsersRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" default:"100" validate:"gte=1,lte=1000"`
}

type ListTasksRequest struct {
	UserID    string `query:"user_id" validate:"omitempty,uuid"`
	Completed *bool  `query:"completed"`
	Skip      int    `query:"skip" validate:"gte=0"`
	Limit     int    `query:"limit" default:"100" validate:"gte=1,lte=1000"`
}

// AnalysisEvent is published to the bus after each successful analytics
// operation.
type AnalysisEvent struct {
	Operation string    `json:"operation"`
	Count     int       `json:"count"`
	At        time.Time `json:"at"`
}
