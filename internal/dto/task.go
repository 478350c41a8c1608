package dto

import "time"

// TaskRequest is the JSON body for POST /tasks and PUT /tasks/:id.
// Minimum lengths and priority bounds come from the configured policy.
type TaskRequest struct {
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Priority  int    `json:"priority"`
	Completed bool   `json:"completed"`
}

type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Priority  int       `json:"priority"`
	Completed bool      `json:"completed"`
	CreatorID string    `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListTasksResponse is a single creator-scoped page plus the total count,
// so clients can render pagination.
type ListTasksResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalItems int            `json:"totalItems"`
	Page       int            `json:"page"`
}
