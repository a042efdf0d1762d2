package assistant

import "time"

type AskRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

type Reply struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rule      string    `json:"rule,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
