package dto

import "time"

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
