package model

import "time"

// Conversation is one question/answer exchange of the reporting assistant.
type Conversation struct {
	ID           int64     `json:"id,omitempty"`
	Query        string    `json:"query"`
	Response     string    `json:"response"`
	ResponseMs   int64     `json:"response_ms"`
	Satisfaction int       `json:"satisfaction"`
	CreatedAt    time.Time `json:"created_at"`
}

type ConversationStats struct {
	TotalQueries    int64   `json:"total_queries"`
	AvgResponseMs   float64 `json:"avg_response_ms"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}
