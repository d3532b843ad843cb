package models

import "time"

// Envelope is the wire shape every endpoint answers with.
type Envelope struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
}

func Success(data interface{}) Envelope {
	return Envelope{
		Status:    "success",
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	}
}

func Error(message string) Envelope {
	return Envelope{
		Status:    "error",
		Timestamp: time.Now().Format(time.RFC3339),
		Error:     message,
	}
}
