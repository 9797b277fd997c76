// Package entity defines the domain entities for the interview feature.
package entity

// Question is a single generated interview question with its category.
type Question struct {
	Category string `json:"category"`
	Question string `json:"question"`
}
