package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
