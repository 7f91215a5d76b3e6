package models

import (
	"time"
)

// User хранится в коллекции "users" целиком, включая пароль.
// Наружу отдаётся через DTO без пароля.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	SubscribeNews bool   `json:"subscribeNews"`
	IsAdmin       bool   `json:"isAdmin"`
}

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Guests    int       `json:"guests"`
	Datetime  string    `json:"datetime"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

type StaffMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
