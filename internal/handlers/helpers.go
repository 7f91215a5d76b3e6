package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/models"
	"github.com/rosered/backend/internal/mykafka"
)

// userResponse keeps the stored password out of HTTP responses.
type userResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	SubscribeNews bool   `json:"subscribeNews"`
	IsAdmin       bool   `json:"isAdmin"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		SubscribeNews: u.SubscribeNews,
		IsAdmin:       u.IsAdmin,
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
