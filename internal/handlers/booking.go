package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	mwauth "github.com/rosered/backend/internal/middleware/auth"
	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/models"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
)

type BookingHandler struct {
	Bookings *store.BookingStore
	Producer *mykafka.Producer
	Metrics  *metrics.Collector
}

// CreateBooking accepts the checkout form. Guests comes in as the raw form
// value; anything unparsable books a table for one.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	user := mwauth.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	var req struct {
		Guests   string `json:"guests"`
		Datetime string `json:"datetime"`
		Comment  string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.Bookings.Create(user.ID, store.BookingInput{
		Guests:   parseIntDefault(req.Guests, 1),
		Datetime: req.Datetime,
		Comment:  req.Comment,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("booking", "create")

	publish(c, h.Producer, "booking_events", user.ID, map[string]any{
		"type":      "booking_created",
		"bookingID": booking.ID,
		"userID":    user.ID,
		"guests":    booking.Guests,
	})

	return c.JSON(http.StatusCreated, booking)
}

// ListBookings returns the current user's bookings, newest first. The
// ordering is a render-time projection, the store keeps storage order.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	user := mwauth.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	list := h.Bookings.ListForUser(user.ID)
	if list == nil {
		list = []models.Booking{}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	return c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	user := mwauth.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	id := c.Param("id")
	if err := h.Bookings.Cancel(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("booking", "cancel")

	publish(c, h.Producer, "booking_events", user.ID, map[string]any{
		"type":      "booking_cancelled",
		"bookingID": id,
		"userID":    user.ID,
	})

	return c.NoContent(http.StatusNoContent)
}
