package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
)

type CartHandler struct {
	Cart     *store.CartStore
	Producer *mykafka.Producer
	Metrics  *metrics.Collector
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Cart.IDs())
}

// ToggleCart flips cart membership for a product id: a second toggle of the
// same id puts the cart back where it was.
func (h *CartHandler) ToggleCart(c echo.Context) error {
	id := c.Param("id")
	if err := h.Cart.Toggle(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("cart", "toggle")

	inCart := h.Cart.Contains(id)
	publish(c, h.Producer, "cart_events", id, map[string]any{
		"type":      "cart_toggled",
		"productID": id,
		"inCart":    inCart,
	})

	return c.JSON(http.StatusOK, echo.Map{"id": id, "inCart": inCart})
}
