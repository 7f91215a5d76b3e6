package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/models"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
)

type StaffHandler struct {
	Staff    *store.StaffStore
	Producer *mykafka.Producer
	Metrics  *metrics.Collector
}

func (h *StaffHandler) ListStaff(c echo.Context) error {
	list := h.Staff.ListAll()
	if list == nil {
		list = []models.StaffMember{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.Staff.Create(req.Name, req.Role)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "name and role are required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("staff", "create")

	publish(c, h.Producer, "staff_events", member.ID, map[string]any{
		"type":    "staff_created",
		"staffID": member.ID,
		"name":    member.Name,
	})

	return c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) PatchStaff(c echo.Context) error {
	var req store.StaffChanges
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.Staff.Update(c.Param("id"), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if member == nil {
		return echo.NewHTTPError(http.StatusNotFound, "staff member not found")
	}
	h.Metrics.RecordStoreOp("staff", "update")

	publish(c, h.Producer, "staff_events", member.ID, map[string]any{
		"type":    "staff_updated",
		"staffID": member.ID,
		"name":    member.Name,
	})

	return c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	id := c.Param("id")
	if err := h.Staff.Remove(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("staff", "delete")

	publish(c, h.Producer, "staff_events", id, map[string]any{
		"type":    "staff_deleted",
		"staffID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
