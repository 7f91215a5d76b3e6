package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/rosered/backend/internal/es"
	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/models"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
)

type ProductHandler struct {
	Catalog  *store.CatalogStore
	Cart     *store.CartStore
	Producer *mykafka.Producer
	Metrics  *metrics.Collector
	ES       *elasticsearch.Client
	Index    string
}

// GetProducts serves the catalog with optional view-layer projections:
// sort=price-asc|price-desc|name-asc and view=cart. Projections work on a
// copy, the stored order never changes.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Catalog.Load()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if c.QueryParam("view") == "cart" {
		inCart := make(map[string]bool)
		for _, id := range h.Cart.IDs() {
			inCart[id] = true
		}
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if inCart[p.ID] {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, c.QueryParam("sort"))

	return c.JSON(http.StatusOK, products)
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "name-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Title) < strings.ToLower(products[j].Title)
		})
	default:
		// стандартный порядок хранения
	}
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.Catalog.Find(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

// Price arrives as the raw form value, comma decimals included.
type productRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.Catalog.Create(models.Product{
		Title:       req.Title,
		Category:    req.Category,
		Price:       store.ParsePrice(req.Price),
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("catalog", "create")
	h.reindex(c, *product)

	publish(c, h.Producer, "product_events", product.ID, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"title":     product.Title,
	})

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	var req struct {
		Title       *string `json:"title"`
		Category    *string `json:"category"`
		Price       *string `json:"price"`
		Image       *string `json:"image"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	changes := store.ProductChanges{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	}
	if req.Price != nil {
		price := store.ParsePrice(*req.Price)
		changes.Price = &price
	}

	product, err := h.Catalog.Update(c.Param("id"), changes)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	h.Metrics.RecordStoreOp("catalog", "update")
	h.reindex(c, *product)

	publish(c, h.Producer, "product_events", product.ID, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"title":     product.Title,
	})

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := h.Catalog.Delete(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Metrics.RecordStoreOp("catalog", "delete")

	if h.ES != nil {
		if err := es.DeleteProduct(c.Request().Context(), h.ES, h.Index, id); err != nil {
			c.Logger().Errorf("ES delete error: %v", err)
		}
	}

	publish(c, h.Producer, "product_events", id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) reindex(c echo.Context, p models.Product) {
	if h.ES == nil {
		return
	}
	if err := es.IndexProduct(c.Request().Context(), h.ES, h.Index, p); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}
