package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
	"github.com/yourusername/campus-pc-advisor/internal/domain/repository"
	"github.com/yourusername/campus-pc-advisor/internal/usecase"
)

// Handler HTTP so'rovlarni usecase qatlamiga bog'laydi
type Handler struct {
	evaluator *usecase.Evaluator
	catalog   repository.CatalogRepository
}

// NewHandler yangi handler
func NewHandler(evaluator *usecase.Evaluator, catalog repository.CatalogRepository) *Handler {
	return &Handler{evaluator: evaluator, catalog: catalog}
}

// NewRouter gin router sozlash
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.GET("/components/:category", h.listComponents)
		api.GET("/laptops", h.listLaptops)
		api.POST("/evaluate", h.evaluate)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listComponents(c *gin.Context) {
	cat := entity.Category(c.Param("category"))
	if !entity.ValidCategory(cat) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, h.catalog.ComponentsByCategory(cat))
}

func (h *Handler) listLaptops(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Laptops())
}

// evaluateRequest baholash so'rovi: yoki laptop_id, yoki komponentlar
// (toifa → komponent ID)
type evaluateRequest struct {
	Lang       string            `json:"lang"`
	LaptopID   string            `json:"laptop_id"`
	Components map[string]string `json:"components"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	build, err := h.buildFromRequest(req)
	if err != nil {
		var nf *notFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.evaluator.Evaluate(c.Request.Context(), build, req.Lang)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBuild):
			c.JSON(http.StatusBadRequest, gin.H{"error": "incomplete build: select CPU, Motherboard and RAM, or a laptop"})
		case errors.Is(err, usecase.ErrServiceUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "ai service unavailable, try again later"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

type notFoundError struct {
	what string
}

func (e *notFoundError) Error() string { return e.what + " not found" }

func (h *Handler) buildFromRequest(req evaluateRequest) (*entity.Build, error) {
	build := entity.NewBuild()

	if req.LaptopID != "" {
		laptop, ok := h.catalog.LaptopByID(req.LaptopID)
		if !ok {
			return nil, &notFoundError{what: "laptop " + req.LaptopID}
		}
		if err := build.SelectLaptop(&laptop); err != nil {
			return nil, err
		}
		return build, nil
	}

	for rawCat, id := range req.Components {
		cat := entity.Category(rawCat)
		if !entity.ValidCategory(cat) {
			return nil, errors.New("unknown category " + rawCat)
		}
		component, ok := h.catalog.ComponentByID(cat, id)
		if !ok {
			return nil, &notFoundError{what: "component " + id}
		}
		if err := build.Select(&component); err != nil {
			return nil, err
		}
	}
	return build, nil
}
