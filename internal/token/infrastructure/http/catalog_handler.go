package http

import (
	"net/http"
	"strconv"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
)

const ItemIDKey = "id"

type addItemRequestBody struct {
	ID    uint64 `json:"id"`
	Price uint64 `json:"price"`
	Name  string `json:"name"`
}

type updateItemCostRequestBody struct {
	Price uint64 `json:"price"`
}

type CatalogHandler struct {
	catalog domain.CatalogService
	logger  logging.Logger
}

func NewCatalogHandler(catalog domain.CatalogService, logger logging.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newItemResponse(item))
	}

	c.JSON(http.StatusOK, response)
}

// DisplayItems serves the catalog in its plain text listing form.
func (h *CatalogHandler) DisplayItems(c *gin.Context) {
	display, err := h.catalog.DisplayItems(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.String(http.StatusOK, "%s", display)
}

// GetItem answers with the zero record for unknown ids, mirroring the catalog's sentinel read.
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, ok := itemIDFrom(c)
	if !ok {
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	item.ID = id
	c.JSON(http.StatusOK, newItemResponse(item))
}

func (h *CatalogHandler) AddItem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body addItemRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	item := domain.Item{ID: body.ID, Name: body.Name, Price: body.Price}
	err := h.catalog.AddItem(c.Request.Context(), caller, item)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newItemResponse(item))
}

func (h *CatalogHandler) UpdateItemCost(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	id, ok := itemIDFrom(c)
	if !ok {
		return
	}

	var body updateItemCostRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	err := h.catalog.UpdateItemCost(c.Request.Context(), caller, id, body.Price)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	id, ok := itemIDFrom(c)
	if !ok {
		return
	}

	err := h.catalog.RemoveItem(c.Request.Context(), caller, id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func itemIDFrom(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(ItemIDKey), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "item id must be a non-negative integer"})
		return 0, false
	}

	return id, true
}
