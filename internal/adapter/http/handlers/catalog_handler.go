package handlers

import (
	"net/http"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SearchParts godoc
// @Summary      Search parts
// @Description  Case-insensitive match on part number or description; empty query lists all
// @Tags         catalog
// @Produce      json
// @Param        query  query     string  false  "Search text"
// @Success      200    {array}   entities.Part
// @Router       /parts [get]
func (h *CatalogHandler) SearchParts(c *gin.Context) {
	parts, err := h.usecase.SearchParts(c.Request.Context(), c.Query("query"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GetPart godoc
// @Summary      Get a part
// @Tags         catalog
// @Produce      json
// @Param        partId  path      string  true  "Part id"
// @Success      200     {object}  entities.Part
// @Failure      404     {object}  pkg.HTTPError
// @Router       /parts/{partId} [get]
func (h *CatalogHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetPartByID(c.Request.Context(), c.Param("partId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// GetPartAlternatives godoc
// @Summary      Part alternatives
// @Description  Supersession and resolvable alternative parts
// @Tags         catalog
// @Produce      json
// @Param        partId  path      string  true  "Part id"
// @Success      200     {object}  entities.PartAlternatives
// @Failure      404     {object}  pkg.HTTPError
// @Router       /parts/{partId}/alternatives [get]
func (h *CatalogHandler) GetPartAlternatives(c *gin.Context) {
	alts, err := h.usecase.GetPartAlternatives(c.Request.Context(), c.Param("partId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, alts)
}

// ListServices godoc
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entities.Service
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
