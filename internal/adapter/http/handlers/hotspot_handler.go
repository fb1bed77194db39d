package handlers

import (
	"net/http"

	request "github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/dto/request"
	response "github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/dto/response"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg"

	"github.com/gin-gonic/gin"
)

const diagramImageField = "image"

var errImageRequired = pkg.NewDomainErrorSimple(codeValidation, "Image file is required", http.StatusBadRequest)

// HotspotHandler serves the parts diagram and its hotspots.
type HotspotHandler struct {
	usecase usecase.IHotspotUseCase
}

func NewHotspotHandler(uc usecase.IHotspotUseCase) *HotspotHandler {
	RegisterValidators()
	return &HotspotHandler{usecase: uc}
}

// GetDiagram godoc
// @Summary      Current diagram
// @Tags         diagram
// @Produce      json
// @Success      200  {object}  response.DiagramResponse
// @Router       /diagram [get]
func (h *HotspotHandler) GetDiagram(c *gin.Context) {
	path, err := h.usecase.GetDiagramImagePath(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DiagramResponse{ImagePath: path})
}

// ListHotspots godoc
// @Summary      List hotspots
// @Tags         diagram
// @Produce      json
// @Success      200  {array}  entities.Hotspot
// @Router       /hotspots [get]
func (h *HotspotHandler) ListHotspots(c *gin.Context) {
	hotspots, err := h.usecase.ListHotspots(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotspots)
}

// CreateHotspot godoc
// @Summary      Create a hotspot
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.HotspotRequest  true  "Hotspot"
// @Success      201   {object}  entities.Hotspot
// @Failure      400   {object}  pkg.HTTPError
// @Router       /admin/hotspots [post]
func (h *HotspotHandler) CreateHotspot(c *gin.Context) {
	var payload request.HotspotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderAppError(c, mapBindingError(err))
		return
	}

	hotspot, err := h.usecase.CreateHotspot(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotspot)
}

// UploadDiagramImage godoc
// @Summary      Replace the diagram image
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Diagram image"
// @Success      201    {object}  response.DiagramImageResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /admin/diagram-image [post]
func (h *HotspotHandler) UploadDiagramImage(c *gin.Context) {
	header, err := c.FormFile(diagramImageField)
	if err != nil {
		renderAppError(c, errImageRequired)
		return
	}
	file, err := header.Open()
	if err != nil {
		renderError(c, err)
		return
	}
	defer file.Close()

	path, err := h.usecase.UploadDiagramImage(c.Request.Context(), header.Filename, file)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.DiagramImageResponse{ImagePath: path})
}
