package handlers

import (
	"net/http"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg"

	"github.com/gin-gonic/gin"
)

const registrationImageField = "rcImage"

var errRCImageRequired = pkg.NewDomainErrorSimple(codeValidation, "rcImage file is required", http.StatusBadRequest)

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// ExtractRegistration godoc
// @Summary      Read a registration certificate
// @Description  Stores the upload and returns the vehicle details read from it
// @Tags         ocr
// @Accept       multipart/form-data
// @Produce      json
// @Param        rcImage  formData  file  true  "Registration certificate image"
// @Success      200      {object}  entities.RegistrationExtraction
// @Failure      400      {object}  pkg.HTTPError
// @Router       /ocr/rc [post]
func (h *RegistrationHandler) ExtractRegistration(c *gin.Context) {
	header, err := c.FormFile(registrationImageField)
	if err != nil {
		renderAppError(c, errRCImageRequired)
		return
	}
	file, err := header.Open()
	if err != nil {
		renderError(c, err)
		return
	}
	defer file.Close()

	res, err := h.usecase.ExtractRegistration(c.Request.Context(), header.Filename, file)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
