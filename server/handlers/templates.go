package handlers

import (
	"github.com/gin-gonic/gin"

	"pricegen/export"
	apperrors "pricegen/server/errors"
)

// TemplateHandler serves downloadable workbook templates.
type TemplateHandler struct{}

// NewTemplateHandler creates the template handler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// HandleInputTemplate streams the empty mass-update template.
// @Summary Download the empty mass-update input template
// @Description Returns the input workbook shape the pipeline expects: headers at row 3, example rows at 4-5, data from row 6.
// @Tags templates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Input template workbook"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /templates/input [get]
func (h *TemplateHandler) HandleInputTemplate(c *gin.Context) {
	artifact, err := export.InputTemplate()
	if err != nil {
		HandleError(c, apperrors.NewInternalError("Gagal render template input", err))
		return
	}

	SendArtifact(c, artifact.ContentType, artifact.Name, artifact.Data)
}
