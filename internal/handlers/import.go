package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metrika-dev/metrika/internal/importer"
	"go.uber.org/zap"
)

type ImportHandler struct {
	importer *importer.Importer
	path     string
	logger   *zap.Logger
}

func NewImportHandler(imp *importer.Importer, path string, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{importer: imp, path: path, logger: logger}
}

// Trigger runs the idempotent spreadsheet import. The response always says
// whether the import actually wrote anything; errors never crash the
// process.
func (h *ImportHandler) Trigger(ctx *gin.Context) {
	result, err := h.importer.AutoImport(h.path)

	if err != nil {
		h.logger.Error("import failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     result.Message,
		"data_loaded": result.Loaded,
		"indicators":  result.Indicators,
		"milestones":  result.Milestones,
	})
}
