package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/internal/adapters/tabular"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded spreadsheets.
const maxImportSize = 10 << 20

type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := &importHandler{importService: importService}

	imports := rg.Group("/import")
	{
		imports.POST("/accounts", h.importAccounts)
		imports.POST("/transactions", h.importTransactions)
	}
}

type importFunc func(ctx context.Context, userID string, rows [][]string) (*domain.ImportResult, error)

// importFile reads the multipart "file" field as CSV or XLSX and hands the
// rows to run.
func (h *importHandler) importFile(c *gin.Context, run importFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	header, err := c.FormFile("file")
	if err != nil {
		bindError(c, logger, err)
		return
	}
	f, err := header.Open()
	if err != nil {
		bindError(c, logger, err)
		return
	}
	defer f.Close()

	rows, err := tabular.ReadRows(f, header.Filename)
	if err != nil {
		logger.Warn("Failed to read import file", slog.String("filename", header.Filename), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "file"})
		return
	}

	result, err := run(c.Request.Context(), userID, rows)
	if err != nil {
		respondError(c, logger, err, "Failed to import file")
		return
	}

	logger.Info("Import finished",
		slog.String("filename", header.Filename),
		slog.Int("created", result.Created),
		slog.Int("skipped", len(result.Skipped)))
	c.JSON(http.StatusOK, dto.ToImportResponse(result))
}

// importAccounts godoc
// @Summary Import accounts
// @Description Creates the accounts listed in a CSV or XLSX file (columns: type, name). Existing names are kept.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /import/accounts [post]
func (h *importHandler) importAccounts(c *gin.Context) {
	h.importFile(c, h.importService.ImportAccounts)
}

// importTransactions godoc
// @Summary Import transactions
// @Description Inserts the rows of a CSV or XLSX file (columns: date, item, memo, amount, debit account name, credit account name). Invalid rows are skipped and reported.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /import/transactions [post]
func (h *importHandler) importTransactions(c *gin.Context) {
	h.importFile(c, h.importService.ImportTransactions)
}
