package handlers

import (
	"errors"
	"mime"
	"net/http"
	"quote_matrix/internal/adapter/export"
	request "quote_matrix/internal/adapter/http/dto/request"
	response "quote_matrix/internal/adapter/http/dto/response"
	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/domain/matrix"
	"quote_matrix/internal/usecase"
	"quote_matrix/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidMatrixPayload = pkg.NewDomainErrorSimple("INVALID_MATRIX_INPUT", "Invalid matrix payload", http.StatusBadRequest)
)

// MatrixHandler exposes the assignment matrix commands to the portal.

type MatrixHandler struct {
	usecase usecase.IMatrixSessionUseCase
	logger  *zap.Logger
}

func NewMatrixHandler(uc usecase.IMatrixSessionUseCase, logger *zap.Logger) *MatrixHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatrixHandler{usecase: uc, logger: logger}
}

// OpenSession godoc
// @Summary      Open an assignment matrix session
// @Description  Loads the quote catalog and returns the initial matrix view.
// @Tags         matrix
// @Accept       json
// @Produce      json
// @Param        body  body      request.OpenSessionRequest  true  "Quote to open"
// @Success      201   {object}  response.MatrixViewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /matrix/sessions [post]
func (h *MatrixHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMatrixPayload.HTTPStatus, errInvalidMatrixPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.OpenSession(c.Request.Context(), payload.QuoteID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromView(view))
}

// GetView godoc
// @Summary      Current matrix view
// @Description  Visible items of the active category under the current filters.
// @Tags         matrix
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.MatrixViewResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id} [get]
func (h *MatrixHandler) GetView(c *gin.Context) {
	view, err := h.usecase.GetView(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

// SetActiveCategory godoc
// @Summary      Switch category
// @Tags         matrix
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                      true  "Session ID"
// @Param        body        body      request.SetCategoryRequest  true  "Category key"
// @Success      200         {object}  response.MatrixViewResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id}/category [put]
func (h *MatrixHandler) SetActiveCategory(c *gin.Context) {
	var payload request.SetCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMatrixPayload.HTTPStatus, errInvalidMatrixPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetActiveCategory(c.Request.Context(), c.Param("session_id"), entities.CategoryKey(payload.Category))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

// SetFilter godoc
// @Summary      Set a view filter
// @Description  Filters: requiredOnly, autoOnly, diffOnly. Active filters combine with AND.
// @Tags         matrix
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                    true  "Session ID"
// @Param        body        body      request.SetFilterRequest  true  "Filter name and value"
// @Success      200         {object}  response.MatrixViewResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id}/filters [put]
func (h *MatrixHandler) SetFilter(c *gin.Context) {
	var payload request.SetFilterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMatrixPayload.HTTPStatus, errInvalidMatrixPayload.ToHTTPError())
		return
	}
	filter, err := payload.ResolveFilter()
	if err != nil {
		h.fail(c, err)
		return
	}

	view, err := h.usecase.SetFilter(c.Request.Context(), c.Param("session_id"), filter, *payload.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

// ToggleAssignment godoc
// @Summary      Toggle an item on an option
// @Description  Required items are locked: the call succeeds with outcome required_item_locked and changes nothing.
// @Tags         matrix
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                           true  "Session ID"
// @Param        body        body      request.ToggleAssignmentRequest  true  "Item and option"
// @Success      200         {object}  response.ToggleAssignmentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id}/toggle [post]
func (h *MatrixHandler) ToggleAssignment(c *gin.Context) {
	var payload request.ToggleAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMatrixPayload.HTTPStatus, errInvalidMatrixPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ToggleAssignment(c.Request.Context(), c.Param("session_id"), payload.ItemID, payload.OptionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromToggleResult(res))
}

// ExportWorkbook godoc
// @Summary      Export the matrix as a spreadsheet
// @Description  One sheet per category with every item, regardless of the active category and filters.
// @Tags         matrix
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        session_id  path  string  true  "Session ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id}/export [get]
func (h *MatrixHandler) ExportWorkbook(c *gin.Context) {
	catalog, err := h.usecase.ExportCatalog(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	f, err := export.MatrixWorkbook(catalog)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": catalog.QuoteID + "-matrix.xlsx",
	}))
	c.Header("Content-Type", export.ContentTypeXLSX)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("[matrix][handler] workbook write failed",
			zap.String("quote_id", catalog.QuoteID),
			zap.Error(err),
		)
	}
}

// CloseSession godoc
// @Summary      Close a matrix session
// @Tags         matrix
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /matrix/sessions/{session_id} [delete]
func (h *MatrixHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.CloseSession(c.Request.Context(), c.Param("session_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MatrixHandler) fail(c *gin.Context, err error) {
	appErr := mapMatrixError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[matrix][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMatrixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, request.ErrUnknownFilter), errors.Is(err, matrix.ErrInvalidFilter):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Unknown matrix filter", http.StatusBadRequest)
	case errors.Is(err, matrix.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote catalog not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Matrix session not found", http.StatusNotFound)
	case errors.Is(err, matrix.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found in the active category", http.StatusNotFound)
	case errors.Is(err, matrix.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Option not found", http.StatusNotFound)
	case errors.Is(err, matrix.ErrInvalidCatalog):
		return pkg.NewDomainError("INVALID_CATALOG", "Quote catalog is inconsistent", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
