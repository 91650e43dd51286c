package routes

import (
	"quote_matrix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMatrixSessions = "/matrix/sessions"
)

func addMatrixRoutes(rg *gin.RouterGroup, matrixHandler *handlers.MatrixHandler) {
	sessions := rg.Group(PathMatrixSessions)
	{
		sessions.POST("", matrixHandler.OpenSession)
		sessions.GET("/:session_id", matrixHandler.GetView)
		sessions.DELETE("/:session_id", matrixHandler.CloseSession)
		sessions.GET("/:session_id/export", matrixHandler.ExportWorkbook)

		// Comandos da matriz; cada um devolve o estado resultante.
		sessions.PUT("/:session_id/category", matrixHandler.SetActiveCategory)
		sessions.PUT("/:session_id/filters", matrixHandler.SetFilter)
		sessions.POST("/:session_id/toggle", matrixHandler.ToggleAssignment)
	}
}
