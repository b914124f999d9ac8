package handlers

import (
	"errors"
	"net/http"

	complexRepo "sportify/database/repository/complex"
	"sportify/models"
	"sportify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComplexHandler lists complexes an operator has already submitted.
type ComplexHandler struct {
	Repo   complexRepo.ComplexRepository
	Logger *zap.Logger
}

func NewComplexHandler(repo complexRepo.ComplexRepository, logger *zap.Logger) *ComplexHandler {
	return &ComplexHandler{Repo: repo, Logger: logger}
}

func (h *ComplexHandler) ListComplexesHandler(c *gin.Context) {
	records, err := h.Repo.ListByOperator(c.Request.Context(), operatorID(c))
	if err != nil {
		h.Logger.Error("Failed to list complexes", zap.String("operatorID", operatorID(c)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "Please try again later")
		return
	}
	if records == nil {
		records = []models.ComplexRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"complexes": records})
}

func (h *ComplexHandler) GetComplexHandler(c *gin.Context) {
	rec, err := h.Repo.GetByID(c.Request.Context(), c.Param("complexID"))
	if errors.Is(err, complexRepo.ErrNotFound) || (err == nil && rec.OperatorID != operatorID(c)) {
		utils.JSONError(c, http.StatusNotFound, "COMPLEX_NOT_FOUND", "complex not found")
		return
	}
	if err != nil {
		h.Logger.Error("Failed to load complex", zap.String("complexID", c.Param("complexID")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "Please try again later")
		return
	}
	c.JSON(http.StatusOK, rec)
}
