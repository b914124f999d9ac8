package handlers

import (
	"errors"
	"net/http"

	"sportify/middleware"
	"sportify/models"
	"sportify/services/draft"
	"sportify/services/submission"
	"sportify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler forwards operator intents to the draft service.
type DraftHandler struct {
	Service draft.DraftService
	Logger  *zap.Logger
}

func NewDraftHandler(svc draft.DraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{Service: svc, Logger: logger}
}

func operatorID(c *gin.Context) string {
	return c.GetString(middleware.OperatorIDKey)
}

// respond writes the view or maps err onto the error envelope.
func (h *DraftHandler) respond(c *gin.Context, v *draft.DraftView, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *DraftHandler) fail(c *gin.Context, err error) {
	if utils.JSONRejection(c, h.Logger, err) {
		return
	}
	switch {
	case errors.Is(err, draft.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "DRAFT_NOT_FOUND", err.Error())
	case errors.Is(err, submission.ErrSubmissionFailed):
		h.Logger.Warn("Submission failed", zap.String("draftID", c.Param("draftID")), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "SUBMISSION_FAILED", err.Error())
	default:
		h.Logger.Error("Draft operation failed", zap.String("draftID", c.Param("draftID")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "Please try again later")
	}
}

func (h *DraftHandler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		return false
	}
	return true
}

func (h *DraftHandler) CreateDraftHandler(c *gin.Context) {
	v, err := h.Service.Create(c.Request.Context(), operatorID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *DraftHandler) GetDraftHandler(c *gin.Context) {
	v, err := h.Service.Get(c.Request.Context(), operatorID(c), c.Param("draftID"))
	h.respond(c, v, err)
}

func (h *DraftHandler) DiscardDraftHandler(c *gin.Context) {
	if err := h.Service.Discard(c.Request.Context(), operatorID(c), c.Param("draftID")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) UpdateComplexHandler(c *gin.Context) {
	var info models.ComplexInfo
	if !h.bind(c, &info) {
		return
	}
	v, err := h.Service.UpdateComplex(c.Request.Context(), operatorID(c), c.Param("draftID"), info)
	h.respond(c, v, err)
}

func (h *DraftHandler) NextStepHandler(c *gin.Context) {
	v, err := h.Service.Next(c.Request.Context(), operatorID(c), c.Param("draftID"))
	h.respond(c, v, err)
}

func (h *DraftHandler) PreviousStepHandler(c *gin.Context) {
	v, err := h.Service.Back(c.Request.Context(), operatorID(c), c.Param("draftID"))
	h.respond(c, v, err)
}

func (h *DraftHandler) SubmitDraftHandler(c *gin.Context) {
	res, err := h.Service.Submit(c.Request.Context(), operatorID(c), c.Param("draftID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complex submitted", "result": res})
}
