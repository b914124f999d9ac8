package handlers

import (
	"net/http"

	"sportify/models"
	"sportify/utils"

	"github.com/gin-gonic/gin"
)

func (h *DraftHandler) AddSlotHandler(c *gin.Context) {
	var in models.SlotInput
	if !h.bind(c, &in) {
		return
	}
	v, err := h.Service.AddSlot(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"), in)
	h.respond(c, v, err)
}

func (h *DraftHandler) EditSlotHandler(c *gin.Context) {
	var in models.SlotInput
	if !h.bind(c, &in) {
		return
	}
	v, err := h.Service.EditSlot(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"), c.Param("slotID"), in)
	h.respond(c, v, err)
}

func (h *DraftHandler) RemoveSlotHandler(c *gin.Context) {
	v, err := h.Service.RemoveSlot(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"), c.Param("slotID"))
	h.respond(c, v, err)
}

// PropagateSlotsHandler copies a field's slots onto every other field. The
// overwrite is destructive, so the request must carry confirm=true.
func (h *DraftHandler) PropagateSlotsHandler(c *gin.Context) {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if !h.bind(c, &body) {
		return
	}
	if !body.Confirm {
		utils.JSONError(c, http.StatusPreconditionRequired, "CONFIRMATION_REQUIRED",
			"Applying to all fields replaces their existing time slots; resend with confirm=true")
		return
	}
	v, err := h.Service.ApplyToAll(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"))
	h.respond(c, v, err)
}
