package handlers

import (
	"sportify/models"

	"github.com/gin-gonic/gin"
)

func (h *DraftHandler) AddFieldHandler(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if c.Request.ContentLength != 0 && !h.bind(c, &body) {
		return
	}
	v, err := h.Service.AddField(c.Request.Context(), operatorID(c), c.Param("draftID"), body.Name)
	h.respond(c, v, err)
}

func (h *DraftHandler) BulkAddFieldsHandler(c *gin.Context) {
	var body struct {
		Pattern   string           `json:"pattern"`
		Count     int              `json:"count"`
		FieldType models.FieldType `json:"fieldType"`
	}
	if !h.bind(c, &body) {
		return
	}
	v, err := h.Service.BulkAddFields(c.Request.Context(), operatorID(c), c.Param("draftID"), body.Pattern, body.Count, body.FieldType)
	h.respond(c, v, err)
}

func (h *DraftHandler) UpdateFieldHandler(c *gin.Context) {
	var patch models.FieldPatch
	if !h.bind(c, &patch) {
		return
	}
	v, err := h.Service.UpdateField(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"), patch)
	h.respond(c, v, err)
}

func (h *DraftHandler) RemoveFieldHandler(c *gin.Context) {
	v, err := h.Service.RemoveField(c.Request.Context(), operatorID(c), c.Param("draftID"), c.Param("fieldID"))
	h.respond(c, v, err)
}
