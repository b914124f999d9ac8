// File: sportify/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth middleware applied to every draft route.
	OperatorAuth gin.HandlerFunc

	// Draft lifecycle endpoints
	CreateDraftHandler   gin.HandlerFunc
	GetDraftHandler      gin.HandlerFunc
	DiscardDraftHandler  gin.HandlerFunc
	UpdateComplexHandler gin.HandlerFunc
	NextStepHandler      gin.HandlerFunc
	PreviousStepHandler  gin.HandlerFunc
	SubmitDraftHandler   gin.HandlerFunc

	// Field endpoints
	AddFieldHandler      gin.HandlerFunc
	BulkAddFieldsHandler gin.HandlerFunc
	UpdateFieldHandler   gin.HandlerFunc
	RemoveFieldHandler   gin.HandlerFunc

	// Time slot endpoints
	AddSlotHandler        gin.HandlerFunc
	EditSlotHandler       gin.HandlerFunc
	RemoveSlotHandler     gin.HandlerFunc
	PropagateSlotsHandler gin.HandlerFunc

	// Directory endpoints
	ListProvincesHandler gin.HandlerFunc
	ListWardsHandler     gin.HandlerFunc

	// Submitted complexes; nil when submissions go to a remote backend.
	ListComplexesHandler gin.HandlerFunc
	GetComplexHandler    gin.HandlerFunc
}

// NewHandlerBundle wires the handlers into a bundle. cx may be nil.
func NewHandlerBundle(d *DraftHandler, g *GeoHandler, cx *ComplexHandler, auth gin.HandlerFunc) *HandlerBundle {
	hb := &HandlerBundle{
		OperatorAuth: auth,

		CreateDraftHandler:   d.CreateDraftHandler,
		GetDraftHandler:      d.GetDraftHandler,
		DiscardDraftHandler:  d.DiscardDraftHandler,
		UpdateComplexHandler: d.UpdateComplexHandler,
		NextStepHandler:      d.NextStepHandler,
		PreviousStepHandler:  d.PreviousStepHandler,
		SubmitDraftHandler:   d.SubmitDraftHandler,

		AddFieldHandler:      d.AddFieldHandler,
		BulkAddFieldsHandler: d.BulkAddFieldsHandler,
		UpdateFieldHandler:   d.UpdateFieldHandler,
		RemoveFieldHandler:   d.RemoveFieldHandler,

		AddSlotHandler:        d.AddSlotHandler,
		EditSlotHandler:       d.EditSlotHandler,
		RemoveSlotHandler:     d.RemoveSlotHandler,
		PropagateSlotsHandler: d.PropagateSlotsHandler,

		ListProvincesHandler: g.ListProvincesHandler,
		ListWardsHandler:     g.ListWardsHandler,
	}
	if cx != nil {
		hb.ListComplexesHandler = cx.ListComplexesHandler
		hb.GetComplexHandler = cx.GetComplexHandler
	}
	return hb
}
