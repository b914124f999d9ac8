package routes

import (
	"net/http"
	"time"

	"sportify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDraftRoutes registers the setup wizard endpoints.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	drafts := r.Group("/api/drafts")
	{
		drafts.Use(hb.OperatorAuth)
		drafts.POST("", hb.CreateDraftHandler)
		drafts.GET("/:draftID", hb.GetDraftHandler)
		drafts.DELETE("/:draftID", hb.DiscardDraftHandler)
		drafts.PUT("/:draftID/complex", hb.UpdateComplexHandler)

		drafts.POST("/:draftID/fields", hb.AddFieldHandler)
		drafts.POST("/:draftID/fields/bulk", hb.BulkAddFieldsHandler)
		drafts.PATCH("/:draftID/fields/:fieldID", hb.UpdateFieldHandler)
		drafts.DELETE("/:draftID/fields/:fieldID", hb.RemoveFieldHandler)

		drafts.POST("/:draftID/fields/:fieldID/slots", hb.AddSlotHandler)
		drafts.PUT("/:draftID/fields/:fieldID/slots/:slotID", hb.EditSlotHandler)
		drafts.DELETE("/:draftID/fields/:fieldID/slots/:slotID", hb.RemoveSlotHandler)
		drafts.POST("/:draftID/fields/:fieldID/propagate", hb.PropagateSlotsHandler)

		drafts.POST("/:draftID/next", hb.NextStepHandler)
		drafts.POST("/:draftID/back", hb.PreviousStepHandler)
		drafts.POST("/:draftID/submit", hb.SubmitDraftHandler)
	}
}

// RegisterGeoRoutes registers the province and ward lookups. They are public.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	geo := r.Group("/api/geo")
	{
		geo.GET("/provinces", hb.ListProvincesHandler)
		geo.GET("/provinces/:code/wards", hb.ListWardsHandler)
	}
}

// RegisterComplexRoutes registers read access to submitted complexes when a
// local store backs submissions.
func RegisterComplexRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.ListComplexesHandler == nil {
		return
	}
	complexes := r.Group("/api/complexes")
	{
		complexes.Use(hb.OperatorAuth)
		complexes.GET("", hb.ListComplexesHandler)
		complexes.GET("/:complexID", hb.GetComplexHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sportify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterGeoRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterComplexRoutes(r, hb)
}
