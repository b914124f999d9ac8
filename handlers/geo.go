package handlers

import (
	"context"
	"errors"
	"net/http"

	"sportify/models"
	"sportify/services/geo"
	"sportify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationLister is the directory surface the geo endpoints need.
type LocationLister interface {
	ListProvinces(ctx context.Context) ([]models.LocationOption, error)
	ListWards(ctx context.Context, provinceCode string) ([]models.LocationOption, error)
}

// GeoHandler serves the province and ward pickers.
type GeoHandler struct {
	Locations LocationLister
	Logger    *zap.Logger
}

func NewGeoHandler(locations LocationLister, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{Locations: locations, Logger: logger}
}

func (h *GeoHandler) ListProvincesHandler(c *gin.Context) {
	provinces, err := h.Locations.ListProvinces(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list provinces", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "DIRECTORY_UNAVAILABLE", "Please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"provinces": provinces})
}

func (h *GeoHandler) ListWardsHandler(c *gin.Context) {
	code := c.Param("code")
	wards, err := h.Locations.ListWards(c.Request.Context(), code)
	if errors.Is(err, geo.ErrUnknownCode) {
		utils.JSONError(c, http.StatusNotFound, "UNKNOWN_PROVINCE", "No province with code "+code)
		return
	}
	if err != nil {
		h.Logger.Error("Failed to list wards", zap.String("province", code), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "DIRECTORY_UNAVAILABLE", "Please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wards": wards})
}
