package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sportify/models"
)

// HTTPDirectory reads provinces and wards from a provinces open API.
type HTTPDirectory struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewHTTPDirectory builds a directory client against baseURL.
func NewHTTPDirectory(baseURL string, logger *zap.Logger) *HTTPDirectory {
	return &HTTPDirectory{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Second},
		Logger:  logger,
	}
}

type apiUnit struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

type apiProvince struct {
	apiUnit
	Wards []apiUnit `json:"wards"`
}

func toOptions(units []apiUnit) []models.LocationOption {
	out := make([]models.LocationOption, 0, len(units))
	for _, u := range units {
		code := strconv.Itoa(u.Code)
		out = append(out, models.LocationOption{Code: code, Label: u.Name, Value: code})
	}
	return out
}

func (d *HTTPDirectory) ListProvinces(ctx context.Context) ([]models.LocationOption, error) {
	var units []apiUnit
	if err := d.getJSON(ctx, d.BaseURL+"/p/", &units); err != nil {
		return nil, err
	}
	return toOptions(units), nil
}

func (d *HTTPDirectory) ListWards(ctx context.Context, provinceCode string) ([]models.LocationOption, error) {
	var p apiProvince
	endpoint := fmt.Sprintf("%s/p/%s?depth=2", d.BaseURL, url.PathEscape(provinceCode))
	if err := d.getJSON(ctx, endpoint, &p); err != nil {
		return nil, err
	}
	return toOptions(p.Wards), nil
}

func (d *HTTPDirectory) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		d.Logger.Error("Failed to query location directory", zap.String("url", endpoint), zap.Error(err))
		return fmt.Errorf("location directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUnknownCode
	}
	if resp.StatusCode != http.StatusOK {
		d.Logger.Error("Location directory returned non-OK status", zap.String("url", endpoint), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("location directory returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode location directory response: %w", err)
	}
	return nil
}
