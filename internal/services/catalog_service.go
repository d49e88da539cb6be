package services

import (
	"luxing/internal/catalog"
	"luxing/internal/models/response_models"
	"luxing/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCities() []response_models.CitySummary
	GetCity(cityID string) (response_models.CityDetail, error)
}

type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) CatalogServiceInterface {
	return &CatalogService{catalog: cat}
}

func (c *CatalogService) ListCities() []response_models.CitySummary {
	entries := c.catalog.Cities()
	result := make([]response_models.CitySummary, 0, len(entries))
	for _, e := range entries {
		result = append(result, toCitySummary(e))
	}
	return result
}

func (c *CatalogService) GetCity(cityID string) (response_models.CityDetail, error) {
	entry, ok := c.catalog.City(cityID)
	if !ok {
		return response_models.CityDetail{}, utils.ErrCityNotFound
	}
	return response_models.CityDetail{
		CitySummary: toCitySummary(entry),
		Attractions: entry.Attractions,
		Emergency:   entry.Emergency,
	}, nil
}

func toCitySummary(e catalog.CityEntry) response_models.CitySummary {
	return response_models.CitySummary{
		ID:              e.ID,
		Name:            e.Name,
		LocalName:       e.LocalName,
		Image:           e.Image,
		RecommendedDays: e.RecommendedDays,
		AttractionCount: len(e.Attractions),
	}
}
