package controllers

import (
	"github.com/gin-gonic/gin"

	"luxing/internal/services"
	"luxing/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCities godoc
// @Summary List supported cities
// @Description Fetch every city in the travel catalog with attraction counts
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	cities := cc.catalogService.ListCities()
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get one city's catalog entry
// @Description Fetch a city's attractions and emergency contacts
// @Tags Cities
// @Produce json
// @Param cityId path string true "City id, e.g. beijing"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{cityId} [get]
func (cc *CatalogController) GetCity(c *gin.Context) {
	detail, err := cc.catalogService.GetCity(c.Param("cityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "City fetched successfully")
}
