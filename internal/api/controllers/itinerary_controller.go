package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxing/internal/models/request_models"
	"luxing/internal/services"
	"luxing/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// BuildItinerary godoc
// @Summary Build a day-by-day itinerary
// @Description Assemble a complete trip plan from the request; uses the generative planner when attractions are selected and degrades to a packing fallback when it misbehaves
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/build [post]
func (ic *ItineraryController) BuildItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ic.itineraryService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary built successfully")
}
