package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweave/internal/models/request_models"
	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a full itinerary
// @Description Turn ordered trip legs with selected experiences into a day-by-day schedule
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip legs, optional start date and start hour"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Legs are required")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// ReorderDayItems godoc
// @Summary Reorder a day's experiences
// @Description Move one experience within a day and regenerate the day's full schedule
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ReorderDayRequest true "Day contents plus from/to index"
// @Success 200 {object} response_models.ItineraryDay
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/reorder-day [post]
func (i *ItineraryController) ReorderDayItems(c *gin.Context) {
	var req request_models.ReorderDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Day with experiences is required")
		return
	}

	day, err := i.itineraryService.ReorderDayItems(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Day reordered successfully")
}

// MoveItemBetweenDays godoc
// @Summary Move an experience to another day
// @Description Relocate an experience across days and regenerate both affected schedules
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.MoveItemRequest true "Source and target day contents plus indices"
// @Success 200 {object} response_models.MoveItemResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/move-item [post]
func (i *ItineraryController) MoveItemBetweenDays(c *gin.Context) {
	var req request_models.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Source and target days are required")
		return
	}

	result, err := i.itineraryService.MoveItemBetweenDays(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Item moved successfully")
}
