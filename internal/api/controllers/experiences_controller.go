package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripweave/internal/models/request_models"
	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type ExperiencesController struct {
	experienceService services.ExperienceServiceInterface
}

func NewExperiencesController(experienceService services.ExperienceServiceInterface) *ExperiencesController {
	return &ExperiencesController{
		experienceService: experienceService,
	}
}

func (e *ExperiencesController) CreateExperience(c *gin.Context) {
	var req request_models.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and destination are required")
		return
	}

	id, err := e.experienceService.CreateExperience(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"experience_id": id.String()}, "Experience created successfully")
}

func (e *ExperiencesController) GetExperienceById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Experience ID is required")
		return
	}

	exp, err := e.experienceService.GetExperienceById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exp, "Experience fetched successfully")
}

func (e *ExperiencesController) ListByDestination(c *gin.Context) {
	destination := c.Param("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	exps, err := e.experienceService.ListByDestination(c.Request.Context(), destination, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exps, "Experiences fetched successfully")
}

func (e *ExperiencesController) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Name query is required")
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	exps, err := e.experienceService.SearchByName(c.Request.Context(), name, c.Query("destination"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exps, "Experiences fetched successfully")
}

func (e *ExperiencesController) DeleteExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Experience ID must be a valid UUID")
		return
	}

	if err := e.experienceService.DeleteExperience(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Experience deleted successfully")
}

func pagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "5"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
