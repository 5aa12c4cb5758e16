package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StepsHandler exposes the instruction steps of recipes.
type StepsHandler struct {
	steps *service.StepsService
}

func NewStepsHandler(steps *service.StepsService) *StepsHandler {
	return &StepsHandler{steps: steps}
}

// CreateStep godoc
// @Summary      Add a step to a recipe
// @Tags         steps
// @Accept       json
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Param        input body service.CreateStepInput true "Step Info"
// @Success      201  {object}  models.Step
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /steps/{recipeId} [post]
func (h *StepsHandler) CreateStep(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	var input service.CreateStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step, err := h.steps.CreateStep(c.Request.Context(), recipeID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, step)
}

// GetSteps godoc
// @Summary      List the steps of a recipe in order
// @Tags         steps
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Success      200  {array}   models.Step
// @Failure      404  {object}  ErrorResponse
// @Router       /steps/{recipeId} [get]
func (h *StepsHandler) GetSteps(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	steps, err := h.steps.GetStepsByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// UpdateStep godoc
// @Summary      Update a step of a recipe
// @Tags         steps
// @Accept       json
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Param        stepId path int true "Step ID"
// @Param        input body service.UpdateStepInput true "Fields to update"
// @Success      200  {object}  models.Step
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /steps/{recipeId}/{stepId} [put]
func (h *StepsHandler) UpdateStep(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}
	stepID, ok := parseUintParam(c, "stepId")
	if !ok {
		return
	}

	var input service.UpdateStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step, err := h.steps.UpdateStep(c.Request.Context(), recipeID, stepID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

// DeleteStep godoc
// @Summary      Remove a step from a recipe
// @Tags         steps
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Param        stepId path int true "Step ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /steps/{recipeId}/{stepId} [delete]
func (h *StepsHandler) DeleteStep(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}
	stepID, ok := parseUintParam(c, "stepId")
	if !ok {
		return
	}

	if err := h.steps.DeleteStep(c.Request.Context(), stepID, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Step deleted successfully"})
}

// DeleteStepByID godoc
// @Summary      Remove a step by id
// @Tags         steps
// @Produce      json
// @Param        stepId path int true "Step ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /steps/step/{stepId} [delete]
func (h *StepsHandler) DeleteStepByID(c *gin.Context) {
	stepID, ok := parseUintParam(c, "stepId")
	if !ok {
		return
	}

	if err := h.steps.DeleteStepByID(c.Request.Context(), stepID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Step deleted successfully"})
}
