package api

import (
	"errors"
	"net/http"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler manages trainer profile endpoints.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- Request/Response Structs ---

type CreateTrainerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Specialty       string `json:"specialty"`
	Certification   string `json:"certification"`
	ExperienceYears int    `json:"experienceYears" binding:"omitempty,min=0"`
}

type TrainerResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Specialty       string `json:"specialty,omitempty"`
	Certification   string `json:"certification,omitempty"`
	ExperienceYears int    `json:"experienceYears,omitempty"`
}

func mapTrainerToResponse(trainer *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:              trainer.ID,
		UserID:          trainer.UserID,
		Name:            trainer.Name,
		Email:           trainer.Email,
		Phone:           trainer.Phone,
		Specialty:       trainer.Specialty,
		Certification:   trainer.Certification,
		ExperienceYears: trainer.ExperienceYears,
	}
}

// --- Handler Methods ---

// CreateTrainer godoc
// @Summary Create the trainer profile for the authenticated account
// @Tags Trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainer body CreateTrainerRequest true "Profile details"
// @Success 201 {object} TrainerResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Profile already exists"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), userID, service.CreateTrainerInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		Certification:   req.Certification,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create trainer profile")
		}
		return
	}

	c.JSON(http.StatusCreated, mapTrainerToResponse(trainer))
}

// GetTrainer handles GET /trainers/:id.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &notFoundErr) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not fetch trainer")
		}
		return
	}
	c.JSON(http.StatusOK, mapTrainerToResponse(trainer))
}

// ListTrainers handles GET /trainers.
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.trainerService.ListTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not list trainers")
		return
	}

	responses := make([]TrainerResponse, 0, len(trainers))
	for i := range trainers {
		responses = append(responses, mapTrainerToResponse(&trainers[i]))
	}
	c.JSON(http.StatusOK, responses)
}
