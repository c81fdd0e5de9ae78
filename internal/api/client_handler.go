package api

import (
	"errors"
	"net/http"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler manages client profile endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- Request/Response Structs ---

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	FitnessGoals string `json:"fitnessGoals"`
}

type ClientResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	FitnessGoals string `json:"fitnessGoals,omitempty"`
}

func mapClientToResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:           client.ID,
		UserID:       client.UserID,
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		FitnessGoals: client.FitnessGoals,
	}
}

// --- Handler Methods ---

// CreateClient godoc
// @Summary Create the client profile for the authenticated account
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body CreateClientRequest true "Profile details"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Profile already exists"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), userID, req.Name, req.Email, req.Phone, req.FitnessGoals)
	if err != nil {
		if errors.Is(err, service.ErrProfileAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create client profile")
		}
		return
	}

	c.JSON(http.StatusCreated, mapClientToResponse(client))
}

// GetClient handles GET /clients/:id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &notFoundErr) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not fetch client")
		}
		return
	}
	c.JSON(http.StatusOK, mapClientToResponse(client))
}

// ListClients handles GET /clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not list clients")
		return
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, mapClientToResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, responses)
}
