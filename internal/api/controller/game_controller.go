package controller

import (
	"net/http"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/api/response"
	"gameshelf/backend/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameController handles catalog HTTP requests.
type GameController struct {
	gameService service.GameService
	development bool
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService, development bool) *GameController {
	return &GameController{
		gameService: gameService,
		development: development,
	}
}

// Create handles POST /api/games.
func (gc *GameController) Create(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := gc.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.CreatedResponse(c, gin.H{"message": "game added successfully", "game": game})
}

// List handles GET /api/games.
func (gc *GameController) List(c *gin.Context) {
	games, err := gc.gameService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"games": games})
}

// ListByUser handles GET /api/games/by-user/:userID.
func (gc *GameController) ListByUser(c *gin.Context) {
	userID := c.Param("userID")
	if uuid.Validate(userID) != nil {
		response.FromError(c, gc.development, service.ErrInvalidID)
		return
	}

	games, err := gc.gameService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"games": games})
}

// Get handles GET /api/games/:id. The id shape is checked before any
// storage access.
func (gc *GameController) Get(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.FromError(c, gc.development, service.ErrInvalidID)
		return
	}

	game, err := gc.gameService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"game": game})
}

// Update handles PUT /api/games/:id with a partial patch.
func (gc *GameController) Update(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.FromError(c, gc.development, service.ErrInvalidID)
		return
	}

	var req models.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := gc.gameService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "game updated successfully", "game": game})
}

// Delete handles DELETE /api/games/:id.
func (gc *GameController) Delete(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.FromError(c, gc.development, service.ErrInvalidID)
		return
	}

	if err := gc.gameService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, gc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "game deleted successfully"})
}
