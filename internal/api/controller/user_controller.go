package controller

import (
	"net/http"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/api/response"
	"gameshelf/backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles account HTTP requests.
type UserController struct {
	userService service.UserService
	development bool
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService, development bool) *UserController {
	return &UserController{
		userService: userService,
		development: development,
	}
}

// Register handles POST /user/register.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, uc.development, err)
		return
	}

	response.CreatedResponse(c, gin.H{"message": "user registered successfully", "user": profile})
}

// Login handles POST /user/login.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, uc.development, err)
		return
	}

	response.SuccessResponse(c, result)
}

// List handles GET /user/all.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, uc.development, err)
		return
	}

	response.SuccessResponse(c, gin.H{"users": users})
}
