package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponse returns a 200 JSON envelope around extras.
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusOK, NewResponse(true, http.StatusOK, extras))
}

// CreatedResponse returns a 201 JSON envelope around extras.
func CreatedResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusCreated, NewResponse(true, http.StatusCreated, extras))
}

// ErrorResponse returns a JSON envelope with a single message.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(
		code,
		NewResponse(
			false,
			code,
			map[string]any{
				"message": message,
			},
		))
}

// ValidationErrorResponse returns a 400 envelope with the itemized
// violation list.
func ValidationErrorResponse(c *gin.Context, violations []string) {
	c.JSON(
		http.StatusBadRequest,
		NewResponse(
			false,
			http.StatusBadRequest,
			map[string]any{
				"message": "validation failed",
				"errors":  violations,
			},
		))
}
