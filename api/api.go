package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func ResultData(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, ApiResponse{Data: obj})
}

func ResultCreated(c *gin.Context, obj any) {
	c.JSON(http.StatusCreated, ApiResponse{Data: obj})
}

func ResultError(c *gin.Context, status int, errors []string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if len(errors) == 0 {
		errors = []string{"unknownError"}
	}

	c.AbortWithStatusJSON(status, ApiResponse{Errors: errors})
}
