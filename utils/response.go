package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type BaseResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func respond(c *gin.Context, status int, resp BaseResponse) {
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	c.JSON(status, resp)
}

func JSON200(c *gin.Context, data any) {
	respond(c, http.StatusOK, BaseResponse{Success: true, Data: data})
}

func JSON202(c *gin.Context, data any) {
	respond(c, http.StatusAccepted, BaseResponse{Success: true, Data: data})
}

func JSON400(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, BaseResponse{Success: false, Error: message})
}

func JSON401(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, BaseResponse{Success: false, Error: message})
}

func JSON404(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, BaseResponse{Success: false, Error: message})
}

func JSON409(c *gin.Context, message string) {
	respond(c, http.StatusConflict, BaseResponse{Success: false, Error: message})
}

func JSON500(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, BaseResponse{Success: false, Error: message})
}
