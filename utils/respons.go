package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned for every rejected request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSONResponse wraps the staff/admin endpoints' responses.
type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondData writes the reservation API's success envelope: {"data": ...}.
func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// RespondError writes the error envelope with the HTTP status echoed in the
// body.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Status:  code,
		Message: err.Error(),
	})
}

// RespondViolations rejects a request with every violated rule in a single
// 400 message.
func RespondViolations(c *gin.Context, violations []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  http.StatusBadRequest,
		Message: strings.Join(violations, "; "),
	})
}

// RespondJSON writes the staff/admin success envelope.
func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}
