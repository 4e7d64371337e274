package utils

import "github.com/gin-gonic/gin"

// Envelope is the body shape shared by every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Envelope{Success: true, Data: data})
}

// JSONList writes a collection together with its size.
func JSONList(c *gin.Context, code int, data interface{}, count int) {
	c.JSON(code, Envelope{Success: true, Data: data, Count: &count})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Success: false, Message: message})
}

// AbortJSONError is JSONError for middleware: it stops the handler chain.
func AbortJSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Success: false, Message: message})
}
