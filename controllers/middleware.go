package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID stamps every request with a uuid so log lines and responses can
// be correlated. An id supplied by the caller is kept.
func RequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if len(id) == 0 {
		id = uuid.New().String()
	}

	c.Set("requestID", id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}
