package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// JSONErrorDetails adds the underlying error text, as the binding errors do.
func JSONErrorDetails(c *gin.Context, code int, message string, err error) {
	c.JSON(code, gin.H{"status": "error", "message": message, "details": err.Error()})
}
