package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends the flat error body the auction UI expects.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
