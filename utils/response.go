package utils

import "github.com/gin-gonic/gin"

// JSONError writes the bare {"error": ...} body used by room, booking and
// contact endpoints.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONAuthError writes the {"success": false, "error": ...} envelope the auth
// endpoints use.
func JSONAuthError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
