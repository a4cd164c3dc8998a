package response

import "github.com/gin-gonic/gin"

// Error is the wire shape for every failure: {"error": "..."}.
func Error(msg string) gin.H {
	return gin.H{"error": msg}
}

// AuthPayload wraps a token plus the sanitized user, as returned by
// signup and login.
func AuthPayload(token string, user interface{}) gin.H {
	return gin.H{"authToken": token, "payload": user}
}

// Payload wraps a single entity for endpoints that nest their result.
func Payload(data interface{}) gin.H {
	return gin.H{"payload": data}
}
