package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly allows only an authenticated admin through. Everyone else
// gets a rendered 404, not a 403, so the route does not reveal itself.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			c.Abort()
			return
		}
		c.Next()
	}
}
