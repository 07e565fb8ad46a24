package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	csrfSessionKey = "csrf_token"
	csrfFormField  = "_csrf"
	contextCSRFKey = "csrf_token"

	// Largest accepted request body; sized for image uploads.
	maxRequestBody = 5 * 1024 * 1024
)

// CSRF keeps a per-session anti-forgery token and verifies it on every
// mutating request. Forms embed the token as a hidden "_csrf" field.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(csrfSessionKey).(string)
		if token == "" {
			token = uuid.NewString()
			session.Set(csrfSessionKey, token)
			if err := session.Save(); err != nil {
				c.String(http.StatusInternalServerError, "session error")
				c.Abort()
				return
			}
		}
		c.Set(contextCSRFKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)

		submitted := c.PostForm(csrfFormField)
		if subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			c.String(http.StatusForbidden, "CSRF token mismatch")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CSRFToken returns the token templates must embed in forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(contextCSRFKey)
}
