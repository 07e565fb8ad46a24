package middleware

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/akkaungkyawkhaing/dream-lands/database"
	"github.com/akkaungkyawkhaing/dream-lands/models"
)

const (
	SessionName = "dream_lands_session"

	sessionUserKey = "user_id"
	contextUserKey = "current_user"
)

// LoadUser resolves the session user id into a fresh database record on
// every request and stores it on the gin context. Stale ids (deleted
// users, sessions from a previous process) are treated as logged out.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(sessionUserKey).(uint); ok {
			var user models.User
			if err := database.GORM_DB.First(&user, id).Error; err == nil {
				c.Set(contextUserKey, &user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func LoginUser(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

func LogoutUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}

// Flash queues a one-time message shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Printf("Failed to save session flash: %v", err)
	}
}

// Flashes drains the queued flash messages.
func Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			log.Printf("Failed to clear session flashes: %v", err)
		}
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
