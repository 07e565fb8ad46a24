package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/akkaungkyawkhaing/dream-lands/middleware"
)

// NewRouter builds the gin engine with sessions, CSRF protection and
// every route of the application. templateGlob points at the HTML
// templates so tests can run from their own directory.
func NewRouter(secret, templateGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   7 * 24 * 60 * 60,
	})
	router.Use(sessions.Sessions(middleware.SessionName, store))
	router.Use(middleware.CSRF())
	router.Use(middleware.LoadUser())

	router.LoadHTMLGlob(templateGlob)
	router.Static("/uploads", UploadDir)

	router.GET("/", Home)
	router.GET("/post/:id", ShowPost)
	router.POST("/post/:id", AddComment)

	router.GET("/register", ShowRegister)
	router.POST("/register", Register)
	router.GET("/login", ShowLogin)
	router.POST("/login", Login)
	router.GET("/logout", Logout)

	router.GET("/elements", Elements)
	router.GET("/generic", Generic)

	admin := router.Group("/", middleware.AdminOnly())
	admin.GET("/new-post", ShowNewPost)
	admin.POST("/new-post", CreatePost)
	admin.GET("/edit-post/:id", ShowEditPost)
	admin.POST("/edit-post/:id", UpdatePost)
	admin.GET("/delete/:id", DeletePost)
	admin.POST("/upload-image", UploadImage)

	router.NoRoute(NotFound)

	return router
}

// templateData merges the page data with the fields every template
// expects: auth state, drained flash messages and the CSRF token.
func templateData(c *gin.Context, data gin.H) gin.H {
	user := middleware.CurrentUser(c)
	data["isAuthenticated"] = user != nil
	data["user"] = user
	data["isAdmin"] = user != nil && user.IsAdmin()
	data["flashes"] = middleware.Flashes(c)
	data["csrfToken"] = middleware.CSRFToken(c)
	if _, ok := data["errors"]; !ok {
		data["errors"] = map[string]string{}
	}
	return data
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", templateData(c, gin.H{}))
}

func NotFound(c *gin.Context) {
	renderNotFound(c)
}
