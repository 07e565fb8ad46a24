package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Elements(c *gin.Context) {
	c.HTML(http.StatusOK, "elements.html", templateData(c, gin.H{}))
}

func Generic(c *gin.Context) {
	c.HTML(http.StatusOK, "generic.html", templateData(c, gin.H{}))
}
