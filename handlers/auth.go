package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akkaungkyawkhaing/dream-lands/database"
	"github.com/akkaungkyawkhaing/dream-lands/forms"
	"github.com/akkaungkyawkhaing/dream-lands/middleware"
	"github.com/akkaungkyawkhaing/dream-lands/models"
	"github.com/akkaungkyawkhaing/dream-lands/utils"
)

func ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", templateData(c, gin.H{
		"form": forms.RegisterForm{},
	}))
}

func Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", templateData(c, gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
		}))
		return
	}

	var existing models.User
	err := database.GORM_DB.Where("email = ?", form.Email).First(&existing).Error
	if err == nil {
		middleware.Flash(c, "This email is already in use. Please choose another one.")
		c.HTML(http.StatusOK, "register.html", templateData(c, gin.H{
			"form": form,
		}))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check existing email: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	hash, err := utils.GeneratePwdHash(form.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		middleware.Flash(c, "Registration failed, please try again!")
		c.HTML(http.StatusOK, "register.html", templateData(c, gin.H{
			"form": form,
		}))
		return
	}

	// The first account ever registered owns the blog.
	var count int64
	if err := database.GORM_DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count users: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}
	role := models.RoleMember
	if count == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Email:    form.Email,
		Password: hash,
		Name:     strings.ToLower(form.FirstName + " " + form.LastName),
		Role:     role,
	}
	if err := database.GORM_DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		middleware.Flash(c, "This email is already in use. Please choose another one.")
		c.HTML(http.StatusOK, "register.html", templateData(c, gin.H{
			"form": form,
		}))
		return
	}

	if err := middleware.LoginUser(c, &user); err != nil {
		log.Printf("Failed to establish session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func ShowLogin(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", templateData(c, gin.H{
		"form": forms.LoginForm{},
	}))
}

func Login(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", templateData(c, gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
		}))
		return
	}

	var user models.User
	err := database.GORM_DB.Where("email = ?", form.Email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to look up user: %v", err)
		}
		// Unknown email and bad password answer identically.
		middleware.Flash(c, "Login failed, please try again!")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if !utils.CheckPwdHash(user.Password, form.Password) {
		middleware.Flash(c, "Login failed, please try again!")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := middleware.LoginUser(c, &user); err != nil {
		log.Printf("Failed to establish session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	if err := middleware.LogoutUser(c); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
