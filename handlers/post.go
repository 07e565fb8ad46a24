package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akkaungkyawkhaing/dream-lands/database"
	"github.com/akkaungkyawkhaing/dream-lands/forms"
	"github.com/akkaungkyawkhaing/dream-lands/middleware"
	"github.com/akkaungkyawkhaing/dream-lands/models"
)

// Stored on every new post, e.g. "August 30, 2026".
const createDateLayout = "January 2, 2006"

func Home(c *gin.Context) {
	var posts []models.Post
	if err := database.GORM_DB.Order("id").Find(&posts).Error; err != nil {
		log.Printf("Failed to fetch posts: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	var firstPost *models.Post
	if len(posts) > 0 {
		firstPost = &posts[0]
	}

	c.HTML(http.StatusOK, "index.html", templateData(c, gin.H{
		"posts":     posts,
		"firstPost": firstPost,
	}))
}

func ShowPost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var comments []models.Comment
	if err := database.GORM_DB.Where("post_id = ?", post.ID).Order("created_at").Find(&comments).Error; err != nil {
		log.Printf("Failed to fetch comments: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.HTML(http.StatusOK, "post.html", templateData(c, gin.H{
		"post":     post,
		"comments": comments,
	}))
}

func AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Flash(c, "Comment text is required.")
		c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Author: user.Name,
		Text:   form.Text,
	}
	if err := database.GORM_DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
}

func ShowNewPost(c *gin.Context) {
	c.HTML(http.StatusOK, "make-post.html", templateData(c, gin.H{
		"form":   forms.PostForm{},
		"isEdit": false,
	}))
}

func CreatePost(c *gin.Context) {
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "make-post.html", templateData(c, gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
			"isEdit": false,
		}))
		return
	}

	post := models.Post{
		LocationName: form.LocationName,
		Country:      form.Country,
		ImgURL:       form.ImgURL,
		Description:  form.Description,
		CreateDate:   time.Now().Format(createDateLayout),
	}
	if err := database.GORM_DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create post: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func ShowEditPost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "make-post.html", templateData(c, gin.H{
		"form": forms.PostForm{
			LocationName: post.LocationName,
			Country:      post.Country,
			ImgURL:       post.ImgURL,
			Description:  post.Description,
		},
		"isEdit": true,
		"postID": post.ID,
	}))
}

func UpdatePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "make-post.html", templateData(c, gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
			"isEdit": true,
			"postID": post.ID,
		}))
		return
	}

	// CreateDate is kept; only the authored fields are overwritten.
	post.LocationName = form.LocationName
	post.Country = form.Country
	post.ImgURL = form.ImgURL
	post.Description = form.Description
	if err := database.GORM_DB.Save(&post).Error; err != nil {
		log.Printf("Failed to update post: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func DeletePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	if err := database.GORM_DB.Delete(&models.Post{}, post.ID).Error; err != nil {
		log.Printf("Failed to delete post: %v", err)
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// findPost resolves the :id param into a post. A malformed or unknown
// id renders the 404 page and reports ok=false.
func findPost(c *gin.Context) (models.Post, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		renderNotFound(c)
		return models.Post{}, false
	}

	var post models.Post
	if err := database.GORM_DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return models.Post{}, false
		}
		log.Printf("Failed to fetch post %d: %v", id, err)
		c.String(http.StatusInternalServerError, "database error")
		return models.Post{}, false
	}
	return post, true
}
