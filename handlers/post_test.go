package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akkaungkyawkhaing/dream-lands/database"
	"github.com/akkaungkyawkhaing/dream-lands/models"
)

func TestHomeWithNoPosts(t *testing.T) {
	router := setupRouter(t)
	cl := newClient(t, router)

	w := cl.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No journeys written down yet.")
}

func TestPostRoundTrip(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)

	w := admin.createPost("Bagan", "Myanmar", "https://example.com/bagan.jpg", "<p>Thousands of temples.</p>")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var post models.Post
	require.NoError(t, database.GORM_DB.First(&post).Error)
	assert.NotEmpty(t, post.CreateDate)

	view := admin.get("/post/1")
	require.Equal(t, http.StatusOK, view.Code)
	body := view.Body.String()
	assert.Contains(t, body, "Bagan")
	assert.Contains(t, body, "Myanmar")
	assert.Contains(t, body, "https://example.com/bagan.jpg")
	// Rich text is rendered, not escaped.
	assert.Contains(t, body, "<p>Thousands of temples.</p>")
	assert.Contains(t, body, post.CreateDate)
}

func TestEditPost(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)
	require.Equal(t, http.StatusFound, admin.createPost("Bagan", "Myanmar", "https://example.com/bagan.jpg", "<p>temples</p>").Code)

	var before models.Post
	require.NoError(t, database.GORM_DB.First(&before).Error)

	// The edit form is prefilled from the record.
	form := admin.get("/edit-post/1")
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `value="Bagan"`)

	w := admin.postForm("/edit-post/1", url.Values{
		"location_name": {"Inle Lake"},
		"country":       {"Myanmar"},
		"img_url":       {"https://example.com/inle.jpg"},
		"description":   {"<p>Floating gardens.</p>"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var after models.Post
	require.NoError(t, database.GORM_DB.First(&after).Error)
	assert.Equal(t, "Inle Lake", after.LocationName)
	assert.Equal(t, "https://example.com/inle.jpg", after.ImgURL)
	assert.Equal(t, before.CreateDate, after.CreateDate)

	view := admin.get("/post/1")
	assert.Contains(t, view.Body.String(), "Inle Lake")
}

func TestDeletePost(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)
	require.Equal(t, http.StatusFound, admin.createPost("Bagan", "Myanmar", "https://example.com/bagan.jpg", "<p>temples</p>").Code)

	w := admin.get("/delete/1")
	require.Equal(t, http.StatusFound, w.Code)

	view := admin.get("/post/1")
	assert.Equal(t, http.StatusNotFound, view.Code)
}

func TestDeleteNonexistentPost(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)

	w := admin.get("/delete/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewNonexistentPost(t *testing.T) {
	router := setupRouter(t)
	cl := newClient(t, router)

	assert.Equal(t, http.StatusNotFound, cl.get("/post/99").Code)
	assert.Equal(t, http.StatusNotFound, cl.get("/post/not-a-number").Code)
}

func TestPostFormValidation(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)

	w := admin.createPost("Bagan", "Myanmar", "not a url", "<p>temples</p>")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid URL.")

	var count int64
	require.NoError(t, database.GORM_DB.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAdminGate(t *testing.T) {
	router := setupRouter(t)
	registerAdmin(t, router)

	member := newClient(t, router)
	require.Equal(t, http.StatusFound, member.register("member@x.com", "longenough1").Code)

	guest := newClient(t, router)

	adminPaths := []string{"/new-post", "/edit-post/1", "/delete/1"}
	for _, path := range adminPaths {
		assert.Equal(t, http.StatusNotFound, member.get(path).Code, "member on %s", path)
		assert.Equal(t, http.StatusNotFound, guest.get(path).Code, "guest on %s", path)
	}

	// The gate answers before the route logic: even an upload POST with
	// a valid CSRF token is a 404 for a member.
	w := member.postForm("/upload-image", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPassesGate(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)

	w := admin.get("/new-post")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Post")
}

func TestCommentRequiresLogin(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)
	require.Equal(t, http.StatusFound, admin.createPost("Bagan", "Myanmar", "https://example.com/bagan.jpg", "<p>temples</p>").Code)

	guest := newClient(t, router)
	w := guest.postForm("/post/1", url.Values{"text": {"wish I was there"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var count int64
	require.NoError(t, database.GORM_DB.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAddComment(t *testing.T) {
	router := setupRouter(t)
	admin := registerAdmin(t, router)
	require.Equal(t, http.StatusFound, admin.createPost("Bagan", "Myanmar", "https://example.com/bagan.jpg", "<p>temples</p>").Code)

	member := newClient(t, router)
	require.Equal(t, http.StatusFound, member.register("member@x.com", "longenough1").Code)

	w := member.postForm("/post/1", url.Values{"text": {"wish I was there"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	view := member.get("/post/1")
	body := view.Body.String()
	assert.Contains(t, body, "wish I was there")
	assert.Contains(t, body, "test user")
}

func TestStaticPages(t *testing.T) {
	router := setupRouter(t)
	cl := newClient(t, router)

	assert.Equal(t, http.StatusOK, cl.get("/elements").Code)
	assert.Equal(t, http.StatusOK, cl.get("/generic").Code)
}
