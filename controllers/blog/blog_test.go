package blogControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbackdev/moto-gear-avenue/services"
)

func newBlogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	blog := services.NewBlogService()
	r := gin.New()
	r.GET("/blog", GetPosts(blog))
	r.GET("/blog/recent", GetRecentPosts(blog))
	r.GET("/blog/:slug", GetPostBySlug(blog))
	r.GET("/pages/:slug", GetInfoPage())
	return r
}

func TestGetPosts(t *testing.T) {
	w := httptest.NewRecorder()
	newBlogRouter().ServeHTTP(w, httptest.NewRequest("GET", "/blog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Posts []struct {
			Slug  string `json:"slug"`
			Title string `json:"title"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Posts)
	for _, p := range body.Posts {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Title)
	}
}

func TestGetPostBySlug(t *testing.T) {
	router := newBlogRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/blog/como-elegir-primer-casco", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/blog/no-existe", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecentPostsHonoursLimit(t *testing.T) {
	w := httptest.NewRecorder()
	newBlogRouter().ServeHTTP(w, httptest.NewRequest("GET", "/blog/recent?limit=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Posts []json.RawMessage `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Posts, 1)
}

func TestGetInfoPage(t *testing.T) {
	router := newBlogRouter()

	for _, slug := range []string{"shipping", "returns", "terms", "payment-info"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/pages/"+slug, nil))
		assert.Equal(t, http.StatusOK, w.Code, slug)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/pages/desconocida", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShippingPageQuotesFeeSchedule(t *testing.T) {
	w := httptest.NewRecorder()
	newBlogRouter().ServeHTTP(w, httptest.NewRequest("GET", "/pages/shipping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "50 €")
	assert.Contains(t, body, "1,99 €")
}
