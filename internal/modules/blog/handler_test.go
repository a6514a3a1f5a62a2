package blog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newBlogRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	passthrough := func(c *gin.Context) { c.Next() }
	h := NewHandler(NewService(db, nil, zap.NewNop()), zap.NewNop())
	h.RegisterRoutes(r.Group("/api/blog"), passthrough)
	return r
}

func doGet(r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestListRequiresSite(t *testing.T) {
	db, _ := newTestDB(t)
	r := newBlogRouter(t, db)

	w, body := doGet(r, "/api/blog")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "blog_site parameter is required (lb_services or lb_interiors)", body["message"])
}

func TestListRejectsUnknownSite(t *testing.T) {
	db, _ := newTestDB(t)
	r := newBlogRouter(t, db)

	w, body := doGet(r, "/api/blog?blog_site=lb_other")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid site, must be lb_services or lb_interiors", body["message"])
}

func TestGetBySlugBumpsViews(t *testing.T) {
	db, mock := newTestDB(t)
	r := newBlogRouter(t, db)

	rows := sqlmock.NewRows([]string{"id", "site", "title", "slug", "views"}).
		AddRow("b1", "lb_services", "Title", "title", 7)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `blogs`")).
		WithArgs("lb_services", "title", 1).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `blogs` SET `views`=views + 1")).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, body := doGet(r, "/api/blog/title?blog_site=lb_services")

	require.Equal(t, http.StatusOK, w.Code)
	post := body["blog"].(map[string]interface{})
	assert.EqualValues(t, 8, post["blog_views"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlugNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	r := newBlogRouter(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `blogs`")).
		WillReturnError(gorm.ErrRecordNotFound)

	w, body := doGet(r, "/api/blog/missing?blog_site=lb_services")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog not found", body["message"])
}
