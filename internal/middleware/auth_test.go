package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/lb-platform/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func newAuthRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(db, jwt.NewManager(testSecret, time.Hour)), func(c *gin.Context) {
		admin := CurrentAdmin(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "admin_id": admin.ID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthMissingToken(t *testing.T) {
	db, _ := newTestDB(t)
	w, body := doRequest(newAuthRouter(t, db), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided, authorization denied", body["message"])
}

func TestAuthInvalidToken(t *testing.T) {
	db, _ := newTestDB(t)
	w, body := doRequest(newAuthRouter(t, db), "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestAuthExpiredToken(t *testing.T) {
	db, _ := newTestDB(t)

	claims := jwt.Claims{
		AdminID: "admin-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w, body := doRequest(newAuthRouter(t, db), "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token expired", body["message"])
}

// A signed, unexpired token must still be rejected once the admin row is
// deactivated or gone: the status is re-checked on every request.
func TestAuthRevokedAdmin(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `admins`")).
		WillReturnError(gorm.ErrRecordNotFound)

	token, err := jwt.NewManager(testSecret, time.Hour).Sign("admin-1", "a@b.co")
	require.NoError(t, err)

	w, body := doRequest(newAuthRouter(t, db), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Admin not found or inactive", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthActiveAdminPasses(t *testing.T) {
	db, mock := newTestDB(t)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "status"}).
		AddRow("admin-1", "Admin", "a@b.co", "admin", "active")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `admins`")).
		WithArgs("admin-1", "active", 1).
		WillReturnRows(rows)

	token, err := jwt.NewManager(testSecret, time.Hour).Sign("admin-1", "a@b.co")
	require.NoError(t, err)

	w, body := doRequest(newAuthRouter(t, db), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin-1", body["admin_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("  abc  "))
	assert.Equal(t, "", NormalizeToken("   "))
}
