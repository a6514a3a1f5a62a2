package pagination

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"zero page clamps", "page=0", 1, 10},
		{"negative limit falls back", "limit=-5", 1, 10},
		{"limit capped", "limit=500", 1, 100},
		{"garbage falls back", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromContext(ctxWithQuery(tt.query), 10)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestPaginate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `items`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `items` LIMIT ? OFFSET ?")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("a").AddRow("b").AddRow("c").AddRow("d").AddRow("e"))

	type item struct {
		ID string
	}
	var items []item
	pag, err := Paginate(db.Table("items"), Query{Page: 3, Limit: 10}, &items)
	require.NoError(t, err)

	assert.Len(t, items, 5)
	assert.Equal(t, 3, pag.CurrentPage)
	assert.Equal(t, 10, pag.PerPage)
	assert.EqualValues(t, 25, pag.Total)
	assert.Equal(t, 3, pag.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}
