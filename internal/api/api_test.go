package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"campus_market/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter wires the full route table against a per-test in-memory DB
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, conn.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Product{}, &domain.ProductImage{}))
	r := gin.New()
	RegisterRoutes(r, conn)
	return r, conn
}

// doJSON performs one request with an optional JSON body and decodes the
// envelope into a generic map
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return rec.Code, resp
}

// seedCategory inserts one category row
func seedCategory(t *testing.T, db *gorm.DB, name string) domain.Category {
	t.Helper()
	category := domain.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// seedUser inserts one user row; the password column holds an opaque hash,
// these users are never logged in by the listing tests
func seedUser(t *testing.T, db *gorm.DB, username, email string) domain.User {
	t.Helper()
	user := domain.User{Username: username, Password: "hash", Email: email, PhoneNumber: "555-0101"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
