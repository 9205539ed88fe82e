package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"homeservice-backend/bookings"
	"homeservice-backend/models"
	"homeservice-backend/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Service{}, &models.Booking{}))

	log := zap.NewNop()
	svc := bookings.NewService(db, log, nil)
	return routes.SetupRouter(db, log, svc), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

func createCatalogService(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":        name,
		"description": name + " work",
		"price":       1500,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	return id
}
