package customer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bengkellab/bengkel/internal/application/customer/usecases"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/infrastructure/repository"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

func setupHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.CustomerModel{}))

	repo := repository.NewCustomerRepository(database)
	log := logger.NewLogger()

	handler := NewCustomerHandler(
		usecases.NewCreateCustomerUseCase(repo, log),
		usecases.NewUpdateCustomerUseCase(repo, log),
		usecases.NewDeleteCustomerUseCase(repo, log),
		usecases.NewGetCustomerUseCase(repo, log),
		usecases.NewListCustomersUseCase(repo, log),
	)

	engine := gin.New()
	engine.POST("/customers", handler.Create)
	engine.GET("/customers", handler.List)
	engine.GET("/customers/:id", handler.Get)
	engine.PUT("/customers/:id", handler.Update)
	engine.DELETE("/customers/:id", handler.Delete)

	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_Create(t *testing.T) {
	engine := setupHandlerTest(t)

	w := postJSON(t, engine, "/customers", gin.H{
		"name":  "Budi Santoso",
		"phone": "081234567890",
		"email": "budi@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, "Budi Santoso", resp.Data.Name)
}

func TestCustomerHandler_Create_ValidationError(t *testing.T) {
	engine := setupHandlerTest(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"phone": "081234567890"}},
		{"missing phone", gin.H{"name": "Budi"}},
		{"bad email", gin.H{"name": "Budi", "phone": "0812", "email": "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, engine, "/customers", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	engine := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customers/999", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_Get_InvalidID(t *testing.T) {
	engine := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customers/abc", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_List_Pagination(t *testing.T) {
	engine := setupHandlerTest(t)

	for i := 0; i < 25; i++ {
		w := postJSON(t, engine, "/customers", gin.H{
			"name":  fmt.Sprintf("Customer %02d", i),
			"phone": fmt.Sprintf("0812%08d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customers?page=2&page_size=10", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items      []json.RawMessage `json:"items"`
			Total      int64             `json:"total"`
			Page       int               `json:"page"`
			TotalPages int               `json:"total_pages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 10)
	assert.Equal(t, int64(25), resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Page)
	assert.Equal(t, 3, resp.Data.TotalPages)
}

func TestCustomerHandler_Delete(t *testing.T) {
	engine := setupHandlerTest(t)

	w := postJSON(t, engine, "/customers", gin.H{"name": "Siti", "phone": "0856000111"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/customers/%d", created.Data.ID), nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/customers/%d", created.Data.ID), nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
