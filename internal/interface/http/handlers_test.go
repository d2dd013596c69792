package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/internal/application"
	"github.com/cosmelog/cosme-review-api/internal/infrastructure/sqlite"
	handlers "github.com/cosmelog/cosme-review-api/internal/interface/http"
	"github.com/cosmelog/cosme-review-api/internal/interface/middleware"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
	"github.com/cosmelog/cosme-review-api/pkg/validation"
)

const testSchema = `
CREATE TABLE users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
CREATE TABLE products (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT NOT NULL,
    manufacturer TEXT NOT NULL,
    category     TEXT NOT NULL,
    ingredients  TEXT NOT NULL DEFAULT '',
    image_url    TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
CREATE TABLE reviews (
    review_id  TEXT PRIMARY KEY,
    product_id INTEGER NOT NULL REFERENCES products (id),
    user_id    INTEGER NOT NULL REFERENCES users (id),
    rating     INTEGER NOT NULL,
    comment    TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
`

var initOnce sync.Once

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return buildRouter(db)
}

func buildRouter(db *sql.DB) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewTokenManager("test-secret", 24*time.Hour)

	userSvc := application.NewUserService(sqlite.NewUserRepository(db), jwt, logger, nil, false)
	productSvc := application.NewProductService(sqlite.NewProductRepository(db, logger), nil, logger, nil, "", nil, "")
	reviewSvc := application.NewReviewService(sqlite.NewReviewRepository(db), logger)

	userH := handlers.NewUserHandler(userSvc, logger)
	productH := handlers.NewProductHandler(productSvc, logger)
	reviewH := handlers.NewReviewHandler(reviewSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users/register", userH.Register)
	api.POST("/users/login", userH.Login)
	api.GET("/products", productH.List)
	api.GET("/products/:id", productH.Get)
	api.GET("/reviews", reviewH.ListByProduct)

	auth := api.Group("/")
	auth.Use(middleware.BearerAuth(jwt))
	auth.GET("/users", userH.List)
	auth.POST("/products", productH.Create)
	auth.POST("/reviews", reviewH.Create)
	auth.DELETE("/reviews/:id", reviewH.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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

func registerAndLogin(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": name, "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User registered", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "passwordHash")

	// duplicate email
	w = doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "Alice2", "email": "alice@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["message"])

	// wrong password
	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])

	// correct credentials
	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestRegister_ValidationDetails(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "Alice", "email": "not-an-email", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "invalid payload", body["message"])
	details := body["error"].(map[string]any)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestListUsers_RequiresBearer(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerAndLogin(t, r, "Alice", "alice@example.com")
	w = doJSON(t, r, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeBody(t, w)["users"].([]any)
	assert.Len(t, users, 1)
}

func TestProductEndpoints(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Alice", "alice@example.com")

	// creation requires auth
	w := doJSON(t, r, http.MethodPost, "/api/products", "", gin.H{
		"name": "Cream", "manufacturer": "Acme", "category": "skin_care", "ingredients": []string{"water"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// bad category
	w = doJSON(t, r, http.MethodPost, "/api/products", token, gin.H{
		"name": "Cream", "manufacturer": "Acme", "category": "food", "ingredients": []string{"water"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// valid create, ingredients round trip
	w = doJSON(t, r, http.MethodPost, "/api/products", token, gin.H{
		"name": "Cream", "manufacturer": "Acme", "category": "skin_care", "ingredients": []string{"water", "glycerin"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	product := decodeBody(t, w)["product"].(map[string]any)
	assert.Equal(t, []any{"water", "glycerin"}, product["ingredients"])

	// bare array listing
	w = doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Cream", list[0]["name"])

	// point read
	w = doJSON(t, r, http.MethodGet, "/api/products/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewEndpoints(t *testing.T) {
	r := newTestServer(t)
	alice := registerAndLogin(t, r, "Alice", "alice@example.com")
	bob := registerAndLogin(t, r, "Bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/products", alice, gin.H{
		"name": "Cream", "manufacturer": "Acme", "category": "skin_care", "ingredients": []string{"water"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// out-of-range rating
	w = doJSON(t, r, http.MethodPost, "/api/reviews", alice, gin.H{
		"productId": 1, "rating": 8, "comment": "too good",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing product
	w = doJSON(t, r, http.MethodPost, "/api/reviews", alice, gin.H{
		"productId": 999, "rating": 5, "comment": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product or User not found", decodeBody(t, w)["message"])

	// valid review
	w = doJSON(t, r, http.MethodPost, "/api/reviews", alice, gin.H{
		"productId": 1, "rating": 6, "comment": "lovely",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	review := decodeBody(t, w)["review"].(map[string]any)
	reviewID := review["reviewId"].(string)
	require.NotEmpty(t, reviewID)

	// listing
	w = doJSON(t, r, http.MethodGet, "/api/reviews?productId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := decodeBody(t, w)["reviews"].([]any)
	assert.Len(t, reviews, 1)

	w = doJSON(t, r, http.MethodGet, "/api/reviews", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// delete: bad id, non-owner, owner
	w = doJSON(t, r, http.MethodDelete, "/api/reviews/not-a-uuid", alice, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/reviews/"+reviewID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/reviews/"+reviewID, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reviews?productId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["reviews"])
}
