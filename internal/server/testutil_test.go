package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/faramide/eventra/config"
	"github.com/faramide/eventra/internal/models"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	return NewRouter(db, zerolog.Nop()), db
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func dataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	env := decodeEnvelope(t, w)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data), string(env.Data))
	return data
}

func results(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	data := dataMap(t, w)
	items, ok := data["results"].([]interface{})
	require.True(t, ok, "expected paginated results, got %v", data)
	return items
}

func registerUser(t *testing.T, r *gin.Engine, email, password string) {
	t.Helper()
	w := do(t, r, "POST", "/sign-up/", "", gin.H{
		"email":     email,
		"password":  password,
		"password2": password,
	})
	require.Equal(t, 201, w.Code, w.Body.String())
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(t, r, "POST", "/login/", "", gin.H{"email": email, "password": password})
	require.Equal(t, 200, w.Code, w.Body.String())
	data := dataMap(t, w)
	token, ok := data["access"].(string)
	require.True(t, ok)
	return token
}

// makeHost registers a user, creates their company profile and returns
// a token for the now-promoted account.
func makeHost(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	registerUser(t, r, email, "password123")
	token := loginUser(t, r, email, "password123")
	w := do(t, r, "POST", "/event-profile/create/", token, gin.H{
		"company_name": "Company " + email,
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	return token
}

// makeAdmin creates a staff account directly and logs it in.
func makeAdmin(t *testing.T, r *gin.Engine, db *gorm.DB, email string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
		IsStaff:  true,
	}).Error)
	return loginUser(t, r, email, "adminpass123")
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedUser(t *testing.T, db *gorm.DB, email string, isHost bool) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", IsActive: true, IsHost: isHost}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedEvent(t *testing.T, db *gorm.DB, title, location string, start time.Time, host *models.User, categories ...models.Category) models.Event {
	t.Helper()
	event := models.Event{
		Title:      title,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 1),
		StartTime:  "10:00:00",
		EndTime:    "18:00:00",
		Location:   location,
		Categories: categories,
	}
	if host != nil {
		event.HostID = &host.ID
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateStr(t time.Time) string {
	return t.Format(time.DateOnly)
}

func uniqueTitle(i int) string {
	return fmt.Sprintf("Sample Event Number %d", i)
}
