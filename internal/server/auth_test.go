package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faramide/eventra/internal/models"
)

func TestRegister(t *testing.T) {
	r, db := newTestEnv(t)

	w := do(t, r, "POST", "/sign-up/", "", gin.H{
		"email":     "Alice@Example.com",
		"password":  "password123",
		"password2": "password123",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Successful", env.Status)

	data := dataMap(t, w)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.Equal(t, false, data["is_host"])
	assert.NotContains(t, w.Body.String(), "password123")

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.False(t, user.IsHost)
	assert.NotEqual(t, "password123", user.Password)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, _ := newTestEnv(t)

	w := do(t, r, "POST", "/sign-up/", "", gin.H{
		"email":     "bob@example.com",
		"password":  "password123",
		"password2": "different456",
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Error", decodeEnvelope(t, w).Status)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestEnv(t)

	registerUser(t, r, "carol@example.com", "password123")
	w := do(t, r, "POST", "/sign-up/", "", gin.H{
		"email":     "carol@example.com",
		"password":  "password123",
		"password2": "password123",
	})
	assert.Equal(t, 409, w.Code)
	assert.Equal(t, "Error", decodeEnvelope(t, w).Status)
}

func TestLoginAndRefresh(t *testing.T) {
	r, _ := newTestEnv(t)
	registerUser(t, r, "dave@example.com", "password123")

	w := do(t, r, "POST", "/login/", "", gin.H{"email": "dave@example.com", "password": "password123"})
	require.Equal(t, 200, w.Code)
	data := dataMap(t, w)
	access, _ := data["access"].(string)
	refresh, _ := data["refresh"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	// The refresh token exchanges for a fresh access token.
	w = do(t, r, "POST", "/login/refresh/", "", gin.H{"refresh": refresh})
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.NotEmpty(t, dataMap(t, w)["access"])

	// An access token is not accepted as a refresh token.
	w = do(t, r, "POST", "/login/refresh/", "", gin.H{"refresh": access})
	assert.Equal(t, 401, w.Code)

	// A refresh token cannot be used as a bearer token.
	w = do(t, r, "GET", "/event-profile/", refresh, nil)
	assert.Equal(t, 401, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	r, _ := newTestEnv(t)
	registerUser(t, r, "eve@example.com", "password123")

	w := do(t, r, "POST", "/login/", "", gin.H{"email": "eve@example.com", "password": "wrongpass"})
	assert.Equal(t, 401, w.Code)

	w = do(t, r, "POST", "/login/", "", gin.H{"email": "nobody@example.com", "password": "password123"})
	assert.Equal(t, 401, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r, _ := newTestEnv(t)

	w := do(t, r, "POST", "/event-profile/create/", "", gin.H{"company_name": "Acme"})
	assert.Equal(t, 401, w.Code)

	w = do(t, r, "POST", "/event-profile/create/", "not-a-token", gin.H{"company_name": "Acme"})
	assert.Equal(t, 401, w.Code)
}

func TestHostProfilePromotion(t *testing.T) {
	r, db := newTestEnv(t)

	registerUser(t, r, "frank@example.com", "password123")
	token := loginUser(t, r, "frank@example.com", "password123")

	w := do(t, r, "POST", "/event-profile/create/", token, gin.H{
		"company_name":        "Frank Events Ltd",
		"company_description": "We host things",
		"website_url":         "https://frank.example.com",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	// Creating the profile promotes the account to host.
	var user models.User
	require.NoError(t, db.Where("email = ?", "frank@example.com").First(&user).Error)
	assert.True(t, user.IsHost)

	// A second profile is rejected and the first is left unchanged.
	w = do(t, r, "POST", "/event-profile/create/", token, gin.H{
		"company_name": "Second Company",
	})
	assert.Equal(t, 409, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.HostProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var profile models.HostProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Frank Events Ltd", profile.CompanyName)

	w = do(t, r, "GET", "/event-profile/", token, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Frank Events Ltd", dataMap(t, w)["company_name"])
}

func TestHostProfileMissing(t *testing.T) {
	r, _ := newTestEnv(t)
	registerUser(t, r, "grace@example.com", "password123")
	token := loginUser(t, r, "grace@example.com", "password123")

	w := do(t, r, "GET", "/event-profile/", token, nil)
	assert.Equal(t, 404, w.Code)
}
