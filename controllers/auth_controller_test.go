package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyMFARejectsDisabledAccount(t *testing.T) {
	testDB(t)
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		Email:      "dana@example.com",
		Password:   "irrelevant-hash",
		MFAEnabled: true,
		MFACode:    "123456",
		Disabled:   true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	r := gin.New()
	r.POST("/auth/verify-mfa", VerifyMFA)

	w := postJSON(t, r, "/auth/verify-mfa", `{"email":"dana@example.com","code":"123456"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a disabled account must not mint a token from a pending code")

	// re-enabling the account makes the same code work again
	require.NoError(t, config.DB.Model(&models.User{}).
		Where("email = ?", user.Email).
		Update("disabled", false).Error)

	w = postJSON(t, r, "/auth/verify-mfa", `{"email":"dana@example.com","code":"123456"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}
