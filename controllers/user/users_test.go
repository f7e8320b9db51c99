package usercontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func newUserRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/addUser", AddUser(db))
	r.GET("/searchUser", SearchUsers(db))
	r.PUT("/updateUser/:id", UpdateUser(db))
	r.DELETE("/deleteUser/:id", DeleteUser(db))
	return r
}

func validUser() gin.H {
	return gin.H{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"password": "hashed-password",
		"phone":    "9876543210",
		"address":  "12 MG Road",
		"answer":   "hashed-answer",
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddUserMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := newUserRouter(db)

	for _, field := range []string{"name", "email", "password", "phone", "address", "answer"} {
		payload := validUser()
		delete(payload, field)

		w := doJSON(t, r, http.MethodPost, "/addUser", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAddUserDuplicateEmailSoftSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := newUserRouter(db)

	w := doJSON(t, r, http.MethodPost, "/addUser", validUser())
	require.Equal(t, http.StatusCreated, w.Code)

	// same email again: acknowledged, not inserted
	w = doJSON(t, r, http.MethodPost, "/addUser", validUser())
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), "Already Added")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ravi@example.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSearchUsers(t *testing.T) {
	db := setupTestDB(t)
	users := []models.User{
		{Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9876543210", Address: "a", Password: "h", Answer: "h"},
		{Name: "Meera", Email: "meera@shop.in", Phone: "5550001111", Address: "a", Password: "h", Answer: "h"},
	}
	require.NoError(t, db.Create(&users).Error)

	r := newUserRouter(db)

	// case-insensitive match on name
	w := doJSON(t, r, http.MethodGet, "/searchUser?query=RAVI", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Ravi Kumar")
	require.NotContains(t, w.Body.String(), "Meera")

	// match on phone
	w = doJSON(t, r, http.MethodGet, "/searchUser?query=555000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Meera")

	// no query returns everyone
	w = doJSON(t, r, http.MethodGet, "/searchUser", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Users, 2)

	// zero matches is a 404
	w = doJSON(t, r, http.MethodGet, "/searchUser?query=nobody", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserMergesFields(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Name: "Ravi", Email: "ravi@example.com", Phone: "1", Address: "old", Password: "h", Answer: "h"}
	require.NoError(t, db.Create(&user).Error)

	r := newUserRouter(db)
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/updateUser/%d", user.ID), gin.H{"address": "new address"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	require.Equal(t, "new address", updated.Address)
	require.Equal(t, "Ravi", updated.Name) // untouched field survives

	w = doJSON(t, r, http.MethodPut, "/updateUser/9999", gin.H{"address": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Name: "Ravi", Email: "ravi@example.com", Phone: "1", Address: "a", Password: "h", Answer: "h"}
	require.NoError(t, db.Create(&user).Error)

	r := newUserRouter(db)
	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/deleteUser/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// unlike products, a second delete of the same id is a 404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/deleteUser/%d", user.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
