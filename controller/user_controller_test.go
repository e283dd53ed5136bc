package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftcart/model"
	"swiftcart/utils"
)

func validUserPayload() map[string]any {
	return map[string]any{
		"first_name": "jane",
		"last_name":  "doe",
		"email":      "Jane@Example.com",
		"password":   "Str0ngpass",
	}
}

func TestCreateUserSuccess(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/users/create", validUserPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Jane", body["first_name"])
	assert.Equal(t, "Doe", body["last_name"])
	assert.Equal(t, "jane@example.com", body["email"])
	assert.Equal(t, "customer", body["role"])
	assert.Equal(t, false, body["is_verified"])
	assert.NotZero(t, body["id"])

	// The projection never exposes the hash, let alone the plaintext.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, w.Body.String(), "Str0ngpass")

	var stored model.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&stored).Error)
	assert.NotEqual(t, "Str0ngpass", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword("Str0ngpass", stored.PasswordHash))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/users/create", validUserPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// Same address in a different case must still conflict.
	again := validUserPayload()
	again["email"] = "JANE@example.COM"
	w = performJSON(t, router, http.MethodPost, "/api/users/create", again)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered.", decodeBody(t, w)["detail"])

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserValidationWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	cases := []map[string]any{
		{"first_name": "j", "last_name": "doe", "email": "a@b.com", "password": "Str0ngpass"},
		{"first_name": "jane", "last_name": "doe", "email": "not-an-email", "password": "Str0ngpass"},
		{"first_name": "jane", "last_name": "doe", "email": "a@b.com", "password": "Sh0rt"},
		{"first_name": "jane", "last_name": "doe", "email": "a@b.com", "password": "Str0ngpass", "role": "superuser"},
	}
	for _, payload := range cases {
		w := performJSON(t, router, http.MethodPost, "/api/users/create", payload)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	}

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count, "rejected input must never be persisted")
}

func TestCreateUserPasswordRules(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	cases := []struct {
		password string
		want     string
	}{
		{"abcdefgh", "uppercase"},
		{"ABCDEFGH1", "lowercase"},
		{"Abcdefgh", "digit"},
	}
	for _, tc := range cases {
		payload := validUserPayload()
		payload["password"] = tc.password
		w := performJSON(t, router, http.MethodPost, "/api/users/create", payload)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, tc.password)
		assert.Contains(t, decodeBody(t, w)["detail"], tc.want)
	}

	payload := validUserPayload()
	payload["password"] = "Abcdefg1"
	w := performJSON(t, router, http.MethodPost, "/api/users/create", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUserExplicitRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	payload := validUserPayload()
	payload["role"] = "admin"
	w := performJSON(t, router, http.MethodPost, "/api/users/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin", decodeBody(t, w)["role"])
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	u := seedUser(t, db, "seed@example.com")

	w := performJSON(t, router, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seed@example.com", decodeBody(t, w)["email"])
	assert.EqualValues(t, u.ID, decodeBody(t, w)["id"])

	w = performJSON(t, router, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	u := seedUser(t, db, "owner@example.com")
	v := seedVendor(t, db, u.ID, "owner-store")
	require.NoError(t, db.Create(&model.Product{
		VendorID: v.ID, Name: "Widget", Title: "A Widget",
		Slug: "widget", Price: 5, IsPublished: true,
	}).Error)

	w := performJSON(t, router, http.MethodDelete, "/api/users/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var vendors, products int64
	require.NoError(t, db.Model(&model.Vendor{}).Count(&vendors).Error)
	require.NoError(t, db.Model(&model.Product{}).Count(&products).Error)
	assert.Zero(t, vendors)
	assert.Zero(t, products)

	w = performJSON(t, router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeStub(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := performJSON(t, router, http.MethodGet, "/api/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "authenticated user")
}
