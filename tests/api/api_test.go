//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// End-to-end smoke test against a running instance.
func TestAPI_UserFlow(t *testing.T) {
	waitForService(t)

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	var token string

	t.Run("Register", func(t *testing.T) {
		resp := post(t, baseURL+"/api/auth/register", "", map[string]any{
			"email":           email,
			"password":        "hunter22",
			"confirmPassword": "hunter22",
		})
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Login", func(t *testing.T) {
		resp := post(t, baseURL+"/api/auth/login", "", map[string]any{
			"email":    email,
			"password": "hunter22",
		})
		require.Equal(t, 200, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		decodeJSON(t, resp, &body)
		require.NotEmpty(t, body.Token)
		assert.Equal(t, email, body.User.Email)
		assert.Equal(t, "user", body.User.Role)
		token = body.Token
	})

	t.Run("Profile", func(t *testing.T) {
		resp := get(t, baseURL+"/api/auth/profile", token)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.Equal(t, email, body["email"])
	})

	t.Run("ListCars", func(t *testing.T) {
		resp := get(t, baseURL+"/api/cars", "")
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("ListBrands", func(t *testing.T) {
		resp := get(t, baseURL+"/api/brands", "")
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("ReservationRequiresAuth", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reservations", "", map[string]any{
			"carId":     1,
			"startDate": time.Now().UTC().Format(time.RFC3339),
			"endDate":   time.Now().UTC().AddDate(0, 0, 2).Format(time.RFC3339),
		})
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("AdminRouteForbiddenForUser", func(t *testing.T) {
		resp := post(t, baseURL+"/api/cars", token, map[string]any{
			"modelId": 1,
			"year":    2022,
		})
		assert.Equal(t, 403, resp.StatusCode)
	})
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}

func post(t *testing.T, url, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
