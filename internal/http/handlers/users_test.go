package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"tasklist/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	t.Run("created", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/users", `{"name":"Ada","email":"ada@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			User domain.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotZero(t, resp.User.ID)
		require.Equal(t, "Ada", resp.User.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/users", `{"name":"Ada Again","email":"ada@example.com"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/users", `{"email":"no-name@example.com"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/users", `{"name":"No Email"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	h, _, users := newTestHandler()
	uid := seedUser(t, users)
	r := newTestRouter(h)

	w := do(t, r, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, uid, resp.User.ID)

	w = do(t, r, http.MethodGet, "/api/users/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
