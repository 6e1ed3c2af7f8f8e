package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

type recorded struct {
	method  string
	path    string
	rawPath string
	header  http.Header
	body   []byte
}

type recorder struct {
	mu   sync.Mutex
	seen []recorded
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.seen...)
}

// newServer answers every request with status/body and records what it saw.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.seen = append(rec.seen, recorded{method: r.Method, path: r.URL.Path, rawPath: r.URL.EscapedPath(), header: r.Header.Clone(), body: b})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestClient(t *testing.T, api, auth string, opts ...Option) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(api, auth, opts...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("not a url", "")
	require.Error(t, err)

	_, err = NewHTTPClient("http://ok", "ftp://auth")
	require.ErrorContains(t, err, "auth base url")
}

func TestLogin_PostsCredentialsToAuthBase(t *testing.T) {
	api, apiSeen := newServer(t, http.StatusOK, `[]`)
	auth, authSeen := newServer(t, http.StatusOK, `{"token":"tok-1","user":{"id":1}}`)
	c := newTestClient(t, api.URL, auth.URL)

	res, err := c.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)

	require.Len(t, authSeen.all(), 1)
	require.Empty(t, apiSeen.all())
	got := authSeen.all()[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/auth/login", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.JSONEq(t, `{"username":"alice","password":"secret"}`, string(got.body))
}

func TestListUsers_PreservesOrder(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `[{"id":3,"username":"c"},{"id":1,"username":"a"},{"id":"x2","username":"b"}]`)
	c := newTestClient(t, srv.URL, "")

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 3)
	assert.Equal(t, []models.ID{"3", "1", "x2"}, []models.ID{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, http.MethodGet, seen.all()[0].method)
	assert.Equal(t, "/api/users", seen.all()[0].path)
}

func TestListUsers_NullBodyIsEmptyList(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `null`)
	c := newTestClient(t, srv.URL, "")

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUpdateUser_SendsIDInBody(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL, "")

	err := c.UpdateUser(context.Background(), models.User{ID: "7", Username: "alice", Sex: models.SexFemale})
	require.NoError(t, err)

	got := seen.all()[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/users", got.path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.body, &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "alice", body["username"])
}

func TestDeleteUser_AddressesByPath(t *testing.T) {
	srv, seen := newServer(t, http.StatusNoContent, ``)
	c := newTestClient(t, srv.URL, "")

	require.NoError(t, c.DeleteUser(context.Background(), "7"))

	got := seen.all()[0]
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/api/users/7", got.path)
	assert.Empty(t, got.body)
}

func TestDeleteUser_EscapesIDAsOneSegment(t *testing.T) {
	tests := []struct {
		id   models.ID
		want string
	}{
		{"7", "/api/users/7"},
		{"a/b", "/api/users/a%2Fb"},
		{"..", "/api/users/%2E%2E"},
		{".", "/api/users/%2E"},
		{"a b", "/api/users/a%20b"},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			srv, seen := newServer(t, http.StatusNoContent, ``)
			c := newTestClient(t, srv.URL, "")

			require.NoError(t, c.DeleteUser(context.Background(), tt.id))

			got := seen.all()[0]
			assert.Equal(t, http.MethodDelete, got.method)
			assert.Equal(t, tt.want, got.rawPath)
		})
	}
}

func TestCreateUser_GoesToAuthBase(t *testing.T) {
	api, apiSeen := newServer(t, http.StatusOK, `{}`)
	auth, authSeen := newServer(t, http.StatusCreated, `{"id":9}`)
	c := newTestClient(t, api.URL, auth.URL)

	require.NoError(t, c.CreateUser(context.Background(), models.User{Username: "new"}))

	require.Empty(t, apiSeen.all())
	require.Len(t, authSeen.all(), 1)
	assert.Equal(t, http.MethodPost, authSeen.all()[0].method)
	assert.Equal(t, "/api/users", authSeen.all()[0].path)
}

func TestNon2xx_BecomesAPIError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusConflict, `{"message":"cannot delete"}`)
		c := newTestClient(t, srv.URL, "")

		err := c.DeleteUser(context.Background(), "1")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "cannot delete", MessageOf(err))
		assert.True(t, IsAPIError(err))
		assert.NotErrorIs(t, err, ErrUnavailable)
	})

	t.Run("without json body", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `<html>oops</html>`)
		c := newTestClient(t, srv.URL, "")

		_, err := c.ListUsers(context.Background())
		require.True(t, IsAPIError(err))
		assert.Empty(t, MessageOf(err))
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("unauthorized", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"bad credentials"}`)
		c := newTestClient(t, srv.URL, "")

		_, err := c.Login(context.Background(), models.Credentials{})
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "bad credentials", MessageOf(err))
	})
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, "")
	_, err := c.ListUsers(context.Background())

	require.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsAPIError(err))
	assert.Empty(t, MessageOf(err))
}

func TestTimeout_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL, "", WithTimeout(50*time.Millisecond))
	_, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformed2xx_IsBadResponse(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{not json`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrBadResponse)
	assert.False(t, IsAPIError(err))
}

func TestHeaders_TokenAndRequestID(t *testing.T) {
	t.Run("token attached when stored", func(t *testing.T) {
		srv, seen := newServer(t, http.StatusOK, `[]`)
		c := newTestClient(t, srv.URL, "", WithTokenSource(staticTokens{token: "abc"}))

		_, err := c.ListUsers(context.Background())
		require.NoError(t, err)

		h := seen.all()[0].header
		assert.Equal(t, "Bearer abc", h.Get("Authorization"))
		_, err = uuid.Parse(h.Get(RequestIDHeaderName))
		assert.NoError(t, err, "request id must be a uuid")
	})

	t.Run("no header without token", func(t *testing.T) {
		srv, seen := newServer(t, http.StatusOK, `[]`)
		c := newTestClient(t, srv.URL, "", WithTokenSource(staticTokens{}))

		_, err := c.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Empty(t, seen.all()[0].header.Get("Authorization"))
	})

	t.Run("token source error is not fatal", func(t *testing.T) {
		srv, seen := newServer(t, http.StatusOK, `[]`)
		c := newTestClient(t, srv.URL, "", WithTokenSource(staticTokens{err: errors.New("db closed")}))

		_, err := c.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Empty(t, seen.all()[0].header.Get("Authorization"))
	})

	t.Run("custom http client keeps injection", func(t *testing.T) {
		srv, seen := newServer(t, http.StatusOK, `[]`)
		c := newTestClient(t, srv.URL, "",
			WithTokenSource(staticTokens{token: "xyz"}),
			WithHTTPClient(srv.Client()),
		)

		_, err := c.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer xyz", seen.all()[0].header.Get("Authorization"))
	})
}
