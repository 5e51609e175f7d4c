package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebari-dev/nebari-software-pack-template/internal/auth"
	"github.com/nebari-dev/nebari-software-pack-template/internal/idtoken"
	"github.com/nebari-dev/nebari-software-pack-template/internal/idtoken/idtokentest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPrincipalFromContextDefault(t *testing.T) {
	p := PrincipalFromContext(context.Background())
	assert.False(t, p.Authenticated)
	assert.Nil(t, p.UserInfo)
}

func TestIdentityAttachesPrincipal(t *testing.T) {
	token := idtokentest.Unsigned(t, idtoken.Claims{"preferred_username": "frank"})

	var got auth.Principal
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "IdToken-0badc0de", Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, got.Authenticated)
	require.NotNil(t, got.UserInfo)
	assert.Equal(t, "frank", got.UserInfo.Username)
}

func TestIdentityWithoutCookieStillServes(t *testing.T) {
	called := false
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.False(t, PrincipalFromContext(r.Context()).Authenticated)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
}

func TestGinIdentity(t *testing.T) {
	r := gin.New()
	r.Use(GinIdentity())
	r.GET("/", func(c *gin.Context) {
		p := PrincipalFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"authenticated": p.Authenticated})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "IdToken-a1b2c3d4", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":true}`, rec.Body.String())
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestLoggingRecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestID(), Logging(logger))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"path":"/health"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"abc"`)
}

func TestLoggingReportsHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(Logging(logger))
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("template: index.html: boom"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, `"status":500`)
}
