package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHealthEndpoints_RootLiveness(t *testing.T) {
	// Arrange
	e := echo.New()
	RegisterHealthEndpoints(e, "rantai-api")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LivenessMessage, rec.Body.String())
}

func TestRegisterHealthEndpoints_Ping(t *testing.T) {
	// Arrange
	e := echo.New()
	RegisterHealthEndpoints(e, "rantai-api")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "rantai-api", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
}

func TestRegisterHealthEndpoints_KubernetesProbes(t *testing.T) {
	// Arrange
	e := echo.New()
	RegisterHealthEndpoints(e, "rantai-api")

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		// Act
		e.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}
