package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGenerateOrderedID(t *testing.T) {
	t.Parallel()

	first, err := uuid.Parse(GenerateOrderedID())
	require.NoError(t, err)
	second, err := uuid.Parse(GenerateOrderedID())
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), first.Version())
	require.NotEqual(t, first, second)
}

func TestConfigure(t *testing.T) {
	require.NoError(t, Configure("debug", LogFormatText))
	require.Error(t, Configure("loud", LogFormatJSON))
	require.Error(t, Configure("info", "xml"))
	require.NoError(t, Configure("info", LogFormatJSON))
}

func TestJSONEnvelope(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONResponse(c, http.StatusOK, map[string]string{"k": "v"}, "ok")
	require.JSONEq(t, `{"status":200,"message":"ok","data":{"k":"v"}}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	AbortJSONError(c, http.StatusConflict, errors.New("boom"), "auction_closed", "auction has ended")
	require.True(t, c.IsAborted())
	require.JSONEq(t, `{"status":409,"code":"auction_closed","message":"auction has ended","error":"boom"}`, w.Body.String())
}
