package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/app"
	"auction-engine/internal/archive"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/config"
	"auction-engine/internal/mirror"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// TestEnv is a fully wired engine on in-memory backends driven by a fake clock
type TestEnv struct {
	Router  *gin.Engine
	Service *bidding.BiddingService
	Archive archive.Store
	Mirror  *mirror.Replicator
	Clock   *fakeclock.FakeClock
}

// SetupTestEnv starts the engine and stops it when the test ends
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &TestEnv{Clock: fakeclock.NewFakeClock(baseTime)}
	application := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(config.NewTestConfig()),
		fx.Provide(func() clock.Clock { return env.Clock }),
		app.Module,
		fx.Populate(&env.Router, &env.Service, &env.Archive, &env.Mirror),
	)
	application.RequireStart()
	t.Cleanup(application.RequireStop)
	return env
}

// Advance moves the fake clock to baseTime+d
func (e *TestEnv) Advance(d time.Duration) {
	e.Clock.Increment(baseTime.Add(d).Sub(e.Clock.Now()))
}

// ExecuteRequestAndParse executes an HTTP request as callerID and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, callerID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set("X-User-ID", callerID)
		req.Header.Set("X-User-Name", "Name of "+callerID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// Data returns the "data" object of a success response
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}
