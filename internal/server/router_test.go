package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/handler"
	"auction-engine/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *handler.MockBiddingServiceInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := handler.NewMockBiddingServiceInterface(ctrl)
	return SetupRouter(svc, config.CORSConfig{AllowOrigins: []string{"https://shop.example"}, MaxAge: time.Hour}), svc
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		expectCall     bool
		expectedStatus int
	}{
		{
			name:           "missing_user_id",
			headers:        map[string]string{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "blank_user_id",
			headers:        map[string]string{HeaderUserID: "   "},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "identified",
			headers:        map[string]string{HeaderUserID: "buyerX", HeaderUserName: "Xavier"},
			expectCall:     true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tc.expectCall {
				svc.EXPECT().ListAuctions(gomock.Any(), model.AuctionState("")).Return([]model.Auction{}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if w.Code == http.StatusUnauthorized {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, helpers.CodeUnauthorized, resp["code"])
			}
		})
	}
}

func TestIdentityDefaultsDisplayName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/who", IdentityMiddleware, func(c *gin.Context) {
		id, name := helpers.Caller(c)
		c.String(http.StatusOK, id+"|"+name)
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(HeaderUserID, "buyerY")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "buyerY|buyerY", w.Body.String())
}

func TestHealthzNeedsNoIdentity(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/auctions/a1/bids", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", HeaderUserID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
}
