package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/api"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
	"github.com/pageza/calorie-counter/backend/internal/mocks"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	chat   *mocks.MockChatClient
}

func setupTestServer(t *testing.T, defaultKey string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	auth := testhelpers.NewAuthService(db)
	chat := new(mocks.MockChatClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	api.SetupAPI(router.Group("/api"), api.Dependencies{
		DB:              db,
		AuthService:     auth,
		ProfileService:  service.NewProfileService(db),
		MealService:     service.NewMealService(db, nil),
		EstimateService: service.NewEstimateService(chat, defaultKey, nil),
	})

	return &testServer{router: router, db: db, auth: auth, chat: chat}
}

// performRequest sends body as JSON and attaches token as a bearer credential when set
func (s *testServer) performRequest(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type detailBody struct {
	Detail string `json:"detail"`
}
