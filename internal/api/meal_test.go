package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/testhelpers"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealLifecycle(t *testing.T) {
	srv := setupTestServer(t, "")
	_, token := testhelpers.CreateTestUserAndToken(t, srv.auth)

	w := srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{
		"total_calories": 420.5,
		"items": []gin.H{
			{"name": "Oatmeal", "quantity_units": "1 bowl", "calories": 300, "confidence": 0.8},
			{"name": "Banana", "quantity_units": "1", "calories": 120.5, "confidence": 0.9},
		},
		"notes":       "breakfast",
		"captured_at": "2025-03-01T08:00:00",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	breakfast := decode[models.Meal](t, w)
	assert.NotEmpty(t, breakfast.ID)
	assert.Len(t, breakfast.Items, 2)

	w = srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{
		"total_calories": 600.25,
		"captured_at":    "2025-03-01T19:30:00Z",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	dinner := decode[models.Meal](t, w)
	assert.NotNil(t, dinner.Items)

	w = srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{
		"total_calories": 100,
		"captured_at":    "2025-03-02T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-03-01", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[types.MealListResponse](t, w)
	assert.Equal(t, "2025-03-01", list.Date)
	require.Len(t, list.Meals, 2)
	assert.Equal(t, breakfast.ID, list.Meals[0].ID)
	assert.Equal(t, dinner.ID, list.Meals[1].ID)
	assert.InDelta(t, 1020.75, list.DailyTotal, 0.0001)

	w = srv.performRequest(t, http.MethodGet, "/api/meals/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[types.StreakResponse](t, w)
	assert.Equal(t, 0, stats.CurrentStreakDays)
	assert.Equal(t, 2, stats.BestStreakDays)

	w = srv.performRequest(t, http.MethodDelete, "/api/meals/"+dinner.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, w.Body.String())

	w = srv.performRequest(t, http.MethodDelete, "/api/meals/"+dinner.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Meal not found", decode[detailBody](t, w).Detail)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-03-01", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[types.MealListResponse](t, w)
	assert.Len(t, list.Meals, 1)
	assert.InDelta(t, 420.5, list.DailyTotal, 0.0001)
}

func TestMealsAreScopedToOwner(t *testing.T) {
	srv := setupTestServer(t, "")
	_, alice := testhelpers.CreateTestUserAndToken(t, srv.auth)
	_, bob := testhelpers.CreateTestUserAndToken(t, srv.auth)

	w := srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{
		"total_calories": 250,
		"captured_at":    "2025-04-10T12:00:00Z",
	}, alice)
	require.Equal(t, http.StatusOK, w.Code)
	meal := decode[models.Meal](t, w)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-04-10", nil, bob)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[types.MealListResponse](t, w)
	assert.Empty(t, list.Meals)
	assert.Contains(t, w.Body.String(), `"meals":[]`)
	assert.Zero(t, list.DailyTotal)

	w = srv.performRequest(t, http.MethodDelete, "/api/meals/"+meal.ID, nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-04-10", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[types.MealListResponse](t, w).Meals, 1)
}

func TestListMealsWithOffset(t *testing.T) {
	srv := setupTestServer(t, "")
	_, token := testhelpers.CreateTestUserAndToken(t, srv.auth)

	// 03:00 UTC on the 11th is still the 10th at UTC-5
	w := srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{
		"total_calories": 500,
		"captured_at":    "2025-04-11T03:00:00Z",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-04-10&tz_offset_minutes=-300", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[types.MealListResponse](t, w).Meals, 1)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=2025-04-11&tz_offset_minutes=-300", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[types.MealListResponse](t, w).Meals)
}

func TestMealValidation(t *testing.T) {
	srv := setupTestServer(t, "")
	_, token := testhelpers.CreateTestUserAndToken(t, srv.auth)

	w := srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{"total_calories": -5}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.performRequest(t, http.MethodPost, "/api/meals", gin.H{"total_calories": 5, "captured_at": "yesterday"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?date=03/01/2025", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.performRequest(t, http.MethodGet, "/api/meals?tz_offset_minutes=abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
