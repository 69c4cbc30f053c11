package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HabitInventory_Go/internal/catalog"
	"github.com/osse101/HabitInventory_Go/internal/domain"
)

func newCatalogRouter(t *testing.T) http.Handler {
	t.Helper()
	eggs, err := catalog.New("1.0", []*domain.EggDefinition{
		{Key: "Wolf", Text: "Wolf", Adjective: "loyal", Value: 3, ItemType: "eggs"},
		{Key: "BearCub", Value: 3},
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/catalog/eggs", HandleListEggs(eggs))
	r.Get("/catalog/eggs/{key}", HandleGetEgg(eggs))
	return r
}

func TestHandleListEggs(t *testing.T) {
	w := serve(newCatalogRouter(t), http.MethodGet, "/catalog/eggs", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Version string                   `json:"version"`
		Count   int                      `json:"count"`
		Eggs    []map[string]interface{} `json:"eggs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.0", resp.Version)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Eggs, 2)
	assert.Equal(t, "BearCub", resp.Eggs[0]["key"])
	assert.Equal(t, "Bear Cub", resp.Eggs[0]["display"])
	assert.Equal(t, "loyal Wolf", resp.Eggs[1]["description"])
}

func TestHandleGetEgg(t *testing.T) {
	router := newCatalogRouter(t)

	t.Run("found", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/catalog/eggs/Wolf", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Wolf", resp["key"])
		assert.Equal(t, float64(3), resp["value"])
		assert.Equal(t, "loyal", resp["adjective"])
	})

	t.Run("not found", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/catalog/eggs/Dragon", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEggNotFoundError)
	})
}
