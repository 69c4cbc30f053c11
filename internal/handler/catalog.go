package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HabitInventory_Go/internal/catalog"
	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/logger"
)

// EggCatalog is the catalog surface the handlers read from
type EggCatalog interface {
	Egg(key string) (*domain.EggDefinition, error)
	Eggs() []*domain.EggDefinition
	Len() int
	Version() string
}

// EggView is an egg definition with its rendered display strings
type EggView struct {
	*domain.EggDefinition
	Display     string `json:"display"`
	Description string `json:"description"`
}

// EggListResponse lists the whole catalog
type EggListResponse struct {
	Version string    `json:"version"`
	Count   int       `json:"count"`
	Eggs    []EggView `json:"eggs"`
}

func newEggView(egg *domain.EggDefinition) EggView {
	return EggView{
		EggDefinition: egg,
		Display:       catalog.DisplayName(egg),
		Description:   catalog.Describe(egg),
	}
}

// HandleListEggs returns every egg definition
// @Summary List eggs
// @Tags catalog
// @Produce json
// @Success 200 {object} EggListResponse
// @Security ApiKeyAuth
// @Router /api/v1/catalog/eggs [get]
func HandleListEggs(eggs EggCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := eggs.Eggs()
		views := make([]EggView, 0, len(defs))
		for _, egg := range defs {
			views = append(views, newEggView(egg))
		}

		respondJSON(w, http.StatusOK, EggListResponse{
			Version: eggs.Version(),
			Count:   len(views),
			Eggs:    views,
		})
	}
}

// HandleGetEgg returns one egg definition by key
// @Summary Get egg
// @Tags catalog
// @Produce json
// @Param key path string true "Egg key"
// @Success 200 {object} EggView
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/catalog/eggs/{key} [get]
func HandleGetEgg(eggs EggCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		params := EggParams{Key: chi.URLParam(r, ParamEggKey)}
		if !validateParams(w, r, params) {
			return
		}

		egg, err := eggs.Egg(params.Key)
		if err != nil {
			respondServiceError(w, log, ErrMsgGetEggFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, newEggView(egg))
	}
}
