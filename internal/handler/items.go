package handler

import (
	"net/http"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/inventory"
	"github.com/osse101/HabitInventory_Go/internal/logger"
)

// OwnedItemsResponse is one ownership category of a stored snapshot
type OwnedItemsResponse struct {
	UserID   string             `json:"user_id"`
	ItemType domain.ItemType    `json:"itemType"`
	Items    []domain.OwnedItem `json:"items"`
}

// HandleDecodeItems decodes a payload without storing it
// @Summary Decode inventory payload
// @Description Decodes a raw user-inventory object. Fields with the wrong shape are returned empty and listed in degradations.
// @Tags items
// @Accept json
// @Produce json
// @Param payload body object true "Raw inventory payload"
// @Success 200 {object} inventory.DecodeResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/items/decode [post]
func HandleDecodeItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw, err := readPayload(r)
		if err != nil {
			respondReadError(w, r, err)
			return
		}

		result, err := svc.Decode(r.Context(), raw)
		if err != nil {
			respondServiceError(w, log, ErrMsgDecodeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePutUserItems decodes a payload and stores it as the user's snapshot
// @Summary Store inventory
// @Description Decodes the payload and replaces the user's stored snapshot
// @Tags items
// @Accept json
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param payload body object true "Raw inventory payload"
// @Success 200 {object} domain.ItemSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/items [put]
func HandlePutUserItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		params, ok := userItemsParams(w, r)
		if !ok {
			return
		}

		raw, err := readPayload(r)
		if err != nil {
			respondReadError(w, r, err)
			return
		}

		snapshot, err := svc.Ingest(r.Context(), params.UserID, raw)
		if err != nil {
			respondServiceError(w, log, ErrMsgIngestFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleGetUserItems returns the stored snapshot, or one category of it
// @Summary Get inventory
// @Description Returns the stored snapshot. With ?type= only that category is returned.
// @Tags items
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param type query string false "quests, food, hatchingPotions or eggs"
// @Success 200 {object} domain.ItemSnapshot
// @Success 200 {object} OwnedItemsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/items [get]
func HandleGetUserItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		params, ok := userItemsParams(w, r)
		if !ok {
			return
		}

		snapshot, err := svc.Get(r.Context(), params.UserID)
		if err != nil {
			respondServiceError(w, log, ErrMsgGetItemsFailed, err)
			return
		}

		if params.Type == "" {
			respondJSON(w, http.StatusOK, snapshot)
			return
		}

		itemType, err := domain.ParseItemType(params.Type)
		if err != nil {
			respondServiceError(w, log, ErrMsgGetItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, OwnedItemsResponse{
			UserID:   snapshot.UserID,
			ItemType: itemType,
			Items:    snapshot.Items.Owned(itemType),
		})
	}
}

// HandleGetUserItemsSummary returns per-category totals and catalog-enriched eggs
// @Summary Get inventory summary
// @Tags items
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} inventory.Summary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/items/summary [get]
func HandleGetUserItemsSummary(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		params, ok := userItemsParams(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), params.UserID)
		if err != nil {
			respondServiceError(w, log, ErrMsgGetSummaryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleDeleteUserItems removes the stored snapshot
// @Summary Delete inventory
// @Tags items
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/items [delete]
func HandleDeleteUserItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		params, ok := userItemsParams(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), params.UserID); err != nil {
			respondServiceError(w, log, ErrMsgDeleteItemsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemsDeletedSuccess})
	}
}
