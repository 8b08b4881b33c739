package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"spinnergy/internal/api/util"
	"spinnergy/internal/nutrition"
)

type NutritionHandler struct {
	client *nutrition.Client
}

func NewNutritionHandler(client *nutrition.Client) *NutritionHandler {
	return &NutritionHandler{
		client: client,
	}
}

type nutritionRequest struct {
	Query string `json:"query"`
}

// Lookup proxies a natural-language food query to Nutritionix.
func (h *NutritionHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req nutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		util.WriteError(w, http.StatusBadRequest, "query required")
		return
	}

	result, err := h.client.Lookup(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, nutrition.ErrNotConfigured) {
			util.WriteError(w, http.StatusInternalServerError, err.Error())
		} else {
			util.WriteError(w, http.StatusInternalServerError, "Nutritionix API error")
		}
		return
	}

	util.WriteJSON(w, http.StatusOK, result)
}
