package handler

import (
	"math"
	"math/rand"
	"net/http"
	"time"

	"spinnergy/internal/api/util"
)

type EnergyHandler struct{}

func NewEnergyHandler() *EnergyHandler {
	return &EnergyHandler{}
}

// Simulate returns a random energy reading in Joules, standing in for the
// harvesting device when judges have no hardware paired.
func (h *EnergyHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	value := math.Round((rand.Float64()*2+0.2)*100) / 100 // 0.2 - 2.2 J

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"energy": value,
		"ts":     time.Now().UnixMilli(),
	})
}
