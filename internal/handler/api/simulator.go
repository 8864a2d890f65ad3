package api

import (
	"net/http"

	reqdto "voltbite/internal/handler/dto/request"
	"voltbite/internal/handler/httperr"
	"voltbite/internal/simulator"

	"github.com/gin-gonic/gin"
)

// SimulatorHandler drives the fake charger hardware. Real deployments point
// chargers at PATCH /charging instead; these endpoints exist so a demo rig
// can charge without hardware.
type SimulatorHandler struct {
	sim *simulator.Simulator
}

func NewSimulatorHandler(sim *simulator.Simulator) *SimulatorHandler {
	return &SimulatorHandler{sim: sim}
}

// @Summary Start simulated charging
// @Tags simulator
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.StartChargingRequest true "Run parameters"
// @Success 202
// @Router /charging/start [post]
func (h *SimulatorHandler) Start(c *gin.Context) {
	var req reqdto.StartChargingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	h.sim.Start(req.ChargerID, simulator.Params{
		StartSoc:     req.StartSoc,
		TargetSoc:    req.TargetSoc,
		RateOfCharge: req.RateOfCharge,
	})
	c.Status(http.StatusAccepted)
}

// @Summary Stop simulated charging
// @Tags simulator
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.StopChargingRequest true "Charger to stop"
// @Success 204
// @Router /charging/stop [post]
func (h *SimulatorHandler) Stop(c *gin.Context) {
	var req reqdto.StopChargingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	h.sim.Stop(req.ChargerID)
	c.Status(http.StatusNoContent)
}
