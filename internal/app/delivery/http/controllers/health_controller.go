package controllers

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Healthz reports liveness only; it touches neither the vendor nor Redis.
func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, responses.Health{Status: constvars.HealthySuccessMessage})
}
