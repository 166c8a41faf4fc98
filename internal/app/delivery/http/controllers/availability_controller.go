package controllers

import (
	"availability-service/internal/app/contracts"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Usecase contracts.AvailabilityUsecase
	Log     *zap.Logger
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecase, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AvailabilityController) FindNextSlot(w http.ResponseWriter, r *http.Request) {
	var request requests.NextSlot
	if err := utils.DecodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.Usecase.FindNextSlot(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessFindNextSlot, result)
}

func (c *AvailabilityController) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	var request requests.ListSlots
	if err := utils.DecodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.Usecase.ListAvailableSlots(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessListSlots, result)
}
