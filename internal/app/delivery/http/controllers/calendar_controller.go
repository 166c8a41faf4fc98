package controllers

import (
	"availability-service/internal/app/contracts"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CalendarController struct {
	Usecase contracts.CalendarUsecase
	Log     *zap.Logger
}

func NewCalendarController(usecase contracts.CalendarUsecase, log *zap.Logger) *CalendarController {
	return &CalendarController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *CalendarController) WorkingDays(w http.ResponseWriter, r *http.Request) {
	var request requests.WorkingDays
	if err := utils.DecodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.Usecase.WorkingDays(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessWorkingDays, result)
}

func (c *CalendarController) NavigateWorkingDay(w http.ResponseWriter, r *http.Request) {
	var request requests.NavigateWorkingDay
	if err := utils.DecodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.Usecase.NavigateWorkingDay(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessNavigateDay, result)
}
