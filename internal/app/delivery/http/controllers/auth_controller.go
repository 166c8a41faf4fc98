package controllers

import (
	"availability-service/internal/app/contracts"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Usecase contracts.AuthUsecase
	Log     *zap.Logger
}

func NewAuthController(usecase contracts.AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var request requests.Token
	if err := utils.DecodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	token, err := c.Usecase.IssueToken(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessIssueToken, token)
}
