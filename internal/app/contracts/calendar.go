package contracts

import (
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"context"
)

type CalendarUsecase interface {
	WorkingDays(ctx context.Context, request *requests.WorkingDays) (*responses.WorkingDays, error)
	NavigateWorkingDay(ctx context.Context, request *requests.NavigateWorkingDay) (*responses.NavigateWorkingDay, error)
}
