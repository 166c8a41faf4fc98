package contracts

import (
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"context"
)

type AvailabilityUsecase interface {
	FindNextSlot(ctx context.Context, request *requests.NextSlot) (*responses.NextSlot, error)
	ListAvailableSlots(ctx context.Context, request *requests.ListSlots) (*responses.SlotList, error)
}
