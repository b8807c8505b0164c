package usecases

import (
	"context"

	"resolveit/internal/application/complaint/dto"
)

// StatusNotifier delivers status-change notifications to complaint authors.
type StatusNotifier interface {
	NotifyStatusChanged(to, complaintTitle, newStatus, note string) error
}

type SubmitComplaintExecutor interface {
	Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type ListUserComplaintsExecutor interface {
	Execute(ctx context.Context, query ListUserComplaintsQuery) ([]*dto.ComplaintDTO, error)
}

type ListAllComplaintsExecutor interface {
	Execute(ctx context.Context, query ListAllComplaintsQuery) ([]*dto.ComplaintDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error)
}
