package services

import (
	"context"
	"sort"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// RequestService manages appointment requests submitted by prospective patients
type RequestService struct {
	collection[entities.AppointmentRequest]
}

// NewRequestService creates a new request service
func NewRequestService(repo repositories.RecordRepository[entities.AppointmentRequest]) *RequestService {
	return &RequestService{collection: newCollection(repo)}
}

// Create saves a new request. Incoming requests always start pending.
func (s *RequestService) Create(ctx context.Context, request entities.AppointmentRequest) (entities.AppointmentRequest, error) {
	request.Base = entities.NewBase(s.now())
	request.Status = entities.RequestStatusPending
	return s.repo.Save(ctx, request)
}

// List returns requests newest first, restricted to status when it is not empty
func (s *RequestService) List(ctx context.Context, status entities.RequestStatus) ([]entities.AppointmentRequest, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" {
		requests = filter(requests, func(r entities.AppointmentRequest) bool {
			return r.Status == status
		})
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

// Approve marks a request approved. No appointment is created.
func (s *RequestService) Approve(ctx context.Context, id string) (entities.AppointmentRequest, bool, error) {
	return s.repo.Update(ctx, id, repositories.Patch{"status": entities.RequestStatusApproved})
}

// Reject marks a request rejected
func (s *RequestService) Reject(ctx context.Context, id string) (entities.AppointmentRequest, bool, error) {
	return s.repo.Update(ctx, id, repositories.Patch{"status": entities.RequestStatusRejected})
}

// Counts tallies requests by status
func (s *RequestService) Counts(ctx context.Context) (entities.RequestCounts, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return entities.RequestCounts{}, err
	}

	var counts entities.RequestCounts
	for _, r := range requests {
		switch r.Status {
		case entities.RequestStatusPending:
			counts.Pending++
		case entities.RequestStatusApproved:
			counts.Approved++
		case entities.RequestStatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}
