package proj

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// StatusPending is assigned to projects created one at a time.
	StatusPending = "PENDING"
	// StatusBulkCreated is assigned to projects created via bulk ingestion.
	StatusBulkCreated = "BULK_CREATED"
)

const (
	minPriority = 1
	maxPriority = 5
)

var (
	ErrIDRequired         = errors.New("proj: id is required")
	ErrInvalidID          = errors.New("proj: id is not a valid object id")
	ErrTitleRequired      = errors.New("proj: title is required")
	ErrSummaryRequired    = errors.New("proj: summary is required")
	ErrStatusRequired     = errors.New("proj: status is required")
	ErrPriorityOutOfRange = errors.New("proj: priority must be between 1 and 5")
)

// ValidateCreateRequest checks a create request and returns the normalized
// project to store. An absent summary normalizes to the empty string.
func ValidateCreateRequest(req *CreateProjectRequest) (*Project, error) {
	if strings.TrimSpace(req.GetTitle()) == "" {
		return nil, ErrTitleRequired
	}

	if req.GetPriority() < minPriority || req.GetPriority() > maxPriority {
		return nil, ErrPriorityOutOfRange
	}

	return &Project{
		Title:    req.GetTitle(),
		Summary:  req.GetSummary(),
		Priority: req.GetPriority(),
		Status:   StatusPending,
	}, nil
}

// ValidateUpdateRequest checks an update request. Updates replace every
// mutable field, so all of them are required.
func ValidateUpdateRequest(req *UpdateProjectRequest) (*Project, error) {
	if req.GetId() == "" {
		return nil, ErrIDRequired
	}

	if strings.TrimSpace(req.GetTitle()) == "" {
		return nil, ErrTitleRequired
	}

	if strings.TrimSpace(req.GetSummary()) == "" {
		return nil, ErrSummaryRequired
	}

	if strings.TrimSpace(req.GetStatus()) == "" {
		return nil, ErrStatusRequired
	}

	if req.GetPriority() < minPriority || req.GetPriority() > maxPriority {
		return nil, ErrPriorityOutOfRange
	}

	if _, err := primitive.ObjectIDFromHex(req.GetId()); err != nil {
		return nil, ErrInvalidID
	}

	return &Project{
		Id:       req.GetId(),
		Title:    req.GetTitle(),
		Summary:  req.GetSummary(),
		Priority: req.GetPriority(),
		Status:   req.GetStatus(),
	}, nil
}

// ValidateProjectID checks that id parses as a stored object id.
func ValidateProjectID(id string) error {
	if id == "" {
		return ErrIDRequired
	}

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}

	return nil
}

// ValidateBulkItem never rejects: an item without a title is dropped from
// the batch, and an out-of-range priority coerces to the minimum. Bulk
// ingestion favors throughput over per-item strictness.
func ValidateBulkItem(req *BulkCreateProjectsRequest) (*Project, bool) {
	if strings.TrimSpace(req.GetTitle()) == "" {
		return nil, false
	}

	priority := req.GetPriority()
	if priority < minPriority || priority > maxPriority {
		priority = minPriority
	}

	return &Project{
		Title:    req.GetTitle(),
		Summary:  req.GetSummary(),
		Priority: priority,
		Status:   StatusBulkCreated,
	}, true
}
