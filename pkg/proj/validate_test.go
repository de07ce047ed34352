package proj_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/testutil"
)

func TestValidateCreateRequest(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid request", func(t *testing.T) {
		got, err := proj.ValidateCreateRequest(&proj.CreateProjectRequest{
			Title:    "Alpha",
			Summary:  "first",
			Priority: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exp := &proj.Project{
			Title:    "Alpha",
			Summary:  "first",
			Priority: 3,
			Status:   proj.StatusPending,
		}
		testutil.ProtoDiff(t, "project not equal", exp, got)
	})

	invalidTests := []struct {
		name   string
		req    *proj.CreateProjectRequest
		expErr error
	}{
		{
			name:   "empty title",
			req:    &proj.CreateProjectRequest{Title: "", Priority: 3},
			expErr: proj.ErrTitleRequired,
		},
		{
			name:   "whitespace title",
			req:    &proj.CreateProjectRequest{Title: "   ", Priority: 3},
			expErr: proj.ErrTitleRequired,
		},
		{
			name:   "priority below range",
			req:    &proj.CreateProjectRequest{Title: "Alpha", Priority: 0},
			expErr: proj.ErrPriorityOutOfRange,
		},
		{
			name:   "priority above range",
			req:    &proj.CreateProjectRequest{Title: "Alpha", Priority: 6},
			expErr: proj.ErrPriorityOutOfRange,
		},
	}

	for _, tt := range invalidTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := proj.ValidateCreateRequest(tt.req)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error: %v, got: %v", tt.expErr, err)
			}
		})
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID().Hex()

	t.Run("accepts a valid request", func(t *testing.T) {
		got, err := proj.ValidateUpdateRequest(&proj.UpdateProjectRequest{
			Id:       id,
			Title:    "Alpha v2",
			Summary:  "updated",
			Priority: 5,
			Status:   "IN_PROGRESS",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exp := &proj.Project{
			Id:       id,
			Title:    "Alpha v2",
			Summary:  "updated",
			Priority: 5,
			Status:   "IN_PROGRESS",
		}
		testutil.ProtoDiff(t, "project not equal", exp, got)
	})

	invalidTests := []struct {
		name   string
		req    *proj.UpdateProjectRequest
		expErr error
	}{
		{
			name:   "missing id",
			req:    &proj.UpdateProjectRequest{Title: "Alpha", Summary: "s", Priority: 1, Status: "PENDING"},
			expErr: proj.ErrIDRequired,
		},
		{
			name:   "malformed id",
			req:    &proj.UpdateProjectRequest{Id: "nope", Title: "Alpha", Summary: "s", Priority: 1, Status: "PENDING"},
			expErr: proj.ErrInvalidID,
		},
		{
			name:   "missing title",
			req:    &proj.UpdateProjectRequest{Id: id, Summary: "s", Priority: 1, Status: "PENDING"},
			expErr: proj.ErrTitleRequired,
		},
		{
			name:   "missing summary",
			req:    &proj.UpdateProjectRequest{Id: id, Title: "Alpha", Priority: 1, Status: "PENDING"},
			expErr: proj.ErrSummaryRequired,
		},
		{
			name:   "missing status",
			req:    &proj.UpdateProjectRequest{Id: id, Title: "Alpha", Summary: "s", Priority: 1},
			expErr: proj.ErrStatusRequired,
		},
		{
			name:   "priority out of range",
			req:    &proj.UpdateProjectRequest{Id: id, Title: "Alpha", Summary: "s", Priority: 7, Status: "PENDING"},
			expErr: proj.ErrPriorityOutOfRange,
		},
	}

	for _, tt := range invalidTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := proj.ValidateUpdateRequest(tt.req)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error: %v, got: %v", tt.expErr, err)
			}
		})
	}
}

func TestValidateProjectID(t *testing.T) {
	t.Parallel()

	if err := proj.ValidateProjectID(primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := proj.ValidateProjectID(""); !errors.Is(err, proj.ErrIDRequired) {
		t.Fatalf("expected error: %v, got: %v", proj.ErrIDRequired, err)
	}

	if err := proj.ValidateProjectID("not-an-object-id"); !errors.Is(err, proj.ErrInvalidID) {
		t.Fatalf("expected error: %v, got: %v", proj.ErrInvalidID, err)
	}
}

func TestValidateBulkItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   *proj.BulkCreateProjectsRequest
		exp   *proj.Project
		expOK bool
	}{
		{
			name: "keeps a valid item",
			req:  &proj.BulkCreateProjectsRequest{Title: "One", Summary: "first", Priority: 2},
			exp: &proj.Project{
				Title:    "One",
				Summary:  "first",
				Priority: 2,
				Status:   proj.StatusBulkCreated,
			},
			expOK: true,
		},
		{
			name: "coerces an out of range priority",
			req:  &proj.BulkCreateProjectsRequest{Title: "Two", Priority: 9},
			exp: &proj.Project{
				Title:    "Two",
				Summary:  "",
				Priority: 1,
				Status:   proj.StatusBulkCreated,
			},
			expOK: true,
		},
		{
			name: "coerces a zero priority",
			req:  &proj.BulkCreateProjectsRequest{Title: "Three"},
			exp: &proj.Project{
				Title:    "Three",
				Summary:  "",
				Priority: 1,
				Status:   proj.StatusBulkCreated,
			},
			expOK: true,
		},
		{
			name:  "drops a blank title",
			req:   &proj.BulkCreateProjectsRequest{Title: "   ", Priority: 3},
			expOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := proj.ValidateBulkItem(tt.req)
			if ok != tt.expOK {
				t.Fatalf("expected ok: %v, got: %v", tt.expOK, ok)
			}
			if tt.expOK {
				testutil.ProtoDiff(t, "bulk item not equal", tt.exp, got)
			}
		})
	}
}
