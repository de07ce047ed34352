package proj

import (
	"context"
	"errors"
	"fmt"
	"strings"

	connect "connectrpc.com/connect"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/log"
)

// errInternal is the only message unexpected failures expose on the wire;
// details go to the log.
var errInternal = errors.New("proj: internal error")

type Service struct {
	repo   Repository
	logger log.Logger
}

type Config struct {
	Repository Repository
	Logger     log.Logger
}

// NewService returns a new Service.
func NewService(cfg Config) *Service {
	s := &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}

	if s.logger == nil {
		s.logger = log.NewNopLogger()
	}

	return s
}

func (svc *Service) CreateProject(ctx context.Context, req *connect.Request[CreateProjectRequest]) (*connect.Response[CreateProjectResponse], error) {
	project, err := ValidateCreateRequest(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	_, err = svc.repo.FindProjectByTitle(ctx, project.Title)
	if err == nil {
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrDuplicateTitle)
	}
	if !errors.Is(err, ErrProjectNotFound) {
		return nil, svc.internalError("Failed to check for duplicate title.", err)
	}

	created, err := svc.repo.CreateProject(ctx, project)
	if errors.Is(err, ErrDuplicateTitle) {
		// Two concurrent creates can both pass the check above; the unique
		// index is the final arbiter.
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrDuplicateTitle)
	}
	if err != nil {
		return nil, svc.internalError("Failed to create project.", err)
	}

	return connect.NewResponse(&CreateProjectResponse{
		Project: created,
	}), nil
}

func (svc *Service) UpdateProject(ctx context.Context, req *connect.Request[UpdateProjectRequest]) (*connect.Response[UpdateProjectResponse], error) {
	project, err := ValidateUpdateRequest(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Any other project holding this title blocks the update.
	_, err = svc.repo.FindProjectByTitleExcluding(ctx, project.Title, project.Id)
	if err == nil {
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrDuplicateTitle)
	}
	if !errors.Is(err, ErrProjectNotFound) {
		return nil, svc.internalError("Failed to check for duplicate title.", err)
	}

	updated, err := svc.repo.UpdateProject(ctx, project)
	if errors.Is(err, ErrDuplicateTitle) {
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrDuplicateTitle)
	}
	if errors.Is(err, ErrProjectNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %v", ErrProjectNotFound, project.Id))
	}
	if err != nil {
		return nil, svc.internalError("Failed to update project.", err)
	}

	return connect.NewResponse(&UpdateProjectResponse{
		Project: updated,
	}), nil
}

func (svc *Service) DeleteProject(ctx context.Context, req *connect.Request[DeleteProjectRequest]) (*connect.Response[DeleteProjectResponse], error) {
	if err := ValidateProjectID(req.Msg.GetId()); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	err := svc.repo.DeleteProject(ctx, req.Msg.GetId())
	if errors.Is(err, ErrProjectNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %v", ErrProjectNotFound, req.Msg.GetId()))
	}
	if err != nil {
		return nil, svc.internalError("Failed to delete project.", err)
	}

	return connect.NewResponse(&DeleteProjectResponse{}), nil
}

func (svc *Service) GetProjectById(ctx context.Context, req *connect.Request[GetProjectByIdRequest]) (*connect.Response[GetProjectByIdResponse], error) {
	if err := ValidateProjectID(req.Msg.GetId()); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	project, err := svc.repo.FindProjectByID(ctx, req.Msg.GetId())
	if errors.Is(err, ErrProjectNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %v", ErrProjectNotFound, req.Msg.GetId()))
	}
	if err != nil {
		return nil, svc.internalError("Failed to find project.", err)
	}

	return connect.NewResponse(&GetProjectByIdResponse{
		Project: project,
	}), nil
}

// ListProjects streams every project matching the request filters. Sending
// suspends until the client has accepted the previous message, so the
// transport paces cursor iteration.
func (svc *Service) ListProjects(ctx context.Context, req *connect.Request[ListProjectsRequest], stream *connect.ServerStream[ListProjectsResponse]) error {
	err := svc.repo.FindProjects(ctx, req.Msg.GetFilters(), func(project *Project) error {
		return stream.Send(&ListProjectsResponse{Project: project})
	})
	if err != nil {
		if ctx.Err() != nil {
			// The client went away; there is no one left to report to.
			return err
		}

		svc.logger.Errorw("Failed to stream projects.", "error", err)

		return connect.NewError(connect.CodeInternal, errInternal)
	}

	return nil
}

// BulkCreateProjects buffers valid items until the client closes its stream,
// then commits the whole batch or nothing.
func (svc *Service) BulkCreateProjects(ctx context.Context, stream *connect.ClientStream[BulkCreateProjectsRequest]) (*connect.Response[BulkCreateProjectsResponse], error) {
	var batch []*Project

	for stream.Receive() {
		project, ok := ValidateBulkItem(stream.Msg())
		if !ok {
			svc.logger.Debugw("Dropped bulk item without a title.")
			continue
		}

		batch = append(batch, project)
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	if len(batch) == 0 {
		return connect.NewResponse(&BulkCreateProjectsResponse{}), nil
	}

	titles := make([]string, len(batch))
	seen := make(map[string]struct{}, len(batch))

	for i, project := range batch {
		// An ordered batch insert would persist the items preceding an
		// intra-batch duplicate, so it must be caught before storage.
		if _, ok := seen[project.Title]; ok {
			return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("%w: %v", ErrDuplicateTitle, project.Title))
		}

		seen[project.Title] = struct{}{}
		titles[i] = project.Title
	}

	existing, err := svc.repo.FindProjectsByTitles(ctx, titles)
	if err != nil {
		return nil, svc.internalError("Failed to check batch for duplicate titles.", err)
	}

	if len(existing) > 0 {
		existingTitles := make([]string, len(existing))
		for i, project := range existing {
			existingTitles[i] = project.Title
		}

		return nil, connect.NewError(connect.CodeAlreadyExists,
			fmt.Errorf("%w: %v", ErrDuplicateTitle, strings.Join(existingTitles, ", ")))
	}

	created, err := svc.repo.CreateProjects(ctx, batch)
	if errors.Is(err, ErrDuplicateTitle) {
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrDuplicateTitle)
	}
	if err != nil {
		return nil, svc.internalError("Failed to insert batch.", err)
	}

	return connect.NewResponse(&BulkCreateProjectsResponse{
		ProjectsCreated: int32(len(created)),
		Projects:        created,
	}), nil
}

func (svc *Service) internalError(msg string, err error) *connect.Error {
	svc.logger.Errorw(msg, "error", err)
	return connect.NewError(connect.CodeInternal, errInternal)
}
