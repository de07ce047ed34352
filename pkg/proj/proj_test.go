package proj_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	connect "connectrpc.com/connect"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/protobuf/proto"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj/projconnect"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/testutil"
)

// memRepo is an in-memory substitute for the document collection. It
// enforces the same uniqueness constraint on title as the storage layer's
// unique index.
type memRepo struct {
	mu       sync.Mutex
	projects map[string]*proj.Project
}

func newMemRepo() *memRepo {
	return &memRepo{projects: make(map[string]*proj.Project)}
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.projects)
}

func (r *memRepo) FindProjectByID(ctx context.Context, id string) (*proj.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, proj.ErrProjectNotFound
	}

	return proto.Clone(p).(*proj.Project), nil
}

func (r *memRepo) FindProjectByTitle(ctx context.Context, title string) (*proj.Project, error) {
	return r.FindProjectByTitleExcluding(ctx, title, "")
}

func (r *memRepo) FindProjectByTitleExcluding(ctx context.Context, title, excludeID string) (*proj.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.Title == title && p.Id != excludeID {
			return proto.Clone(p).(*proj.Project), nil
		}
	}

	return nil, proj.ErrProjectNotFound
}

func (r *memRepo) FindProjectsByTitles(ctx context.Context, titles []string) ([]*proj.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make([]*proj.Project, 0)

	for _, p := range r.sortedLocked() {
		for _, title := range titles {
			if p.Title == title {
				found = append(found, proto.Clone(p).(*proj.Project))
				break
			}
		}
	}

	return found, nil
}

func (r *memRepo) FindProjects(ctx context.Context, filters map[string]string, fn func(*proj.Project) error) error {
	r.mu.Lock()
	matched := make([]*proj.Project, 0)

	for _, p := range r.sortedLocked() {
		if matchesFilters(p, filters) {
			matched = append(matched, proto.Clone(p).(*proj.Project))
		}
	}
	r.mu.Unlock()

	for _, p := range matched {
		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

func (r *memRepo) CreateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	created, err := r.CreateProjects(ctx, []*proj.Project{project})
	if err != nil {
		return nil, err
	}

	return created[0], nil
}

func (r *memRepo) CreateProjects(ctx context.Context, projects []*proj.Project) ([]*proj.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, project := range projects {
		for _, p := range r.projects {
			if p.Title == project.Title {
				return nil, proj.ErrDuplicateTitle
			}
		}
	}

	created := make([]*proj.Project, len(projects))

	for i, project := range projects {
		p := proto.Clone(project).(*proj.Project)
		p.Id = primitive.NewObjectID().Hex()
		r.projects[p.Id] = p
		created[i] = proto.Clone(p).(*proj.Project)
	}

	return created, nil
}

func (r *memRepo) UpdateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.projects[project.Id]
	if !ok {
		return nil, proj.ErrProjectNotFound
	}

	for _, p := range r.projects {
		if p.Title == project.Title && p.Id != project.Id {
			return nil, proj.ErrDuplicateTitle
		}
	}

	stored.Title = project.Title
	stored.Summary = project.Summary
	stored.Priority = project.Priority
	stored.Status = project.Status

	return proto.Clone(stored).(*proj.Project), nil
}

func (r *memRepo) DeleteProject(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return proj.ErrProjectNotFound
	}

	delete(r.projects, id)

	return nil
}

func (r *memRepo) Close(ctx context.Context) error { return nil }

// sortedLocked returns projects ordered by title. The repository contract
// leaves ordering unspecified; a stable order keeps tests deterministic.
func (r *memRepo) sortedLocked() []*proj.Project {
	projects := make([]*proj.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].Title < projects[j].Title })

	return projects
}

func matchesFilters(p *proj.Project, filters map[string]string) bool {
	for key, value := range filters {
		switch key {
		case "title":
			if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(value)) {
				return false
			}
		case "priority":
			// An unparseable priority matches nothing, like the NaN term
			// the storage layer compiles it to.
			n, err := strconv.Atoi(value)
			if err != nil || p.Priority != int32(n) {
				return false
			}
		case "id":
			if _, err := primitive.ObjectIDFromHex(value); err != nil {
				continue
			}
			if p.Id != value {
				return false
			}
		case "summary":
			if p.Summary != value {
				return false
			}
		case "status":
			if p.Status != value {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func newTestClient(t *testing.T) (projconnect.ProjectServiceClient, *memRepo) {
	t.Helper()

	repo := newMemRepo()

	return newTestClientWithRepo(t, repo), repo
}

func newTestClientWithRepo(t *testing.T, repo proj.Repository) projconnect.ProjectServiceClient {
	t.Helper()

	svc := proj.NewService(proj.Config{
		Repository: repo,
		Logger:     testutil.NewLogger(t),
	})

	srvMux := http.NewServeMux()
	srvMux.Handle(projconnect.NewProjectServiceHandler(svc))

	srv := httptest.NewServer(srvMux)
	t.Cleanup(srv.Close)

	return projconnect.NewProjectServiceClient(srv.Client(), srv.URL)
}

func mustCreate(t *testing.T, client projconnect.ProjectServiceClient, req *proj.CreateProjectRequest) *proj.Project {
	t.Helper()

	res, err := client.CreateProject(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("unexpected error creating project: %v", err)
	}

	return res.Msg.GetProject()
}

func assertCode(t *testing.T, exp connect.Code, err error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %v, got: nil", exp)
	}

	if got := connect.CodeOf(err); got != exp {
		t.Fatalf("expected error code %v, got: %v (%v)", exp, got, err)
	}
}

func TestCreateProject(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid project with defaults", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		got := mustCreate(t, client, &proj.CreateProjectRequest{
			Title:    "Alpha",
			Priority: 3,
		})

		if got.GetId() == "" {
			t.Fatal("expected created project to have an id")
		}

		exp := &proj.Project{
			Title:    "Alpha",
			Summary:  "",
			Priority: 3,
			Status:   proj.StatusPending,
		}
		testutil.ProtoDiff(t, "created project not equal", exp, got, "id")
	})

	t.Run("rejects a duplicate title", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		_, err := client.CreateProject(context.Background(), connect.NewRequest(&proj.CreateProjectRequest{
			Title:    "Alpha",
			Priority: 1,
		}))
		assertCode(t, connect.CodeAlreadyExists, err)

		if got := repo.count(); got != 1 {
			t.Fatalf("expected 1 stored project, got: %v", got)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		tests := []*proj.CreateProjectRequest{
			{Title: "", Priority: 3},
			{Title: "   ", Priority: 3},
			{Title: "Alpha", Priority: 0},
			{Title: "Alpha", Priority: 6},
		}

		for _, req := range tests {
			_, err := client.CreateProject(context.Background(), connect.NewRequest(req))
			assertCode(t, connect.CodeInvalidArgument, err)
		}
	})
}

func TestGetProjectById(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a created project", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		res, err := client.GetProjectById(context.Background(), connect.NewRequest(&proj.GetProjectByIdRequest{
			Id: created.GetId(),
		}))
		if err != nil {
			t.Fatalf("unexpected error getting project: %v", err)
		}

		exp := &proj.Project{
			Id:       created.GetId(),
			Title:    "Alpha",
			Summary:  "",
			Priority: 3,
			Status:   proj.StatusPending,
		}
		testutil.ProtoDiff(t, "project not equal", exp, res.Msg.GetProject())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})
		req := &proj.GetProjectByIdRequest{Id: created.GetId()}

		first, err := client.GetProjectById(context.Background(), connect.NewRequest(req))
		if err != nil {
			t.Fatalf("unexpected error getting project: %v", err)
		}

		second, err := client.GetProjectById(context.Background(), connect.NewRequest(req))
		if err != nil {
			t.Fatalf("unexpected error getting project: %v", err)
		}

		testutil.ProtoDiff(t, "repeated get not equal", first.Msg.GetProject(), second.Msg.GetProject())
	})

	t.Run("fails on a malformed id", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		_, err := client.GetProjectById(context.Background(), connect.NewRequest(&proj.GetProjectByIdRequest{
			Id: "not-an-object-id",
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("fails on an unknown id", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		_, err := client.GetProjectById(context.Background(), connect.NewRequest(&proj.GetProjectByIdRequest{
			Id: primitive.NewObjectID().Hex(),
		}))
		assertCode(t, connect.CodeNotFound, err)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()

	t.Run("replaces every mutable field", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		res, err := client.UpdateProject(context.Background(), connect.NewRequest(&proj.UpdateProjectRequest{
			Id:       created.GetId(),
			Title:    "Alpha v2",
			Summary:  "updated",
			Priority: 5,
			Status:   "IN_PROGRESS",
		}))
		if err != nil {
			t.Fatalf("unexpected error updating project: %v", err)
		}

		exp := &proj.Project{
			Id:       created.GetId(),
			Title:    "Alpha v2",
			Summary:  "updated",
			Priority: 5,
			Status:   "IN_PROGRESS",
		}
		testutil.ProtoDiff(t, "updated project not equal", exp, res.Msg.GetProject())

		got, err := client.GetProjectById(context.Background(), connect.NewRequest(&proj.GetProjectByIdRequest{
			Id: created.GetId(),
		}))
		if err != nil {
			t.Fatalf("unexpected error getting project: %v", err)
		}
		testutil.ProtoDiff(t, "stored project not equal", exp, got.Msg.GetProject())
	})

	t.Run("keeps its own title", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		_, err := client.UpdateProject(context.Background(), connect.NewRequest(&proj.UpdateProjectRequest{
			Id:       created.GetId(),
			Title:    "Alpha",
			Summary:  "same title, new summary",
			Priority: 2,
			Status:   proj.StatusPending,
		}))
		if err != nil {
			t.Fatalf("unexpected error updating project: %v", err)
		}
	})

	t.Run("rejects a title held by another project", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})
		other := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Beta", Priority: 2})

		_, err := client.UpdateProject(context.Background(), connect.NewRequest(&proj.UpdateProjectRequest{
			Id:       other.GetId(),
			Title:    "Alpha",
			Summary:  "collides",
			Priority: 2,
			Status:   proj.StatusPending,
		}))
		assertCode(t, connect.CodeAlreadyExists, err)
	})

	t.Run("fails on an unknown id", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		_, err := client.UpdateProject(context.Background(), connect.NewRequest(&proj.UpdateProjectRequest{
			Id:       primitive.NewObjectID().Hex(),
			Title:    "Ghost",
			Summary:  "missing",
			Priority: 1,
			Status:   proj.StatusPending,
		}))
		assertCode(t, connect.CodeNotFound, err)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		tests := []*proj.UpdateProjectRequest{
			{Id: "", Title: "Alpha", Summary: "s", Priority: 1, Status: "PENDING"},
			{Id: "not-an-object-id", Title: "Alpha", Summary: "s", Priority: 1, Status: "PENDING"},
			{Id: created.GetId(), Title: "", Summary: "s", Priority: 1, Status: "PENDING"},
			{Id: created.GetId(), Title: "Alpha", Summary: "", Priority: 1, Status: "PENDING"},
			{Id: created.GetId(), Title: "Alpha", Summary: "s", Priority: 1, Status: ""},
			{Id: created.GetId(), Title: "Alpha", Summary: "s", Priority: 9, Status: "PENDING"},
		}

		for _, req := range tests {
			_, err := client.UpdateProject(context.Background(), connect.NewRequest(req))
			assertCode(t, connect.CodeInvalidArgument, err)
		}
	})
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	t.Run("removes a project permanently", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		created := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		_, err := client.DeleteProject(context.Background(), connect.NewRequest(&proj.DeleteProjectRequest{
			Id: created.GetId(),
		}))
		if err != nil {
			t.Fatalf("unexpected error deleting project: %v", err)
		}

		if got := repo.count(); got != 0 {
			t.Fatalf("expected 0 stored projects, got: %v", got)
		}

		_, err = client.GetProjectById(context.Background(), connect.NewRequest(&proj.GetProjectByIdRequest{
			Id: created.GetId(),
		}))
		assertCode(t, connect.CodeNotFound, err)

		_, err = client.DeleteProject(context.Background(), connect.NewRequest(&proj.DeleteProjectRequest{
			Id: created.GetId(),
		}))
		assertCode(t, connect.CodeNotFound, err)
	})

	t.Run("fails on a malformed id", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		_, err := client.DeleteProject(context.Background(), connect.NewRequest(&proj.DeleteProjectRequest{
			Id: "not-an-object-id",
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})
}

func listProjects(t *testing.T, client projconnect.ProjectServiceClient, filters map[string]string) []*proj.Project {
	t.Helper()

	stream, err := client.ListProjects(context.Background(), connect.NewRequest(&proj.ListProjectsRequest{
		Filters: filters,
	}))
	if err != nil {
		t.Fatalf("unexpected error opening list stream: %v", err)
	}
	defer stream.Close()

	var projects []*proj.Project
	for stream.Receive() {
		projects = append(projects, stream.Msg().GetProject())
	}

	if err := stream.Err(); err != nil {
		t.Fatalf("unexpected error reading list stream: %v", err)
	}

	return projects
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	alpha := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 1})
	beta := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Beta", Priority: 2})
	alpine := mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpine", Priority: 3})

	t.Run("streams every project without filters", func(t *testing.T) {
		got := listProjects(t, client, nil)
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{alpha, alpine, beta}, got)
	})

	t.Run("matches titles case-insensitively on substrings", func(t *testing.T) {
		got := listProjects(t, client, map[string]string{"title": "al"})
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{alpha, alpine}, got)
	})

	t.Run("matches priority exactly", func(t *testing.T) {
		got := listProjects(t, client, map[string]string{"priority": "2"})
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{beta}, got)
	})

	t.Run("matches nothing for an unparseable priority", func(t *testing.T) {
		got := listProjects(t, client, map[string]string{"priority": "high"})
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{}, got)
	})

	t.Run("drops an unparseable id filter", func(t *testing.T) {
		got := listProjects(t, client, map[string]string{"id": "not-an-object-id"})
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{alpha, alpine, beta}, got)
	})

	t.Run("combines filters with AND semantics", func(t *testing.T) {
		got := listProjects(t, client, map[string]string{"title": "al", "priority": "3"})
		testutil.ProtoSlicesDiff(t, "projects not equal", []*proj.Project{alpine}, got)
	})
}

// racedRepo simulates a concurrent writer claiming a title between the
// handler's duplicate pre-check and its own write: every lookup misses, and
// the write then fails on the unique index.
type racedRepo struct {
	*memRepo
}

func (r *racedRepo) FindProjectByTitle(ctx context.Context, title string) (*proj.Project, error) {
	return nil, proj.ErrProjectNotFound
}

func (r *racedRepo) FindProjectByTitleExcluding(ctx context.Context, title, excludeID string) (*proj.Project, error) {
	return nil, proj.ErrProjectNotFound
}

func (r *racedRepo) FindProjectsByTitles(ctx context.Context, titles []string) ([]*proj.Project, error) {
	return nil, nil
}

func (r *racedRepo) CreateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	return nil, proj.ErrDuplicateTitle
}

func (r *racedRepo) CreateProjects(ctx context.Context, projects []*proj.Project) ([]*proj.Project, error) {
	return nil, proj.ErrDuplicateTitle
}

func (r *racedRepo) UpdateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	return nil, proj.ErrDuplicateTitle
}

// TestDuplicateTitleRace loses the uniqueness race on purpose: the pre-check
// sees no duplicate, the storage write still fails on the unique index, and
// the caller must get AlreadyExists rather than Internal.
func TestDuplicateTitleRace(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		client := newTestClientWithRepo(t, &racedRepo{newMemRepo()})

		_, err := client.CreateProject(context.Background(), connect.NewRequest(&proj.CreateProjectRequest{
			Title:    "Alpha",
			Priority: 3,
		}))
		assertCode(t, connect.CodeAlreadyExists, err)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()
		client := newTestClientWithRepo(t, &racedRepo{newMemRepo()})

		_, err := client.UpdateProject(context.Background(), connect.NewRequest(&proj.UpdateProjectRequest{
			Id:       primitive.NewObjectID().Hex(),
			Title:    "Alpha",
			Summary:  "raced",
			Priority: 3,
			Status:   proj.StatusPending,
		}))
		assertCode(t, connect.CodeAlreadyExists, err)
	})

	t.Run("bulk create", func(t *testing.T) {
		t.Parallel()
		client := newTestClientWithRepo(t, &racedRepo{newMemRepo()})

		stream := client.BulkCreateProjects(context.Background())
		for _, req := range []*proj.BulkCreateProjectsRequest{
			{Title: "One", Priority: 1},
			{Title: "Two", Priority: 2},
		} {
			if err := stream.Send(req); err != nil {
				t.Fatalf("unexpected error sending bulk item: %v", err)
			}
		}

		_, err := stream.CloseAndReceive()
		assertCode(t, connect.CodeAlreadyExists, err)
	})
}

func TestBulkCreateProjects(t *testing.T) {
	t.Parallel()

	t.Run("inserts valid items, drops blank titles, coerces priority", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		stream := client.BulkCreateProjects(context.Background())
		for _, req := range []*proj.BulkCreateProjectsRequest{
			{Title: "One", Summary: "first", Priority: 2},
			{Title: "   ", Priority: 3},
			{Title: "Two", Priority: 9},
		} {
			if err := stream.Send(req); err != nil {
				t.Fatalf("unexpected error sending bulk item: %v", err)
			}
		}

		res, err := stream.CloseAndReceive()
		if err != nil {
			t.Fatalf("unexpected error closing bulk stream: %v", err)
		}

		if got := res.Msg.GetProjectsCreated(); got != 2 {
			t.Fatalf("expected 2 created projects, got: %v", got)
		}

		exp := []*proj.Project{
			{Title: "One", Summary: "first", Priority: 2, Status: proj.StatusBulkCreated},
			{Title: "Two", Summary: "", Priority: 1, Status: proj.StatusBulkCreated},
		}
		testutil.ProtoSlicesDiff(t, "bulk created projects not equal", exp, res.Msg.GetProjects(), "id")

		if got := repo.count(); got != 2 {
			t.Fatalf("expected 2 stored projects, got: %v", got)
		}
	})

	t.Run("rejects a batch with duplicate titles in itself", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		stream := client.BulkCreateProjects(context.Background())
		for _, req := range []*proj.BulkCreateProjectsRequest{
			{Title: "Twin", Priority: 1},
			{Title: "Twin", Priority: 2},
		} {
			if err := stream.Send(req); err != nil {
				t.Fatalf("unexpected error sending bulk item: %v", err)
			}
		}

		_, err := stream.CloseAndReceive()
		assertCode(t, connect.CodeAlreadyExists, err)

		if got := repo.count(); got != 0 {
			t.Fatalf("expected 0 stored projects, got: %v", got)
		}
	})

	t.Run("rejects a batch overlapping stored titles", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		mustCreate(t, client, &proj.CreateProjectRequest{Title: "Alpha", Priority: 3})

		stream := client.BulkCreateProjects(context.Background())
		for _, req := range []*proj.BulkCreateProjectsRequest{
			{Title: "Alpha", Priority: 1},
			{Title: "Fresh", Priority: 2},
		} {
			if err := stream.Send(req); err != nil {
				t.Fatalf("unexpected error sending bulk item: %v", err)
			}
		}

		_, err := stream.CloseAndReceive()
		assertCode(t, connect.CodeAlreadyExists, err)

		if got := repo.count(); got != 1 {
			t.Fatalf("expected 1 stored project, got: %v", got)
		}
	})

	t.Run("short-circuits a batch with no accepted items", func(t *testing.T) {
		t.Parallel()
		client, repo := newTestClient(t)

		stream := client.BulkCreateProjects(context.Background())
		if err := stream.Send(&proj.BulkCreateProjectsRequest{Title: "", Priority: 3}); err != nil {
			t.Fatalf("unexpected error sending bulk item: %v", err)
		}

		res, err := stream.CloseAndReceive()
		if err != nil {
			t.Fatalf("unexpected error closing bulk stream: %v", err)
		}

		testutil.ProtoDiff(t, "bulk response not equal", &proj.BulkCreateProjectsResponse{}, res.Msg)

		if got := repo.count(); got != 0 {
			t.Fatalf("expected 0 stored projects, got: %v", got)
		}
	})
}
