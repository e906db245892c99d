package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type memProjectRepo struct {
	projects map[string]*domain.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *memProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *memProjectRepo) FindByClient(_ context.Context, clientID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Recent(_ context.Context, limit int) ([]domain.Project, error) {
	return r.List(context.Background())
}

func (r *memProjectRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, p := range r.projects {
		counts[p.Status]++
	}
	return counts, nil
}

func (r *memProjectRepo) DueBefore(_ context.Context, until time.Time, statuses []string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.DueDate == nil || p.DueDate.After(until) {
			continue
		}
		for _, s := range statuses {
			if p.Status == s {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func newProjectFixture() (*ProjectService, *memProjectRepo, *memClientRepo) {
	projects := newMemProjectRepo()
	clients := newMemClientRepo()
	return NewProjectService(projects, clients, zerolog.Nop()), projects, clients
}

func TestProjectService_Create_Defaults(t *testing.T) {
	svc, _, clients := newProjectFixture()
	clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme"}

	project, err := svc.Create(context.Background(), &domain.Project{Title: "Relaunch", ClientID: "c1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.Status != domain.StatusPlanning {
		t.Fatalf("expected default status planning, got %q", project.Status)
	}
	if project.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", project.Priority)
	}
	if project.ID == "" {
		t.Fatalf("expected generated ID")
	}
}

func TestProjectService_Create_UnknownClient(t *testing.T) {
	svc, _, _ := newProjectFixture()

	if _, err := svc.Create(context.Background(), &domain.Project{Title: "Relaunch", ClientID: "ghost"}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestProjectService_Update_PartialMerge(t *testing.T) {
	svc, _, clients := newProjectFixture()
	clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme"}

	created, err := svc.Create(context.Background(), &domain.Project{Title: "Relaunch", ClientID: "c1", Notes: "scope locked"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	due := time.Now().UTC().AddDate(0, 1, 0)
	status := domain.StatusInProgress
	progress := 65
	updated, err := svc.Update(context.Background(), created.ID, ports.ProjectPatch{
		Status:   &status,
		Progress: &progress,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StatusInProgress || updated.Progress != 65 {
		t.Fatalf("patched fields not applied: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("due date not applied: %v", updated.DueDate)
	}
	if updated.Title != "Relaunch" || updated.Notes != "scope locked" {
		t.Fatalf("untouched fields were clobbered: %+v", updated)
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc, _, _ := newProjectFixture()

	title := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.ProjectPatch{Title: &title}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newProjectFixture()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
