package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// memClientRepo is a storing stub with real not-found semantics.
type memClientRepo struct {
	clients map[string]*domain.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *memClientRepo) Create(_ context.Context, client *domain.Client) error {
	clone := *client
	r.clients[client.ID] = &clone
	return nil
}

func (r *memClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *memClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	clone := *client
	r.clients[client.ID] = &clone
	return nil
}

func (r *memClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *memClientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

func strPtr(s string) *string { return &s }

func TestClientService_Create_Defaults(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), &domain.Client{Name: "Acme", ContactName: "Ana", City: "Madrid", Phone: "5551234"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if client.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if client.Status != domain.ClientStatusActive {
		t.Fatalf("expected default status %q, got %q", domain.ClientStatusActive, client.Status)
	}
	if client.CreatedAt.IsZero() || client.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestClientService_Update_PartialMerge(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Client{Name: "Acme", ContactName: "Ana", City: "Madrid", Phone: "5551234", Notes: "keep me"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ClientPatch{
		Name: strPtr("Acme Corp"),
		City: strPtr("Barcelona"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Acme Corp" || updated.City != "Barcelona" {
		t.Fatalf("patched fields not applied: %+v", updated)
	}
	if updated.ContactName != "Ana" || updated.Notes != "keep me" {
		t.Fatalf("untouched fields were clobbered: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to move forward")
	}
}

func TestClientService_Update_EmptyStringOverwrites(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), &domain.Client{Name: "Acme", ContactName: "Ana", City: "Madrid", Phone: "5551234", Notes: "old"})

	// A present-but-empty field is an explicit clear, not an omission.
	updated, err := svc.Update(context.Background(), created.ID, ports.ClientPatch{Notes: strPtr("")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Notes != "" {
		t.Fatalf("expected notes cleared, got %q", updated.Notes)
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.ClientPatch{Name: strPtr("x")}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Delete(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), &domain.Client{Name: "Acme", ContactName: "Ana", City: "Madrid", Phone: "5551234"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound on second delete, got %v", err)
	}
}
