package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type memBoardRepo struct {
	boards map[string]domain.Board
}

func newMemBoardRepo() *memBoardRepo {
	return &memBoardRepo{boards: make(map[string]domain.Board)}
}

func (r *memBoardRepo) Create(_ context.Context, board *domain.Board) error {
	r.boards[board.ID] = *board
	return nil
}

func (r *memBoardRepo) FindByID(_ context.Context, id string) (*domain.Board, error) {
	board, ok := r.boards[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	clone := board
	return &clone, nil
}

func (r *memBoardRepo) List(_ context.Context, activeOnly bool) ([]domain.Board, error) {
	var out []domain.Board
	for _, board := range r.boards {
		if activeOnly && !board.Active {
			continue
		}
		out = append(out, board)
	}
	return out, nil
}

func (r *memBoardRepo) Update(_ context.Context, board *domain.Board) error {
	if _, ok := r.boards[board.ID]; !ok {
		return domain.ErrBoardNotFound
	}
	r.boards[board.ID] = *board
	return nil
}

func (r *memBoardRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(r.boards, id)
	return nil
}

func TestBoardService_Create_Defaults(t *testing.T) {
	svc := NewBoardService(newMemBoardRepo(), zerolog.Nop())

	board, err := svc.Create(context.Background(), &domain.Board{Name: "Delivery"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if board.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !board.Active {
		t.Fatalf("new board must be active")
	}
	if board.Statuses == nil {
		t.Fatalf("statuses must default to an empty map")
	}
	if board.CreatedAt.IsZero() || board.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestBoardService_Update_PartialMerge(t *testing.T) {
	repo := newMemBoardRepo()
	svc := NewBoardService(repo, zerolog.Nop())

	board, err := svc.Create(context.Background(), &domain.Board{
		Name:     "Delivery",
		Color:    "#2ecc71",
		Statuses: map[string]string{"todo": "To Do", "done": "Done"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	statuses := map[string]string{"todo": "Backlog", "doing": "Doing", "done": "Done"}
	active := false
	updated, err := svc.Update(context.Background(), board.ID, ports.BoardPatch{
		Statuses: &statuses,
		Active:   &active,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Delivery" || updated.Color != "#2ecc71" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if len(updated.Statuses) != 3 || updated.Statuses["todo"] != "Backlog" {
		t.Fatalf("statuses not replaced: %+v", updated.Statuses)
	}
	if updated.Active {
		t.Fatalf("active flag not applied")
	}
}

func TestBoardService_List_ActiveOnly(t *testing.T) {
	repo := newMemBoardRepo()
	svc := NewBoardService(repo, zerolog.Nop())

	ctx := context.Background()
	if _, err := svc.Create(ctx, &domain.Board{Name: "Active board"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive, err := svc.Create(ctx, &domain.Board{Name: "Retired board"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	off := false
	if _, err := svc.Update(ctx, inactive.ID, ports.BoardPatch{Active: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(all))
	}

	active, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Active board" {
		t.Fatalf("unexpected active boards: %+v", active)
	}
}

func TestBoardService_Update_NotFound(t *testing.T) {
	svc := NewBoardService(newMemBoardRepo(), zerolog.Nop())

	name := "x"
	_, err := svc.Update(context.Background(), "missing", ports.BoardPatch{Name: &name})
	if !errors.Is(err, domain.ErrBoardNotFound) {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}
