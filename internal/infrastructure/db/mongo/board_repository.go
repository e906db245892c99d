package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agenciahub/backend/internal/core/domain"
)

const collectionBoards = "boards"

type BoardRepository struct {
	col *mongo.Collection
}

func NewBoardRepository(db *mongo.Database) *BoardRepository {
	return &BoardRepository{col: db.Collection(collectionBoards)}
}

func (r *BoardRepository) Create(ctx context.Context, board *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, board); err != nil {
		return fmt.Errorf("insert board: %w", err)
	}
	return nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var board domain.Board
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&board); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, fmt.Errorf("find board: %w", err)
	}
	return &board, nil
}

func (r *BoardRepository) List(ctx context.Context, activeOnly bool) ([]domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := []domain.Board{}
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("decode boards: %w", err)
	}
	return boards, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": board.ID}, board)
	if err != nil {
		return fmt.Errorf("update board: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}
