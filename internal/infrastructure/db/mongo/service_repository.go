package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agenciahub/backend/internal/core/domain"
)

const collectionServices = "services"

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var svc domain.Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.find(ctx, filter)
}

func (r *ServiceRepository) FindByProject(ctx context.Context, projectID string) ([]domain.Service, error) {
	return r.find(ctx, bson.M{"project_id": projectID})
}

func (r *ServiceRepository) find(ctx context.Context, filter bson.M) ([]domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := []domain.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}
