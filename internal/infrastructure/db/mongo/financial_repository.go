package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

const collectionEntries = "financial_entries"

type FinancialRepository struct {
	col *mongo.Collection
}

func NewFinancialRepository(db *mongo.Database) *FinancialRepository {
	return &FinancialRepository{col: db.Collection(collectionEntries)}
}

func (r *FinancialRepository) Create(ctx context.Context, entry *domain.FinancialEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (r *FinancialRepository) FindByID(ctx context.Context, id string) (*domain.FinancialEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var entry domain.FinancialEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return &entry, nil
}

func (r *FinancialRepository) List(ctx context.Context) ([]domain.FinancialEntry, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *FinancialRepository) FindByClient(ctx context.Context, clientID string) ([]domain.FinancialEntry, error) {
	return r.find(ctx, bson.M{"client_id": clientID}, nil)
}

func (r *FinancialRepository) FindInRange(ctx context.Context, from, to time.Time) ([]domain.FinancialEntry, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *FinancialRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.FinancialEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.col.Find(ctx, filter, opts)
	} else {
		cursor, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := []domain.FinancialEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

func (r *FinancialRepository) Update(ctx context.Context, entry *domain.FinancialEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *FinancialRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// SumAmount totals entries of one type with from <= date < to.
func (r *FinancialRepository) SumAmount(ctx context.Context, t domain.EntryType, from, to time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "type", Value: string(t)},
			{Key: "date", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lt", Value: to}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum entries: %w", err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode sum: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// RevenueByClient ranks clients by total income, descending, joining the
// clients collection for display names.
func (r *FinancialRepository) RevenueByClient(ctx context.Context) ([]ports.ClientRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "type", Value: string(domain.EntryIncome)},
			{Key: "client_id", Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$client_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionClients},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client"},
		}}},
		bson.D{{Key: "$unwind", Value: "$client"}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("revenue by client: %w", err)
	}

	var rows []struct {
		Total  float64 `bson:"total"`
		Client struct {
			Name string `bson:"name"`
		} `bson:"client"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode revenue: %w", err)
	}

	revenue := make([]ports.ClientRevenue, 0, len(rows))
	for _, row := range rows {
		revenue = append(revenue, ports.ClientRevenue{
			ClientName:   row.Client.Name,
			TotalRevenue: row.Total,
		})
	}
	return revenue, nil
}

// CategoryTotals groups entries of one type by category.
func (r *FinancialRepository) CategoryTotals(ctx context.Context, t domain.EntryType) ([]ports.CategoryTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "type", Value: string(t)}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}

	var rows []struct {
		Category string  `bson:"_id"`
		Total    float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode category totals: %w", err)
	}

	totals := make([]ports.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, ports.CategoryTotal{Category: row.Category, Total: row.Total})
	}
	return totals, nil
}
