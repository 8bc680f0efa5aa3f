package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

const collectionItems = "items"

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(collectionItems)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"item_name"`
	Description string             `bson:"description"`
	Quantity    int                `bson:"current_quantity"`
	MinStock    int                `bson:"minimum_stock_level"`
	UnitPrice   float64            `bson:"unit_price"`
	SupplierID  string             `bson:"supplier"`
	CategoryID  string             `bson:"category"`
	CreatedAt   time.Time          `bson:"created_at"`
	LastUpdated time.Time          `bson:"last_updated"`
}

func toMongoItem(it *domain.Item) mongoItem {
	return mongoItem{
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		MinStock:    it.MinStock,
		UnitPrice:   it.UnitPrice,
		SupplierID:  it.SupplierID,
		CategoryID:  it.CategoryID,
		CreatedAt:   it.CreatedAt,
		LastUpdated: it.LastUpdated,
	}
}

func (m mongoItem) toDomain() *domain.Item {
	return &domain.Item{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Quantity:    m.Quantity,
		MinStock:    m.MinStock,
		UnitPrice:   m.UnitPrice,
		SupplierID:  m.SupplierID,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		LastUpdated: m.LastUpdated,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoItem(item))
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	out := *item
	out.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &out, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	var m mongoItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return domain.ErrItemNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoItem(item))
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// List returns a page of items matching filter and the total count.
func (r *ItemRepository) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		query["item_name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.CategoryID != "" {
		query["category"] = filter.CategoryID
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "item_name", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items, err := decodeItems(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll returns every item, used by analytics and alert derivation.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	return decodeItems(ctx, cur)
}

func decodeItems(ctx context.Context, cur *mongo.Cursor) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0)
	for cur.Next(ctx) {
		var m mongoItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// EnsureIndexes creates the indexes backing list filters.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "item_name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "supplier", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
