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
)

const collectionSuppliers = "suppliers"

type SupplierRepository struct {
	coll *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{coll: db.Collection(collectionSuppliers)}
}

type mongoSupplier struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"supplier_name"`
	CompanyName string             `bson:"company_name"`
	RUC         string             `bson:"ruc"`
	Address     string             `bson:"address"`
	CreatedAt   time.Time          `bson:"created_at"`
	LastUpdated time.Time          `bson:"last_updated"`
}

func (m mongoSupplier) toDomain() *domain.Supplier {
	return &domain.Supplier{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		CompanyName: m.CompanyName,
		RUC:         m.RUC,
		Address:     m.Address,
		CreatedAt:   m.CreatedAt,
		LastUpdated: m.LastUpdated,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSupplier{
		Name:        s.Name,
		CompanyName: s.CompanyName,
		RUC:         s.RUC,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt,
		LastUpdated: s.LastUpdated,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert supplier: %w", err)
	}

	out := *s
	out.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &out, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSupplierNotFound
	}

	var m mongoSupplier
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return m.toDomain(), nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrSupplierNotFound
	}

	doc := mongoSupplier{
		Name:        s.Name,
		CompanyName: s.CompanyName,
		RUC:         s.RUC,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt,
		LastUpdated: s.LastUpdated,
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSupplierNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "supplier_name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cur.Close(ctx)

	suppliers := make([]*domain.Supplier, 0)
	for cur.Next(ctx) {
		var m mongoSupplier
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode supplier: %w", err)
		}
		suppliers = append(suppliers, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}
