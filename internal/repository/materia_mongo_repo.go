package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const materiasCollection = "materias"

// MateriaMongoRepository stores materias as documents in the "materias"
// collection, keyed by the caller-supplied id in _id.
type MateriaMongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMateriaMongoRepository(db *mongo.Database) *MateriaMongoRepository {
	return &MateriaMongoRepository{coll: db.Collection(materiasCollection), now: time.Now}
}

// EnsureIndexes creates the categoria and createdAt indexes. Idempotent.
func (r *MateriaMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoria", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (r *MateriaMongoRepository) Create(ctx context.Context, m *model.Materia) error {
	// Mongo keeps millisecond precision; truncating keeps the echoed value equal to the stored one.
	m.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *MateriaMongoRepository) FindByID(ctx context.Context, id string) (*model.Materia, error) {
	var m model.Materia
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MateriaMongoRepository) List(ctx context.Context, filter dto.MateriaFilter) ([]model.Materia, error) {
	limit, skip := NormalizarPaginacion(filter)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := r.coll.Find(ctx, buildMongoFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	list := make([]model.Materia, 0)
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MateriaMongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// buildMongoFilter composes the exact categoria match with the free-text
// disjunction. q is matched literally, ignoring case.
func buildMongoFilter(f dto.MateriaFilter) bson.M {
	filter := bson.M{}
	if f.Categoria != "" {
		filter["categoria"] = f.Categoria
	}
	if f.Q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"nombre": re},
			bson.M{"descripcion": re},
		}
	}
	return filter
}
