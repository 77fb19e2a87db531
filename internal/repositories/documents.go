package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-restaurant/models"
	"smart-restaurant/pkg/database"
	"smart-restaurant/pkg/logger"
)

// Collection names. One collection per entity type, named after the entity.
const (
	CollectionMenuItems = "menuitem"
	CollectionOrders    = "order"
	CollectionPayments  = "paymentrecord"
)

// ListOptions narrows a List call. Zero values mean "no sort" / "no cap".
type ListOptions struct {
	Sort  bson.D
	Limit int64
}

// DocumentStoreInterface is the generic create/read/update/delete surface
// over named collections. The adapter owns created_at/updated_at stamping
// and identifier string conversion; callers own everything else.
type DocumentStoreInterface interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	List(ctx context.Context, collection string, filter bson.M, opts *ListOptions) ([]bson.M, error)
	GetByID(ctx context.Context, collection, id string) (bson.M, error)
	Update(ctx context.Context, collection, id string, partial bson.M) (bool, error)
	Delete(ctx context.Context, collection, id string) (bool, error)
}

type DocumentStore struct {
	logger *logger.Logger
	db     *database.DB
}

// NewDocumentStore wraps db, which may be nil when the store is not
// configured; every operation then fails with ErrStoreUnavailable.
func NewDocumentStore(log *logger.Logger, db *database.DB) *DocumentStore {
	return &DocumentStore{
		logger: log.WithComponent("document_store"),
		db:     db,
	}
}

func (s *DocumentStore) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, models.ErrStoreUnavailable
	}
	return s.db.Collection(name), nil
}

// Create inserts doc into collection with created_at/updated_at stamped in
// UTC and returns the assigned identifier as a hex string.
func (s *DocumentStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}

	data, err := flattenDocument(doc)
	if err != nil {
		s.logger.Error("Failed to flatten document", "collection", collection, "error", err)
		return "", fmt.Errorf("failed to flatten document: %w", err)
	}

	now := time.Now().UTC()
	data["created_at"] = now
	data["updated_at"] = now

	res, err := coll.InsertOne(ctx, data)
	if err != nil {
		s.logger.Error("Failed to insert document", "collection", collection, "error", err)
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	s.logger.Debug("Inserted document", "collection", collection, "id", oid.Hex())
	return oid.Hex(), nil
}

// List returns all documents matching filter, each with its identifier
// normalized to a string.
func (s *DocumentStore) List(ctx context.Context, collection string, filter bson.M, opts *ListOptions) ([]bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = bson.M{}
	}

	findOpts := options.Find()
	if opts != nil {
		if len(opts.Sort) > 0 {
			findOpts.SetSort(opts.Sort)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		s.logger.Error("Failed to query documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("Failed to decode documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}

	for _, doc := range docs {
		normalizeID(doc)
	}

	s.logger.Debug("Listed documents", "collection", collection, "count", len(docs))
	return docs, nil
}

// GetByID returns the document matching the hex id string.
func (s *DocumentStore) GetByID(ctx context.Context, collection, id string) (bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	doc := bson.M{}
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s %s: %w", collection, id, models.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to fetch document", "collection", collection, "id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch %s %s: %w", collection, id, err)
	}

	normalizeID(doc)
	return doc, nil
}

// Update merges partial into the matching document and stamps updated_at.
// It reports whether a document was matched; an unknown id yields false,
// not an error. Matched rather than modified count is used so a no-op
// merge (same values applied twice) does not read as a missing document.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, partial bson.M) (bool, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return false, err
	}

	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	update := bson.M{}
	for k, v := range partial {
		update[k] = v
	}
	update["updated_at"] = time.Now().UTC()

	res, err := coll.UpdateByID(ctx, oid, bson.M{"$set": update})
	if err != nil {
		s.logger.Error("Failed to update document", "collection", collection, "id", id, "error", err)
		return false, fmt.Errorf("failed to update %s %s: %w", collection, id, err)
	}

	s.logger.Debug("Updated document",
		"collection", collection,
		"id", id,
		"matched", res.MatchedCount,
		"modified", res.ModifiedCount)
	return res.MatchedCount > 0, nil
}

// Delete removes the matching document and reports whether one was removed.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return false, err
	}

	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error("Failed to delete document", "collection", collection, "id", id, "error", err)
		return false, fmt.Errorf("failed to delete %s %s: %w", collection, id, err)
	}

	s.logger.Debug("Deleted document", "collection", collection, "id", id, "deleted", res.DeletedCount)
	return res.DeletedCount > 0, nil
}

// parseID converts a hex identifier string to the store's native id type.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return oid, nil
}

// normalizeID converts the store-native _id to its hex string form in place.
func normalizeID(doc bson.M) {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
}

// flattenDocument converts a typed record (or map) into a bson.M so the
// adapter can stamp timestamps before insertion.
func flattenDocument(doc interface{}) (bson.M, error) {
	if m, ok := doc.(bson.M); ok {
		out := bson.M{}
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeDocument decodes a normalized bson.M into a typed record.
func decodeDocument(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
