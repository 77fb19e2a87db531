package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type MenuRepositoryInterface interface {
	Create(ctx context.Context, item *models.MenuItem) (string, error)
	ListAvailable(ctx context.Context, category string) ([]*models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.MenuItem, error)
	Update(ctx context.Context, id string, partial bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MenuRepository struct {
	logger *logger.Logger
	docs   DocumentStoreInterface
}

func NewMenuRepository(log *logger.Logger, docs DocumentStoreInterface) *MenuRepository {
	return &MenuRepository{
		logger: log.WithComponent("menu_repository"),
		docs:   docs,
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) (string, error) {
	id, err := r.docs.Create(ctx, CollectionMenuItems, item)
	if err != nil {
		return "", err
	}
	r.logger.Info("Created menu item", "id", id, "name", item.Name)
	return id, nil
}

// ListAvailable returns available menu items sorted ascending by name,
// optionally narrowed to one category.
func (r *MenuRepository) ListAvailable(ctx context.Context, category string) ([]*models.MenuItem, error) {
	filter := bson.M{"is_available": true}
	if category != "" {
		filter["category"] = category
	}

	docs, err := r.docs.List(ctx, CollectionMenuItems, filter, &ListOptions{
		Sort: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return decodeMenuItems(docs)
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	doc, err := r.docs.GetByID(ctx, CollectionMenuItems, id)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{}
	if err := decodeDocument(doc, item); err != nil {
		return nil, fmt.Errorf("failed to decode menu item %s: %w", id, err)
	}
	return item, nil
}

// GetByIDs fetches all menu items matching the given identifier strings in
// one query. Malformed or unknown ids are simply absent from the result;
// the caller decides whether that is an error.
func (r *MenuRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.MenuItem, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	if len(oids) == 0 {
		return []*models.MenuItem{}, nil
	}

	docs, err := r.docs.List(ctx, CollectionMenuItems, bson.M{"_id": bson.M{"$in": oids}}, nil)
	if err != nil {
		return nil, err
	}

	return decodeMenuItems(docs)
}

func (r *MenuRepository) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	found, err := r.docs.Update(ctx, CollectionMenuItems, id, partial)
	if err != nil {
		return false, err
	}
	if found {
		r.logger.Info("Updated menu item", "id", id)
	}
	return found, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.docs.Delete(ctx, CollectionMenuItems, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.logger.Info("Deleted menu item", "id", id)
	}
	return deleted, nil
}

func decodeMenuItems(docs []bson.M) ([]*models.MenuItem, error) {
	items := make([]*models.MenuItem, 0, len(docs))
	for _, doc := range docs {
		item := &models.MenuItem{}
		if err := decodeDocument(doc, item); err != nil {
			return nil, fmt.Errorf("failed to decode menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
