package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

const (
	statusCollection   = "task_statuses"
	priorityCollection = "task_priorities"
	categoryCollection = "task_categories"
)

type mongoLookup struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Value        int                `bson:"value,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Color        string             `bson:"color,omitempty"`
	DisplayOrder int                `bson:"display_order,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// StatusRepository persists task statuses, name-unique via index.
type StatusRepository struct {
	coll *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{coll: db.Collection(statusCollection)}
}

func statusToDomain(ml mongoLookup) *domain.TaskStatus {
	return &domain.TaskStatus{
		ID:          ml.ID.Hex(),
		Name:        ml.Name,
		Description: ml.Description,
		Color:       ml.Color,
		CreatedAt:   unixToTime(ml.CreatedAt),
		UpdatedAt:   unixToTime(ml.UpdatedAt),
	}
}

func (r *StatusRepository) Create(ctx context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error) {
	doc := mongoLookup{
		Name:        status.Name,
		Description: status.Description,
		Color:       status.Color,
		CreatedAt:   status.CreatedAt.Unix(),
		UpdatedAt:   status.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStatusExists
		}
		return nil, fmt.Errorf("insert status: %w", err)
	}
	created := *status
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *StatusRepository) Update(ctx context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error) {
	oid, err := primitive.ObjectIDFromHex(status.ID)
	if err != nil {
		return nil, domain.ErrStatusNotFound
	}
	doc := mongoLookup{
		ID:          oid,
		Name:        status.Name,
		Description: status.Description,
		Color:       status.Color,
		CreatedAt:   status.CreatedAt.Unix(),
		UpdatedAt:   status.UpdatedAt.Unix(),
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStatusExists
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStatusNotFound
	}
	updated := *status
	return &updated, nil
}

func (r *StatusRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStatusNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStatusNotFound
	}
	return nil
}

func (r *StatusRepository) FindByID(ctx context.Context, id string) (*domain.TaskStatus, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStatusNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *StatusRepository) FindByName(ctx context.Context, name string) (*domain.TaskStatus, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *StatusRepository) FindAll(ctx context.Context) ([]*domain.TaskStatus, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find statuses: %w", err)
	}
	defer cur.Close(ctx)

	var statuses []*domain.TaskStatus
	for cur.Next(ctx) {
		var ml mongoLookup
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode status: %w", err)
		}
		statuses = append(statuses, statusToDomain(ml))
	}
	return statuses, cur.Err()
}

func (r *StatusRepository) findOne(ctx context.Context, filter bson.M) (*domain.TaskStatus, error) {
	var ml mongoLookup
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStatusNotFound
		}
		return nil, fmt.Errorf("find status: %w", err)
	}
	return statusToDomain(ml), nil
}

// PriorityRepository persists task priorities, name- and value-unique via index.
type PriorityRepository struct {
	coll *mongo.Collection
}

func NewPriorityRepository(db *mongo.Database) *PriorityRepository {
	return &PriorityRepository{coll: db.Collection(priorityCollection)}
}

func priorityToDomain(ml mongoLookup) *domain.TaskPriority {
	return &domain.TaskPriority{
		ID:           ml.ID.Hex(),
		Name:         ml.Name,
		Value:        ml.Value,
		Description:  ml.Description,
		Color:        ml.Color,
		DisplayOrder: ml.DisplayOrder,
		CreatedAt:    unixToTime(ml.CreatedAt),
		UpdatedAt:    unixToTime(ml.UpdatedAt),
	}
}

func (r *PriorityRepository) Create(ctx context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error) {
	doc := mongoLookup{
		Name:         priority.Name,
		Value:        priority.Value,
		Description:  priority.Description,
		Color:        priority.Color,
		DisplayOrder: priority.DisplayOrder,
		CreatedAt:    priority.CreatedAt.Unix(),
		UpdatedAt:    priority.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPriorityExists
		}
		return nil, fmt.Errorf("insert priority: %w", err)
	}
	created := *priority
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PriorityRepository) Update(ctx context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error) {
	oid, err := primitive.ObjectIDFromHex(priority.ID)
	if err != nil {
		return nil, domain.ErrPriorityNotFound
	}
	doc := mongoLookup{
		ID:           oid,
		Name:         priority.Name,
		Value:        priority.Value,
		Description:  priority.Description,
		Color:        priority.Color,
		DisplayOrder: priority.DisplayOrder,
		CreatedAt:    priority.CreatedAt.Unix(),
		UpdatedAt:    priority.UpdatedAt.Unix(),
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPriorityExists
		}
		return nil, fmt.Errorf("update priority: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPriorityNotFound
	}
	updated := *priority
	return &updated, nil
}

func (r *PriorityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPriorityNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete priority: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPriorityNotFound
	}
	return nil
}

func (r *PriorityRepository) FindByID(ctx context.Context, id string) (*domain.TaskPriority, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriorityNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *PriorityRepository) FindByName(ctx context.Context, name string) (*domain.TaskPriority, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *PriorityRepository) FindByValue(ctx context.Context, value int) (*domain.TaskPriority, error) {
	return r.findOne(ctx, bson.M{"value": value})
}

func (r *PriorityRepository) FindAll(ctx context.Context) ([]*domain.TaskPriority, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find priorities: %w", err)
	}
	defer cur.Close(ctx)

	var priorities []*domain.TaskPriority
	for cur.Next(ctx) {
		var ml mongoLookup
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode priority: %w", err)
		}
		priorities = append(priorities, priorityToDomain(ml))
	}
	return priorities, cur.Err()
}

func (r *PriorityRepository) findOne(ctx context.Context, filter bson.M) (*domain.TaskPriority, error) {
	var ml mongoLookup
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPriorityNotFound
		}
		return nil, fmt.Errorf("find priority: %w", err)
	}
	return priorityToDomain(ml), nil
}

// CategoryRepository persists task categories, name-unique via index.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoryCollection)}
}

func categoryToDomain(ml mongoLookup) *domain.TaskCategory {
	return &domain.TaskCategory{
		ID:          ml.ID.Hex(),
		Name:        ml.Name,
		Description: ml.Description,
		Color:       ml.Color,
		CreatedAt:   unixToTime(ml.CreatedAt),
		UpdatedAt:   unixToTime(ml.UpdatedAt),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error) {
	doc := mongoLookup{
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt.Unix(),
		UpdatedAt:   category.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	created := *category
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error) {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	doc := mongoLookup{
		ID:          oid,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt.Unix(),
		UpdatedAt:   category.UpdatedAt.Unix(),
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	updated := *category
	return &updated, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.TaskCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.TaskCategory, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*domain.TaskCategory, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []*domain.TaskCategory
	for cur.Next(ctx) {
		var ml mongoLookup
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, categoryToDomain(ml))
	}
	return categories, cur.Err()
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.TaskCategory, error) {
	var ml mongoLookup
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return categoryToDomain(ml), nil
}
