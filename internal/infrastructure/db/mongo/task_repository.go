package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

const taskCollection = "tasks"

// TaskRepository persists tasks in MongoDB.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	Priority    int                `bson:"priority,omitempty"`
	UserID      string             `bson:"user_id,omitempty"`
	StatusID    string             `bson:"status_id,omitempty"`
	CategoryID  string             `bson:"category_id,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func toMongoTask(t *domain.Task) mongoTask {
	return mongoTask{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		UserID:      t.UserID,
		StatusID:    t.StatusID,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}
}

func (mt mongoTask) toDomain() *domain.Task {
	var due *time.Time
	if mt.DueDate != nil {
		d := mt.DueDate.UTC()
		due = &d
	}
	return &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		DueDate:     due,
		Priority:    mt.Priority,
		UserID:      mt.UserID,
		StatusID:    mt.StatusID,
		CategoryID:  mt.CategoryID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	res, err := r.coll.InsertOne(ctx, toMongoTask(task))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoTask(task))
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}

	updated := *task
	return &updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *TaskRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *TaskRepository) SearchByTitle(ctx context.Context, keyword string) ([]*domain.Task, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}}
	return r.findMany(ctx, filter)
}

func (r *TaskRepository) FindOverdue(ctx context.Context, userID string, before time.Time) ([]*domain.Task, error) {
	filter := bson.M{
		"user_id":  userID,
		"due_date": bson.M{"$lt": before},
	}
	return r.findMany(ctx, filter)
}

func (r *TaskRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Task, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, mt.toDomain())
	}
	return tasks, cur.Err()
}
