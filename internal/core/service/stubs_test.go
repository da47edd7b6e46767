package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// In-memory repository stubs shared across the service tests. They mirror the
// storage-layer contracts: uniqueness is enforced here, the same way the
// Mongo implementations rely on unique indexes.

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	if clone.ID == "" {
		r.seq++
		clone.ID = "user-" + strconv.Itoa(r.seq)
	}
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type stubTaskRepo struct {
	seq   int
	tasks map[string]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	clone := cloneTask(task)
	r.seq++
	clone.ID = "task-" + strconv.Itoa(r.seq)
	r.tasks[clone.ID] = cloneTask(clone)
	return clone, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return cloneTask(task), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) FindAll(_ context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *stubTaskRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) SearchByTitle(_ context.Context, keyword string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if strings.Contains(strings.ToLower(t.Title), strings.ToLower(keyword)) {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindOverdue(_ context.Context, userID string, before time.Time) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID && t.DueDate != nil && t.DueDate.Before(before) {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

type stubStatusRepo struct {
	seq      int
	statuses map[string]*domain.TaskStatus
}

func newStubStatusRepo() *stubStatusRepo {
	return &stubStatusRepo{statuses: make(map[string]*domain.TaskStatus)}
}

func (r *stubStatusRepo) Create(_ context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error) {
	for _, s := range r.statuses {
		if s.Name == status.Name {
			return nil, domain.ErrStatusExists
		}
	}
	clone := *status
	r.seq++
	clone.ID = "status-" + strconv.Itoa(r.seq)
	r.statuses[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubStatusRepo) Update(_ context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error) {
	if _, ok := r.statuses[status.ID]; !ok {
		return nil, domain.ErrStatusNotFound
	}
	for id, s := range r.statuses {
		if id != status.ID && s.Name == status.Name {
			return nil, domain.ErrStatusExists
		}
	}
	clone := *status
	r.statuses[status.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubStatusRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.statuses[id]; !ok {
		return domain.ErrStatusNotFound
	}
	delete(r.statuses, id)
	return nil
}

func (r *stubStatusRepo) FindByID(_ context.Context, id string) (*domain.TaskStatus, error) {
	s, ok := r.statuses[id]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStatusRepo) FindByName(_ context.Context, name string) (*domain.TaskStatus, error) {
	for _, s := range r.statuses {
		if s.Name == name {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrStatusNotFound
}

func (r *stubStatusRepo) FindAll(_ context.Context) ([]*domain.TaskStatus, error) {
	out := make([]*domain.TaskStatus, 0, len(r.statuses))
	for _, s := range r.statuses {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

type stubPriorityRepo struct {
	seq        int
	priorities map[string]*domain.TaskPriority
}

func newStubPriorityRepo() *stubPriorityRepo {
	return &stubPriorityRepo{priorities: make(map[string]*domain.TaskPriority)}
}

func (r *stubPriorityRepo) Create(_ context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error) {
	for _, p := range r.priorities {
		if p.Name == priority.Name || p.Value == priority.Value {
			return nil, domain.ErrPriorityExists
		}
	}
	clone := *priority
	r.seq++
	clone.ID = "priority-" + strconv.Itoa(r.seq)
	r.priorities[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubPriorityRepo) Update(_ context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error) {
	if _, ok := r.priorities[priority.ID]; !ok {
		return nil, domain.ErrPriorityNotFound
	}
	for id, p := range r.priorities {
		if id != priority.ID && (p.Name == priority.Name || p.Value == priority.Value) {
			return nil, domain.ErrPriorityExists
		}
	}
	clone := *priority
	r.priorities[priority.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubPriorityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.priorities[id]; !ok {
		return domain.ErrPriorityNotFound
	}
	delete(r.priorities, id)
	return nil
}

func (r *stubPriorityRepo) FindByID(_ context.Context, id string) (*domain.TaskPriority, error) {
	p, ok := r.priorities[id]
	if !ok {
		return nil, domain.ErrPriorityNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPriorityRepo) FindByName(_ context.Context, name string) (*domain.TaskPriority, error) {
	for _, p := range r.priorities {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPriorityNotFound
}

func (r *stubPriorityRepo) FindByValue(_ context.Context, value int) (*domain.TaskPriority, error) {
	for _, p := range r.priorities {
		if p.Value == value {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPriorityNotFound
}

func (r *stubPriorityRepo) FindAll(_ context.Context) ([]*domain.TaskPriority, error) {
	out := make([]*domain.TaskPriority, 0, len(r.priorities))
	for _, p := range r.priorities {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubCategoryRepo struct {
	seq        int
	categories map[string]*domain.TaskCategory
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.TaskCategory)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	clone := *category
	r.seq++
	clone.ID = "category-" + strconv.Itoa(r.seq)
	r.categories[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	for id, c := range r.categories {
		if id != category.ID && c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	clone := *category
	r.categories[category.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.TaskCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.TaskCategory, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.TaskCategory, error) {
	out := make([]*domain.TaskCategory, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

// stubLookupCache records hits, sets and invalidations so the read-through
// behaviour can be asserted without Redis.
type stubLookupCache struct {
	entries     map[string][]byte
	sets        int
	invalidated []string
}

func newStubLookupCache() *stubLookupCache {
	return &stubLookupCache{entries: make(map[string][]byte)}
}

func (c *stubLookupCache) GetList(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubLookupCache) SetList(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *stubLookupCache) Invalidate(_ context.Context, key string) error {
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
	return nil
}
