package service_test

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/specification"
)

// In-memory repository fakes. Copies go in and out so that mutations on a
// fetched entity are invisible until Update is called, like a real store.

type fakeTaskRepo struct {
	tasks  map[uint]model.Task
	nextID uint
}

var _ repository.TaskRepositoryInterface = (*fakeTaskRepo)(nil)

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]model.Task)}
}

func copyTask(t model.Task) model.Task {
	labels := make([]model.Label, len(t.Labels))
	copy(labels, t.Labels)
	t.Labels = labels
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		t.AssigneeID = &id
	}
	if t.Index != nil {
		v := *t.Index
		t.Index = &v
	}
	return t
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *model.Task) error {
	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = copyTask(*task)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	c := copyTask(task)
	return &c, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, query specification.TaskQuery) ([]model.Task, error) {
	out := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, copyTask(task))
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *model.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	r.tasks[task.ID] = copyTask(*task)
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeStatusRepo struct {
	statuses map[uint]model.Status
	nextID   uint
}

var _ repository.StatusRepositoryInterface = (*fakeStatusRepo)(nil)

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{statuses: make(map[uint]model.Status)}
}

func (r *fakeStatusRepo) Create(ctx context.Context, status *model.Status) error {
	r.nextID++
	status.ID = r.nextID
	r.statuses[status.ID] = *status
	return nil
}

func (r *fakeStatusRepo) GetByID(ctx context.Context, id uint) (*model.Status, error) {
	status, ok := r.statuses[id]
	if !ok {
		return nil, repository.ErrStatusNotFound
	}
	return &status, nil
}

func (r *fakeStatusRepo) GetBySlug(ctx context.Context, slug string) (*model.Status, error) {
	for _, status := range r.statuses {
		if status.Slug == slug {
			s := status
			return &s, nil
		}
	}
	return nil, repository.ErrStatusNotFound
}

func (r *fakeStatusRepo) GetAll(ctx context.Context) ([]model.Status, error) {
	out := make([]model.Status, 0, len(r.statuses))
	for _, status := range r.statuses {
		out = append(out, status)
	}
	return out, nil
}

func (r *fakeStatusRepo) Update(ctx context.Context, status *model.Status) error {
	if _, ok := r.statuses[status.ID]; !ok {
		return repository.ErrStatusNotFound
	}
	r.statuses[status.ID] = *status
	return nil
}

func (r *fakeStatusRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.statuses[id]; !ok {
		return repository.ErrStatusNotFound
	}
	delete(r.statuses, id)
	return nil
}

type fakeLabelRepo struct {
	labels map[uint]model.Label
	nextID uint
}

var _ repository.LabelRepositoryInterface = (*fakeLabelRepo)(nil)

func newFakeLabelRepo() *fakeLabelRepo {
	return &fakeLabelRepo{labels: make(map[uint]model.Label)}
}

func (r *fakeLabelRepo) Create(ctx context.Context, label *model.Label) error {
	r.nextID++
	label.ID = r.nextID
	r.labels[label.ID] = *label
	return nil
}

func (r *fakeLabelRepo) GetByID(ctx context.Context, id uint) (*model.Label, error) {
	label, ok := r.labels[id]
	if !ok {
		return nil, repository.ErrLabelNotFound
	}
	return &label, nil
}

func (r *fakeLabelRepo) GetByName(ctx context.Context, name string) (*model.Label, error) {
	for _, label := range r.labels {
		if label.Name == name {
			l := label
			return &l, nil
		}
	}
	return nil, repository.ErrLabelNotFound
}

func (r *fakeLabelRepo) GetAll(ctx context.Context) ([]model.Label, error) {
	out := make([]model.Label, 0, len(r.labels))
	for _, label := range r.labels {
		out = append(out, label)
	}
	return out, nil
}

func (r *fakeLabelRepo) Update(ctx context.Context, label *model.Label) error {
	if _, ok := r.labels[label.ID]; !ok {
		return repository.ErrLabelNotFound
	}
	r.labels[label.ID] = *label
	return nil
}

func (r *fakeLabelRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.labels[id]; !ok {
		return repository.ErrLabelNotFound
	}
	delete(r.labels, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]model.User
	nextID uint
}

var _ repository.UserRepositoryInterface = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
