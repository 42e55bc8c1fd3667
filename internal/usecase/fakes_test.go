package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// In-memory fakes implementing the repository contracts. The project
// fake guards its counters with a mutex the way the document store
// guards per-document updates, so the atomic-increment contract holds
// under concurrent use.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("%w: username or email taken", entity.ErrConflict)
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: user", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: user", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: user", entity.ErrNotFound)
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateUserFields(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user", entity.ErrNotFound)
	}
	for key, value := range updates {
		switch key {
		case "bio":
			u.Bio = value.(string)
		case "avatar_url":
			u.AvatarURL = value.(string)
		case "location":
			u.Location = value.(string)
		case "age":
			u.Age = value.(int)
		case "designation":
			u.Designation = value.(string)
		case "first_name":
			u.FirstName = value.(string)
		case "last_name":
			u.LastName = value.(string)
		case "state":
			u.State = value.(string)
		case "city":
			u.City = value.(string)
		default:
			return nil, fmt.Errorf("unexpected field %q reached the repository", key)
		}
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) IncrementProjectsCreated(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u.ProjectsCreated++
			return nil
		}
	}
	return fmt.Errorf("%w: user", entity.ErrNotFound)
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: project %s", entity.ErrNotFound, id)
}

func (r *fakeProjectRepo) list(filter func(*entity.Project) bool) []*entity.Project {
	out := []*entity.Project{}
	for _, p := range r.projects {
		if filter(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeProjectRepo) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(*entity.Project) bool { return true }), nil
}

func (r *fakeProjectRepo) ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(p *entity.Project) bool { return p.Owner == owner }), nil
}

func (r *fakeProjectRepo) IncrementVolunteers(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return 0, fmt.Errorf("%w: project %s", entity.ErrNotFound, id)
	}
	p.Volunteers++
	return p.Volunteers, nil
}

// fakeHasher avoids bcrypt cost in tests while keeping the verify
// semantics.
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(userID, username string) (string, error) {
	return "access-" + userID, nil
}

func (fakeJWTService) GenerateRefreshToken(userID, username string) (string, error) {
	return "refresh-" + userID, nil
}

func (fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

func (fakeJWTService) ParseRefreshToken(token string) (*entity.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type emailValidator struct{}

func (emailValidator) ValidateEmail(email string) error {
	// Loose check, enough to route login identifiers in tests.
	for _, r := range email {
		if r == '@' {
			return nil
		}
	}
	return fmt.Errorf("not an email")
}

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// memImageStore records saved images in order.
type memImageStore struct {
	mu    sync.Mutex
	saved []string
}

func (s *memImageStore) SaveImage(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := fmt.Sprintf("uploads/%d-%s", len(s.saved), originalName)
	s.saved = append(s.saved, path)
	return path, nil
}
