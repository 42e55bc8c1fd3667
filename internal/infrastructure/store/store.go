package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/enviconnect/enviconnect/internal/domain/contract"
	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

const projectListKey = "projects:list:all"

// ProjectCacheStore caches the all-projects listing in Redis.
type ProjectCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IProjectCache = (*ProjectCacheStore)(nil)

func NewProjectCacheStore(rdb *redis.Client) *ProjectCacheStore {
	return &ProjectCacheStore{
		rdb:     rdb,
		listTTL: 5 * time.Minute,
	}
}

func (c *ProjectCacheStore) GetProjectList(ctx context.Context) ([]*entity.Project, bool, error) {
	b, err := c.rdb.Get(ctx, projectListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var projects []*entity.Project
	if err := json.Unmarshal(b, &projects); err != nil {
		return nil, false, nil
	}
	return projects, true, nil
}

func (c *ProjectCacheStore) SetProjectList(ctx context.Context, projects []*entity.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, projectListKey, data, c.listTTL).Err()
}

func (c *ProjectCacheStore) InvalidateProjectList(ctx context.Context) error {
	return c.rdb.Del(ctx, projectListKey).Err()
}
