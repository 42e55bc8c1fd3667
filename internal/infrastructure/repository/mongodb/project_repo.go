package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// ProjectRepository is the MongoDB implementation of the
// IProjectRepository interface.
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates and returns a new ProjectRepository instance.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{
		collection: db.Collection("projects"),
	}
}

// CreateProject inserts a new project record into the database.
func (r *ProjectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	if project.Images == nil {
		project.Images = []string{} // keep the stored field an array, not null
	}
	_, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a single project by its unique id.
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: project %s", entity.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve project: %w", err)
	}
	return &project, nil
}

// ListProjects returns every project, newest first.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return r.find(ctx, bson.M{})
}

// ListProjectsByOwner returns the owner's projects, newest first.
func (r *ProjectRepository) ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error) {
	return r.find(ctx, bson.M{"owner": owner})
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M) ([]*entity.Project, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	if projects == nil {
		projects = []*entity.Project{}
	}
	return projects, nil
}

// IncrementVolunteers bumps the volunteer counter with a single
// store-level $inc, so concurrent joins cannot lose updates, and
// returns the new count.
func (r *ProjectRepository) IncrementVolunteers(ctx context.Context, id string) (int, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"volunteers": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Project
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%w: project %s", entity.ErrNotFound, id)
		}
		return 0, fmt.Errorf("failed to increment volunteers: %w", err)
	}
	return updated.Volunteers, nil
}
