package mongo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj"
)

// projectDoc is the stored shape of a project.
type projectDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Summary  string             `bson:"summary"`
	Priority int32              `bson:"priority"`
	Status   string             `bson:"status"`
}

// docToProject hydrates a stored document into the wire shape. Documents
// written before a field existed get its default here, so every read path
// reports identical values.
func docToProject(doc projectDoc) *proj.Project {
	p := &proj.Project{
		Id:       doc.ID.Hex(),
		Title:    doc.Title,
		Summary:  doc.Summary,
		Priority: doc.Priority,
		Status:   doc.Status,
	}

	if p.Priority == 0 {
		p.Priority = 1
	}

	if p.Status == "" {
		p.Status = proj.StatusPending
	}

	return p
}

// compileFilters translates the generic key/value filter map of a list
// request into a Mongo query. All keys combine with AND semantics; an empty
// map matches every document. A filter value never fails the query: an
// unparseable id drops the key, and an unparseable priority compiles to a
// term no document satisfies.
func compileFilters(filters map[string]string) bson.M {
	query := bson.M{}

	for key, value := range filters {
		switch key {
		case "priority":
			n, err := strconv.Atoi(value)
			if err != nil {
				// NaN equals no stored priority, so the stream narrows
				// to nothing instead of widening to everything.
				query["priority"] = math.NaN()
				continue
			}
			query["priority"] = n
		case "id":
			if oid, err := primitive.ObjectIDFromHex(value); err == nil {
				query["_id"] = oid
			}
		case "title":
			query["title"] = primitive.Regex{Pattern: value, Options: "i"}
		default:
			query[key] = value
		}
	}

	return query
}

func (db *Database) FindProjectByID(ctx context.Context, id string) (*proj.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("mongo: invalid project id %q: %w", id, err)
	}

	return db.findOne(ctx, bson.M{"_id": oid})
}

func (db *Database) FindProjectByTitle(ctx context.Context, title string) (*proj.Project, error) {
	return db.findOne(ctx, bson.M{"title": title})
}

func (db *Database) FindProjectByTitleExcluding(ctx context.Context, title, excludeID string) (*proj.Project, error) {
	oid, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return nil, fmt.Errorf("mongo: invalid project id %q: %w", excludeID, err)
	}

	return db.findOne(ctx, bson.M{"title": title, "_id": bson.M{"$ne": oid}})
}

func (db *Database) findOne(ctx context.Context, filter bson.M) (*proj.Project, error) {
	var doc projectDoc

	err := db.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, proj.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to find project: %w", err)
	}

	return docToProject(doc), nil
}

func (db *Database) FindProjectsByTitles(ctx context.Context, titles []string) ([]*proj.Project, error) {
	return db.findAll(ctx, bson.M{"title": bson.M{"$in": titles}})
}

func (db *Database) findAll(ctx context.Context, filter bson.M) ([]*proj.Project, error) {
	projects := make([]*proj.Project, 0)

	err := db.iterate(ctx, filter, func(project *proj.Project) error {
		projects = append(projects, project)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (db *Database) FindProjects(ctx context.Context, filters map[string]string, fn func(*proj.Project) error) error {
	return db.iterate(ctx, compileFilters(filters), fn)
}

func (db *Database) iterate(ctx context.Context, filter bson.M, fn func(*proj.Project) error) error {
	cursor, err := db.coll.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("mongo: failed to open cursor: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc projectDoc
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("mongo: failed to decode project: %w", err)
		}

		if err := fn(docToProject(doc)); err != nil {
			return err
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("mongo: cursor failed: %w", err)
	}

	return nil
}

func (db *Database) CreateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	res, err := db.coll.InsertOne(ctx, projectDoc{
		Title:    project.Title,
		Summary:  project.Summary,
		Priority: project.Priority,
		Status:   project.Status,
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, proj.ErrDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to insert project: %w", err)
	}

	// Read back so the response reflects exactly what was stored.
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("mongo: unexpected inserted id type %T", res.InsertedID)
	}

	return db.findOne(ctx, bson.M{"_id": oid})
}

func (db *Database) CreateProjects(ctx context.Context, projects []*proj.Project) ([]*proj.Project, error) {
	docs := make([]interface{}, len(projects))
	for i, project := range projects {
		docs[i] = projectDoc{
			Title:    project.Title,
			Summary:  project.Summary,
			Priority: project.Priority,
			Status:   project.Status,
		}
	}

	res, err := db.coll.InsertMany(ctx, docs)
	if mongo.IsDuplicateKeyError(err) {
		return nil, proj.ErrDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to insert projects: %w", err)
	}

	return db.findAll(ctx, bson.M{"_id": bson.M{"$in": res.InsertedIDs}})
}

func (db *Database) UpdateProject(ctx context.Context, project *proj.Project) (*proj.Project, error) {
	oid, err := primitive.ObjectIDFromHex(project.Id)
	if err != nil {
		return nil, fmt.Errorf("mongo: invalid project id %q: %w", project.Id, err)
	}

	update := bson.M{"$set": bson.M{
		"title":    project.Title,
		"summary":  project.Summary,
		"priority": project.Priority,
		"status":   project.Status,
	}}

	var doc projectDoc

	err = db.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, proj.ErrProjectNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, proj.ErrDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to update project: %w", err)
	}

	return docToProject(doc), nil
}

func (db *Database) DeleteProject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("mongo: invalid project id %q: %w", id, err)
	}

	res, err := db.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo: failed to delete project: %w", err)
	}

	if res.DeletedCount == 0 {
		return proj.ErrProjectNotFound
	}

	return nil
}
