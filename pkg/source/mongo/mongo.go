// Package mongo reads categories from a MongoDB collection.
//
// Each document is one top-level category with its nested children
// embedded, using the same field names as the JSON wire format (id, name,
// Title, children, ...). Documents are returned sorted by id; the builder
// imposes its own order afterwards, so the sort only keeps results
// reproducible.
//
//	q, disconnect, err := mongo.Connect(ctx, "mongodb://localhost:27017", "cms", "categories")
//	if err != nil {
//	    return err
//	}
//	defer disconnect(context.Background())
//	nodes := category.FromQuery(ctx, q)
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
)

// Option configures a collection query.
type Option func(*querier)

// WithFilter restricts the query to matching documents, for example
// bson.D{{Key: "published", Value: true}}.
func WithFilter(filter bson.D) Option {
	return func(q *querier) {
		if filter != nil {
			q.filter = filter
		}
	}
}

type querier struct {
	coll   *driver.Collection
	filter bson.D
}

// New returns a query that reads all matching documents of coll.
func New(coll *driver.Collection, opts ...Option) category.QueryFunc {
	q := &querier{coll: coll, filter: bson.D{}}
	for _, opt := range opts {
		opt(q)
	}
	return q.query
}

func (q *querier) query(ctx context.Context) (*category.Response, error) {
	cursor, err := q.coll.Find(ctx, q.filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeQueryFailed, err, "find in %s", q.coll.Name())
	}

	cats := []category.Category{}
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, errs.Wrap(errs.ErrCodeQueryFailed, err, "decode %s", q.coll.Name())
	}
	return &category.Response{Data: cats}, nil
}

// Connect opens a client for uri and returns a query over
// database.collection along with a function that disconnects the client.
// The driver connects lazily, so an unreachable server surfaces on the
// first query.
func Connect(ctx context.Context, uri, database, collection string, opts ...Option) (category.QueryFunc, func(context.Context) error, error) {
	if uri == "" {
		return nil, nil, errs.New(errs.ErrCodeInvalidInput, "mongo URI cannot be empty")
	}
	if err := errs.ValidateName("database", database); err != nil {
		return nil, nil, err
	}
	if err := errs.ValidateName("collection", collection); err != nil {
		return nil, nil, err
	}

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errs.Wrap(errs.ErrCodeNetwork, err, "connect to mongo")
	}
	coll := client.Database(database).Collection(collection)
	return New(coll, opts...), client.Disconnect, nil
}
