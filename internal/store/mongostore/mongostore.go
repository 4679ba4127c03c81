// Package mongostore is the persistent backend, backed by MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const defaultDatabase = "inventory"

type Options struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

type Backend struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Backend = (*Backend)(nil)

// Connect dials MongoDB and probes it with a ping against the primary. The
// returned error wraps store.ErrBackendUnavailable when the probe fails.
func Connect(ctx context.Context, opts Options) (*Backend, error) {
	dbName, err := databaseName(opts)
	if err != nil {
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.ConnectTimeout).
		SetServerSelectionTimeout(opts.ConnectTimeout).
		SetSocketTimeout(opts.SocketTimeout).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrBackendUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", store.ErrBackendUnavailable, err)
	}

	return &Backend{client: client, db: client.Database(dbName)}, nil
}

func databaseName(opts Options) (string, error) {
	cs, err := connstring.ParseAndValidate(opts.URI)
	if err != nil {
		return "", fmt.Errorf("invalid mongo uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	if opts.Database != "" {
		return opts.Database, nil
	}
	return defaultDatabase, nil
}

func (b *Backend) Collection(name string) store.Collection {
	return &collection{coll: b.db.Collection(name)}
}

func (b *Backend) Mode() string {
	return store.ModePersistent
}

func (b *Backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

// Ping reports whether the server is still reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx, readpref.Primary())
}

type collection struct {
	coll *mongo.Collection
}

var _ store.Collection = (*collection)(nil)

func (c *collection) Find(ctx context.Context, filter store.Filter, opts store.FindOptions) ([]store.Document, error) {
	q, ok := translate(filter)
	if !ok {
		return []store.Document{}, nil
	}

	findOpts := options.Find()
	if opts.SortDesc != "" {
		findOpts.SetSort(bson.D{{Key: opts.SortDesc, Value: -1}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cur, err := c.coll.Find(ctx, q, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []store.Document{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, exposeID(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collection) FindOne(ctx context.Context, filter store.Filter) (store.Document, error) {
	q, ok := translate(filter)
	if !ok {
		return nil, store.ErrNotFound
	}

	var doc bson.M
	if err := c.coll.FindOne(ctx, q).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return exposeID(doc), nil
}

func (c *collection) InsertOne(ctx context.Context, doc store.Document) (string, error) {
	oid := primitive.NewObjectID()
	payload := bson.M{}
	for k, v := range doc {
		payload[k] = v
	}
	payload[store.IDField] = oid

	if _, err := c.coll.InsertOne(ctx, payload); err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (c *collection) UpdateByID(ctx context.Context, id string, set store.Document) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	fields := bson.M{}
	for k, v := range set {
		if k != store.IDField {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		n, err := c.coll.CountDocuments(ctx, bson.M{store.IDField: oid})
		return n, err
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{store.IDField: oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := c.coll.DeleteOne(ctx, bson.M{store.IDField: oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *collection) Distinct(ctx context.Context, field string) ([]string, error) {
	values, err := c.coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		out = append(out, stringify(v))
	}
	return out, nil
}

func (c *collection) Count(ctx context.Context) (int64, error) {
	return c.coll.CountDocuments(ctx, bson.M{})
}

func (c *collection) CountByField(ctx context.Context, field string) ([]store.FieldCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	// Missing and null group together under "".
	merged := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := ""
		if row.ID != nil {
			key = stringify(row.ID)
		}
		merged[key] += row.Count
	}
	out := make([]store.FieldCount, 0, len(merged))
	for k, n := range merged {
		out = append(out, store.FieldCount{Value: k, Count: n})
	}
	return out, nil
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

// translate rewrites a string _id into an ObjectID. ok is false when the id
// cannot be an ObjectID, in which case nothing can match.
func translate(filter store.Filter) (bson.M, bool) {
	q := bson.M{}
	for k, v := range filter {
		if k == store.IDField {
			if s, isString := v.(string); isString {
				oid, err := primitive.ObjectIDFromHex(s)
				if err != nil {
					return nil, false
				}
				q[k] = oid
				continue
			}
		}
		q[k] = v
	}
	return q, true
}

func exposeID(doc bson.M) store.Document {
	if oid, ok := doc[store.IDField].(primitive.ObjectID); ok {
		doc[store.IDField] = oid.Hex()
	}
	return doc
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
