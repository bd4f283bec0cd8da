package repository

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoClient connects to MongoDB and verifies the connection with a ping.
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// messageDocument is the BSON shape of a stored contact message.
type messageDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Subject   string        `bson:"subject"`
	Message   string        `bson:"message"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *messageDocument) toModel() *model.ContactMessage {
	return &model.ContactMessage{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

// MongoMessageRepository is the MongoDB implementation of MessageRepository.
type MongoMessageRepository struct {
	coll *mongo.Collection
}

// NewMongoMessageRepository creates a MongoMessageRepository on the given collection.
func NewMongoMessageRepository(coll *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{coll: coll}
}

var _ MessageRepository = (*MongoMessageRepository)(nil)

// Save inserts a new document. The ObjectID doubles as the insertion-order key.
// BSON dates carry millisecond precision, so CreatedAt is truncated to match
// what List will return.
func (r *MongoMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if err := checkRequired(msg); err != nil {
		return err
	}
	doc := messageDocument{
		ID:        bson.NewObjectID(),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	msg.ID = doc.ID.Hex()
	msg.CreatedAt = doc.CreatedAt
	return nil
}

// List returns all documents sorted by _id ascending.
func (r *MongoMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []messageDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	messages := make([]*model.ContactMessage, 0, len(docs))
	for i := range docs {
		messages = append(messages, docs[i].toModel())
	}
	return messages, nil
}

// Ping checks that the MongoDB deployment is reachable.
func (r *MongoMessageRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
