package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// UploadLogRepository persists upload logs and computes quota usage with an
// aggregation that sums platform-list lengths, so usage is always derived
// from what was actually written.
type UploadLogRepository struct {
	coll *mongo.Collection
}

func NewUploadLogRepository(db *mongo.Database) *UploadLogRepository {
	return &UploadLogRepository{coll: db.Collection(collectionUploadLogs)}
}

type mongoUploadLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	MediaType string             `bson:"media_type"`
	Caption   string             `bson:"caption,omitempty"`
	Platforms []string           `bson:"platforms"`
	Status    string             `bson:"status"`
	Error     string             `bson:"error,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *UploadLogRepository) Insert(ctx context.Context, log *domain.UploadLog) (*domain.UploadLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUploadLog{
		UserID:    log.UserID,
		MediaType: string(log.MediaType),
		Caption:   log.Caption,
		Platforms: log.Platforms,
		Status:    string(log.Status),
		Error:     log.Error,
		CreatedAt: log.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert upload log: %w", err)
	}

	created := *log
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// CountPlatformUnits sums len(platforms) over the user's logs created in
// [from, to). A log targeting 3 platforms contributes 3 units.
func (r *UploadLogRepository) CountPlatformUnits(ctx context.Context, userID string, from, to time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id":    userID,
			"created_at": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"units": bson.M{"$sum": bson.M{"$size": "$platforms"}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count platform units: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Units int `bson:"units"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("count platform units: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Units, nil
}

// EnsureIndexes creates the compound index backing the per-user day-window
// quota query.
func (r *UploadLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
