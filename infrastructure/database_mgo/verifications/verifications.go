package verifications

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pagomovil-system/domain/entities"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/gen_ids"
	"pagomovil-system/utils/mongoindex"
)

type repoImpl struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func (r repoImpl) Create(ctx context.Context, attempt *entities.VerificationAttempt) (*entities.VerificationAttempt, error) {
	if attempt.Id == "" {
		attempt.Id = r.conf.Prefix + gen_ids.GetIdAttemptId()
	}

	_, err := r.collection.InsertOne(ctx, attempt)

	if err != nil {
		return nil, err
	}

	return attempt, nil
}

func (r repoImpl) FindByReference(ctx context.Context, reference string) (res []*entities.VerificationAttempt, err error) {
	cursor, err := r.collection.Find(ctx, bson.M{"reference": reference})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var attempt entities.VerificationAttempt

		err = cursor.Decode(&attempt)
		if err != nil {
			continue
		}

		res = append(res, &attempt)
	}

	return res, nil
}

// DeleteOlderThan drops attempts past the retention window.
func (r repoImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := r.collection.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}

	return deleted.DeletedCount, nil
}

func NewRepository(db *mongo.Client, conf *configs.Config) *repoImpl {
	collection := db.Database("pagomovil").Collection("verifications")

	ctx, _ := context.WithTimeout(context.TODO(), time.Second*10)
	_ = mongoindex.EnsureIndex(ctx, collection, []bson.E{
		{Key: "reference", Value: 1},
		{Key: "payment_date", Value: 1},
	}, false)

	return &repoImpl{
		conf:       conf,
		collection: collection,
	}
}
