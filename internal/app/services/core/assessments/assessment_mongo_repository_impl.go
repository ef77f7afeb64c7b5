package assessments

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assessmentCounterID = "assessments"

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName, assessmentCollection, counterCollection string) contracts.AssessmentRepository {
	database := db.Database(dbName)
	return &AssessmentMongoRepository{
		Collection: database.Collection(assessmentCollection),
		Counters:   database.Collection(counterCollection),
	}
}

func newestFirst() bson.D {
	return bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}
}

func (repo *AssessmentMongoRepository) FindAll(ctx context.Context) ([]models.Assessment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst()))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	assessments := []models.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, nil
}

func (repo *AssessmentMongoRepository) FindPage(ctx context.Context, offset, limit int) ([]models.Assessment, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(newestFirst()).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	assessments := []models.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, int(total), nil
}

func (repo *AssessmentMongoRepository) FindByID(ctx context.Context, assessmentID int64) (*models.Assessment, error) {
	var assessment models.Assessment
	err := repo.Collection.FindOne(ctx, bson.M{"_id": assessmentID}).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (repo *AssessmentMongoRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	assessmentID, err := repo.nextSequence(ctx)
	if err != nil {
		return err
	}
	assessment.ID = assessmentID

	if _, err := repo.Collection.InsertOne(ctx, assessment); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AssessmentMongoRepository) Update(ctx context.Context, assessment *models.Assessment) error {
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": assessment.ID}, assessment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAssessmentNotFound(nil, assessment.ID)
	}
	return nil
}

func (repo *AssessmentMongoRepository) Delete(ctx context.Context, assessmentID int64) error {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": assessmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}
	return nil
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// nextSequence allocates ids from a counters document so they stay numeric
// and increasing like the redis store.
func (repo *AssessmentMongoRepository) nextSequence(ctx context.Context) (int64, error) {
	var next counter
	err := repo.Counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": assessmentCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&next)
	if err != nil {
		return 0, exceptions.ErrMongoDBNextSequence(err)
	}
	return next.Seq, nil
}
