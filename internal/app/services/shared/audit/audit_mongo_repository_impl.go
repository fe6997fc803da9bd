package audit

import (
	"context"
	"time"

	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/app/models"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName string) contracts.AuditRepository {
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionToolInvocations),
	}
}

func (repo *AuditMongoRepository) InsertInvocation(ctx context.Context, invocation *models.ToolInvocation) error {
	if invocation.CreatedAt.IsZero() {
		invocation.CreatedAt = time.Now().UTC()
	}
	_, err := repo.Collection.InsertOne(ctx, invocation)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindRecentByTool supports operational queries over the invocation trail.
func (repo *AuditMongoRepository) FindRecentByTool(ctx context.Context, tool string, limit int64) ([]models.ToolInvocation, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.Collection.Find(ctx, bson.M{"tool": tool}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var invocations []models.ToolInvocation
	if err := cursor.All(ctx, &invocations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return invocations, nil
}
