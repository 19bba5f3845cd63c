package mongo

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TranscriptRepo interface {
	SaveTranscript(ctx context.Context, transcript *TranscriptModel) error
	GetLatestTranscript(ctx context.Context, interviewID string, userID string) (*TranscriptModel, error)
}

type transcriptRepoImpl struct {
	col *mongo.Collection
}

func NewTranscriptRepo(db *mongo.Database) TranscriptRepo {
	return &transcriptRepoImpl{
		col: db.Collection("interview_transcripts"),
	}
}

func (s *transcriptRepoImpl) SaveTranscript(ctx context.Context, transcript *TranscriptModel) error {
	if _, err := s.col.InsertOne(ctx, transcript); err != nil {
		return pkgerrors.Wrap(err, "insert transcript")
	}
	return nil
}

// GetLatestTranscript 不存在时返回 nil, nil
func (s *transcriptRepoImpl) GetLatestTranscript(ctx context.Context, interviewID string, userID string) (*TranscriptModel, error) {
	filter := bson.M{"interview_id": interviewID, "user_id": userID}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var transcript TranscriptModel
	err := s.col.FindOne(ctx, filter, opts).Decode(&transcript)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find transcript")
	}
	return &transcript, nil
}
