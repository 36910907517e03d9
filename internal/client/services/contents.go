package services

import (
	"context"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// ContentService serves the educational tutorial catalog.
type ContentService struct {
	client api.Client
	log    logging.Logger
}

func NewContentService(client api.Client, log logging.Logger) *ContentService {
	return &ContentService{client: client, log: log}
}

// List returns all educational contents, or an empty slice on any failure.
func (s *ContentService) List(ctx context.Context) []models.Content {
	contents, err := s.client.Contents(ctx)
	if err != nil {
		s.log.Warn(ctx, "listing contents failed", "err", err)
		return []models.Content{}
	}
	if contents == nil {
		contents = []models.Content{}
	}
	return contents
}
