package service

import (
	"context"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"
)

const detailsThumbnailSize = int(domain.ThumbnailLarge)

// MediumDetails fetches the full record of a medium in the service language.
func (s *Service) MediumDetails(ctx context.Context, mediumID int) (*domain.MediumDetails, error) {
	record, err := s.callRecord(ctx, "getMediaData", mediumID, detailsThumbnailSize, s.language.ID())
	if err != nil {
		return nil, err
	}
	return client.ParseMediumDetails(record)
}

// MediumComp fetches the comp image of a medium.
func (s *Service) MediumComp(ctx context.Context, mediumID int) (*domain.CompImage, error) {
	record, err := s.callRecord(ctx, "getMediaComp", mediumID)
	if err != nil {
		return nil, err
	}
	return client.ParseCompImage(record)
}
