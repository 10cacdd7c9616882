package service

import (
	"context"
	"fmt"
	"slices"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"
)

const dateLayout = "2006-01-02"

// UserData returns the account of the logged in user. The record is fetched once per session.
func (s *Service) UserData(ctx context.Context) (*domain.UserData, error) {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	if s.userData != nil {
		return s.userData, nil
	}

	record, err := s.callRecord(ctx, "getUserData", sessionID)
	if err != nil {
		return nil, err
	}

	data, err := client.ParseUserData(record)
	if err != nil {
		return nil, err
	}

	s.userData = data
	return data, nil
}

// UserStats returns the counters of the logged in user. The record is fetched once per session.
func (s *Service) UserStats(ctx context.Context) (*domain.UserStats, error) {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	if s.userStats != nil {
		return s.userStats, nil
	}

	record, err := s.callRecord(ctx, "getUserStats", sessionID)
	if err != nil {
		return nil, err
	}

	stats, err := client.ParseUserStats(record)
	if err != nil {
		return nil, err
	}

	s.userStats = stats
	return stats, nil
}

// ReloadUserData drops the fetched user data and stats.
func (s *Service) ReloadUserData() {
	s.resetUserData()
}

// UserAdvancedStats returns one advanced statistic of the logged in user. Arguments are
// checked before any remote call.
func (s *Service) UserAdvancedStats(ctx context.Context, stat domain.AdvancedStat, timeRange domain.TimeRange, period domain.Period) (map[string]interface{}, error) {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	if timeRange == "" {
		timeRange = domain.TimeRangeYear
	}
	if !slices.Contains(domain.TimeRanges, timeRange) {
		return nil, &domain.ArgumentError{Argument: "time range", Reason: fmt.Sprintf("%q is not one of day, week, month, quarter or year", timeRange)}
	}

	args := []interface{}{sessionID, string(stat)}

	switch {
	case period.IsZero():
		args = append(args, string(timeRange))
	case period.Name != "":
		if !period.Start.IsZero() || !period.End.IsZero() {
			return nil, &domain.ArgumentError{Argument: "period", Reason: "named period must not carry dates"}
		}
		if !slices.Contains(domain.NamedPeriods, period.Name) {
			return nil, &domain.ArgumentError{Argument: "period", Reason: fmt.Sprintf("unknown named period %q", period.Name)}
		}
		args = append(args, string(timeRange), period.Name)
	default:
		if period.Start.IsZero() || period.End.IsZero() {
			return nil, &domain.ArgumentError{Argument: "period", Reason: "date range needs both start and end"}
		}
		args = append(args, map[string]interface{}{
			"start_date": period.Start.Format(dateLayout),
			"end_date":   period.End.Format(dateLayout),
		})
	}

	response, err := s.caller.Call(ctx, "getUserAdvancedStats", args...)
	if err != nil {
		return nil, err
	}

	record, ok := client.AsRecord(response)
	if !ok {
		return map[string]interface{}{"value": response}, nil
	}
	return record, nil
}

// UserGalleries lists the galleries of the logged in user.
func (s *Service) UserGalleries(ctx context.Context) ([]*domain.Gallery, error) {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	response, err := s.caller.Call(ctx, "getUserGalleries", sessionID)
	if err != nil {
		return nil, err
	}
	return parseGalleries(response)
}

// CreateGallery creates a gallery owned by the logged in user.
func (s *Service) CreateGallery(ctx context.Context, name string) (*domain.Gallery, error) {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &domain.ArgumentError{Argument: "name", Reason: "is empty"}
	}

	record, err := s.callRecord(ctx, "createUserGallery", sessionID, name)
	if err != nil {
		return nil, err
	}

	gallery, err := client.ParseGallery(record)
	if err != nil {
		return nil, err
	}
	gallery.Name = name
	return gallery, nil
}

// DeleteGallery deletes a gallery of the logged in user.
func (s *Service) DeleteGallery(ctx context.Context, gallery *domain.Gallery) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return err
	}
	if gallery == nil {
		return &domain.ArgumentError{Argument: "gallery", Reason: "is nil"}
	}

	_, err = s.caller.Call(ctx, "deleteUserGallery", sessionID, gallery.ID)
	return err
}

// AddToUserGallery adds medium to gallery, or to the lightbox when gallery is nil.
func (s *Service) AddToUserGallery(ctx context.Context, medium *domain.Medium, gallery *domain.Gallery) error {
	return s.changeUserGallery(ctx, "addToUserGallery", medium, gallery)
}

// RemoveFromUserGallery removes medium from gallery, or from the lightbox when gallery is nil.
func (s *Service) RemoveFromUserGallery(ctx context.Context, medium *domain.Medium, gallery *domain.Gallery) error {
	return s.changeUserGallery(ctx, "removeFromUserGallery", medium, gallery)
}

func (s *Service) changeUserGallery(ctx context.Context, method string, medium *domain.Medium, gallery *domain.Gallery) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return err
	}
	if medium == nil {
		return &domain.ArgumentError{Argument: "medium", Reason: "is nil"}
	}

	args := []interface{}{sessionID, medium.ID}
	if gallery != nil {
		args = append(args, gallery.ID)
	}

	_, err = s.caller.Call(ctx, method, args...)
	return err
}

func (s *Service) callRecord(ctx context.Context, method string, args ...interface{}) (map[string]interface{}, error) {
	response, err := s.caller.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	record, ok := client.AsRecord(response)
	if !ok {
		return nil, fmt.Errorf("unexpected %s response of type %T", method, response)
	}
	return record, nil
}
