package serviceImp

import (
	"strings"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/crop/repository"
	"farmhub/pkg/crop/service"
)

func (s *cropSvc) LogActivity(in service.ActivityInput) (*entities.DailyActivity, error) {
	if in.CropID == 0 {
		return nil, apperr.Validation("crop_id", "is required")
	}
	if !entities.ValidDate(in.ActivityDate) {
		return nil, apperr.Validation("activity_date", "must be a YYYY-MM-DD date")
	}
	if !entities.ValidActivityType(in.ActivityType) {
		return nil, apperr.Validation("activity_type", "must be watering, fertilizer, weeding, pest_control, inspection or other")
	}
	if _, err := s.r.FindByID(in.CropID); err != nil {
		return nil, apperr.OrNotFound(err, "crop")
	}
	if in.Quantity != nil && strings.TrimSpace(*in.Quantity) == "" {
		in.Quantity = nil
	}
	a := &entities.DailyActivity{
		CropID:       in.CropID,
		ActivityDate: in.ActivityDate,
		ActivityType: in.ActivityType,
		Description:  strings.TrimSpace(in.Description),
		Quantity:     in.Quantity,
		Notes:        in.Notes,
	}
	if err := s.r.AddActivity(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *cropSvc) ListActivities(q service.ActivityQuery) ([]entities.DailyActivity, error) {
	if err := optionalDate("from", &q.From); err != nil {
		return nil, err
	}
	if err := optionalDate("to", &q.To); err != nil {
		return nil, err
	}
	if q.Type != "" && !entities.ValidActivityType(q.Type) {
		return nil, apperr.Validation("type", "unknown activity type")
	}
	return s.r.ListActivities(repo.ActivityFilter{CropID: q.CropID, From: q.From, To: q.To, Type: q.Type})
}

func (s *cropSvc) DeleteActivity(id uint) error {
	if _, err := s.r.FindActivity(id); err != nil {
		return apperr.OrNotFound(err, "activity")
	}
	return s.r.DeleteActivity(id)
}
