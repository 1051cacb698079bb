package serviceImp

import (
	"strings"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/order/service"
)

const (
	reasonNotDelivered = "order has not been delivered yet"
	reasonAlreadyGiven = "feedback has already been submitted for this order"
)

func validRating(field string, v *int, required bool) error {
	if v == nil {
		if required {
			return apperr.Validation(field, "is required")
		}
		return nil
	}
	if *v < 1 || *v > 5 {
		return apperr.Validation(field, "must be between 1 and 5")
	}
	return nil
}

// eligibility returns the reason feedback cannot be given, or "".
func (s *orderSvc) eligibility(o *entities.SalesOrder) (string, error) {
	if o.DeliveryStatus != entities.DeliveryDelivered {
		return reasonNotDelivered, nil
	}
	if o.Feedback != nil {
		return reasonAlreadyGiven, nil
	}
	if _, err := s.r.FindFeedback(o.ID); err == nil {
		return reasonAlreadyGiven, nil
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return "", err
	}
	return "", nil
}

func (s *orderSvc) FeedbackEligibility(orderID uint) (*service.FeedbackEligibility, error) {
	o, err := s.r.FindByID(orderID)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	reason, err := s.eligibility(o)
	if err != nil {
		return nil, err
	}
	return &service.FeedbackEligibility{CanSubmit: reason == "", Reason: reason}, nil
}

func (s *orderSvc) SubmitFeedback(orderID uint, in service.FeedbackInput) (*entities.OrderFeedback, error) {
	if err := validRating("rating", in.Rating, true); err != nil {
		return nil, err
	}
	if err := validRating("delivery_quality", in.DeliveryQuality, false); err != nil {
		return nil, err
	}
	if err := validRating("product_freshness", in.ProductFreshness, false); err != nil {
		return nil, err
	}
	o, err := s.r.FindByID(orderID)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	reason, err := s.eligibility(o)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, apperr.Conflict("%s", reason)
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" && o.Customer != nil {
		name = o.Customer.Name
	}
	fb := &entities.OrderFeedback{
		OrderID:          orderID,
		CustomerName:     name,
		Rating:           *in.Rating,
		DeliveryQuality:  in.DeliveryQuality,
		ProductFreshness: in.ProductFreshness,
		Comments:         strings.TrimSpace(in.Comments),
	}
	if err := s.r.CreateFeedback(fb); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("%s", reasonAlreadyGiven)
		}
		return nil, err
	}
	return fb, nil
}

func (s *orderSvc) ListFeedback() ([]entities.OrderFeedback, error) {
	return s.r.ListFeedback()
}
