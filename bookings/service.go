package bookings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homeservice-backend/models"
)

// Notifier delivers a confirmation for a freshly created booking.
type Notifier interface {
	BookingConfirmed(b *models.Booking)
}

// Service orchestrates booking creation, retrieval, update and deletion.
// The database handle and the requester identity are passed in explicitly
// so the logic runs without any ambient connection or session state.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	notifier Notifier
}

func NewService(db *gorm.DB, log *zap.Logger, notifier Notifier) *Service {
	return &Service{db: db, log: log, notifier: notifier}
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	CustomerName string
	ServiceID    *uuid.UUID
}

// CreateInput carries a new booking request. Zero values mark absent
// fields so required-field checks happen here, not in the transport layer.
type CreateInput struct {
	ServiceID     uuid.UUID
	CustomerName  string
	Date          time.Time
	ContactMethod string
	Email         string
	Phone         string
	TimeSlot      string
}

// UpdateInput mirrors CreateInput, except the service reference is
// optional: uuid.Nil keeps the existing one.
type UpdateInput struct {
	ServiceID     uuid.UUID
	CustomerName  string
	Date          time.Time
	ContactMethod string
	Email         string
	Phone         string
	TimeSlot      string
}

// List returns bookings newest-first, joined with their service. When a
// requester is present results are restricted to their own bookings;
// anonymous callers see everything (public mode). Orphaned service
// references are logged and returned with a nil service, not suppressed.
func (s *Service) List(filter ListFilter, requester *uuid.UUID) ([]models.Booking, error) {
	q := s.db.Preload("Service").Order("created_at DESC")

	if requester != nil {
		q = q.Where("user_id = ?", *requester)
	}
	if filter.CustomerName != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(filter.CustomerName)+"%")
	}
	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}

	out := []models.Booking{}
	if err := q.Find(&out).Error; err != nil {
		s.log.Error("failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	for i := range out {
		s.warnIfOrphan(&out[i])
	}
	return out, nil
}

// Get returns a single booking joined with its service, after the
// ownership check.
func (s *Service) Get(id uuid.UUID, requester *uuid.UUID) (*models.Booking, error) {
	booking, err := s.find(id, "Get")
	if err != nil {
		return nil, err
	}
	s.warnIfOrphan(booking)

	if !Authorized(booking, requester) {
		return nil, ErrUnauthorized
	}
	return booking, nil
}

// Create validates and persists a new booking. Only the contact field
// matching the contact method is stored, and the owner is the requester
// when one is present (nil makes an anonymous booking).
func (s *Service) Create(in CreateInput, requester *uuid.UUID) (*models.Booking, error) {
	if in.ServiceID == uuid.Nil || in.CustomerName == "" || in.Date.IsZero() ||
		in.ContactMethod == "" || in.TimeSlot == "" {
		return nil, fmt.Errorf("%w: service, customerName, date, contactMethod, timeSlot are required", ErrMissingField)
	}

	var svc models.Service
	if err := s.db.First(&svc, "id = ?", in.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReference
		}
		s.log.Error("failed to resolve service", zap.String("serviceId", in.ServiceID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	contact, err := NewContact(in.ContactMethod, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ServiceID:    in.ServiceID,
		UserID:       requester,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Date:         in.Date,
		TimeSlot:     in.TimeSlot,
	}
	contact.Apply(&booking)

	if err := s.db.Create(&booking).Error; err != nil {
		s.log.Error("failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	booking.Service = &svc
	s.log.Info("created booking",
		zap.String("bookingId", booking.ID.String()),
		zap.String("service", svc.Name))

	if s.notifier != nil {
		go s.notifier.BookingConfirmed(&booking)
	}
	return &booking, nil
}

// Update overwrites the mutable fields of a booking. The service
// reference only changes when one is supplied; switching the contact
// method clears the previously stored channel. Ownership is checked
// before anything is written and is itself never reassigned.
func (s *Service) Update(id uuid.UUID, in UpdateInput, requester *uuid.UUID) (*models.Booking, error) {
	if in.CustomerName == "" || in.Date.IsZero() || in.ContactMethod == "" || in.TimeSlot == "" {
		return nil, fmt.Errorf("%w: customerName, date, contactMethod, timeSlot are required", ErrMissingField)
	}

	contact, err := NewContact(in.ContactMethod, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	booking, err := s.find(id, "Update")
	if err != nil {
		return nil, err
	}
	if !Authorized(booking, requester) {
		return nil, ErrUnauthorized
	}

	if in.ServiceID != uuid.Nil {
		booking.ServiceID = in.ServiceID
		booking.Service = nil
	}
	booking.CustomerName = strings.TrimSpace(in.CustomerName)
	booking.Date = in.Date
	booking.TimeSlot = in.TimeSlot
	contact.Apply(booking)

	if err := s.db.Omit(clause.Associations).Save(booking).Error; err != nil {
		s.log.Error("failed to update booking", zap.String("bookingId", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	// Re-join the (possibly changed) service reference.
	updated, err := s.find(id, "Update")
	if err != nil {
		return nil, err
	}
	s.warnIfOrphan(updated)
	return updated, nil
}

// Delete removes a booking after the ownership check and returns the
// deleted identifier.
func (s *Service) Delete(id uuid.UUID, requester *uuid.UUID) (uuid.UUID, error) {
	booking, err := s.find(id, "Delete")
	if err != nil {
		return uuid.Nil, err
	}
	if !Authorized(booking, requester) {
		return uuid.Nil, ErrUnauthorized
	}

	if err := s.db.Delete(booking).Error; err != nil {
		s.log.Error("failed to delete booking", zap.String("bookingId", id.String()), zap.Error(err))
		return uuid.Nil, fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.log.Info("deleted booking", zap.String("bookingId", id.String()))
	return id, nil
}

func (s *Service) find(id uuid.UUID, op string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Service").First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to fetch booking", zap.String("op", op), zap.String("bookingId", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
	return &booking, nil
}

func (s *Service) warnIfOrphan(b *models.Booking) {
	if b.Service == nil {
		s.log.Warn("orphan booking: service reference does not resolve",
			zap.String("bookingId", b.ID.String()),
			zap.String("serviceId", b.ServiceID.String()))
	}
}
