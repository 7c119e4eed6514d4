package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type BookingStore interface {
	FindAccount(ctx context.Context, id uint) (*models.User, error)
	FindAccounts(ctx context.Context, ids []uint) ([]models.User, error)
	FindTour(ctx context.Context, id uint) (*models.Tour, error)
	FindLanguages(ctx context.Context, ids []uint) ([]models.Language, error)

	CreateGuideBooking(ctx context.Context, booking *models.GuideBooking) error
	CreateTourBooking(ctx context.Context, booking *models.TourBooking) error
	FindGuideBooking(ctx context.Context, id uint) (*models.GuideBooking, error)
	FindTourBooking(ctx context.Context, id uint) (*models.TourBooking, error)
	ConfirmGuideBooking(ctx context.Context, id, guideID uint) (int64, error)
	ConfirmTourBooking(ctx context.Context, id, guideID uint) (int64, error)

	ListGuideBookingsByGuide(ctx context.Context, guideID uint) ([]models.GuideBooking, error)
	ListGuideBookingsByTourist(ctx context.Context, touristID uint) ([]models.GuideBooking, error)
	ListTourBookingsByGuide(ctx context.Context, guideID uint) ([]models.TourBooking, error)
	ListTourBookingsByTourist(ctx context.Context, touristID uint) ([]models.TourBooking, error)
}

type GuideBookingInput struct {
	GuideID      uint        `json:"guide_id" validate:"required"`
	TourDate     models.Date `json:"tour_date" validate:"required"`
	ReserveCount int         `json:"reserve_count" validate:"gt=0"`
	LanguageID   uint        `json:"language_id" validate:"required"`
	Message      string      `json:"message"`
}

type TourBookingInput struct {
	TourID       uint   `json:"tour_id" validate:"required"`
	ReserveCount int    `json:"reserve_count" validate:"gt=0"`
	LanguageID   uint   `json:"language_id" validate:"required"`
	Message      string `json:"message"`
}

// BookingService creates, confirms and lists booking requests. Role and
// resume gates are applied before a call reaches it; it enforces ownership.
type BookingService struct {
	store       BookingStore
	publicFetch bool
}

// NewBookingService builds the engine. publicFetch lets anyone fetch a
// booking by id instead of only its participants.
func NewBookingService(store BookingStore, publicFetch bool) *BookingService {
	return &BookingService{store: store, publicFetch: publicFetch}
}

func (s *BookingService) RequestGuideBooking(ctx context.Context, tourist *models.User, in GuideBookingInput) (*GuideBookingView, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	guide, err := s.store.FindAccount(ctx, in.GuideID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, err
	}
	if !guide.IsGuide() {
		return nil, utils.NotFound("Guide not found.")
	}
	if err := s.checkLanguage(ctx, in.LanguageID); err != nil {
		return nil, err
	}

	booking := &models.GuideBooking{
		TouristID:    tourist.ID,
		GuideID:      guide.ID,
		TourDate:     in.TourDate,
		ReserveCount: in.ReserveCount,
		LanguageID:   in.LanguageID,
		Message:      in.Message,
	}
	if err := s.store.CreateGuideBooking(ctx, booking); err != nil {
		return nil, err
	}
	view := NewGuideBookingView(booking, &BookingEnrichment{Guide: partyOf(guide)})
	return &view, nil
}

func (s *BookingService) RequestTourBooking(ctx context.Context, tourist *models.User, in TourBookingInput) (*TourBookingView, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	tour, err := s.store.FindTour(ctx, in.TourID)
	if err != nil {
		return nil, err
	}
	if err := s.checkLanguage(ctx, in.LanguageID); err != nil {
		return nil, err
	}

	booking := &models.TourBooking{
		TouristID:    tourist.ID,
		TourID:       tour.ID,
		ReserveCount: in.ReserveCount,
		LanguageID:   in.LanguageID,
		Message:      in.Message,
	}
	if err := s.store.CreateTourBooking(ctx, booking); err != nil {
		return nil, err
	}
	booking.Tour = tour
	view := NewTourBookingView(booking, nil)
	return &view, nil
}

// ConfirmGuideBooking applies the one-way requested -> confirmed transition.
// The update itself is conditional on ownership and state; the follow-up read
// only classifies why nothing changed.
func (s *BookingService) ConfirmGuideBooking(ctx context.Context, guide *models.User, id uint) (*GuideBookingView, error) {
	changed, err := s.store.ConfirmGuideBooking(ctx, id, guide.ID)
	if err != nil {
		return nil, err
	}
	booking, err := s.store.FindGuideBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID() != guide.ID {
		return nil, utils.Forbidden("You can only confirm bookings made with you.")
	}
	if err := checkConfirmed(changed, booking.State()); err != nil {
		return nil, err
	}
	view := NewGuideBookingView(booking, nil)
	return &view, nil
}

func (s *BookingService) ConfirmTourBooking(ctx context.Context, guide *models.User, id uint) (*TourBookingView, error) {
	changed, err := s.store.ConfirmTourBooking(ctx, id, guide.ID)
	if err != nil {
		return nil, err
	}
	booking, err := s.store.FindTourBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID() != guide.ID {
		return nil, utils.Forbidden("You can only confirm bookings for your own tours.")
	}
	if err := checkConfirmed(changed, booking.State()); err != nil {
		return nil, err
	}
	view := NewTourBookingView(booking, nil)
	return &view, nil
}

// checkConfirmed verifies the row ended up confirmed, either by this call or
// an earlier one.
func checkConfirmed(changed int64, state models.BookingState) error {
	if changed > 0 {
		return nil
	}
	if err := models.CheckTransition(state, models.BookingConfirmed); err != nil {
		return err
	}
	if state != models.BookingConfirmed {
		return fmt.Errorf("booking was not confirmed")
	}
	return nil
}

// ListIncomingGuideBookings is the guide's view of requests made with them.
func (s *BookingService) ListIncomingGuideBookings(ctx context.Context, guide *models.User) ([]GuideBookingView, error) {
	bookings, err := s.store.ListGuideBookingsByGuide(ctx, guide.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.TouristID)
	}
	parties, err := s.parties(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]GuideBookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewGuideBookingView(&bookings[i], &BookingEnrichment{Tourist: parties[bookings[i].TouristID]}))
	}
	return views, nil
}

func (s *BookingService) ListIncomingTourBookings(ctx context.Context, guide *models.User) ([]TourBookingView, error) {
	bookings, err := s.store.ListTourBookingsByGuide(ctx, guide.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.TouristID)
	}
	parties, err := s.parties(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]TourBookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewTourBookingView(&bookings[i], &BookingEnrichment{Tourist: parties[bookings[i].TouristID]}))
	}
	return views, nil
}

// ListOwnGuideBookings is the tourist's view of the requests they made.
func (s *BookingService) ListOwnGuideBookings(ctx context.Context, tourist *models.User) ([]GuideBookingView, error) {
	bookings, err := s.store.ListGuideBookingsByTourist(ctx, tourist.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.GuideID)
	}
	parties, err := s.parties(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]GuideBookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewGuideBookingView(&bookings[i], &BookingEnrichment{Guide: parties[bookings[i].GuideID]}))
	}
	return views, nil
}

func (s *BookingService) ListOwnTourBookings(ctx context.Context, tourist *models.User) ([]TourBookingView, error) {
	bookings, err := s.store.ListTourBookingsByTourist(ctx, tourist.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.OwnerID())
	}
	parties, err := s.parties(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]TourBookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewTourBookingView(&bookings[i], &BookingEnrichment{Guide: parties[bookings[i].OwnerID()]}))
	}
	return views, nil
}

// PublicFetch reports whether fetch-by-id skips authentication.
func (s *BookingService) PublicFetch() bool {
	return s.publicFetch
}

// GetGuideBooking fetches one booking. Only its tourist and guide may see it
// unless public fetch is enabled, in which case caller may be nil.
func (s *BookingService) GetGuideBooking(ctx context.Context, caller *models.User, id uint) (*GuideBookingView, error) {
	booking, err := s.store.FindGuideBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParticipant(caller, booking.TouristID, booking.OwnerID()); err != nil {
		return nil, err
	}
	parties, err := s.parties(ctx, []uint{booking.TouristID, booking.GuideID})
	if err != nil {
		return nil, err
	}
	view := NewGuideBookingView(booking, &BookingEnrichment{
		Tourist: parties[booking.TouristID],
		Guide:   parties[booking.GuideID],
	})
	return &view, nil
}

func (s *BookingService) GetTourBooking(ctx context.Context, caller *models.User, id uint) (*TourBookingView, error) {
	booking, err := s.store.FindTourBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParticipant(caller, booking.TouristID, booking.OwnerID()); err != nil {
		return nil, err
	}
	parties, err := s.parties(ctx, []uint{booking.TouristID, booking.OwnerID()})
	if err != nil {
		return nil, err
	}
	view := NewTourBookingView(booking, &BookingEnrichment{
		Tourist: parties[booking.TouristID],
		Guide:   parties[booking.OwnerID()],
	})
	return &view, nil
}

func (s *BookingService) checkParticipant(caller *models.User, touristID, guideID uint) error {
	if s.publicFetch {
		return nil
	}
	if caller == nil {
		return utils.Unauthenticated("Not authenticated")
	}
	if caller.ID != touristID && caller.ID != guideID {
		return utils.Forbidden("You are not a participant of this booking.")
	}
	return nil
}

func (s *BookingService) checkLanguage(ctx context.Context, id uint) error {
	langs, err := s.store.FindLanguages(ctx, []uint{id})
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		return utils.Validation(fmt.Sprintf("Unknown language_id %d.", id))
	}
	return nil
}

// parties loads display data for every distinct id with a single lookup.
func (s *BookingService) parties(ctx context.Context, ids []uint) (map[uint]*Party, error) {
	return loadParties(ctx, s.store, ids)
}

type accountsFinder interface {
	FindAccounts(ctx context.Context, ids []uint) ([]models.User, error)
}

func loadParties(ctx context.Context, finder accountsFinder, ids []uint) (map[uint]*Party, error) {
	parties := make(map[uint]*Party, len(ids))
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if id != 0 && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return parties, nil
	}

	users, err := finder.FindAccounts(ctx, unique)
	if err != nil {
		return nil, err
	}
	for i := range users {
		parties[users[i].ID] = partyOf(&users[i])
	}
	return parties, nil
}
