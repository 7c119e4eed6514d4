// Package servicetest provides in-memory stand-ins for the relational store,
// the token denylist and object storage.
package servicetest

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

// Store is a map-backed store. Seed it through the exported maps before a
// test starts; ids are assigned from a shared counter.
type Store struct {
	mu sync.Mutex

	Accounts      map[uint]*models.User
	Resumes       map[uint]*models.Resume
	Tours         map[uint]*models.Tour
	GuideBookings map[uint]*models.GuideBooking
	TourBookings  map[uint]*models.TourBooking
	Reviews       map[uint]*models.Review
	TourReviews   map[uint]*models.TourReview
	Regions       map[uint]*models.Region
	Cities        map[uint]*models.City
	Addresses     map[uint]*models.Address
	Languages     map[uint]*models.Language

	// FindAccountsCalls counts batch account lookups.
	FindAccountsCalls int

	nextID uint
}

func NewStore() *Store {
	return &Store{
		Accounts:      map[uint]*models.User{},
		Resumes:       map[uint]*models.Resume{},
		Tours:         map[uint]*models.Tour{},
		GuideBookings: map[uint]*models.GuideBooking{},
		TourBookings:  map[uint]*models.TourBooking{},
		Reviews:       map[uint]*models.Review{},
		TourReviews:   map[uint]*models.TourReview{},
		Regions:       map[uint]*models.Region{},
		Cities:        map[uint]*models.City{},
		Addresses:     map[uint]*models.Address{},
		Languages:     map[uint]*models.Language{},
		nextID:        1000,
	}
}

func (s *Store) id(current uint) uint {
	if current != 0 {
		return current
	}
	s.nextID++
	return s.nextID
}

func sortedKeys[T any](m map[uint]T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// Accounts

func (s *Store) CreateAccount(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Accounts {
		if u.Email == user.Email {
			return utils.Conflict("Account already exists.")
		}
	}
	user.ID = s.id(user.ID)
	cp := *user
	s.Accounts[user.ID] = &cp
	return nil
}

func (s *Store) FindAccountByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Accounts {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.NotFound("Account not found.")
}

func (s *Store) FindAccount(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Accounts[id]
	if !ok {
		return nil, utils.NotFound("Account not found.")
	}
	cp := *u
	if cp.AddressID != nil {
		cp.Address = s.Addresses[*cp.AddressID]
	}
	return &cp, nil
}

func (s *Store) FindAccounts(_ context.Context, ids []uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindAccountsCalls++
	var users []models.User
	for _, id := range ids {
		if u, ok := s.Accounts[id]; ok {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) UpdateProfileImage(_ context.Context, id uint, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Accounts[id]
	if !ok {
		return utils.NotFound("Account not found.")
	}
	u.ProfileImage = url
	return nil
}

// Reference data

func (s *Store) CreateRegion(_ context.Context, region *models.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Regions {
		if r.Name == region.Name {
			return utils.Conflict("Region already exists.")
		}
	}
	region.ID = s.id(region.ID)
	cp := *region
	s.Regions[region.ID] = &cp
	return nil
}

func (s *Store) ListRegions(_ context.Context) ([]models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Region{}
	for _, id := range sortedKeys(s.Regions) {
		out = append(out, *s.Regions[id])
	}
	return out, nil
}

func (s *Store) FindRegion(_ context.Context, id uint) (*models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Regions[id]
	if !ok {
		return nil, utils.NotFound("Region not found.")
	}
	cp := *r
	return &cp, nil
}

func (s *Store) RenameRegion(_ context.Context, id uint, name string) (*models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Regions[id]
	if !ok {
		return nil, utils.NotFound("Region not found.")
	}
	for _, other := range s.Regions {
		if other.ID != id && other.Name == name {
			return nil, utils.Conflict("Region already exists.")
		}
	}
	r.Name = name
	cp := *r
	return &cp, nil
}

func (s *Store) DeleteRegion(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Regions[id]; !ok {
		return utils.NotFound("Region not found.")
	}
	for _, c := range s.Cities {
		if c.RegionID == id {
			return utils.Conflict("Region is still in use and cannot be deleted.")
		}
	}
	for _, a := range s.Addresses {
		if a.RegionID == id {
			return utils.Conflict("Region is still in use and cannot be deleted.")
		}
	}
	delete(s.Regions, id)
	return nil
}

func (s *Store) CreateCity(_ context.Context, city *models.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	city.ID = s.id(city.ID)
	cp := *city
	s.Cities[city.ID] = &cp
	return nil
}

func (s *Store) ListCities(_ context.Context, regionID *uint) ([]models.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.City{}
	for _, id := range sortedKeys(s.Cities) {
		c := s.Cities[id]
		if regionID == nil || c.RegionID == *regionID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *Store) FindCity(_ context.Context, id uint) (*models.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Cities[id]
	if !ok {
		return nil, utils.NotFound("City not found.")
	}
	cp := *c
	return &cp, nil
}

func (s *Store) CreateAddress(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	address.ID = s.id(address.ID)
	cp := *address
	s.Addresses[address.ID] = &cp
	return nil
}

func (s *Store) ListAddresses(_ context.Context) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Address{}
	for _, id := range sortedKeys(s.Addresses) {
		out = append(out, *s.Addresses[id])
	}
	return out, nil
}

func (s *Store) FindAddress(_ context.Context, id uint) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Addresses[id]
	if !ok {
		return nil, utils.NotFound("Address not found.")
	}
	cp := *a
	cp.Region = s.Regions[a.RegionID]
	cp.City = s.Cities[a.CityID]
	return &cp, nil
}

func (s *Store) FindAddresses(_ context.Context, ids []uint) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Address{}
	for _, id := range ids {
		if a, ok := s.Addresses[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *Store) CreateLanguage(_ context.Context, language *models.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.Languages {
		if l.Name == language.Name {
			return utils.Conflict("Language already exists.")
		}
	}
	language.ID = s.id(language.ID)
	cp := *language
	s.Languages[language.ID] = &cp
	return nil
}

func (s *Store) ListLanguages(_ context.Context) ([]models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Language{}
	for _, id := range sortedKeys(s.Languages) {
		out = append(out, *s.Languages[id])
	}
	return out, nil
}

func (s *Store) FindLanguage(_ context.Context, id uint) (*models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.Languages[id]
	if !ok {
		return nil, utils.NotFound("Language not found.")
	}
	cp := *l
	return &cp, nil
}

func (s *Store) DeleteLanguage(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Languages[id]; !ok {
		return utils.NotFound("Language not found.")
	}
	if s.languageInUse(id) {
		return utils.Conflict("Language is still in use and cannot be deleted.")
	}
	delete(s.Languages, id)
	return nil
}

func (s *Store) languageInUse(id uint) bool {
	for _, b := range s.GuideBookings {
		if b.LanguageID == id {
			return true
		}
	}
	for _, b := range s.TourBookings {
		if b.LanguageID == id {
			return true
		}
	}
	for _, r := range s.Resumes {
		for _, l := range r.Languages {
			if l.ID == id {
				return true
			}
		}
	}
	for _, t := range s.Tours {
		for _, l := range t.Languages {
			if l.ID == id {
				return true
			}
		}
	}
	return false
}

func (s *Store) FindLanguages(_ context.Context, ids []uint) ([]models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Language{}
	for _, id := range ids {
		if l, ok := s.Languages[id]; ok {
			out = append(out, *l)
		}
	}
	return out, nil
}

// Resumes

func (s *Store) GuideHasResume(_ context.Context, guideID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Resumes {
		if r.GuideID == guideID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateResume(_ context.Context, resume *models.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Resumes {
		if r.GuideID == resume.GuideID {
			return utils.Conflict("A resume already exists for this guide user.")
		}
	}
	resume.ID = s.id(resume.ID)
	cp := *resume
	s.Resumes[resume.ID] = &cp
	return nil
}

func (s *Store) FindResume(_ context.Context, id uint) (*models.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Resumes[id]
	if !ok {
		return nil, utils.NotFound("Resume not found.")
	}
	cp := *r
	cp.Guide = s.Accounts[cp.GuideID]
	return &cp, nil
}

func (s *Store) FindResumeByGuide(_ context.Context, guideID uint) (*models.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Resumes {
		if r.GuideID == guideID {
			cp := *r
			cp.Guide = s.Accounts[cp.GuideID]
			return &cp, nil
		}
	}
	return nil, utils.NotFound("Resume not found.")
}

// ListResumes honours the guide and price filters only.
func (s *Store) ListResumes(_ context.Context, f models.ResumeFilter) ([]models.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Resume{}
	for _, id := range sortedKeys(s.Resumes) {
		r := *s.Resumes[id]
		if f.GuideID != nil && r.GuideID != *f.GuideID {
			continue
		}
		if f.MinPrice != nil && r.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && r.Price > *f.MaxPrice {
			continue
		}
		r.Guide = s.Accounts[r.GuideID]
		out = append(out, r)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (s *Store) UpdateResume(_ context.Context, resume *models.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Resumes[resume.ID]; !ok {
		return utils.NotFound("Resume not found.")
	}
	cp := *resume
	s.Resumes[resume.ID] = &cp
	return nil
}

func (s *Store) DeleteResume(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Resumes[id]; !ok {
		return utils.NotFound("Resume not found.")
	}
	delete(s.Resumes, id)
	return nil
}

// Tours

func (s *Store) CreateTour(_ context.Context, tour *models.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tour.ID = s.id(tour.ID)
	cp := *tour
	s.Tours[tour.ID] = &cp
	return nil
}

func (s *Store) FindTour(_ context.Context, id uint) (*models.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Tours[id]
	if !ok {
		return nil, utils.NotFound("Tour not found.")
	}
	cp := *t
	return &cp, nil
}

func (s *Store) ListTours(_ context.Context, f models.TourFilter) ([]models.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Tour{}
	for _, id := range sortedKeys(s.Tours) {
		t := s.Tours[id]
		if f.GuideID != nil && t.GuideID != *f.GuideID {
			continue
		}
		out = append(out, *t)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (s *Store) UpdateTour(_ context.Context, tour *models.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Tours[tour.ID]; !ok {
		return utils.NotFound("Tour not found.")
	}
	cp := *tour
	s.Tours[tour.ID] = &cp
	return nil
}

func (s *Store) DeleteTour(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Tours[id]; !ok {
		return utils.NotFound("Tour not found.")
	}
	for _, b := range s.TourBookings {
		if b.TourID == id {
			return utils.Conflict("Tour has bookings and cannot be deleted.")
		}
	}
	delete(s.Tours, id)
	return nil
}

func (s *Store) AddTourPhoto(_ context.Context, tourID uint, url string) (*models.TourPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Tours[tourID]
	if !ok {
		return nil, utils.NotFound("Tour not found.")
	}
	photo := models.TourPhoto{ID: s.id(0), TourID: tourID, Position: len(t.Photos), URL: url}
	t.Photos = append(t.Photos, photo)
	return &photo, nil
}

// Bookings

func (s *Store) CreateGuideBooking(_ context.Context, booking *models.GuideBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = s.id(booking.ID)
	booking.Confirmed = false
	booking.CreatedAt = time.Now()
	cp := *booking
	s.GuideBookings[booking.ID] = &cp
	return nil
}

func (s *Store) CreateTourBooking(_ context.Context, booking *models.TourBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = s.id(booking.ID)
	booking.Confirmed = false
	booking.CreatedAt = time.Now()
	cp := *booking
	cp.Tour = nil
	s.TourBookings[booking.ID] = &cp
	return nil
}

func (s *Store) FindGuideBooking(_ context.Context, id uint) (*models.GuideBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.GuideBookings[id]
	if !ok {
		return nil, utils.NotFound("Booking not found.")
	}
	cp := *b
	return &cp, nil
}

func (s *Store) FindTourBooking(_ context.Context, id uint) (*models.TourBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.TourBookings[id]
	if !ok {
		return nil, utils.NotFound("Booking not found.")
	}
	return s.withTour(b), nil
}

func (s *Store) withTour(b *models.TourBooking) *models.TourBooking {
	cp := *b
	if t, ok := s.Tours[cp.TourID]; ok {
		tour := *t
		cp.Tour = &tour
	}
	return &cp
}

func (s *Store) ConfirmGuideBooking(_ context.Context, id, guideID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.GuideBookings[id]
	if !ok || b.GuideID != guideID || b.Confirmed {
		return 0, nil
	}
	b.Confirmed = true
	return 1, nil
}

func (s *Store) ConfirmTourBooking(_ context.Context, id, guideID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.TourBookings[id]
	if !ok || b.Confirmed {
		return 0, nil
	}
	t, ok := s.Tours[b.TourID]
	if !ok || t.GuideID != guideID {
		return 0, nil
	}
	b.Confirmed = true
	return 1, nil
}

func (s *Store) ListGuideBookingsByGuide(_ context.Context, guideID uint) ([]models.GuideBooking, error) {
	return s.guideBookings(func(b *models.GuideBooking) bool { return b.GuideID == guideID }), nil
}

func (s *Store) ListGuideBookingsByTourist(_ context.Context, touristID uint) ([]models.GuideBooking, error) {
	return s.guideBookings(func(b *models.GuideBooking) bool { return b.TouristID == touristID }), nil
}

func (s *Store) ListTourBookingsByGuide(_ context.Context, guideID uint) ([]models.TourBooking, error) {
	return s.tourBookings(func(b *models.TourBooking) bool { return b.OwnerID() == guideID }), nil
}

func (s *Store) ListTourBookingsByTourist(_ context.Context, touristID uint) ([]models.TourBooking, error) {
	return s.tourBookings(func(b *models.TourBooking) bool { return b.TouristID == touristID }), nil
}

func (s *Store) guideBookings(keep func(*models.GuideBooking) bool) []models.GuideBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.GuideBooking{}
	for _, id := range sortedKeys(s.GuideBookings) {
		if b := s.GuideBookings[id]; keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (s *Store) tourBookings(keep func(*models.TourBooking) bool) []models.TourBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.TourBooking{}
	for _, id := range sortedKeys(s.TourBookings) {
		if b := s.withTour(s.TourBookings[id]); keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (s *Store) StaleBacklog(_ context.Context, before time.Time) ([]models.GuideBacklog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byGuide := map[uint]*models.GuideBacklog{}
	entry := func(guideID uint, at time.Time) *models.GuideBacklog {
		b, ok := byGuide[guideID]
		if !ok {
			b = &models.GuideBacklog{GuideID: guideID, OldestWaiting: at}
			byGuide[guideID] = b
		}
		if at.Before(b.OldestWaiting) {
			b.OldestWaiting = at
		}
		return b
	}
	for _, b := range s.GuideBookings {
		if !b.Confirmed && b.CreatedAt.Before(before) {
			entry(b.GuideID, b.CreatedAt).GuideCount++
		}
	}
	for _, b := range s.TourBookings {
		if t, ok := s.Tours[b.TourID]; ok && !b.Confirmed && b.CreatedAt.Before(before) {
			entry(t.GuideID, b.CreatedAt).TourCount++
		}
	}
	out := []models.GuideBacklog{}
	for _, id := range sortedKeys(byGuide) {
		out = append(out, *byGuide[id])
	}
	return out, nil
}

// Reviews

func (s *Store) CreateReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = s.id(review.ID)
	cp := *review
	s.Reviews[review.ID] = &cp
	return nil
}

func (s *Store) FindReview(_ context.Context, id uint) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Reviews[id]
	if !ok {
		return nil, utils.NotFound("Review not found.")
	}
	cp := *r
	return &cp, nil
}

func (s *Store) ListReviews(_ context.Context, f models.ReviewFilter) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Review{}
	for _, id := range sortedKeys(s.Reviews) {
		r := s.Reviews[id]
		if f.TargetID != nil && r.ResumeID != *f.TargetID {
			continue
		}
		if f.MinRating != nil && r.Rating < *f.MinRating {
			continue
		}
		out = append(out, *r)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (s *Store) CreateTourReview(_ context.Context, review *models.TourReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = s.id(review.ID)
	cp := *review
	s.TourReviews[review.ID] = &cp
	return nil
}

func (s *Store) FindTourReview(_ context.Context, id uint) (*models.TourReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.TourReviews[id]
	if !ok {
		return nil, utils.NotFound("Tour review not found.")
	}
	cp := *r
	return &cp, nil
}

func (s *Store) ListTourReviews(_ context.Context, f models.ReviewFilter) ([]models.TourReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.TourReview{}
	for _, id := range sortedKeys(s.TourReviews) {
		r := s.TourReviews[id]
		if f.TargetID != nil && r.TourID != *f.TargetID {
			continue
		}
		if f.MinRating != nil && r.Rating < *f.MinRating {
			continue
		}
		out = append(out, *r)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (s *Store) RatingSummaries(_ context.Context, target models.RatingTarget, ids []uint) ([]models.RatingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byTarget := map[uint]*models.RatingSummary{}
	add := func(targetID uint, rating float64) {
		for _, id := range ids {
			if id != targetID {
				continue
			}
			sum, ok := byTarget[targetID]
			if !ok {
				sum = &models.RatingSummary{TargetID: targetID}
				byTarget[targetID] = sum
			}
			sum.Count++
			sum.Sum += rating
			sum.Distribution[models.StarBucket(rating)]++
			return
		}
	}
	switch target {
	case models.RatingTargetResume:
		for _, r := range s.Reviews {
			add(r.ResumeID, r.Rating)
		}
	case models.RatingTargetTour:
		for _, r := range s.TourReviews {
			add(r.TourID, r.Rating)
		}
	}
	out := []models.RatingSummary{}
	for _, id := range sortedKeys(byTarget) {
		out = append(out, *byTarget[id])
	}
	return out, nil
}

// Denylist is an in-memory token denylist.
type Denylist struct {
	mu      sync.Mutex
	Revoked map[string]time.Duration
}

func NewDenylist() *Denylist {
	return &Denylist{Revoked: map[string]time.Duration{}}
}

func (d *Denylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Revoked[jti] = ttl
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.Revoked[jti]
	return ok, nil
}

// Storage records uploads and answers with a predictable URL.
type Storage struct {
	mu      sync.Mutex
	Uploads []string
}

func (st *Storage) Store(_ context.Context, r io.Reader, folder, name string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	url := "https://cdn.example.test/" + folder + "/" + name
	st.Uploads = append(st.Uploads, url)
	return url, nil
}
