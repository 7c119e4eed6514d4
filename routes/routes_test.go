package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/controllers"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/services/servicetest"
	"github.com/meinhoongagan/tourbook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type harness struct {
	t     *testing.T
	app   *fiber.App
	store *servicetest.Store
}

func newHarness(t *testing.T, publicFetch bool, photos services.ObjectStorage) *harness {
	store := servicetest.NewStore()
	store.Languages[1] = &models.Language{ID: 1, Name: "English"}
	denylist := servicetest.NewDenylist()
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	ratings := services.NewRatingService(store)

	app := fiber.New()
	Setup(app, Handlers{
		Auth:               middleware.NewAuth(services.NewGuard(store, store, tokens, denylist), tokens.Secret()),
		Accounts:           controllers.NewAuthController(services.NewAccountService(store, tokens, denylist, photos)),
		References:         controllers.NewReferenceController(services.NewReferenceService(store)),
		Resumes:            controllers.NewResumeController(services.NewResumeService(store, ratings)),
		Tours:              controllers.NewTourController(services.NewTourService(store, ratings, photos)),
		Reviews:            controllers.NewReviewController(services.NewReviewService(store)),
		Bookings:           controllers.NewBookingController(services.NewBookingService(store, publicFetch)),
		PublicBookingFetch: publicFetch,
	})
	return &harness{t: t, app: app, store: store}
}

func (h *harness) do(method, path, token string, body interface{}) (int, string) {
	h.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return h.send(req)
}

func (h *harness) send(req *http.Request) (int, string) {
	h.t.Helper()
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return resp.StatusCode, string(raw)
}

func (h *harness) signup(name, email, role string) (string, uint) {
	h.t.Helper()
	status, body := h.do("POST", "/auth/signup", "", fiber.Map{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(h.t, 200, status, body)
	require.Equal(h.t, "bearer", gjson.Get(body, "token_type").String())
	token := gjson.Get(body, "access_token").String()

	status, body = h.do("GET", "/auth/me", token, nil)
	require.Equal(h.t, 200, status, body)
	return token, uint(gjson.Get(body, "id").Uint())
}

func (h *harness) uploadPhoto(path, token, contentType string) (int, string) {
	h.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(h.t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(h.t, err)
	require.NoError(h.t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return h.send(req)
}

func TestBookingWorkflow(t *testing.T) {
	h := newHarness(t, false, nil)
	guide, guideID := h.signup("Gia", "gia@example.com", "guide")
	tourist, touristID := h.signup("Tom", "tom@example.com", "tourist")
	outsider, _ := h.signup("Tess", "tess@example.com", "tourist")

	status, body := h.do("POST", "/bookings/guides", tourist, fiber.Map{
		"guide_id": guideID, "tour_date": "2025-06-01", "reserve_count": 2, "language_id": 1, "message": "hi",
	})
	require.Equal(t, 200, status, body)
	assert.False(t, gjson.Get(body, "confirmed").Bool())
	assert.Equal(t, uint64(touristID), gjson.Get(body, "tourist_id").Uint())
	assert.Equal(t, uint64(guideID), gjson.Get(body, "guide_id").Uint())
	assert.Equal(t, "2025-06-01", gjson.Get(body, "tour_date").String())
	bookingID := gjson.Get(body, "booking_id").Uint()

	status, _ = h.do("POST", "/bookings/guides", guide, fiber.Map{
		"guide_id": guideID, "tour_date": "2025-06-01", "reserve_count": 1, "language_id": 1,
	})
	assert.Equal(t, 403, status, "guides cannot request bookings")

	status, body = h.do("POST", "/bookings/guides", tourist, fiber.Map{
		"guide_id": guideID, "tour_date": "2025-06-01", "reserve_count": 0, "language_id": 1,
	})
	assert.Equal(t, 400, status, body)

	confirmPath := fmt.Sprintf("/bookings/guides/%d/confirm", bookingID)
	status, body = h.do("PUT", confirmPath, guide, nil)
	assert.Equal(t, 403, status, "a guide without a resume cannot confirm: %s", body)

	status, body = h.do("POST", "/resumes", guide, fiber.Map{"bio": "Local guide", "price": 40, "language_ids": []uint{1}})
	require.Equal(t, 201, status, body)
	status, body = h.do("POST", "/resumes", guide, fiber.Map{"bio": "Again"})
	assert.Equal(t, 400, status, body)
	assert.Equal(t, "conflict", gjson.Get(body, "error").String())

	status, body = h.do("PUT", confirmPath, guide, nil)
	require.Equal(t, 200, status, body)
	assert.True(t, gjson.Get(body, "booking.confirmed").Bool())
	assert.True(t, h.store.GuideBookings[uint(bookingID)].Confirmed)

	status, _ = h.do("PUT", confirmPath, tourist, nil)
	assert.Equal(t, 403, status)
	assert.True(t, h.store.GuideBookings[uint(bookingID)].Confirmed)

	status, _ = h.do("PUT", "/bookings/guides/999/confirm", guide, nil)
	assert.Equal(t, 404, status)

	status, body = h.do("GET", "/bookings/guides/guide/me", guide, nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, int64(1), gjson.Get(body, "#").Int())
	assert.Equal(t, "Tom", gjson.Get(body, "0.tourist_name").String())

	status, body = h.do("GET", "/bookings/guides/tourist/me", outsider, nil)
	require.Equal(t, 200, status, body)
	assert.JSONEq(t, "[]", body)

	status, _ = h.do("GET", fmt.Sprintf("/bookings/guides/%d", bookingID), outsider, nil)
	assert.Equal(t, 403, status)
	status, _ = h.do("GET", fmt.Sprintf("/bookings/guides/%d", bookingID), "", nil)
	assert.Equal(t, 401, status)
	status, body = h.do("GET", fmt.Sprintf("/bookings/guides/%d", bookingID), tourist, nil)
	assert.Equal(t, 200, status, body)
}

func TestTourBookingWorkflow(t *testing.T) {
	h := newHarness(t, false, nil)
	guide, _ := h.signup("Gia", "gia@example.com", "guide")
	tourist, _ := h.signup("Tom", "tom@example.com", "tourist")

	tourBody := fiber.Map{"title": "Harbour walk", "date": "2025-06-01", "language_ids": []uint{1}}
	status, body := h.do("POST", "/tours", guide, tourBody)
	assert.Equal(t, 403, status, "resume required: %s", body)

	status, body = h.do("POST", "/resumes", guide, fiber.Map{"bio": "Local guide"})
	require.Equal(t, 201, status, body)
	status, body = h.do("POST", "/tours", guide, tourBody)
	require.Equal(t, 201, status, body)
	tourID := gjson.Get(body, "tour_id").Uint()

	status, body = h.do("POST", "/bookings/tours", tourist, fiber.Map{"tour_id": tourID, "reserve_count": 3, "language_id": 1})
	require.Equal(t, 200, status, body)
	bookingID := gjson.Get(body, "booking_id").Uint()

	status, body = h.do("PUT", fmt.Sprintf("/bookings/tour/%d/confirm", bookingID), guide, nil)
	require.Equal(t, 200, status, body)
	status, _ = h.do("PUT", fmt.Sprintf("/bookings/tours/%d/confirm", bookingID), guide, nil)
	assert.Equal(t, 200, status, "alias route, idempotent")

	status, body = h.do("GET", "/bookings/tours/tourist/me", tourist, nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, "Gia", gjson.Get(body, "0.guide_name").String())
	assert.True(t, gjson.Get(body, "0.confirmed").Bool())

	status, body = h.do("GET", "/bookings/tours/guide/me", guide, nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, int64(1), gjson.Get(body, "#").Int())

	status, body = h.uploadPhoto(fmt.Sprintf("/tours/%d/photos", tourID), guide, "image/png")
	assert.Equal(t, 503, status, body)
}

func TestPublicBookingFetch(t *testing.T) {
	h := newHarness(t, true, nil)
	_, guideID := h.signup("Gia", "gia@example.com", "guide")
	tourist, _ := h.signup("Tom", "tom@example.com", "tourist")

	status, body := h.do("POST", "/bookings/guides", tourist, fiber.Map{
		"guide_id": guideID, "tour_date": "2025-06-01", "reserve_count": 1, "language_id": 1,
	})
	require.Equal(t, 200, status, body)

	status, body = h.do("GET", fmt.Sprintf("/bookings/guides/%d", gjson.Get(body, "booking_id").Uint()), "", nil)
	assert.Equal(t, 200, status, body)
	assert.Equal(t, "Gia", gjson.Get(body, "guide_name").String())
}

func TestResumeRatings(t *testing.T) {
	h := newHarness(t, false, nil)
	guide, _ := h.signup("Gia", "gia@example.com", "guide")
	tourist, _ := h.signup("Tom", "tom@example.com", "tourist")

	status, body := h.do("POST", "/resumes", guide, fiber.Map{"bio": "Local guide"})
	require.Equal(t, 201, status, body)
	resumeID := gjson.Get(body, "resume_id").Uint()

	status, body = h.do("GET", fmt.Sprintf("/resumes/%d", resumeID), "", nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, 0.0, gjson.Get(body, "rating").Float())

	for _, rating := range []float64{4, 5, 3} {
		status, body = h.do("POST", "/reviews", tourist, fiber.Map{"resume_id": resumeID, "title": "Trip", "rating": rating})
		require.Equal(t, 201, status, body)
	}
	status, body = h.do("POST", "/reviews", tourist, fiber.Map{"resume_id": resumeID, "title": "Trip", "rating": 0})
	assert.Equal(t, 400, status, body)
	status, _ = h.do("POST", "/reviews", guide, fiber.Map{"resume_id": resumeID, "title": "Self", "rating": 5})
	assert.Equal(t, 403, status)

	status, body = h.do("GET", "/resumes", "", nil)
	require.Equal(t, 200, status, body)
	assert.InDelta(t, 4.0, gjson.Get(body, "0.rating").Float(), 1e-9)
	assert.Equal(t, "Gia", gjson.Get(body, "0.guide_name").String())

	status, body = h.do("GET", fmt.Sprintf("/resumes/%d/rating", resumeID), "", nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, int64(3), gjson.Get(body, "count").Int())
	assert.Equal(t, int64(1), gjson.Get(body, "distribution.5").Int())

	status, _ = h.do("GET", "/resumes?min_price=abc", "", nil)
	assert.Equal(t, 400, status)
}

func TestProfileAndLogout(t *testing.T) {
	photos := &servicetest.Storage{}
	h := newHarness(t, false, photos)
	tourist, _ := h.signup("Tom", "tom@example.com", "tourist")

	status, body := h.do("GET", "/profile/tourist", tourist, nil)
	require.Equal(t, 200, status, body)
	assert.Equal(t, "Tom", gjson.Get(body, "user_name").String())
	status, _ = h.do("GET", "/profile/guide", tourist, nil)
	assert.Equal(t, 403, status)

	status, body = h.uploadPhoto("/profile/photo", tourist, "text/plain")
	assert.Equal(t, 400, status, body)
	status, body = h.uploadPhoto("/profile/photo", tourist, "image/png")
	require.Equal(t, 200, status, body)
	assert.Len(t, photos.Uploads, 1)

	status, body = h.do("POST", "/auth/signin", "", fiber.Map{"email": "tom@example.com", "password": "nope"})
	assert.Equal(t, 401, status, body)

	status, _ = h.do("POST", "/auth/logout", tourist, nil)
	require.Equal(t, 200, status)
	status, _ = h.do("GET", "/auth/me", tourist, nil)
	assert.Equal(t, 401, status)
}

func TestReferenceRoutes(t *testing.T) {
	h := newHarness(t, false, nil)
	token, _ := h.signup("Tom", "tom@example.com", "tourist")

	status, body := h.do("POST", "/regions", token, fiber.Map{"region": "North"})
	require.Equal(t, 201, status, body)
	regionID := gjson.Get(body, "region_id").Uint()

	status, _ = h.do("POST", "/regions", token, fiber.Map{"region": "North"})
	assert.Equal(t, 400, status)
	status, _ = h.do("POST", "/regions", "", fiber.Map{"region": "South"})
	assert.Equal(t, 401, status)

	status, body = h.do("POST", "/cities", token, fiber.Map{"city": "Harbourtown", "region_id": regionID})
	require.Equal(t, 201, status, body)

	status, body = h.do("GET", fmt.Sprintf("/cities?region_id=%d", regionID), "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "Harbourtown", gjson.Get(body, "0.city").String())

	status, body = h.do("GET", fmt.Sprintf("/regions/%d", regionID), "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "North", gjson.Get(body, "region").String())

	status, _ = h.do("PUT", fmt.Sprintf("/regions/%d", regionID), "", fiber.Map{"region": "Far North"})
	assert.Equal(t, 401, status)
	status, body = h.do("PUT", fmt.Sprintf("/regions/%d", regionID), token, fiber.Map{"region": "Far North"})
	require.Equal(t, 200, status, body)
	assert.Equal(t, "Far North", gjson.Get(body, "region").String())

	status, _ = h.do("DELETE", fmt.Sprintf("/regions/%d", regionID), token, nil)
	assert.Equal(t, 400, status)

	status, body = h.do("POST", "/languages", token, fiber.Map{"name": "Greek"})
	require.Equal(t, 201, status, body)
	languageID := gjson.Get(body, "language_id").Uint()

	status, body = h.do("GET", fmt.Sprintf("/languages/%d", languageID), "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "Greek", gjson.Get(body, "name").String())

	status, _ = h.do("DELETE", fmt.Sprintf("/languages/%d", languageID), token, nil)
	assert.Equal(t, 200, status)
	status, _ = h.do("GET", fmt.Sprintf("/languages/%d", languageID), "", nil)
	assert.Equal(t, 404, status)
	status, _ = h.do("GET", "/cities/999999", "", nil)
	assert.Equal(t, 404, status)
}
