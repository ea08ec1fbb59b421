//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubBookingUseCase returns canned values; each test sets only what it needs.
type stubBookingUseCase struct {
	createRM  *readmodel.BookingRM
	createErr error
	updateRM  *readmodel.BookingRM
	updateErr error
	cancelErr error
	allRM     []*readmodel.BookingListRM
	allErr    error
	userRM    []*readmodel.UserBookingRM
	userErr   error

	gotCreate usecase.CreateBookingParams
	gotUpdate usecase.UpdateBookingParams
}

func (s *stubBookingUseCase) CreateBooking(_ context.Context, params usecase.CreateBookingParams) (*readmodel.BookingRM, error) {
	s.gotCreate = params
	return s.createRM, s.createErr
}

func (s *stubBookingUseCase) UpdateBooking(_ context.Context, params usecase.UpdateBookingParams) (*readmodel.BookingRM, error) {
	s.gotUpdate = params
	return s.updateRM, s.updateErr
}

func (s *stubBookingUseCase) CancelBooking(_ context.Context, _ uuid.UUID) error {
	return s.cancelErr
}

func (s *stubBookingUseCase) ListAllBookings(_ context.Context) ([]*readmodel.BookingListRM, error) {
	return s.allRM, s.allErr
}

func (s *stubBookingUseCase) ListUserBookings(_ context.Context, _ uuid.UUID) ([]*readmodel.UserBookingRM, error) {
	return s.userRM, s.userErr
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	stub     *stubBookingUseCase
	callerID uuid.UUID
	role     string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.stub = &stubBookingUseCase{}
	s.callerID = uuid.New()
	s.role = "user"
	handler := api.NewBookingHandler(s.stub)

	// Simulate RequireAuth by seeding the context keys it would set
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.callerID)
		c.Set("user_role", roleOf(s.role))
	})
	authed.POST("/booking/book-room", handler.CreateBooking)
	authed.GET("/booking", handler.ListAllBookings)
	authed.GET("/booking/:id", handler.GetUserBookings)
	authed.PUT("/booking/:id", handler.UpdateBooking)
	authed.DELETE("/booking/:id", handler.DeleteBooking)
}

func roleOf(s string) user.Role {
	return user.Role(s)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) doJSON(method, url, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	roomID := uuid.New()

	s.Run("success returns 201 with the booking", func() {
		s.stub.createErr = nil
		s.stub.createRM = &readmodel.BookingRM{
			ID:     uuid.New(),
			RoomID: roomID,
			Dates:  []string{"2025-07-01", "2025-07-02"},
			Status: "pending",
		}

		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","start_date":"2025-07-01","end_date":"2025-07-02"}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"success":true`)
		s.Contains(w.Body.String(), `"pending"`)
		s.Equal(s.callerID, s.stub.gotCreate.UserID)
	})

	s.Run("explicit user_id overrides the caller", func() {
		otherUser := uuid.New()
		s.stub.createRM = &readmodel.BookingRM{Status: "pending"}

		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","user_id":"`+otherUser.String()+`","start_date":"2025-07-01","end_date":"2025-07-02"}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Equal(otherUser, s.stub.gotCreate.UserID)
	})

	s.Run("missing dates rejected by binding", func() {
		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`"}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unparsable date", func() {
		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","start_date":"soon","end_date":"later"}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("conflict maps to 400", func() {
		s.stub.createErr = usecase.ErrBookingConflict

		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","start_date":"2025-07-01","end_date":"2025-07-02"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "already booked")
	})

	s.Run("unknown room maps to 404", func() {
		s.stub.createErr = usecase.ErrRoomNotFound

		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","start_date":"2025-07-01","end_date":"2025-07-02"}`)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("invalid range maps to 400", func() {
		s.stub.createErr = usecase.ErrInvalidRange

		w := s.doJSON(http.MethodPost, "/booking/book-room",
			`{"room_id":"`+roomID.String()+`","start_date":"2025-07-03","end_date":"2025-07-01"}`)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	bookingID := uuid.New()

	s.Run("success returns 200", func() {
		s.stub.updateErr = nil
		s.stub.updateRM = &readmodel.BookingRM{ID: bookingID, Status: "confirmed"}

		w := s.doJSON(http.MethodPut, "/booking/"+bookingID.String(),
			`{"start_date":"2025-07-01","end_date":"2025-07-02","booking_status":"confirmed"}`)

		s.Equal(http.StatusOK, w.Code)
		s.Equal(bookingID, s.stub.gotUpdate.BookingID)
		s.Require().NotNil(s.stub.gotUpdate.Status)
		s.Equal("confirmed", *s.stub.gotUpdate.Status)
	})

	s.Run("malformed booking id", func() {
		w := s.doJSON(http.MethodPut, "/booking/not-a-uuid",
			`{"start_date":"2025-07-01","end_date":"2025-07-02"}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid status maps to 400", func() {
		s.stub.updateErr = usecase.ErrInvalidStatus

		w := s.doJSON(http.MethodPut, "/booking/"+bookingID.String(),
			`{"start_date":"2025-07-01","end_date":"2025-07-02","booking_status":"archived"}`)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown booking maps to 404", func() {
		s.stub.updateErr = usecase.ErrBookingNotFound

		w := s.doJSON(http.MethodPut, "/booking/"+bookingID.String(),
			`{"start_date":"2025-07-01","end_date":"2025-07-02"}`)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.Run("success returns 204", func() {
		s.stub.cancelErr = nil
		w := s.doJSON(http.MethodDelete, "/booking/"+uuid.New().String(), "")
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})

	s.Run("unknown booking maps to 404", func() {
		s.stub.cancelErr = usecase.ErrBookingNotFound
		w := s.doJSON(http.MethodDelete, "/booking/"+uuid.New().String(), "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListAllBookings() {
	s.Run("empty listing serializes as an array", func() {
		s.stub.allRM = nil
		w := s.doJSON(http.MethodGet, "/booking", "")

		s.Equal(http.StatusOK, w.Code)

		var body struct {
			Success bool              `json:"success"`
			Data    []json.RawMessage `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.True(body.Success)
		s.NotNil(body.Data)
		s.Empty(body.Data)
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("caller reads their own bookings", func() {
		s.stub.userRM = []*readmodel.UserBookingRM{{ID: uuid.New(), UserID: s.callerID}}

		w := s.doJSON(http.MethodGet, "/booking/"+s.callerID.String(), "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("regular user cannot read someone else's bookings", func() {
		w := s.doJSON(http.MethodGet, "/booking/"+uuid.New().String(), "")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("admin can read anyone's bookings", func() {
		s.role = "admin"
		defer func() { s.role = "user" }()

		w := s.doJSON(http.MethodGet, "/booking/"+uuid.New().String(), "")
		s.Equal(http.StatusOK, w.Code)
	})
}
