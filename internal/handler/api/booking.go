package api

import (
	"errors"
	"net/http"

	"room-booking-api/internal/domain/booking"
	"room-booking-api/internal/domain/user"
	reqdto "room-booking-api/internal/handler/dto/request"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Book a room
// @Description Reserve a room for an inclusive date range
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/book-room [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "User not authenticated", nil)
		return
	}

	params, err := req.ToParams(callerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	rm, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	resp, err := resdto.ToBookingResponse(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusCreated, "Room booked successfully", resp)
}

// @Summary Update booking
// @Description Change a booking's room, dates, or status (admin only)
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	rm, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), params)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	resp, err := resdto.ToBookingResponse(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "Booking updated successfully", resp)
}

// @Summary Delete booking
// @Description Remove a booking and free its dates (admin only)
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /booking/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), id); err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List all bookings
// @Description List every booking with user and room summaries (admin only)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingListItemResponse
// @Router /booking [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	rms, err := h.bookingUseCase.ListAllBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.ToBookingListResponse(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "", resp)
}

// @Summary List a user's bookings
// @Description List all bookings belonging to a user
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.UserBookingResponse
// @Failure 403 {object} httperr.Response
// @Router /booking/{id} [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "User not authenticated", nil)
		return
	}

	// Users can only read their own bookings; admins can read anyone's.
	if callerID != userID {
		role, _ := middleware.GetUserRole(c)
		if role != user.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, usecase.ErrTokenValidation, "Insufficient permissions", nil)
			return
		}
	}

	rms, err := h.bookingUseCase.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.ToUserBookingListResponse(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "", resp)
}

func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, usecase.ErrInvalidRange), errors.Is(err, booking.ErrUnparsableDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End date must be after start date", nil)
	case errors.Is(err, usecase.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking status", nil)
	case errors.Is(err, usecase.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Room already booked for the selected dates", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
