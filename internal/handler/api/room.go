package api

import (
	"errors"
	"net/http"

	reqdto "room-booking-api/internal/handler/dto/request"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary Create room
// @Description Create a new room listing (admin only)
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room data"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /room/create [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomUseCase.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToRoomResponse(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusCreated, "Room created successfully", resp)
}

// @Summary Update room
// @Description Update a room listing (admin only)
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room data"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID", nil)
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomUseCase.UpdateRoom(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrRoomValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToRoomResponse(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "Room updated successfully", resp)
}

// @Summary Get room
// @Description Get a single room listing
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /room/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID", nil)
		return
	}

	rm, err := h.roomUseCase.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToRoomResponse(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "", resp)
}

// @Summary List rooms
// @Description List all room listings
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /room [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.ToRoomListResponse(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "", resp)
}

// @Summary Delete room
// @Description Delete a room listing (admin only)
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /room/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID", nil)
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
