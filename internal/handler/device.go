package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"soundspace/internal/httputil"
	"soundspace/internal/model"
	"soundspace/internal/service"
	"soundspace/internal/transport/http/middleware"
)

// DeviceHandler manages push notification subscriptions.
type DeviceHandler struct {
	notificationService *service.NotificationService
}

func NewDeviceHandler(notificationService *service.NotificationService) *DeviceHandler {
	return &DeviceHandler{notificationService: notificationService}
}

// Register stores the caller's Expo push token, replacing any previous one.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.RegisterSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.notificationService.RegisterDevice(r.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, model.ErrTokenRequired):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Register device handler: %v", err)
			httputil.WriteInternalError(w, "Failed to register device")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Device registered",
	})
}

// Remove deletes the caller's push subscription.
func (h *DeviceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := h.notificationService.RemoveDevice(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, model.ErrSubscriptionNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			log.Printf("[ERROR] Remove device handler: %v", err)
			httputil.WriteInternalError(w, "Failed to remove device")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Device removed",
	})
}
