package dto

import "time"

// LogActivityRequest entrada del registro de actividad. Debe traer agency_id o
// subaccount_id (al menos uno).
type LogActivityRequest struct {
	AgencyID     string `json:"agency_id,omitempty"`
	Description  string `json:"description" validate:"required,min=1,max=500"`
	SubAccountID string `json:"subaccount_id,omitempty"`
}

// NotificationResponse entrada del feed de notificaciones.
type NotificationResponse struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	UserID       string    `json:"user_id"`
	AgencyID     string    `json:"agency_id"`
	SubAccountID string    `json:"subaccount_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationListResponse feed paginado.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// AcceptInvitationResponse resultado del flujo de aceptación de invitación.
// AgencyID vacío = el usuario no quedó (ni estaba) vinculado a una agencia.
type AcceptInvitationResponse struct {
	AgencyID string `json:"agency_id,omitempty"`
}
