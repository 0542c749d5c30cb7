package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
// Las notificaciones son inmutables: solo insert y lectura.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByAgency(agencyID string, limit, offset int) ([]*entity.Notification, error)
}
