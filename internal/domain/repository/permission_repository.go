package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// PermissionRepository define el puerto de lectura de permisos (solo lectura en el core).
type PermissionRepository interface {
	ListByEmail(email string) ([]*entity.Permission, error)
}
