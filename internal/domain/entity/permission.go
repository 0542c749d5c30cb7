package entity

// Permission concede (o niega) acceso de un usuario a una sub-cuenta.
// En el alcance del core es de solo lectura.
type Permission struct {
	ID           string
	Email        string
	SubAccountID string
	Access       bool
}
