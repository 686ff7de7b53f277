package reservation

import "github.com/BruksfildServices01/barber-booking/internal/models"

// Principal é o chamador autenticado, já resolvido pelo middleware.
type Principal struct {
	UserID       uint
	Role         string
	BarbershopID *uint
}

// IsPrivilegedFor: admin passa por cima de tudo; barbeiro só dentro da
// própria barbearia. Privilégio dispensa posse e ignora o cutoff de
// cancelamento.
func (p Principal) IsPrivilegedFor(barbershopID uint) bool {
	if p.Role == models.RoleAdmin {
		return true
	}
	if p.Role == models.RoleBarber && p.BarbershopID != nil {
		return *p.BarbershopID == barbershopID
	}
	return false
}
