package reservation

import (
	"fmt"
	"time"
)

// Janela fixa de atendimento: 09:00–18:00
const (
	openMinutes  = 9 * 60
	closeMinutes = 18 * 60
)

// AvailableSlots gera os horários livres ("HH:MM", hora local da barbearia)
// para um serviço. A grade anda de duração em duração — cada serviço tem o
// seu próprio passo, então duas reservas consecutivas do mesmo serviço nunca
// se sobrepõem. Um slot sai da lista quando o início bate exatamente com o
// início de uma reserva não cancelada.
//
// Função pura: sem efeitos, determinística, segura para chamadas concorrentes.
func AvailableSlots(durationMin int, reserved []time.Time, loc *time.Location) []string {
	slots := []string{}

	if durationMin <= 0 || durationMin > closeMinutes-openMinutes {
		return slots
	}

	occupied := make(map[string]struct{}, len(reserved))
	for _, t := range reserved {
		occupied[t.In(loc).Format("15:04")] = struct{}{}
	}

	for m := openMinutes; m+durationMin <= closeMinutes; m += durationMin {
		label := fmt.Sprintf("%02d:%02d", m/60, m%60)
		if _, taken := occupied[label]; taken {
			continue
		}
		slots = append(slots, label)
	}

	return slots
}
