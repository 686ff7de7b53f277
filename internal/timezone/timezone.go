package timezone

import "time"

// Timezone padrão das barbearias sem configuração própria.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o timezone da barbearia; valor inválido ou vazio cai no
// padrão — a grade de horários e o cutoff de cancelamento dependem de sempre
// ter uma localização utilizável.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return NowIn(DefaultTimezone)
}

// NowIn devolve o relógio de parede da barbearia.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
