package domain

import (
	"encoding/json"
	"time"
)

// AppStatus values for Config.AppStatus.
const (
	AppStatusActive      = "active"
	AppStatusMaintenance = "maintenance"
)

// Winner is the participant selected by a draw, denormalised into the
// config document so every screen can detect it with a single read.
type Winner struct {
	DNI     string    `json:"dni"`
	Name    string    `json:"name"`
	DrawnAt time.Time `json:"drawn_at"`
}

// Config is the singleton application document: every public-facing text,
// the feature flags and the current winner. Exactly one instance exists;
// reads always merge the stored JSON over DefaultConfig so a missing
// field can never surface as a null reference downstream.
type Config struct {
	PromoTitle string `json:"promoTitle"`
	PromoImage string `json:"promoImage"`

	RafflePrize    string `json:"rafflePrize"`
	RaffleRules    string `json:"raffleRules"`
	UserPanelTitle string `json:"userPanelTitle"`

	WinnerViewTitle        string `json:"winnerViewTitle"`
	WinnerViewSub          string `json:"winnerViewSub"`
	WinnerViewInstructions string `json:"winnerViewInstructions"`

	Card1Title string `json:"card1Title"`
	Card1Desc  string `json:"card1Desc"`
	Card2Title string `json:"card2Title"`
	Card2Desc  string `json:"card2Desc"`
	Card3Title string `json:"card3Title"`
	Card3Desc  string `json:"card3Desc"`

	AppStatus          string `json:"appStatus"`
	AdminAccessEnabled bool   `json:"adminAccessEnabled"`
	LicenseDays        int    `json:"licenseDays"`
	AutoBackup         bool   `json:"autoBackup"`

	MaintenanceTitle    string `json:"maintenanceTitle"`
	MaintenanceSubtitle string `json:"maintenanceSubtitle"`
	MaintenanceMessage  string `json:"maintenanceMessage"`

	LastSync *time.Time `json:"lastSync"`

	Winner *Winner `json:"winner"`

	// AdminTOTPSecret is the super-admin's enrolled TOTP secret. It is
	// persisted with the document but must be redacted before the config
	// leaves the service. Empty until enrollment is verified.
	AdminTOTPSecret string `json:"adminTotpSecret,omitempty"`
}

// DefaultConfig returns the hardcoded fallback document. It is also what
// config reads degrade to whenever the store is unreachable.
func DefaultConfig() Config {
	return Config{
		PromoTitle:             "SORTEO DIARIO DE PASES LIBRES",
		PromoImage:             "https://images.unsplash.com/photo-1540541338287-41700207dee6?auto=format&fit=crop&q=80&w=2000",
		RafflePrize:            "PASE LIBRE TOTAL",
		RaffleRules:            "1. Ser usuario registrado.\n2. El sorteo se realiza entre todos los usuarios inscriptos.\n3. El ganador presenta su DNI en puerta.\n4. No es obligatorio mantener la app abierta para ganar.",
		UserPanelTitle:         "¡PARTICIPA POR TU PASE!",
		WinnerViewTitle:        "¡FELICIDADES!",
		WinnerViewSub:          "TU DNI ES TU PASE",
		WinnerViewInstructions: "Preséntate en la entrada de las piletas con tu DNI físico para validar tu premio.",
		Card1Title:             "Piletas",
		Card1Desc:              "Círculos olímpicas. Piletas abiertas.",
		Card2Title:             "Sorteo",
		Card2Desc:              "Sorteo automático entre usuarios inscriptos.",
		Card3Title:             "DNI",
		Card3Desc:              "El ganador solo muestra el DNI para el pase gratis.",
		AppStatus:              AppStatusActive,
		AdminAccessEnabled:     true,
		LicenseDays:            30,
		AutoBackup:             true,
		MaintenanceTitle:       "MALLI AQUATIC CLUB",
		MaintenanceSubtitle:    "ESTA EN MANTENIMIENTO",
		MaintenanceMessage:     "Estamos limpiando las piscinas y optimizando el sistema para brindarte la mejor experiencia refrescante.",
	}
}

// MergeOverDefaults decodes a stored config document over the defaults,
// so fields absent from raw keep their default value. A nil or empty raw
// yields the defaults unchanged.
func MergeOverDefaults(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Redacted returns a copy safe to serve to callers: the TOTP secret is
// always stripped, and the winner is stripped unless the caller is an
// admin (non-admins learn about the winner via their own raffle status).
func (c Config) Redacted(includeWinner bool) Config {
	out := c
	out.AdminTOTPSecret = ""
	if !includeWinner {
		out.Winner = nil
	}
	return out
}

// Maintenance reports whether the app-wide maintenance flag is active.
func (c Config) Maintenance() bool {
	return c.AppStatus == AppStatusMaintenance
}
