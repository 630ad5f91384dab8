package profile

import "time"

// Profile describes a named execution environment and the expectations a
// report should be judged against. Resolved once per invocation and treated
// as immutable afterwards.
type Profile struct {
	Name                string        `json:"name"`
	TargetDuration      time.Duration `json:"-"`
	MockLevel           string        `json:"mockLevel"`
	HardwareTests       string        `json:"hardwareTests"`
	SystemExtensionMode string        `json:"systemExtensionMode"`
	Description         string        `json:"description"`
}

// Signals are the inputs considered during resolution. The CLI layer gathers
// them once; nothing below it reads ambient configuration.
type Signals struct {
	// Override forces a named profile. Unrecognized names pass through as a
	// custom profile with the automated threshold.
	Override string
	// Automation is true when any automation indicator is present.
	Automation bool
	// Production is true when the production-testing indicator is present.
	Production bool
}

const (
	NameDevelopment = "development"
	NameAutomated   = "automated"
	NameProduction  = "production"
)

var profiles = map[string]Profile{
	NameDevelopment: {
		Name:                NameDevelopment,
		TargetDuration:      60 * time.Second,
		MockLevel:           "full",
		HardwareTests:       "not expected",
		SystemExtensionMode: "mock",
		Description:         "Local developer machine; hardware and system extensions are mocked.",
	},
	NameAutomated: {
		Name:                NameAutomated,
		TargetDuration:      180 * time.Second,
		MockLevel:           "partial",
		HardwareTests:       "optional",
		SystemExtensionMode: "headless",
		Description:         "Automated CI run; no interactive approval is available.",
	},
	NameProduction: {
		Name:                NameProduction,
		TargetDuration:      600 * time.Second,
		MockLevel:           "none",
		HardwareTests:       "required",
		SystemExtensionMode: "real",
		Description:         "Production-like validation against real hardware and extensions.",
	},
}

// Resolve maps signals to exactly one profile. First match wins: explicit
// override, then automation, then production, then development. It never
// fails; unknown override names yield a custom profile.
func Resolve(sig Signals) Profile {
	if sig.Override != "" {
		if p, ok := profiles[sig.Override]; ok {
			return p
		}
		return custom(sig.Override)
	}
	if sig.Automation {
		return profiles[NameAutomated]
	}
	if sig.Production {
		return profiles[NameProduction]
	}
	return profiles[NameDevelopment]
}

// custom builds a pass-through profile for an unrecognized name. The
// automated threshold is the default for unknown environments.
func custom(name string) Profile {
	return Profile{
		Name:                name,
		TargetDuration:      180 * time.Second,
		MockLevel:           "unknown",
		HardwareTests:       "unknown",
		SystemExtensionMode: "unknown",
		Description:         "Caller-supplied environment; automated thresholds apply.",
	}
}

// Commentary returns the qualitative note the detailed report prints for a
// profile. Lookup is by name with a generic fallback for custom profiles.
func Commentary(name string) string {
	switch name {
	case NameDevelopment:
		return "Results reflect mocked hardware; re-run in the automated environment before merging."
	case NameAutomated:
		return "Automated run; flaky failures should be reproduced locally before triage."
	case NameProduction:
		return "Production validation; any failure blocks release."
	default:
		return "Custom environment; interpret thresholds accordingly."
	}
}
