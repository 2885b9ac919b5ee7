package chronicle

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Mode selects how missing placeholder values are filled.
type Mode string

const (
	// ModeRandom fills gaps from the name pools.
	ModeRandom Mode = "random"
	// ModeManual fills gaps from the user's override table first.
	ModeManual Mode = "manual"
)

// ParseMode accepts "random" or "manual" in any case; empty means random.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeRandom):
		return ModeRandom, nil
	case string(ModeManual):
		return ModeManual, nil
	default:
		return "", fmt.Errorf("unknown generation mode %q", s)
	}
}

// Overrides maps requirement keys to user answers. A missing key means the
// answer has not been given yet.
type Overrides map[string]string

// Lookup returns a trimmed answer, treating blank answers as missing.
func (o Overrides) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(o[key])
	return v, v != ""
}

// Set records one user edit. A blank value removes the answer.
func (o Overrides) Set(key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		delete(o, key)
		return
	}
	o[key] = value
}

// Options carries everything a render needs besides the events and templates.
type Options struct {
	EmpireName         string
	IncludeYearMarkers bool
	Overrides          Overrides
	Mode               Mode
	// Rand drives the random pools. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// NewRand returns a deterministic RNG for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return NewRand(uint64(time.Now().UnixNano()))
}

// PlayerEmpireName resolves the name that replaces EmpireMarker. Manual mode
// prefers the empire_name answer; both modes then fall back to EmpireName and
// finally DefaultEmpireName.
func (o Options) PlayerEmpireName() string {
	if o.Mode == ModeManual {
		if v, ok := o.Overrides.Lookup(EmpireNameKey); ok {
			return v
		}
	}
	if v := strings.TrimSpace(o.EmpireName); v != "" {
		return v
	}
	return DefaultEmpireName
}
