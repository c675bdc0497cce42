package sound

import (
	"testing"

	"minisnake/game"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		kind game.EventKind
		ok   bool
	}{
		{game.EventRoundStart, false},
		{game.EventPickup, true},
		{game.EventAppleSpawned, false},
		{game.EventAppleEaten, true},
		{game.EventAppleExpired, false},
		{game.EventHazardSpawned, true},
		{game.EventDeath, true},
	}
	for _, tt := range tests {
		tone, ok := ToneFor(tt.kind)
		if ok != tt.ok {
			t.Errorf("%v: ok = %v, want %v", tt.kind, ok, tt.ok)
			continue
		}
		if ok && (tone.Freq <= 0 || tone.Duration <= 0) {
			t.Errorf("%v: bad tone %+v", tt.kind, tone)
		}
	}

	death, _ := ToneFor(game.EventDeath)
	pickup, _ := ToneFor(game.EventPickup)
	if death.Freq >= pickup.Freq || death.Duration <= pickup.Duration {
		t.Error("death should sound lower and longer than a pickup")
	}
}

func TestDisabledPlayerIgnoresEvents(t *testing.T) {
	p := &Player{}
	p.Observe(game.Event{Kind: game.EventDeath})
	p.Close()
	if p.Enabled() {
		t.Error("zero player should stay disabled")
	}
}
