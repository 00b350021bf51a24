package personas

import (
	"reflect"
	"testing"
)

func TestNewRegistryValidatesCrossTables(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	for synonym, target := range aliases {
		if !reg.Has(target) {
			t.Errorf("alias %q targets unregistered persona %q", synonym, target)
		}
	}
	for key := range voiceIDs {
		if !reg.Has(key) {
			t.Errorf("voice binding for unregistered persona %q", key)
		}
	}
	if !reg.Has(DefaultKey) {
		t.Errorf("default persona %q is not registered", DefaultKey)
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	got := reg.Lookup("no_such_persona")
	want := reg.Lookup(DefaultKey)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(unregistered) = %+v, expected the default persona %+v", got, want)
	}
}

func TestKeysOrderedAndComplete(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	expected := []string{
		"friendly_tutor",
		"serious_professor",
		"storyteller",
		"motivator",
		"visionary_ceo",
	}
	if got := reg.Keys(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Keys() = %v, expected %v", got, expected)
	}

	// Keys returns a copy; mutating it must not affect the registry.
	keys := reg.Keys()
	keys[0] = "tampered"
	if got := reg.Keys()[0]; got != "friendly_tutor" {
		t.Errorf("Keys() exposed internal slice, first key became %q", got)
	}
}

func TestVoiceFor(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	for _, key := range reg.Keys() {
		voiceID, ok := VoiceFor(key)
		if !ok {
			t.Errorf("VoiceFor(%q) reported no binding", key)
		}
		if voiceID == "" {
			t.Errorf("VoiceFor(%q) returned an empty voice id", key)
		}
	}

	if voiceID, ok := VoiceFor("no_such_persona"); ok || voiceID != "" {
		t.Errorf("VoiceFor(unknown) = (%q, %v), expected miss", voiceID, ok)
	}
}
