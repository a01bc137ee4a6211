package storage

import (
	"hash/crc32"
	"testing"

	"github.com/vovakirdan/flamin-maze/internal/core"
)

func TestPrefsValues(t *testing.T) {
	store := openTestStore(t)
	p := store.Prefs("alice")

	if _, ok, err := p.String("name"); ok || err != nil {
		t.Errorf("unset key: ok=%v err=%v", ok, err)
	}
	if err := p.SetString("name", "Alice"); err != nil {
		t.Fatalf("SetString() failed: %v", err)
	}
	if err := p.SetString("name", "Alicia"); err != nil {
		t.Fatalf("SetString() overwrite failed: %v", err)
	}
	if v, ok, _ := p.String("name"); !ok || v != "Alicia" {
		t.Errorf("String(name) = %q, %v, expected Alicia", v, ok)
	}

	if err := p.SetInt("count", -12); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if n, _ := p.Int("count"); n != -12 {
		t.Errorf("Int(count) = %d, expected -12", n)
	}
	if n, _ := p.Int("name"); n != 0 {
		t.Errorf("Int of a non-number = %d, expected 0", n)
	}

	if v, ok, _ := store.Prefs("bob").String("name"); ok {
		t.Errorf("scopes should be isolated, bob sees %q", v)
	}

	if err := p.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	if _, ok, _ := p.String("name"); ok {
		t.Error("DeleteAll should remove every key")
	}
}

func TestPlayerChecksum(t *testing.T) {
	d := core.PlayerData{BestScore: 123, GameCount: 7}
	want := int(int32(crc32.ChecksumIEEE([]byte("Fl7aM123iN"))))

	if got := PlayerChecksum(d); got != want {
		t.Errorf("PlayerChecksum() = %d, expected %d", got, want)
	}
	if PlayerChecksum(d) == PlayerChecksum(core.PlayerData{BestScore: 7, GameCount: 123}) {
		t.Error("checksum should depend on which value is which")
	}
}

func TestPlayerDataRoundTrip(t *testing.T) {
	store := openTestStore(t)
	p := store.Prefs("alice")

	d, err := p.LoadPlayer()
	if err != nil || d != (core.PlayerData{}) {
		t.Fatalf("fresh LoadPlayer() = %+v, %v, expected zero", d, err)
	}

	want := core.PlayerData{BestScore: 321, GameCount: 12}
	if err := p.SavePlayer(want); err != nil {
		t.Fatalf("SavePlayer() failed: %v", err)
	}
	got, err := p.LoadPlayer()
	if err != nil || got != want {
		t.Errorf("LoadPlayer() = %+v, %v, expected %+v", got, err, want)
	}
}

func TestPlayerDataTamper(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"checksum changed", keyChecksum},
		{"best score changed", keyBestScore},
		{"game count changed", keyGameCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			p := store.Prefs("alice")
			if err := p.SavePlayer(core.PlayerData{BestScore: 50, GameCount: 4}); err != nil {
				t.Fatalf("SavePlayer() failed: %v", err)
			}
			if err := p.SetInt(tc.key, 999999); err != nil {
				t.Fatalf("SetInt() failed: %v", err)
			}

			d, err := p.LoadPlayer()
			if err != nil || d != (core.PlayerData{}) {
				t.Errorf("LoadPlayer() = %+v, %v, expected zero", d, err)
			}
			for _, key := range []string{keyBestScore, keyGameCount, keyChecksum} {
				if _, ok, _ := p.String(key); ok {
					t.Errorf("key %s should be deleted", key)
				}
			}
		})
	}
}
