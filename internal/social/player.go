package social

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/flamin-maze/internal/storage"
)

// Player identifies who scores are reported for.
type Player struct {
	ID   string
	Name string
}

const (
	deviceScope = "device"
	keyPlayerID = "player_id"
)

// sshNamespace derives stable player ids from SSH user names.
var sshNamespace = uuid.MustParse("6f1c5a52-8d0e-4f57-9a53-2c1b7d3f9e10")

// LocalPlayer returns the player of this machine, creating and persisting
// a random id on first use.
func LocalPlayer(store *storage.Store, name string) (Player, error) {
	prefs := store.Prefs(deviceScope)
	id, ok, err := prefs.String(keyPlayerID)
	if err != nil {
		return Player{}, fmt.Errorf("social: load player id: %w", err)
	}
	if !ok {
		id = uuid.New().String()
		if err := prefs.SetString(keyPlayerID, id); err != nil {
			return Player{}, fmt.Errorf("social: save player id: %w", err)
		}
	}
	return Player{ID: id, Name: name}, nil
}

// RemotePlayer returns the player for an SSH user. The same user name
// always maps to the same id.
func RemotePlayer(user string) Player {
	if user == "" {
		user = "anonymous"
	}
	return Player{
		ID:   uuid.NewSHA1(sshNamespace, []byte(user)).String(),
		Name: user,
	}
}
