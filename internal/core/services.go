package core

// Board and achievement identifiers reported to the Leaderboard service.
const (
	BoardHighScores  = "FlaminMaze.HighScores"
	BoardHighLevels  = "FlaminMaze.HighLevels"
	BoardPlayedGames = "FlaminMaze.PlayedGames"

	AchievementFirstSteps = "FlaminMaze.FirstSteps"
	AchievementMazeMaster = "FlaminMaze.MazeMaster"
	AchievementGodOfMaze  = "FlaminMaze.GodOfMaze"
	AchievementExplorer   = "FlaminMaze.Explorer"
	AchievementAdventurer = "FlaminMaze.Adventurer"
	AchievementHero       = "FlaminMaze.Hero"
	AchievementLoser      = "FlaminMaze.Loser"
)

// Boards lists the leaderboards in display order.
var Boards = []string{BoardHighScores, BoardHighLevels, BoardPlayedGames}

// LocalScore is the local player's entry on a leaderboard.
// Rank is 1-based; 0 means the player has no entry.
type LocalScore struct {
	Rank  int
	Value int64
}

// Leaderboard reports scores and achievement progress.
// Every call returns immediately; done may be invoked later from any goroutine.
type Leaderboard interface {
	Authenticate(done func(ok bool))
	ReportScore(board string, value int64, done func(ok bool))
	LoadLocalScore(board string, done func(score LocalScore, ok bool))
	ReportProgress(achievement string, percent float64, done func(ok bool))
	ShowBoards()
}

// AdResult is the outcome of an intermission.
type AdResult int

const (
	AdFinished AdResult = iota
	AdSkipped
	AdFailed
)

func (r AdResult) String() string {
	switch r {
	case AdFinished:
		return "finished"
	case AdSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Ads plays rewarded intermissions.
type Ads interface {
	Showing() bool
	Ready() bool
	Show(done func(AdResult))
}

// Sound is a short sound effect.
type Sound int

const (
	SoundDing Sound = iota
	SoundLose
	SoundAlarm
)

func (s Sound) String() string {
	switch s {
	case SoundDing:
		return "ding"
	case SoundLose:
		return "lose"
	case SoundAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// Audio plays music and effects. An empty track means silence.
type Audio interface {
	SetMusic(track string)
	PlayOnce(s Sound)
	PlayLoop(s Sound)
	StopEffect()
	EffectPlaying() bool
}

// PlayerData is the locally persisted progress of the player.
type PlayerData struct {
	BestScore int
	GameCount int
}

// PlayerStore loads and saves PlayerData.
type PlayerStore interface {
	LoadPlayer() (PlayerData, error)
	SavePlayer(PlayerData) error
}

// Services bundles the collaborators a game reports to.
type Services struct {
	Leaderboard Leaderboard
	Ads         Ads
	Audio       Audio
	Players     PlayerStore
}

// WithDefaults returns a copy where every missing service is replaced by a
// no-op implementation.
func (s Services) WithDefaults() Services {
	if s.Leaderboard == nil {
		s.Leaderboard = nopLeaderboard{}
	}
	if s.Ads == nil {
		s.Ads = nopAds{}
	}
	if s.Audio == nil {
		s.Audio = &silentAudio{}
	}
	if s.Players == nil {
		s.Players = &memoryPlayers{}
	}
	return s
}

type nopLeaderboard struct{}

func (nopLeaderboard) Authenticate(done func(bool))                 { done(false) }
func (nopLeaderboard) ReportScore(_ string, _ int64, done func(bool)) { done(false) }
func (nopLeaderboard) LoadLocalScore(_ string, done func(LocalScore, bool)) {
	done(LocalScore{}, false)
}
func (nopLeaderboard) ReportProgress(_ string, _ float64, done func(bool)) { done(false) }
func (nopLeaderboard) ShowBoards()                                       {}

type nopAds struct{}

func (nopAds) Showing() bool            { return false }
func (nopAds) Ready() bool              { return false }
func (nopAds) Show(done func(AdResult)) { done(AdFailed) }

type silentAudio struct {
	looping bool
}

func (a *silentAudio) SetMusic(string)     {}
func (a *silentAudio) PlayOnce(Sound)      {}
func (a *silentAudio) PlayLoop(Sound)      { a.looping = true }
func (a *silentAudio) StopEffect()         { a.looping = false }
func (a *silentAudio) EffectPlaying() bool { return a.looping }

type memoryPlayers struct {
	data PlayerData
}

func (m *memoryPlayers) LoadPlayer() (PlayerData, error) { return m.data, nil }
func (m *memoryPlayers) SavePlayer(d PlayerData) error   { m.data = d; return nil }
