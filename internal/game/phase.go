package game

// PhaseKind names a phase of the game flow.
type PhaseKind int

const (
	PhaseLoading PhaseKind = iota
	PhaseSplash
	PhaseTutorial
	PhaseTitle
	PhaseCountdown
	PhasePlay
	PhaseLevelCompleted
	PhaseLose
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseLoading:
		return "loading"
	case PhaseSplash:
		return "splash"
	case PhaseTutorial:
		return "tutorial"
	case PhaseTitle:
		return "title"
	case PhaseCountdown:
		return "countdown"
	case PhasePlay:
		return "play"
	case PhaseLevelCompleted:
		return "level_completed"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Phase is one state of the game flow. The set of phases is closed: every
// implementation lives in this package and carries only its own fields.
type Phase interface {
	Kind() PhaseKind
	phase()
}

type (
	// Loading performs the one-shot initialization on exit.
	Loading struct{}

	// Splash waits for the host intro to finish.
	Splash struct{}

	// Tutorial walks through the tutorial panels.
	Tutorial struct {
		step      int
		stepStart float64
		panels    []PanelPose
	}

	// Title is the menu.
	Title struct {
		titleIndex int
	}

	// Countdown shows 3, 2, 1, GO.
	Countdown struct {
		symbolIndex int
	}

	// Play is one maze against the clock.
	Play struct {
		previousElapsed float64
		timerEnabled    bool
	}

	// LevelCompleted replays the solution while counting points.
	LevelCompleted struct {
		scoreIncrement int
	}

	// Lose shows the skull and settles the game.
	Lose struct{}
)

func (*Loading) Kind() PhaseKind        { return PhaseLoading }
func (*Splash) Kind() PhaseKind         { return PhaseSplash }
func (*Tutorial) Kind() PhaseKind       { return PhaseTutorial }
func (*Title) Kind() PhaseKind          { return PhaseTitle }
func (*Countdown) Kind() PhaseKind      { return PhaseCountdown }
func (*Play) Kind() PhaseKind           { return PhasePlay }
func (*LevelCompleted) Kind() PhaseKind { return PhaseLevelCompleted }
func (*Lose) Kind() PhaseKind           { return PhaseLose }

func (*Loading) phase()        {}
func (*Splash) phase()         {}
func (*Tutorial) phase()       {}
func (*Title) phase()          {}
func (*Countdown) phase()      {}
func (*Play) phase()           {}
func (*LevelCompleted) phase() {}
func (*Lose) phase()           {}

func (c *Context) enter(p Phase) {
	switch p := p.(type) {
	case *Loading:
	case *Splash:
		c.enterSplash()
	case *Tutorial:
		c.enterTutorial(p)
	case *Title:
		c.enterTitle(p)
	case *Countdown:
		c.enterCountdown(p)
	case *Play:
		c.enterPlay(p)
	case *LevelCompleted:
		c.enterLevelCompleted(p)
	case *Lose:
		c.enterLose()
	}
}

func (c *Context) execute(p Phase) {
	switch p := p.(type) {
	case *Loading:
	case *Splash:
		c.executeSplash()
	case *Tutorial:
		c.executeTutorial(p)
	case *Title:
		c.executeTitle(p)
	case *Countdown:
		c.executeCountdown(p)
	case *Play:
		c.executePlay(p)
	case *LevelCompleted:
		c.executeLevelCompleted(p)
	case *Lose:
		c.executeLose()
	}
}

func (c *Context) exit(p Phase) {
	switch p.(type) {
	case *Loading:
		c.exitLoading()
	case *Tutorial:
		c.exitTutorial()
	case *Title:
		c.exitTitle()
	case *Play:
		c.exitPlay()
	case *Lose:
		c.exitLose()
	}
}
