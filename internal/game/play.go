package game

import (
	"math"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// Levels after which the maze width is picked at random.
const fixedWidthLevels = 7

func (c *Context) enterCountdown(p *Countdown) {
	c.difficulty = 0
	c.level = 1
	c.mazeTimer = c.cfg.Timer.Max
	c.maze.InitializeStart()
	c.score = 0
	c.adCounter = 0
	p.symbolIndex = 0
	c.setEnabled(ControlTimer, true)
	c.boardDisplayed = true
}

func (c *Context) executeCountdown(p *Countdown) {
	if c.elapsed >= float64(p.symbolIndex) {
		if p.symbolIndex < len(maze.Countdown) {
			c.maze.GenerateFromSymbol(maze.Countdown[p.symbolIndex])
			if p.symbolIndex < len(maze.Countdown)-1 {
				c.svc.Audio.PlayOnce(core.SoundDing)
			} else {
				c.updateMusic()
			}
			p.symbolIndex++
		} else {
			c.next = &Play{}
		}
	}

	c.brightness = flash(p.symbolIndex != len(maze.Countdown) || c.frames&4 != 0)
}

func (c *Context) enterPlay(p *Play) {
	if c.level >= 10 {
		c.reportProgress(core.AchievementFirstSteps, 100)
		if c.level >= 25 {
			c.reportProgress(core.AchievementMazeMaster, 100)
			if c.level >= 50 {
				c.reportProgress(core.AchievementGodOfMaze, 100)
			}
		}
	}

	width := c.level
	if c.level > fixedWidthLevels {
		width = 2 + c.rng.Intn(6)
	}
	c.maze.GenerateRandom(width)

	if c.level == 1 {
		c.banner.requested = BannerDrawPath
	}

	c.tracker.Reset()
	p.previousElapsed = c.elapsed
	p.timerEnabled = true
}

func (c *Context) executePlay(p *Play) {
	delta := c.elapsed - p.previousElapsed
	p.previousElapsed = c.elapsed

	if c.svc.Ads.Showing() {
		return
	}

	if begin, end, ok := c.tracker.Sample(c.held, c.pointer); ok && c.maze.ApplyTapSegment(begin, end) {
		c.next = &LevelCompleted{}
	}

	speed := c.tiers.Tier(c.difficulty).TimerSpeed
	if p.timerEnabled {
		c.mazeTimer -= delta * speed
	}

	warning := c.cfg.Timer.Warning
	if c.mazeTimer > warning {
		c.brightness = min(1, c.brightness+c.cfg.Effects.LedFade)
		return
	}

	c.brightness = 0.6 + 0.4*math.Cos((c.mazeTimer-warning)*10/speed)
	if c.mazeTimer <= 0 {
		c.mazeTimer = 0
		c.next = &Lose{}
		return
	}

	if !c.svc.Audio.EffectPlaying() {
		c.svc.Audio.PlayLoop(core.SoundAlarm)
	}

	if !c.adEnabled {
		c.adEnabled = c.cfg.Ads.Enabled && c.adCounter < c.cfg.Ads.MaxPerGame && p.timerEnabled && c.svc.Ads.Ready()
	} else if c.taps.tapped(ControlButtonTV) {
		p.timerEnabled = false
		c.adEnabled = false
		c.svc.Ads.Show(deliver(&c.inbox, func(result core.AdResult) {
			c.log.Debug("intermission", "result", result)
			if result == core.AdFinished {
				c.mazeTimer = c.cfg.Timer.Max
				c.adCounter++
				c.svc.Audio.StopEffect()
			}
			p.timerEnabled = true
		}))
	}
}

func (c *Context) exitPlay() {
	c.svc.Audio.StopEffect()
	c.banner.requested = BannerNone
	c.adEnabled = false
}

func (c *Context) enterLevelCompleted(p *LevelCompleted) {
	c.svc.Leaderboard.ReportScore(core.BoardHighLevels, int64(c.level), c.logged("score", core.BoardHighLevels))

	c.level++
	p.scoreIncrement = c.difficulty + 1

	if tier, changed := c.tiers.Advance(c.difficulty, c.level); changed {
		c.difficulty = tier
		c.updateMusic()
	}

	c.maze.ClearPath()
}

func (c *Context) executeLevelCompleted(p *LevelCompleted) {
	switch {
	case !c.maze.IsPathFullyCleaned():
		c.brightness = flash(c.elapsed > 0.5 || c.frames&4 != 0)
		if c.frames&7 == 0 {
			c.svc.Audio.PlayOnce(core.SoundDing)
		}
		if c.frames&3 == 0 {
			c.maze.StepPathCleanup()
			c.mazeTimer = min(c.cfg.Timer.Max, c.mazeTimer+1)
			c.score += p.scoreIncrement
		}
	case c.brightness > 0:
		c.brightness = max(0, c.brightness-c.cfg.Effects.LedFade)
	default:
		c.next = &Play{}
	}
}

func (c *Context) enterLose() {
	c.maze.GenerateFromSymbol(maze.SymbolSkull)
	c.svc.Audio.PlayOnce(core.SoundLose)
	c.music = ""
}

func (c *Context) executeLose() {
	if c.elapsed > c.cfg.LoseDuration {
		c.next = &Title{}
	}

	c.brightness = flash(c.elapsed > 1 || c.frames&4 != 0)

	blinking := c.frames&16 != 0
	c.setEnabled(ControlTimer, blinking)
	c.setEnabled(ControlScore, blinking)
}

func (c *Context) exitLose() {
	c.setEnabled(ControlTimer, false)

	if c.score > c.best {
		c.best = c.score
	}
	c.gameCount++

	c.reportGame()

	c.reportProgress(core.AchievementExplorer, 100*float64(c.gameCount)/10)
	c.reportProgress(core.AchievementAdventurer, 100*float64(c.gameCount)/50)
	c.reportProgress(core.AchievementHero, 100*float64(c.gameCount)/100)
	if c.level == 1 {
		c.reportProgress(core.AchievementLoser, 100)
	}

	c.chooseBanner()
	c.savePlayer()
}

// reportGame reports the best score and the number of games, then adopts
// the board values when they are larger than the local ones.
func (c *Context) reportGame() {
	lb := c.svc.Leaderboard
	lb.ReportScore(core.BoardHighScores, int64(c.best), deliver(&c.inbox, func(bool) {
		lb.LoadLocalScore(core.BoardHighScores, deliver2(&c.inbox, func(s core.LocalScore, ok bool) {
			if ok {
				if s.Rank > 0 {
					c.rankCurrent = s.Rank
				}
				if s.Value > int64(c.best) {
					c.best = int(s.Value)
					c.savePlayer()
				}
			}
			lb.ReportScore(core.BoardPlayedGames, int64(c.gameCount), deliver(&c.inbox, func(bool) {
				lb.LoadLocalScore(core.BoardPlayedGames, deliver2(&c.inbox, func(s core.LocalScore, ok bool) {
					if ok && s.Value > int64(c.gameCount) {
						c.gameCount = int(s.Value)
						c.savePlayer()
					}
				}))
			}))
		}))
	}))
}

func (c *Context) chooseBanner() {
	b := c.cfg.Banners
	if b.RatingPeriod > 0 && c.gameCount%b.RatingPeriod == 0 {
		c.banner.requested = BannerRating
		return
	}
	switch {
	case c.hints&hintMazeExit == 0 && c.difficulty <= b.MazeExitMaxTier:
		c.hints |= hintMazeExit
		c.banner.requested = BannerMazeExit
	case c.hints&hintTVButton == 0:
		c.hints |= hintTVButton
		c.banner.requested = BannerTVButton
	}
}

// flash converts a blink condition into a brightness.
func flash(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
