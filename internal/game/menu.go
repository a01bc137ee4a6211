package game

func (c *Context) exitLoading() {
	c.loadPlayer()

	c.difficulty = c.cfg.Difficulty.TitleTier
	c.hue = c.tiers.Tier(c.difficulty).BlockHue
	c.score = c.best
	c.maze.Reset()

	c.svc.Leaderboard.Authenticate(deliver(&c.inbox, func(ok bool) {
		c.log.Info("leaderboard authentication", "ok", ok)
	}))
}

func (c *Context) enterSplash() {
	c.music = c.cfg.Music.Menu
}

func (c *Context) executeSplash() {
	timedOut := c.cfg.SplashDuration > 0 && c.elapsed >= c.cfg.SplashDuration
	if c.introDone || timedOut {
		c.next = &Tutorial{}
	}
}

func (c *Context) enterTitle(p *Title) {
	c.music = c.cfg.Music.Menu
	c.nextBackground()
	c.setEnabled(ControlScore, true)
	c.slotTarget = 1
	c.setEnabled(ControlButtonPodium, true)
	c.brightness = 1
	p.titleIndex = 0
}

func (c *Context) executeTitle(p *Title) {
	c.setEnabled(ControlSlot, c.frames&16 != 0)

	if c.banner.requested == BannerNone {
		if c.hints&hintCoinSlot == 0 {
			c.hints |= hintCoinSlot
			c.banner.requested = BannerCoinSlot
		} else if c.rankCurrent != c.rankDisplayed {
			c.rankDisplayed = c.rankCurrent
			c.banner.requested = RankBanner(c.rankCurrent)
		}
	}

	switch {
	case c.taps.tapped(ControlButtonPodium):
		c.svc.Leaderboard.ShowBoards()
	case c.slotOpened > 0.9 && c.taps.tapped(ControlSlot):
		c.next = &Countdown{}
	case c.taps.tappedExclusive(ControlBackground, ControlGameBoard):
		dismissable := c.banner.requested != BannerCoinSlot || c.gameCount >= c.cfg.Banners.DismissGameCount
		if c.banner.requested != BannerNone && dismissable {
			c.banner.requested = BannerNone
		} else {
			c.boardDisplayed = !c.boardDisplayed
		}
	}

	if c.boardDisplayed && c.frames%3 == 0 {
		c.maze.ScrollTitle(p.titleIndex)
		p.titleIndex++
	}
}

func (c *Context) exitTitle() {
	c.music = ""
	c.setEnabled(ControlSlot, false)
	c.slotTarget = 0
	c.setEnabled(ControlButtonPodium, false)
	c.hints |= hintCoinSlot
	c.banner.requested = BannerNone
}
