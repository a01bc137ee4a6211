package game

import (
	"math"

	"github.com/vovakirdan/flamin-maze/internal/core"
)

// PanelPose is how one tutorial panel is drawn. X and Y are offsets from
// the board centre in layout units, with Y pointing up. Angle is in degrees.
type PanelPose struct {
	Alpha float64
	Scale float64
	X, Y  float64
	Angle float64
}

// Radius of the final panel circle in layout units.
const (
	panelRadiusX = 100.0
	panelRadiusY = 120.0
)

func (c *Context) enterTutorial(p *Tutorial) {
	c.banner.requested = BannerHowToPlay
	p.step = -1
	p.stepStart = c.elapsed
	p.panels = make([]PanelPose, len(c.cfg.Tutorial.Panels))
}

func (c *Context) executeTutorial(p *Tutorial) {
	n := len(p.panels)
	stepTimer := min((c.elapsed-p.stepStart)*1.5, 1)
	angleControl := c.elapsed * 0.2
	angleStep := 2 * math.Pi / float64(max(n, 1))

	for i := range p.panels {
		pose := &p.panels[i]
		switch {
		case p.step > n:
			pose.Alpha = 1 - stepTimer
			pose.Scale = 0.4
		case i == p.step:
			pose.Alpha = stepTimer
			pose.Scale = 1 - 0.3*stepTimer
		case i == p.step-1:
			pose.Alpha = 1
			pose.Scale = 0.7 - 0.3*stepTimer
			angle := 0.5*math.Pi + angleStep*(0.5-float64(i))
			pose.X = panelRadiusX * stepTimer * math.Cos(angle)
			pose.Y = panelRadiusY * stepTimer * math.Sin(angle)
		case i < p.step:
			pose.Alpha = 1
			pose.Scale = 0.4
		default:
			pose.Alpha = 0
			pose.Scale = 1
		}
		pose.Angle = 2 * math.Sin(angleControl)
		angleControl += angleStep
	}

	if stepTimer < 1 {
		return
	}
	if p.step > n {
		c.next = &Title{}
		return
	}
	if c.held || p.step == n {
		c.banner.requested = BannerNone
		p.step++
		p.stepStart = c.elapsed
		if p.step < n {
			c.svc.Audio.PlayOnce(core.SoundDing)
		} else if p.step == n {
			c.svc.Audio.PlayOnce(core.SoundLose)
		}
	}
}

func (c *Context) exitTutorial() {
	c.boardDisplayed = true
}
