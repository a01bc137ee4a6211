package game

import "fmt"

// Banner is an informational message shown over the board. The empty
// banner shows nothing.
type Banner string

const (
	BannerNone      Banner = ""
	BannerHowToPlay Banner = "Welcome to Flamin Maze!\n\nHOW TO PLAY?"
	BannerCoinSlot  Banner = "Welcome to Flamin Maze!\n\nTap the coin slot to start the game!"
	BannerDrawPath  Banner = "Draw a path and find the exit!\nHurry up!"
	BannerMazeExit  Banner = "Hint! The exit of each maze is the spot the furthest away from its entrance!"
	BannerTVButton  Banner = "Hint! When the TV button is lit up, tap it to watch a video ad and get more time!\n(Up to 3 times per game!)"
	BannerRating    Banner = "If you like the game, please rate it 5 stars!\n(You can do so from the podium menu!)\n\nYour kind support is greatly appreciated!"
)

// RankBanner announces the worldwide rank of the player.
func RankBanner(rank int) Banner {
	return Banner(fmt.Sprintf("You are now ranked #%d worldwide!", rank))
}

// hintFlags remembers which one-shot hints were shown.
type hintFlags uint8

const (
	hintCoinSlot hintFlags = 1 << iota
	hintMazeExit
	hintTVButton
)

// bannerState fades between the requested banner and the one on screen.
// A new banner only appears once the previous one has fully faded out.
type bannerState struct {
	requested Banner
	shown     Banner
	alpha     float64
}

func (b *bannerState) step(speed float64) {
	if b.shown == b.requested && b.requested != BannerNone {
		b.alpha = min(1, b.alpha+speed)
		return
	}
	b.alpha = max(0, b.alpha-speed)
	if b.alpha == 0 {
		b.shown = b.requested
	}
}
