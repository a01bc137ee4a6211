package game

import (
	"sync"
	"testing"
)

func TestTaps(t *testing.T) {
	bg, board, slot := ControlBackground, ControlGameBoard, ControlSlot

	tests := []struct {
		name          string
		prevHeld      bool
		prev          Controls
		held          bool
		cur           Controls
		tapped        Control
		wantTapped    bool
		wantExclusive bool
	}{
		{"press on board", false, 0, true, ControlsOf(bg, board), board, true, true},
		{"board still held", true, ControlsOf(bg, board), true, ControlsOf(bg, board), board, false, false},
		{"release", true, ControlsOf(bg, board), false, ControlsOf(bg, board), board, false, false},
		{"press on slot", false, 0, true, ControlsOf(bg, slot), slot, true, false},
		{"slide from slot onto board", true, ControlsOf(bg, slot), true, ControlsOf(bg, board), board, true, false},
		{"background only", false, 0, true, ControlsOf(bg), bg, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tp taps
			tp.update(tt.prevHeld, tt.prev)
			tp.update(tt.held, tt.cur)

			if got := tp.tapped(tt.tapped); got != tt.wantTapped {
				t.Errorf("tapped(%v) = %v, want %v", tt.tapped, got, tt.wantTapped)
			}
			if got := tp.tappedExclusive(bg, board); got != tt.wantExclusive {
				t.Errorf("tappedExclusive = %v, want %v", got, tt.wantExclusive)
			}
		})
	}
}

func TestControlsOf(t *testing.T) {
	s := ControlsOf(ControlSlot, ControlButtonTV)
	for c := ControlBackground; c < controlCount; c++ {
		want := c == ControlSlot || c == ControlButtonTV
		if s.Has(c) != want {
			t.Errorf("Has(%v) = %v, want %v", c, s.Has(c), want)
		}
	}
}

func TestBannerFade(t *testing.T) {
	var b bannerState
	b.requested = BannerCoinSlot

	// The banner swaps in while invisible, then fades in.
	b.step(0.25)
	if b.shown != BannerCoinSlot || b.alpha != 0 {
		t.Fatalf("after swap: shown=%q alpha=%v", b.shown, b.alpha)
	}
	for range 4 {
		b.step(0.25)
	}
	if b.alpha != 1 {
		t.Fatalf("alpha = %v, want 1", b.alpha)
	}

	// A new request fades the old text out before showing the new one.
	b.requested = BannerDrawPath
	b.step(0.25)
	if b.shown != BannerCoinSlot || b.alpha != 0.75 {
		t.Errorf("fading: shown=%q alpha=%v", b.shown, b.alpha)
	}
	for range 3 {
		b.step(0.25)
	}
	if b.shown != BannerDrawPath || b.alpha != 0 {
		t.Errorf("after fade out: shown=%q alpha=%v", b.shown, b.alpha)
	}
}

func TestRankBanner(t *testing.T) {
	if got := RankBanner(12); got != "You are now ranked #12 worldwide!" {
		t.Errorf("RankBanner = %q", got)
	}
}

func TestMailbox(t *testing.T) {
	var m mailbox
	var got []int

	var wg sync.WaitGroup
	for i := range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deliver(&m, func(v int) { got = append(got, v) })(i)
		}()
	}
	wg.Wait()

	if len(got) != 0 {
		t.Fatal("completions ran before drain")
	}
	m.drain()
	if len(got) != 3 {
		t.Errorf("drained %d completions, want 3", len(got))
	}
	m.drain()
	if len(got) != 3 {
		t.Error("drain should empty the queue")
	}
}
