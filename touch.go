package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (s *Simulator) handleTouchEvents() {
	// Touch start
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.touches.Press(id, x, y)
	}

	// Movement of touches still down
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.touches.Move(id, x, y)
	}
	active := slices.Clone(s.touchIDs)

	// Touch end; the position is gone by now, so use the last tick's
	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if at, ok := s.touches.Release(id, x, y); ok {
			s.tap(at.X, at.Y)
		}
	}

	// Clean up touches that vanished without a release
	s.touches.Forget(func(id ebiten.TouchID) bool {
		return slices.Contains(active, id)
	})
}
