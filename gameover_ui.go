package main

import (
	"github.com/aldermoor/highground/session"
	"github.com/ebitenui/ebitenui/widget"
)

// newGameOverSurface builds the game-over panel. The returned label is
// filled with the final tally when the session ends.
func newGameOverSurface(c *session.Controller) (*surface, *widget.Text) {
	face := uiFace()
	tally := uiTitle("", face)
	s := &surface{}
	s.ui = uiPanel(
		uiTitle("Game Over", face),
		tally,
		uiButton("Restart", face, c.Restart),
		uiButton("Quit", face, c.Quit),
	)
	return s, tally
}
