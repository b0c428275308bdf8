package main

import "github.com/aldermoor/highground/session"

// newPauseSurface builds the pause panel, shown while the session is paused.
func newPauseSurface(c *session.Controller) *surface {
	face := uiFace()
	s := &surface{}
	s.ui = uiPanel(
		uiTitle("Paused", face),
		uiButton("Resume", face, c.Resume),
		uiButton("Restart", face, c.Restart),
		uiButton("Quit", face, c.Quit),
	)
	return s
}
