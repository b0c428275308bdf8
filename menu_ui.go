package main

import "github.com/aldermoor/highground/session"

// newMenuSurface builds the title menu. Visible until the session starts.
func newMenuSurface(c *session.Controller) *surface {
	face := uiFace()
	s := &surface{visible: true}
	s.ui = uiPanel(
		uiTitle("HIGHGROUND", face),
		uiButton("Start", face, c.StartSession),
		uiButton("Quit", face, c.Quit),
	)
	return s
}
