/*
Package demoreel generates placeholder dashboard animations for portfolio demo videos.

Each demo topic is a 2x2 grid of charts whose data is fabricated on every frame:
price curves, a state-of-charge gauge, a growing random walk and so on. A run
animates every topic in memory and then writes a short markdown guide that
explains how to turn recordings into the MP4 files the portfolio expects.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/demoreel"
	)

	func main() {
		// Both dashboards, 150 frames each, guide at ../public/videos/video-creation-guide.md
		if _, err := demoreel.New().Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}

Frames are not written to disk unless a Sink asks for them; see internal/export
and the --export-dir and --preview flags of the demoreel command.
*/
package demoreel
