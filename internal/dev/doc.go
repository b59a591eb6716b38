// Package dev provides the preview server and live reload for markout
// projects.
//
// Four pieces cooperate: a Watcher polls the project tree for changes,
// a Rebuilder reruns the site program to regenerate the output
// directory, a ReloadServer pushes refresh messages to browsers over
// WebSocket, and the Server ties them together while serving the
// output with the reload client spliced into every HTML page.
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Live reload can be disabled via markout.json (dev.reload=false).
// Watch paths come from dev.watch plus the assets directory; the
// output directory is always ignored to keep builds from retriggering
// themselves.
//
// # Live Reload Protocol
//
// The browser connects to /_markout/reload via WebSocket. Messages are
// JSON-encoded:
//
//	{"type": "reload"}                // full page reload
//	{"type": "css"}                   // stylesheet-only refresh
//	{"type": "error", "error": "..."} // show error overlay
//	{"type": "clear"}                 // clear error overlay
package dev
