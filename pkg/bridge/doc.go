// Package bridge connects the hover controllers to a real browser over a
// WebSocket.
//
// The browser side reports pointer events together with the target's
// bounding rectangle; the bridge routes each event to the registered
// listeners of the matching remote element, in arrival order, from a
// single read-loop goroutine. Going the other way, the bridge's overlay
// factory turns Mount/Patch/Destroy calls into mount, patch, and destroy
// command frames the thin client applies to the live document.
//
// Frames are single JSON objects, one per WebSocket message:
//
//	client → server: {"t":"event","el":"save-btn","name":"mouseenter",
//	                  "rect":{"left":100,"top":50,"width":40,"height":20}}
//	server → client: {"t":"mount","id":1,"x":120,"y":70,"label":"Saved"}
//	                 {"t":"patch","id":1,"label":"Saving…"}
//	                 {"t":"destroy","id":1}
//
// A Session implements dom.Target (via Element) and overlay.Factory (via
// Factory), so controllers attach to remote elements exactly as they do
// to test fakes. Event dispatch runs through a middleware chain; the
// package ships Prometheus metrics and OpenTelemetry tracing middleware.
package bridge
