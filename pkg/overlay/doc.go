// Package overlay defines the floating-element capability consumed by the
// hover controllers: a Factory that mounts positioned floating content and
// returns an opaque Instance handle supporting patch and destroy.
//
// The package also owns the content model (a text label and/or a body
// renderer with a property bag) and the anchor arithmetic that turns a
// target rectangle plus a placement into an (x, y) anchor point.
//
// Hosts implement Factory; the bridge package sends mount/patch/destroy
// commands to a connected browser, and floattest records them for
// assertions.
package overlay
