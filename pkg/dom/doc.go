// Package dom defines the environment surfaces a hover controller needs
// from its host document: bounding geometry for a target element and
// listener registration for pointer events.
//
// The package contains no DOM implementation. A host supplies concrete
// Targets: the bridge package provides one backed by a live browser
// connection, and floattest provides a scripted fake for tests.
//
// Coordinates returned by Element.Rect are in whatever space the host's
// overlay factory positions floating elements in; the controllers never
// interpret them beyond anchor arithmetic.
package dom
