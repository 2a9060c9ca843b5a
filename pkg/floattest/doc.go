// Package floattest provides testing fakes for the hover controllers.
//
// Target is a scripted dom.Target: set its rectangle, then dispatch
// synthetic events to drive a controller through its lifecycle. Factory
// is a recording overlay.Factory that remembers every mount, patch, and
// destroy so tests can assert on the exact instance traffic.
//
//	target := floattest.NewTarget(dom.Rect{Left: 100, Top: 50, Width: 40, Height: 20})
//	factory := floattest.NewFactory()
//
//	ctrl := tooltip.New(factory)
//	ctrl.Attach(target, overlay.Content{Label: "hi"})
//	target.Dispatch(dom.EventMouseEnter)
//
//	floattest.ExpectLive(t, factory, 1)
package floattest
