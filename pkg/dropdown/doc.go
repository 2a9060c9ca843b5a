// Package dropdown manages a click-toggled floating panel bound to a
// trigger element.
//
// It shares the overlay lifecycle model of the tooltip package but is
// driven by clicks instead of hover: a click on the trigger toggles the
// panel, and the panel can optionally dismiss on Escape or on clicks
// that bubble past the trigger (configure a dismiss target, typically
// the document, for either behavior).
//
//	ctrl := dropdown.New(factory,
//	    dropdown.WithDismissTarget(doc),
//	    dropdown.WithCloseOnEscape(true),
//	)
//	ctrl.Attach(trigger, overlay.Content{Body: menu})
//	defer ctrl.Detach()
package dropdown
