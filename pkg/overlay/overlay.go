package overlay

// Instance is the opaque handle to a mounted floating element.
// The controller that mounted it exclusively owns its lifecycle; no
// other component may patch or destroy it.
type Instance interface {
	// Patch applies a partial content update in place. The instance
	// identity is preserved; no destroy/recreate cycle occurs.
	Patch(p Patch)

	// Destroy unmounts the floating element and releases its resources.
	// Calling Destroy more than once is a no-op.
	Destroy()
}

// Factory mounts floating elements for a host environment.
//
// Mount is synchronous and never fails: positioning a floating element
// is a local presentation operation, and hosts that render remotely
// (like the bridge) absorb transport problems themselves rather than
// surfacing them into the hover state machine.
type Factory interface {
	// Mount creates a floating element showing content at anchor.
	// parent names the mount point in the host's terms; an empty parent
	// means the host's default floating layer.
	Mount(content Content, anchor Anchor, parent string) Instance
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(content Content, anchor Anchor, parent string) Instance

// Mount implements Factory.
func (f FactoryFunc) Mount(content Content, anchor Anchor, parent string) Instance {
	return f(content, anchor, parent)
}
