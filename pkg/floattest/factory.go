package floattest

import (
	"testing"

	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

// Factory is a recording overlay.Factory.
// Every mount produces an *Instance that remembers the content and
// anchor it mounted with, the patches applied to it, and whether it has
// been destroyed.
type Factory struct {
	mounts []*Instance
}

// NewFactory creates an empty recording factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Mount implements overlay.Factory.
func (f *Factory) Mount(content overlay.Content, anchor overlay.Anchor, parent string) overlay.Instance {
	inst := &Instance{
		Content: content,
		Anchor:  anchor,
		Parent:  parent,
	}
	f.mounts = append(f.mounts, inst)
	return inst
}

// Mounts returns every instance ever mounted, in mount order, including
// destroyed ones.
func (f *Factory) Mounts() []*Instance {
	return f.mounts
}

// MountCount returns the total number of mounts.
func (f *Factory) MountCount() int {
	return len(f.mounts)
}

// LiveCount returns the number of instances not yet destroyed.
func (f *Factory) LiveCount() int {
	n := 0
	for _, inst := range f.mounts {
		if !inst.Destroyed {
			n++
		}
	}
	return n
}

// Last returns the most recently mounted instance, or nil.
func (f *Factory) Last() *Instance {
	if len(f.mounts) == 0 {
		return nil
	}
	return f.mounts[len(f.mounts)-1]
}

// Instance is a recorded floating instance.
type Instance struct {
	Content overlay.Content // content captured at mount
	Anchor  overlay.Anchor
	Parent  string

	Patches   []overlay.Patch
	Destroyed bool

	// DestroyCount tracks redundant destroys; the controllers must
	// never produce more than one.
	DestroyCount int
}

// Patch implements overlay.Instance, recording the patch and applying
// it to the captured content like a real renderer would.
func (i *Instance) Patch(p overlay.Patch) {
	i.Patches = append(i.Patches, p)
	i.Content = p.Apply(i.Content)
}

// Destroy implements overlay.Instance.
func (i *Instance) Destroy() {
	i.DestroyCount++
	i.Destroyed = true
}

// Label returns the instance's current text label.
func (i *Instance) Label() string {
	return i.Content.Label
}

// ExpectLive asserts the number of live (mounted, not destroyed)
// instances.
func ExpectLive(t *testing.T, f *Factory, want int) {
	t.Helper()
	if got := f.LiveCount(); got != want {
		t.Errorf("expected %d live instances, got %d (total mounts: %d)", want, got, f.MountCount())
	}
}

// ExpectMounts asserts the total number of mounts ever performed.
func ExpectMounts(t *testing.T, f *Factory, want int) {
	t.Helper()
	if got := f.MountCount(); got != want {
		t.Errorf("expected %d total mounts, got %d", want, got)
	}
}

// ExpectLabel asserts the current label of the most recent instance.
func ExpectLabel(t *testing.T, f *Factory, want string) {
	t.Helper()
	inst := f.Last()
	if inst == nil {
		t.Errorf("expected a mounted instance with label %q, got none", want)
		return
	}
	if got := inst.Label(); got != want {
		t.Errorf("expected instance label %q, got %q", want, got)
	}
}
