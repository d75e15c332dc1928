package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.IsDown(KeyFire) {
		t.Error("zero InputFrame should have no keys down")
	}

	f.Set(KeyFire)
	f.Set(KeyLeft)
	if !f.IsDown(KeyFire) || !f.IsDown(KeyLeft) {
		t.Error("Set keys should be down")
	}
	if f.IsDown(KeyRight) {
		t.Error("KeyRight was never set")
	}

	clone := f.Clone()
	f.Clear()
	if f.IsDown(KeyFire) {
		t.Error("Clear should release all keys")
	}
	if !clone.IsDown(KeyFire) || !clone.IsDown(KeyLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestNewInputFrameWithKeys(t *testing.T) {
	f := NewInputFrame(KeyUp, KeySlow)
	for _, k := range Keys {
		want := k == KeyUp || k == KeySlow
		if f.IsDown(k) != want {
			t.Errorf("IsDown(%s) = %v, expected %v", k, f.IsDown(k), want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyReturn.String() != "Return" {
		t.Errorf("KeyReturn.String() = %q", KeyReturn.String())
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
}
