package disk

import "testing"

type fakeImage struct {
	tracks     [35][]byte
	readOnly   bool
	numTracks  uint8
	writeCalls int
}

func newFakeImage() *fakeImage {
	f := &fakeImage{numTracks: 35}
	for i := range f.tracks {
		f.tracks[i] = []byte{byte(i), 0xFF, 0xFF, 0xFF}
	}
	return f
}

func (f *fakeImage) ReadTrack(track uint8) []byte { return append([]byte(nil), f.tracks[track]...) }
func (f *fakeImage) WriteTrack(track uint8, data []byte) bool {
	f.tracks[track] = append([]byte(nil), data...)
	f.writeCalls++
	return true
}
func (f *fakeImage) ReadOnly() bool   { return f.readOnly }
func (f *fakeImage) Dirty() bool      { return false }
func (f *fakeImage) NumTracks() uint8 { return f.numTracks }
func (f *fakeImage) Filename() string { return "fake" }
func (f *fakeImage) Save() error      { return nil }

func TestMotorOnOff(t *testing.T) {
	c := New()
	c.Access(0x09, false, 0)
	if !c.MotorOn(0) {
		t.Errorf("expected motor on after reg 0x09")
	}
	c.Access(0x08, false, 0)
	if c.MotorOn(0) {
		t.Errorf("expected motor off after reg 0x08")
	}
}

func TestDriveSelect(t *testing.T) {
	c := New()
	img0, img1 := newFakeImage(), newFakeImage()
	c.InsertDisk(0, img0)
	c.InsertDisk(1, img1)

	c.Access(0x0B, false, 0) // select drive 2
	c.Access(0x09, false, 0) // motor on drive 2
	if c.MotorOn(0) {
		t.Errorf("drive 0 motor should be untouched")
	}
	if !c.MotorOn(1) {
		t.Errorf("drive 1 motor should be on")
	}
}

func TestReadWriteProtectSense(t *testing.T) {
	c := New()
	img := newFakeImage()
	img.readOnly = true
	c.InsertDisk(0, img)

	c.Access(0x0D, false, 0)      // sense write-protect into the data register
	v := c.Access(0x0E, false, 0) // even register: returns the data register
	if v&0x80 == 0 {
		t.Errorf("expected write-protect bit set, got 0x%02x", v)
	}
}

func TestStepperMovesTrackForward(t *testing.T) {
	c := New()
	img := newFakeImage()
	c.InsertDisk(0, img)

	// Standard step-in sequence: phase1 on, phase2 on, phase1 off.
	c.Access(0x03, false, 0) // phase 1 on
	c.Access(0x05, false, 0) // phase 2 on
	c.Access(0x02, false, 0) // phase 1 off

	tr, _ := c.TrackAndSector(0)
	if tr == 0 {
		t.Errorf("expected the head to have stepped off track 0, got track %d", tr)
	}
}

func TestReadWriteCycleThroughTrackBuffer(t *testing.T) {
	c := New()
	img := newFakeImage()
	c.InsertDisk(0, img)

	c.Access(0x0E, false, 0) // read mode
	v := c.Access(0x0C, false, 0)
	if v != 0 { // tracks[0][0] == byte(0)
		t.Errorf("first nibble = 0x%02x, want 0x00", v)
	}

	c.Access(0x0F, true, 0x42) // write mode, latching 0x42 into the data register
	c.Access(0x0C, false, 0)   // shift the latch out to the next track byte (index 1)
	c.EjectDisk(0)
	if img.tracks[0][1] != 0x42 {
		t.Errorf("track data after write+eject = 0x%02x, want 0x42", img.tracks[0][1])
	}
}

func TestEjectFlushesDirtyTrack(t *testing.T) {
	c := New()
	img := newFakeImage()
	c.InsertDisk(0, img)
	before := img.writeCalls
	c.Access(0x0F, false, 0) // write mode
	c.Access(0x0C, true, 0x99)
	c.EjectDisk(0)
	if img.writeCalls != before+1 {
		t.Errorf("expected exactly one WriteTrack call on eject, got %d more", img.writeCalls-before)
	}
}
