package diskimage

import "testing"

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("game.bin", make([]byte, DSKSize), false)
	if err == nil {
		t.Fatal("expected an error for an unrecognized extension")
	}
}

func TestLoadDSKBySize(t *testing.T) {
	img, err := Load("game.dsk", make([]byte, DSKSize), false)
	if err != nil {
		t.Fatal(err)
	}
	if img.NumTracks() != TotalTracks {
		t.Errorf("NumTracks() = %d, want %d", img.NumTracks(), TotalTracks)
	}
}

func TestDOSNibbilizeRoundTrip(t *testing.T) {
	data := make([]byte, DSKSize)
	for i := range data {
		data[i] = byte(i * 7)
	}
	img, err := Load("game.dsk", data, false)
	if err != nil {
		t.Fatal(err)
	}
	d := img.(*dosImage)

	for track := 0; track < 3; track++ {
		nibbled := d.ReadTrack(uint8(track))
		if !d.WriteTrack(uint8(track), nibbled) {
			t.Fatalf("track %d: denibbilize reported bad prologue", track)
		}
	}

	base := 0
	for i := 0; i < TotalSectors*SectorBytes*3; i++ {
		if data[base+i] != d.raw[base+i] {
			t.Fatalf("round trip mismatch at byte %d: got 0x%02x, want 0x%02x", i, d.raw[base+i], data[base+i])
		}
	}
}

func TestNibImagePassthrough(t *testing.T) {
	data := make([]byte, NibSize)
	data[100] = 0xAB
	img, err := Load("game.nib", data, false)
	if err != nil {
		t.Fatal(err)
	}
	track0 := img.ReadTrack(0)
	if track0[100] != 0xAB {
		t.Errorf("nib passthrough byte = 0x%02x, want 0xab", track0[100])
	}
}

func TestProDOSInterleaveDiffersFromDOS(t *testing.T) {
	if sectorMap[DOSFormat] == sectorMap[ProDOSFormat] {
		t.Fatal("DOS and ProDOS sector interleave maps should differ")
	}
}
