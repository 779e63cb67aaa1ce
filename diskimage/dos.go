package diskimage

// dosImage backs .dsk/.do/.po images: 35 tracks of 16 raw 256-byte
// sectors, nibbilized to/from the 6-and-2 encoded byte stream a drive
// actually reads on ReadTrack/WriteTrack.
type dosImage struct {
	base
	format Format
	volume uint8
}

func newDOSImage(filename string, data []byte, readOnly bool, format Format) *dosImage {
	raw := make([]byte, len(data))
	copy(raw, data)
	return &dosImage{
		base:   base{raw: raw, filename: filename, readOnly: readOnly, numTracks: TotalTracks},
		format: format,
		volume: 254,
	}
}

func (d *dosImage) Save() error { return d.save() }

func (d *dosImage) ReadTrack(track uint8) []byte {
	buf := make([]byte, 0, maxTrackBufSize)
	return d.nibbilizeTrack(int(track), buf)
}

func (d *dosImage) WriteTrack(track uint8, data []byte) bool {
	ok := d.denibbilizeTrack(int(track), data)
	if ok {
		d.dirty = true
	}
	return ok
}

// nibbilizeTrack converts a track's 16 raw sectors into the gap-
// delimited, 6-and-2 encoded nibble stream a real drive would present
// on read, sector order scrambled by the format's interleave map.
func (d *dosImage) nibbilizeTrack(track int, w []byte) []byte {
	base := track * TotalSectors * SectorBytes
	trackData := d.raw[base : base+TotalSectors*SectorBytes]

	for i := 0; i < gap1Bytes; i++ {
		w = append(w, 0xFF)
	}

	for sector := 0; sector < TotalSectors; sector++ {
		w = append(w, 0xD5, 0xAA, 0x96)
		w = code44(w, d.volume)
		w = code44(w, uint8(track))
		w = code44(w, uint8(sector))
		w = code44(w, d.volume^uint8(track)^uint8(sector))
		w = append(w, 0xDE, 0xAA, 0xEB)

		for i := 0; i < gap2Bytes; i++ {
			w = append(w, 0xFF)
		}
		w = append(w, 0xD5, 0xAA, 0xAD)

		mapped := sectorMap[d.format][sector]
		sectorPtr := trackData[int(mapped)*SectorBytes : int(mapped)*SectorBytes+SectorBytes]

		var nib [344]byte
		copy(nib[86:342], sectorPtr)
		nib[342] = 0

		for offset := uint8(0); offset < 0x56; offset++ {
			v1 := sectorPtr[offset+0xAC]
			v2 := sectorPtr[offset+0x56]
			v3 := sectorPtr[offset]
			val := (((v1&0x1)<<1 | (v1&0x2)>>1) << 6) |
				(((v2&0x1)<<1 | (v2&0x2)>>1) << 4) |
				(((v3&0x1)<<1 | (v3&0x2)>>1) << 2)
			nib[offset] = val
		}
		nib[0x56-1] &= 0x3F
		nib[0x56-2] &= 0x3F

		var xor uint8
		for i := 0; i <= 343; i++ {
			prev := nib[i]
			nib[i] ^= xor
			xor = prev
		}
		for i := 0; i <= 342; i++ {
			w = append(w, writeTranslateTable[nib[i]>>2])
		}

		w = append(w, 0xDE, 0xAA, 0xEB)
		for i := 0; i < gap3Bytes; i++ {
			w = append(w, 0xFF)
		}
	}
	return w
}

// denibbilizeTrack is the inverse of nibbilizeTrack: it parses the
// gap-delimited nibble stream data back into the track's 16 raw
// sectors, returning false if an address or data field prologue
// doesn't match (a corrupt or non-Apple-II track).
func (d *dosImage) denibbilizeTrack(track int, data []byte) bool {
	base := track * TotalSectors * SectorBytes
	trackData := d.raw[base : base+TotalSectors*SectorBytes]

	pos := 0
	skipSync := func() {
		for pos < len(data) && data[pos] == 0xFF {
			pos++
		}
	}
	matchProlog := func(a, b, c uint8) bool {
		if pos+3 > len(data) || data[pos] != a || data[pos+1] != b || data[pos+2] != c {
			return false
		}
		pos += 3
		return true
	}

	for sector := 0; sector < TotalSectors; sector++ {
		skipSync()
		if !matchProlog(0xD5, 0xAA, 0x96) {
			return false
		}
		pos += 4 // volume + track, both 4-and-4 encoded, not needed to reconstruct
		encodedSector := ((data[pos] & 0x55) << 1) | (data[pos+1] & 0x55)
		pos += 2
		mapped := sectorMap[d.format][encodedSector]
		sectorPtr := trackData[int(mapped)*SectorBytes : int(mapped)*SectorBytes+SectorBytes]

		pos += 2 // checksum
		pos += 3 // epilogue

		skipSync()
		if !matchProlog(0xD5, 0xAA, 0xAD) {
			return false
		}

		var nib [344]byte
		for i := 0; i <= 343; i++ {
			nib[i] = readTranslateTable[data[pos]&0x7F]
			pos++
		}
		pos += 5 // the loop read the checksum and first epilogue byte; skip the rest of the epilogue and 3 sync bytes

		var xor uint8
		for i := 0; i < 343; i++ {
			nib[i] ^= xor
			xor = nib[i]
		}

		for b := 0; b < 0x56; b++ {
			sectorPtr[b] = (nib[b+0x56] & 0xFC) | ((nib[b] & 0x08) >> 3) | ((nib[b] & 0x04) >> 1)
			sectorPtr[b+0x56] = (nib[b+0x56+0x56] & 0xFC) | ((nib[b] & 0x20) >> 5) | ((nib[b] & 0x10) >> 3)
			if b+0xAC < 0x100 {
				sectorPtr[b+0xAC] = (nib[b+0xAC+0x56] & 0xFC) | ((nib[b] & 0x80) >> 7) | ((nib[b] & 0x40) >> 5)
			}
		}
	}
	return true
}
