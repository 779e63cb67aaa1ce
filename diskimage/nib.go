package diskimage

// nibImage backs .nib images: the nibbilized byte stream is already
// what's on disk, one fixed-size 6656-byte (16 x 416) track at a time, so reads
// and writes are a straight copy.
type nibImage struct {
	base
}

func newNibImage(filename string, data []byte, readOnly bool) *nibImage {
	raw := make([]byte, len(data))
	copy(raw, data)
	return &nibImage{base: base{raw: raw, filename: filename, readOnly: readOnly, numTracks: TotalTracks}}
}

func (n *nibImage) Save() error { return n.save() }

func (n *nibImage) ReadTrack(track uint8) []byte {
	off := int(track) * NibSectorBytes * TotalSectors
	buf := make([]byte, NibSectorBytes*TotalSectors)
	copy(buf, n.raw[off:off+len(buf)])
	return buf
}

func (n *nibImage) WriteTrack(track uint8, data []byte) bool {
	off := int(track) * NibSectorBytes * TotalSectors
	copy(n.raw[off:off+NibSectorBytes*TotalSectors], data)
	n.dirty = true
	return true
}
