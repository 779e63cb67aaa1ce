// Package diskimage loads and saves Apple ][ floppy images and
// translates between their on-disk sector layout and the nibble
// stream a Disk ][ controller actually reads and writes, grounded on
// original_source/src/disk_image.cpp's nibbilize/denibbilize routines.
package diskimage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	TotalTracks    = 35
	TotalSectors   = 16
	SectorBytes    = 256
	DSKSize        = TotalTracks * TotalSectors * SectorBytes // 143360
	NibSectorBytes = 416
	NibSize        = TotalTracks * TotalSectors * NibSectorBytes // 232960

	gap1Bytes = 48
	gap2Bytes = 6
	gap3Bytes = 27

	// maxTrackBufSize is large enough to hold one nibbilized DOS/ProDOS
	// track (gap1 + 16*(address field + gap2 + data field + gap3)).
	maxTrackBufSize = 8192
)

// Format selects the sector-interleave map used to go between a
// track's logical sector order and the physical order nibbilized onto
// the disk.
type Format uint8

const (
	DOSFormat Format = iota
	ProDOSFormat
)

var sectorMap = [2][16]uint8{
	{0x00, 0x07, 0x0E, 0x06, 0x0D, 0x05, 0x0C, 0x04, 0x0B, 0x03, 0x0A, 0x02, 0x09, 0x01, 0x08, 0x0F},
	{0x00, 0x08, 0x01, 0x09, 0x02, 0x0A, 0x03, 0x0B, 0x04, 0x0C, 0x05, 0x0D, 0x06, 0x0E, 0x07, 0x0F},
}

// writeTranslateTable maps a 6-bit value to the 8-bit "disk byte"
// written during 6-and-2 encoding: every entry has its high bit set
// and no more than one pair of consecutive zero bits, which is what
// lets the drive's hardware shift register self-synchronize.
var writeTranslateTable = [64]uint8{
	0x96, 0x97, 0x9A, 0x9B, 0x9D, 0x9E, 0x9F, 0xA6,
	0xA7, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF, 0xB2, 0xB3,
	0xB4, 0xB5, 0xB6, 0xB7, 0xB9, 0xBA, 0xBB, 0xBC,
	0xBD, 0xBE, 0xBF, 0xCB, 0xCD, 0xCE, 0xCF, 0xD3,
	0xD6, 0xD7, 0xD9, 0xDA, 0xDB, 0xDC, 0xDD, 0xDE,
	0xDF, 0xE5, 0xE6, 0xE7, 0xE9, 0xEA, 0xEB, 0xEC,
	0xED, 0xEE, 0xEF, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6,
	0xF7, 0xF9, 0xFA, 0xFB, 0xFC, 0xFD, 0xFE, 0xFF,
}

// readTranslateTable inverts writeTranslateTable, indexed by a disk
// byte with its high bit masked off; each entry is the 6-bit value
// shifted left two bits, the form denibbilizeTrack works in. Entries that aren't valid
// disk bytes are left 0 and never consulted (the data always came
// from a byte actually produced by writeTranslateTable).
var readTranslateTable = [128]uint8{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04,
	0x00, 0x00, 0x08, 0x0c, 0x00, 0x10, 0x14, 0x18,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1c, 0x20,
	0x00, 0x00, 0x00, 0x24, 0x28, 0x2c, 0x30, 0x34,
	0x00, 0x00, 0x38, 0x3c, 0x40, 0x44, 0x48, 0x4c,
	0x00, 0x50, 0x54, 0x58, 0x5c, 0x60, 0x64, 0x68,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x6c, 0x00, 0x70, 0x74, 0x78,
	0x00, 0x00, 0x00, 0x7c, 0x00, 0x00, 0x80, 0x84,
	0x00, 0x88, 0x8c, 0x90, 0x94, 0x98, 0x9c, 0xa0,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa4, 0xa8, 0xac,
	0x00, 0xb0, 0xb4, 0xb8, 0xbc, 0xc0, 0xc4, 0xc8,
	0x00, 0x00, 0xcc, 0xd0, 0xd4, 0xd8, 0xdc, 0xe0,
	0x00, 0xe4, 0xe8, 0xec, 0xf0, 0xf4, 0xf8, 0xfc,
}

// Image is a mounted floppy image: something a drive can read and
// write whole nibbilized tracks from and to.
type Image interface {
	ReadTrack(track uint8) []byte
	WriteTrack(track uint8, data []byte) bool
	ReadOnly() bool
	Dirty() bool
	NumTracks() uint8
	Filename() string
	Save() error
}

// ErrUnrecognizedImage reports a file whose extension and size don't
// match any supported image format.
type ErrUnrecognizedImage struct {
	Filename string
	Size     int
}

func (e *ErrUnrecognizedImage) Error() string {
	return "diskimage: " + e.Filename + ": unrecognized image format or size"
}

// LoadFile reads filename off disk and returns a mounted Image,
// choosing the format from the file extension the way
// disk_image::load_image does.
func LoadFile(filename string) (Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	readOnly := false
	if f, err := os.OpenFile(filename, os.O_WRONLY, 0); err != nil {
		readOnly = errors.Is(err, os.ErrPermission)
	} else {
		f.Close()
	}
	return Load(filename, data, readOnly)
}

// Load builds an Image from raw bytes already in memory, without
// touching the filesystem; LoadFile is a thin wrapper around this for
// the common case.
func Load(filename string, data []byte, readOnly bool) (Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case (ext == ".dsk" || ext == ".do") && len(data) == DSKSize:
		return newDOSImage(filename, data, readOnly, DOSFormat), nil
	case ext == ".po" && len(data) == DSKSize:
		return newDOSImage(filename, data, readOnly, ProDOSFormat), nil
	case ext == ".nib" && len(data) == NibSize:
		return newNibImage(filename, data, readOnly), nil
	default:
		return nil, &ErrUnrecognizedImage{Filename: filename, Size: len(data)}
	}
}

type base struct {
	raw       []byte
	filename  string
	readOnly  bool
	dirty     bool
	numTracks uint8
}

func (b *base) ReadOnly() bool     { return b.readOnly }
func (b *base) Dirty() bool        { return b.dirty }
func (b *base) NumTracks() uint8   { return b.numTracks }
func (b *base) Filename() string   { return b.filename }

// save writes the raw buffer back out if it was dirtied since the
// last save, clearing the dirty flag, mirroring disk_image::save_image.
func (b *base) save() error {
	if !b.dirty {
		return nil
	}
	if err := os.WriteFile(b.filename, b.raw, 0644); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

func code44(w []byte, val uint8) []byte {
	return append(w, ((val>>1)&0x55)|0xAA, (val&0x55)|0xAA)
}
