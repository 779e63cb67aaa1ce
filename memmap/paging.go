package memmap

// RecomputePaging rebuilds the 256-entry read and write page tables
// from the memory-state bit set plus the page2/hires flags, applying
// spec.md section 4.3's six rules in order -- later rules override
// earlier ones for the same page.
func (m *Memory) RecomputePaging() {
	for p := 0; p < NumPages; p++ {
		page := uint8(p)
		var rh, wh pageHandle

		switch {
		case page <= 0x01:
			rh, wh = m.zeroPageHandles(page)
		case page >= 0x02 && page <= 0xBF:
			rh, wh = m.mainAuxHandles(page)
		case page >= 0xC0 && page <= 0xCF:
			rh, wh = m.cxHandles(page)
		case page >= 0xD0 && page <= 0xDF:
			rh, wh = m.lcWindowHandles(page, false)
		default: // 0xE0-0xFF
			rh, wh = m.lcWindowHandles(page, true)
		}

		// Rule 6: 80STORE text/hires page aliasing overrides whatever
		// rule 2 computed for these specific pages.
		if m.state&Store80 != 0 {
			if page >= 0x04 && page <= 0x07 {
				rh, wh = m.videoPageHandles(page)
			} else if m.hires && page >= 0x20 && page <= 0x3F {
				rh, wh = m.videoPageHandles(page)
			}
		}

		m.readPages[page] = rh
		m.writePages[page] = wh
	}
}

// zeroPageHandles implements rule 1: zero page and stack follow
// ALT_ZP for both read and write.
func (m *Memory) zeroPageHandles(page uint8) (pageHandle, pageHandle) {
	buf := bufMainRAM
	if m.state&AltZP != 0 {
		buf = bufAuxRAM
	}
	h := pageHandle{buf: buf, page: page, writable: true}
	return h, h
}

// mainAuxHandles implements rule 2: pages $02-$BF read/write main or
// aux RAM independently, per AUX_READ/AUX_WRITE.
func (m *Memory) mainAuxHandles(page uint8) (pageHandle, pageHandle) {
	rbuf := bufMainRAM
	if m.state&AuxRead != 0 {
		rbuf = bufAuxRAM
	}
	wbuf := bufMainRAM
	if m.state&AuxWrite != 0 {
		wbuf = bufAuxRAM
	}
	return pageHandle{buf: rbuf, page: page, writable: true},
		pageHandle{buf: wbuf, page: page, writable: true}
}

// cxHandles implements rule 3 over $C0-$CF. Page $C0 itself carries
// the soft-switch range; the machine aggregate intercepts it before
// ever calling into Memory, so its entry here is an unreachable
// placeholder.
func (m *Memory) cxHandles(page uint8) (pageHandle, pageHandle) {
	notWritable := pageHandle{buf: bufUnmapped}

	switch {
	case page == 0xC0:
		return notWritable, notWritable
	case page == 0xC3 && m.state&SlotC3ROM == 0:
		return pageHandle{buf: bufInternalROM, page: page - 0xC0}, notWritable
	case page >= 0xC1 && page <= 0xC7:
		slot := page - 0xC0
		if m.state&SlotCxROM != 0 {
			return pageHandle{buf: bufMainROM, page: page - 0xC0}, notWritable
		}
		if m.slotROM[slot] != nil {
			return pageHandle{buf: bufSlotROM, page: 0, slot: slot}, notWritable
		}
		return pageHandle{buf: bufInternalROM, page: page - 0xC0}, notWritable
	default: // $C8-$CF: the shared expansion-ROM window
		if m.state&SlotCxROM != 0 {
			return pageHandle{buf: bufMainROM, page: page - 0xC0}, notWritable
		}
		slot := m.expansionLatchSlot
		if slot != 0 && m.slotROM[slot] != nil {
			return pageHandle{buf: bufSlotROM, page: 1 + (page - 0xC8), slot: slot}, notWritable
		}
		return pageHandle{buf: bufInternalROM, page: page - 0xC0}, notWritable
	}
}

// lcWindowHandles implements rules 4 and 5: the language-card 4 KiB
// window at $D0-$DF (bank-switched between two banks) and the 8 KiB
// extension at $E0-$FF (a single aux/main pair, no second bank).
func (m *Memory) lcWindowHandles(page uint8, extended bool) (pageHandle, pageHandle) {
	aux := m.state&AltZP != 0
	var buf bufferID
	var base uint8
	if !extended {
		base = 0xD0
		bank2 := m.state&LCBank2 != 0
		switch {
		case !aux && bank2:
			buf = bufLC2Main
		case !aux && !bank2:
			buf = bufLC1Main
		case aux && bank2:
			buf = bufLC2Aux
		default:
			buf = bufLC1Aux
		}
	} else {
		base = 0xE0
		if aux {
			buf = bufExtAux
		} else {
			buf = bufExtMain
		}
	}

	// The write view always targets the RAM buffer the read view
	// would use if reads were enabled, gated only by write-protect:
	// "read ROM / write RAM" (spec.md §4.4 rows $81/$85/$89/$8D) needs
	// the RAM write to land even while ROM is what's being read.
	wh := pageHandle{buf: buf, page: page - base, writable: m.state&LCWriteProtect == 0}

	if m.state&LCRead == 0 {
		return pageHandle{buf: bufMainROM, page: page - 0xC0}, wh
	}
	rh := pageHandle{buf: buf, page: page - base, writable: true}
	return rh, wh
}

// videoPageHandles implements rule 6: under 80STORE, the addressed
// page follows video PAGE2 to main or aux RAM instead of AUX_READ/WRITE.
func (m *Memory) videoPageHandles(page uint8) (pageHandle, pageHandle) {
	buf := bufMainRAM
	if m.page2 {
		buf = bufAuxRAM
	}
	h := pageHandle{buf: buf, page: page, writable: true}
	return h, h
}
