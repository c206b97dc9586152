package memory

import (
	"fmt"
	"strings"
)

const (
	titleAddress          = 0x134
	titleLength           = 16
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	headerChecksumAddress = 0x14D
)

// CartridgeKind is the bank controller family declared by the header.
type CartridgeKind uint8

const (
	KindROMOnly CartridgeKind = iota
	KindMBC1
	KindMBC3
	KindMBC5
)

func (k CartridgeKind) String() string {
	switch k {
	case KindROMOnly:
		return "ROM ONLY"
	case KindMBC1:
		return "MBC1"
	case KindMBC3:
		return "MBC3"
	case KindMBC5:
		return "MBC5"
	}
	return "UNKNOWN"
}

// Header holds the fields of the cartridge header at 0x0100-0x014F.
type Header struct {
	Title          string
	Type           byte
	ROMSizeCode    byte
	RAMSizeCode    byte
	HeaderChecksum byte

	Kind       CartridgeKind
	ROMBanks   int
	RAMBanks   int
	HasBattery bool
	HasRTC     bool
	// Known is false when the type byte names a controller that is not emulated.
	Known bool
}

// ramBankCounts maps the RAM size code to the number of 8KB banks. Code 1
// (2KB) is backed by one full bank.
var ramBankCounts = map[byte]int{
	0x00: 0,
	0x01: 1,
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// ParseHeader decodes the header found in bank 0 of a ROM image.
func ParseHeader(bank0 []byte) (Header, error) {
	if len(bank0) < 0x150 {
		return Header{}, &LoadError{Kind: IOError, Err: fmt.Errorf("image too short for header: %d bytes", len(bank0))}
	}

	h := Header{
		Title:          strings.TrimRight(string(bank0[titleAddress:titleAddress+titleLength]), "\x00 "),
		Type:           bank0[cartridgeTypeAddress],
		ROMSizeCode:    bank0[romSizeAddress],
		RAMSizeCode:    bank0[ramSizeAddress],
		HeaderChecksum: bank0[headerChecksumAddress],
	}

	if h.ROMSizeCode > 0x06 {
		return h, &LoadError{Kind: UnsupportedSize, Code: h.ROMSizeCode, Err: fmt.Errorf("%w 0x%02X", ErrUnsupportedROMSize, h.ROMSizeCode)}
	}
	h.ROMBanks = 2 << h.ROMSizeCode

	banks, ok := ramBankCounts[h.RAMSizeCode]
	if !ok {
		return h, &LoadError{Kind: UnsupportedSize, Code: h.RAMSizeCode, Err: fmt.Errorf("%w 0x%02X", ErrUnsupportedRAMSize, h.RAMSizeCode)}
	}
	h.RAMBanks = banks

	h.Kind, h.HasBattery, h.HasRTC, h.Known = decodeType(h.Type)
	return h, nil
}

func decodeType(t byte) (kind CartridgeKind, battery, rtc, known bool) {
	switch t {
	case 0x00, 0x08:
		return KindROMOnly, false, false, true
	case 0x09:
		return KindROMOnly, true, false, true
	case 0x01, 0x02:
		return KindMBC1, false, false, true
	case 0x03:
		return KindMBC1, true, false, true
	case 0x0F, 0x10:
		return KindMBC3, true, true, true
	case 0x11, 0x12:
		return KindMBC3, false, false, true
	case 0x13:
		return KindMBC3, true, false, true
	case 0x19, 0x1A, 0x1C, 0x1D:
		return KindMBC5, false, false, true
	case 0x1B, 0x1E:
		return KindMBC5, true, false, true
	}
	return KindROMOnly, false, false, false
}

// ChecksumOK reports whether the header checksum at 0x14D matches bytes 0x134-0x14C.
func ChecksumOK(bank0 []byte) bool {
	if len(bank0) < 0x150 {
		return false
	}
	var x byte
	for i := 0x134; i <= 0x14C; i++ {
		x = x - bank0[i] - 1
	}
	return x == bank0[headerChecksumAddress]
}
