package memory

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/go-dmg/dmg/addr"
)

// BankingMode is the MBC1 addressing mode selected through 0x6000-0x7FFF.
type BankingMode uint8

const (
	// Mode16MbitROM routes the 2-bit register to the upper ROM bank bits.
	Mode16MbitROM BankingMode = iota
	// Mode4MbitROM routes the 2-bit register to the RAM bank.
	Mode4MbitROM
)

// Cartridge owns the ROM and RAM banks of a loaded image and the state of
// its bank controller.
type Cartridge struct {
	Header Header

	rom [][]byte
	ram [][]byte

	romBank    int
	romSet     int
	ramBank    int
	mode       BankingMode
	ramEnabled bool

	rtc *rtc
}

// LoadCartridge reads the ROM image at path.
func LoadCartridge(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: IOError, Path: path, Err: err}
	}
	defer f.Close()

	cart, err := NewCartridge(f)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}

	slog.Info("Loaded cartridge",
		"path", path,
		"title", cart.Header.Title,
		"type", cart.Header.Kind.String(),
		"rom_banks", cart.Header.ROMBanks,
		"ram_banks", cart.Header.RAMBanks)
	return cart, nil
}

// NewCartridgeFromBytes builds a cartridge from an in-memory image.
func NewCartridgeFromBytes(data []byte) (*Cartridge, error) {
	return NewCartridge(bytes.NewReader(data))
}

// NewCartridge copies bank 0 from r, sizes the bank storage from its header
// and streams the remaining banks.
func NewCartridge(r io.Reader) (*Cartridge, error) {
	bank0 := make([]byte, addr.ROMBankSize)
	if _, err := io.ReadFull(r, bank0); err != nil {
		return nil, &LoadError{Kind: IOError, Err: fmt.Errorf("reading bank 0: %w", err)}
	}

	header, err := ParseHeader(bank0)
	if err != nil {
		return nil, err
	}
	if !header.Known {
		slog.Warn("Unsupported cartridge type, mapping as ROM only", "type", fmt.Sprintf("0x%02X", header.Type))
	}
	if !ChecksumOK(bank0) {
		slog.Warn("Cartridge header checksum mismatch", "title", header.Title)
	}

	c := &Cartridge{
		Header:  header,
		rom:     make([][]byte, header.ROMBanks),
		ram:     make([][]byte, header.RAMBanks),
		romBank: 1,
	}
	c.rom[0] = bank0
	for i := 1; i < header.ROMBanks; i++ {
		c.rom[i] = make([]byte, addr.ROMBankSize)
		if _, err := io.ReadFull(r, c.rom[i]); err != nil {
			return nil, &LoadError{Kind: IOError, Err: fmt.Errorf("reading bank %d of %d: %w", i, header.ROMBanks, err)}
		}
	}
	for i := range c.ram {
		c.ram[i] = make([]byte, addr.RAMBankSize)
	}

	if header.Kind == KindROMOnly {
		c.ramEnabled = true
	}
	if header.HasRTC {
		c.rtc = newRTC(nil)
	}
	return c, nil
}

// Kind returns the bank controller family.
func (c *Cartridge) Kind() CartridgeKind {
	return c.Header.Kind
}

// ROMBank returns the bank currently mapped at 0x4000-0x7FFF.
func (c *Cartridge) ROMBank() int {
	bank := c.romBank
	if c.Header.Kind == KindMBC1 {
		bank |= c.romSet
	}
	return bank % len(c.rom)
}

// RAMBank returns the external RAM bank currently mapped at 0xA000-0xBFFF.
func (c *Cartridge) RAMBank() int {
	return c.ramBank
}

// Mode returns the MBC1 banking mode.
func (c *Cartridge) Mode() BankingMode {
	return c.mode
}

// RAMEnabled reports whether external RAM accepts reads and writes.
func (c *Cartridge) RAMEnabled() bool {
	return c.ramEnabled
}

// ReadFixed reads from bank 0, mapped at 0x0000-0x3FFF.
func (c *Cartridge) ReadFixed(address uint16) byte {
	return c.rom[0][address&0x3FFF]
}

// ReadSwitched reads offset (0x0000-0x3FFF) from the selected ROM bank.
func (c *Cartridge) ReadSwitched(offset uint16) byte {
	return c.rom[c.ROMBank()][offset&0x3FFF]
}

// ReadRAM reads offset (0x0000-0x1FFF) from the selected RAM bank. Disabled or
// missing RAM reads as 0.
func (c *Cartridge) ReadRAM(offset uint16) byte {
	if !c.ramEnabled {
		return 0
	}
	if c.rtc != nil && c.ramBank >= rtcSeconds {
		return c.rtc.read(c.ramBank)
	}
	if len(c.ram) == 0 {
		return 0
	}
	return c.ram[c.ramBank%len(c.ram)][offset&0x1FFF]
}

// WriteRAM stores into the selected RAM bank. Writes are dropped when RAM is
// disabled or missing.
func (c *Cartridge) WriteRAM(offset uint16, value byte) {
	if !c.ramEnabled {
		return
	}
	if c.rtc != nil && c.ramBank >= rtcSeconds {
		c.rtc.write(c.ramBank, value)
		return
	}
	if len(c.ram) == 0 {
		return
	}
	c.ram[c.ramBank%len(c.ram)][offset&0x1FFF] = value
}

// HasBattery reports whether RAM contents survive power off.
func (c *Cartridge) HasBattery() bool {
	return c.Header.HasBattery && len(c.ram) > 0
}

// RAM returns a copy of all RAM banks, concatenated.
func (c *Cartridge) RAM() []byte {
	out := make([]byte, 0, len(c.ram)*addr.RAMBankSize)
	for _, bank := range c.ram {
		out = append(out, bank...)
	}
	return out
}

// LoadRAM restores RAM banks from a previous RAM() dump. Extra bytes are
// ignored, missing bytes leave the banks untouched.
func (c *Cartridge) LoadRAM(data []byte) {
	for i, bank := range c.ram {
		start := i * addr.RAMBankSize
		if start >= len(data) {
			return
		}
		copy(bank, data[start:])
	}
}
