package memory

// romSets maps the MBC1 2-bit register to the upper ROM bank bits used in
// 16Mbit mode.
var romSets = [4]int{0, 32, 64, 96}

// WriteControl handles a write into the 0x0000-0x7FFF control windows.
func (c *Cartridge) WriteControl(address uint16, value byte) {
	switch {
	case address < 0x2000:
		c.EnableRAM(value)
	case address < 0x4000:
		if c.Header.Kind == KindMBC5 && address >= 0x3000 {
			c.romBank = (c.romBank & 0xFF) | int(value&0x01)<<8
			return
		}
		c.SwitchROMBank(value)
	case address < 0x6000:
		c.SwitchRAMBankOrROMSet(value)
	default:
		c.SwitchMode(value)
	}
}

// EnableRAM enables external RAM iff value is 0x0A, and disables it otherwise.
func (c *Cartridge) EnableRAM(value byte) {
	if c.Header.Kind == KindROMOnly {
		return
	}
	c.ramEnabled = value == 0x0A
}

// SwitchROMBank selects the bank mapped at 0x4000-0x7FFF. MBC1 and MBC3 map a
// written 0 to bank 1.
func (c *Cartridge) SwitchROMBank(value byte) {
	switch c.Header.Kind {
	case KindMBC1:
		bank := int(value & 0x1F)
		if bank == 0 {
			bank = 1
		}
		c.romBank = bank
	case KindMBC3:
		bank := int(value & 0x7F)
		if bank == 0 {
			bank = 1
		}
		c.romBank = bank
	case KindMBC5:
		c.romBank = (c.romBank & 0x100) | int(value)
	}
}

// SwitchRAMBankOrROMSet writes the 0x4000-0x5FFF register. On MBC1 the value
// selects the RAM bank in 4Mbit mode and the ROM set in 16Mbit mode. On MBC3
// values 0x08-0x0C map an RTC register instead of RAM.
func (c *Cartridge) SwitchRAMBankOrROMSet(value byte) {
	switch c.Header.Kind {
	case KindMBC1:
		if c.mode == Mode4MbitROM {
			c.ramBank = int(value & 0x03)
		} else {
			c.romSet = romSets[value&0x03]
		}
	case KindMBC3:
		if value >= rtcSeconds && value <= rtcDaysHigh && c.rtc != nil {
			c.ramBank = int(value)
		} else {
			c.ramBank = int(value & 0x03)
		}
	case KindMBC5:
		c.ramBank = int(value & 0x0F)
	}
}

// SwitchMode writes the 0x6000-0x7FFF register: the banking mode on MBC1 and
// the RTC latch on MBC3.
func (c *Cartridge) SwitchMode(value byte) {
	switch c.Header.Kind {
	case KindMBC1:
		if value&0x01 == 0 {
			c.mode = Mode16MbitROM
			c.ramBank = 0
		} else {
			c.mode = Mode4MbitROM
			c.romSet = 0
		}
	case KindMBC3:
		if c.rtc != nil {
			c.rtc.latchWrite(value)
		}
	}
}
