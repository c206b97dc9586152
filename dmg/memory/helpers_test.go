package memory

import "github.com/valerio/go-dmg/dmg/addr"

// buildROM returns an image with the given header fields whose every bank is
// filled with its own index, except the header area of bank 0.
func buildROM(cartType, romCode, ramCode byte) []byte {
	banks := 2 << romCode
	if romCode > 0x06 {
		banks = 2
	}
	rom := make([]byte, banks*addr.ROMBankSize)
	for b := 0; b < banks; b++ {
		for i := 0; i < addr.ROMBankSize; i++ {
			rom[b*addr.ROMBankSize+i] = byte(b)
		}
	}
	for i := 0x100; i < 0x150; i++ {
		rom[i] = 0
	}
	copy(rom[titleAddress:], "TESTCART")
	rom[cartridgeTypeAddress] = cartType
	rom[romSizeAddress] = romCode
	rom[ramSizeAddress] = ramCode

	var x byte
	for i := 0x134; i <= 0x14C; i++ {
		x = x - rom[i] - 1
	}
	rom[headerChecksumAddress] = x
	return rom
}

func mustCartridge(data []byte) *Cartridge {
	c, err := NewCartridgeFromBytes(data)
	if err != nil {
		panic(err)
	}
	return c
}
