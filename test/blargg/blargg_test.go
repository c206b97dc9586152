// Package blargg runs the cpu_instrs test ROMs when they are present under
// test-roms/ and checks the verdict they print over the link port.
package blargg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmg/dmg"
	"github.com/valerio/go-dmg/dmg/serial"
)

const baseDir = "../../test-roms/cpu_instrs/individual"

type blarggCase struct {
	name      string
	maxFrames int
}

var cases = []blarggCase{
	{"01-special", 500},
	{"02-interrupts", 500},
	{"03-op sp,hl", 500},
	{"04-op r,imm", 500},
	{"05-op rp", 500},
	{"06-ld r,r", 500},
	{"07-jr,jp,call,ret,rst", 500},
	{"08-misc instrs", 500},
	{"09-op r,r", 1000},
	{"10-bit ops", 1000},
	{"11-op a,(hl)", 1500},
}

func TestCPUInstrs(t *testing.T) {
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runBlargg(t, filepath.Join(baseDir, tc.name+".gb"), tc.maxFrames)
		})
	}
}

func runBlargg(t *testing.T, romPath string, maxFrames int) {
	if _, err := os.Stat(romPath); os.IsNotExist(err) {
		t.Skipf("ROM file not found: %s", romPath)
	}

	emu, err := dmg.New(dmg.Config{ROMPath: romPath})
	require.NoError(t, err)

	sink, ok := emu.MMU().Serial().(*serial.LogSink)
	require.True(t, ok, "default serial device should be the log sink")

	for i := 0; i < maxFrames; i++ {
		require.NoError(t, emu.RunUntilFrame())

		out := sink.Transcript()
		if strings.Contains(out, "Passed") {
			return
		}
		if strings.Contains(out, "Failed") {
			t.Fatalf("%s reported failure after %d frames:\n%s", romPath, i+1, out)
		}
	}
	t.Fatalf("%s gave no verdict in %d frames:\n%s", romPath, maxFrames, sink.Transcript())
}
