package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"
	"github.com/valerio/go-dmg/dmg"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/debug"
	"github.com/valerio/go-dmg/dmg/render"
	"github.com/valerio/go-dmg/dmg/render/window"
	"github.com/valerio/go-dmg/dmg/serial"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

const defaultROM = "roms/cpu_instrs.gb"

func main() {
	app := cli.NewApp()
	app.Name = "dmg"
	app.Description = "An original Game Boy (DMG) emulator"
	app.Usage = "dmg [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "rom",
			Usage:  "Path to the ROM file",
			EnvVar: "DMG_ROM",
		},
		cli.StringFlag{
			Name:   "boot-rom",
			Usage:  "Optional 256 byte boot ROM to run before the cartridge",
			EnvVar: "DMG_BOOT_ROM",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:   "snapshot-dir",
			Usage:  "Directory to save frame snapshots (default: temp directory)",
			EnvVar: "DMG_SNAPSHOT_DIR",
		},
		cli.BoolFlag{
			Name:  "dump-vram",
			Usage: "Write tile data and both tile maps as PNG after a headless run",
		},
		cli.BoolFlag{
			Name:  "window",
			Usage: "Open a desktop window instead of drawing in the terminal",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "no-limit",
			Usage: "Run as fast as possible instead of at 59.7 frames per second",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction (very slow)",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "One of debug, info, warn, error",
			Value:  "info",
			EnvVar: "DMG_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "log-file",
			Usage:  "Log destination while the terminal viewer owns the screen",
			Value:  "dmg.log",
			EnvVar: "DMG_LOG_FILE",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	if c.Bool("trace") {
		level = slog.LevelDebug
	}

	terminal := !c.Bool("headless") && !c.Bool("window")
	var logOut io.Writer = os.Stderr
	if terminal {
		f, err := os.OpenFile(c.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			romPath = defaultROM
		}
	}

	emu, err := dmg.New(dmg.Config{
		ROMPath:     romPath,
		BootROMPath: c.String("boot-rom"),
		Trace:       c.Bool("trace"),
	})
	if err != nil {
		return err
	}

	savePath := dmg.SavePath(romPath)
	if err := emu.LoadRAM(savePath); err != nil {
		return err
	}
	defer func() {
		if err := emu.SaveRAM(savePath); err != nil {
			slog.Error("Failed to write save file", "path", savePath, "error", err)
		}
	}()

	if c.Bool("headless") {
		return runHeadless(c, emu, romPath)
	}
	return runInteractive(c, emu, romPath)
}

func runHeadless(c *cli.Context, emu *dmg.DMG, romPath string) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames option with a positive value")
	}

	snapshotInterval := c.Int("snapshot-interval")
	snapshotDir := ""
	if snapshotInterval > 0 || c.Bool("dump-vram") {
		dir, err := prepareSnapshotDir(c.String("snapshot-dir"))
		if err != nil {
			return err
		}
		snapshotDir = dir
	}

	romName := filepath.Base(romPath)
	romName = strings.TrimSuffix(romName, filepath.Ext(romName))

	slog.Info("Running headless mode", "frames", frames, "snapshot_interval", snapshotInterval, "snapshot_dir", snapshotDir)

	for i := 0; i < frames; i++ {
		if err := emu.RunUntilFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}

		if snapshotInterval > 0 && (i+1)%snapshotInterval == 0 {
			base := fmt.Sprintf("%s_frame_%d", romName, i+1)
			if _, err := debug.SaveSnapshot(emu.Frame(), base, snapshotDir); err != nil {
				slog.Error("Failed to save snapshot", "frame", i+1, "error", err)
			}
		}

		if i%10 == 0 {
			slog.Info("Frame progress", "completed", i+1, "total", frames)
		}
	}

	if c.Bool("dump-vram") {
		lcdc := emu.MMU().Read(addr.LCDC)
		if err := debug.DumpVRAM(emu.MMU(), lcdc, snapshotDir); err != nil {
			return err
		}
	}

	if sink, ok := emu.MMU().Serial().(*serial.LogSink); ok && sink.Transcript() != "" {
		slog.Info("Serial output", "text", sink.Transcript())
	}

	slog.Info("Headless execution completed", "frames", frames, "instructions", emu.Instructions(), "snapshot_dir", snapshotDir)
	return nil
}

// runInteractive runs the emulator on its own goroutine while the viewer
// keeps the main one.
func runInteractive(c *cli.Context, emu *dmg.DMG, romPath string) error {
	shared := video.NewSharedFrame()
	limiter := timing.New(!c.Bool("no-limit"))

	done := make(chan error, 1)
	go func() {
		done <- emu.Run(shared, limiter)
	}()

	var viewErr error
	if c.Bool("window") {
		v := window.New(window.Config{
			Title:       "dmg - " + filepath.Base(romPath),
			Scale:       c.Int("scale"),
			SnapshotDir: c.String("snapshot-dir"),
		}, shared, emu)
		viewErr = v.Run()
	} else {
		r, err := render.NewTerminalRenderer(shared, emu)
		if err != nil {
			shared.Quit()
			<-done
			return err
		}
		viewErr = r.Run()
	}

	shared.Quit()
	emuErr := <-done
	return errors.Join(emuErr, viewErr)
}

func prepareSnapshotDir(dir string) (string, error) {
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "dmg-snapshots-*")
		if err != nil {
			return "", fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		return tempDir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return dir, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
