// Package main is the entry point for the PhysCubes sandbox.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/SignalWalker/PhysCubes/internal/assets"
	"github.com/SignalWalker/PhysCubes/internal/config"
	"github.com/SignalWalker/PhysCubes/internal/engine/renderer"
	"github.com/SignalWalker/PhysCubes/internal/engine/texture"
	"github.com/SignalWalker/PhysCubes/internal/engine/window"
	"github.com/SignalWalker/PhysCubes/internal/game"
	"github.com/SignalWalker/PhysCubes/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
	logger.Sync()
}

// run owns every GPU resource; deferred disposal runs in reverse order of
// creation on the locked main thread.
func run(cfg *config.Config) error {
	logger.Info("=== PhysCubes ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	win, err := window.New(window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		DepthBits: cfg.Window.DepthBits,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("make window: %w", err)
	}
	defer win.Close()

	rend, err := renderer.New()
	if err != nil {
		return fmt.Errorf("make renderer: %w", err)
	}
	defer rend.Close()
	rend.CheckError("make window")
	rend.CheckError("make tex plane")

	textures, err := loadTextures(cfg.Assets)
	if err != nil {
		return err
	}
	defer texture.Delete(textures.Index, textures.Alt)
	rend.CheckError("load texture")

	// The drawable may differ from the requested size on high-DPI screens.
	cfg.Window.Width, cfg.Window.Height = win.Size()

	g, err := game.New(cfg, win, rend, textures)
	if err != nil {
		return fmt.Errorf("make game: %w", err)
	}

	if config.WatchEnabled() {
		stopWatch := watchConfig(cfg, g)
		defer stopWatch()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Run(ctx)
	return nil
}

func loadTextures(cfg config.AssetsConfig) (game.Textures, error) {
	root := cfg.Root
	if !filepath.IsAbs(root) {
		if exe, err := os.Executable(); err == nil {
			if _, err := os.Stat(root); err != nil {
				root = filepath.Join(filepath.Dir(exe), root)
			}
		}
	}
	mgr := assets.NewManager(root)
	defer mgr.Close()

	names := []string{cfg.IndexTexture, cfg.AltTexture}
	imgs, err := mgr.Images(names...)
	if err != nil {
		return game.Textures{}, fmt.Errorf("load texture: %w", err)
	}

	var ids [2]uint32
	for i, name := range names {
		id, err := texture.Load(imgs[i])
		if err != nil {
			texture.Delete(ids[:i]...)
			return game.Textures{}, fmt.Errorf("load texture %s: %w", name, err)
		}
		ids[i] = id
		logger.Info("texture loaded", zap.String("path", name), zap.Uint32("id", id))
	}

	return game.Textures{Index: ids[0], Alt: ids[1]}, nil
}

// watchConfig feeds reloads of the loaded config file to g and logs reload
// errors. The returned func stops watching.
func watchConfig(cfg *config.Config, g *game.Game) func() {
	if cfg.Source == "" {
		logger.Warn("--watch given but no config file was loaded")
		return func() {}
	}

	w, err := config.Watch(cfg.Source)
	if err != nil {
		logger.Warn("config watch disabled", zap.String("path", cfg.Source), zap.Error(err))
		return func() {}
	}
	g.WatchConfig(w.Reloads)

	go func() {
		for err := range w.Errors {
			logger.Warn("config reload rejected", zap.String("path", w.Path()), zap.Error(err))
		}
	}()

	logger.Info("watching config", zap.String("path", w.Path()))
	return func() { _ = w.Close() }
}
