package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"Haunt3D/internal/audio"
	"Haunt3D/internal/behaviour"
	"Haunt3D/internal/config"
	"Haunt3D/internal/logger"
	"Haunt3D/internal/scene"
	"Haunt3D/scripts"

	"go.uber.org/zap"
)

var (
	scenePath = flag.String("scene", "scene.yaml", "Scene file to load")
	frames    = flag.Int("frames", 300, "Frames to simulate, 0 runs until interrupted (realtime only)")
	fps       = flag.Int("fps", 60, "Simulation frame rate")
	playAudio = flag.Bool("audio", false, "Play clips on the default output device")
	realtime  = flag.Bool("realtime", false, "Pace frames against the wall clock")
)

func main() {
	flag.Parse()
	logger.Init()
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Log.Error("haunt failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	cfg, err := config.LoadScene(*scenePath)
	if err != nil {
		return err
	}
	s, err := scene.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build scene %q: %w", cfg.Name, err)
	}

	if *playAudio {
		if err := audio.OpenSpeaker(s.Mixer); err != nil {
			// Keep simulating without sound
			logger.Log.Warn("Audio unavailable", zap.Error(err))
		} else {
			defer audio.CloseSpeaker()
		}
	}

	driver := behaviour.NewFrameDriver(s.Manager)
	logger.Log.Info("Running scene",
		zap.String("scene", s.Name),
		zap.Int("frames", *frames),
		zap.Int("fps", *fps),
		zap.Bool("realtime", *realtime))

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		runRealtime(ctx, driver)
	} else {
		dt := 1 / float32(*fps)
		for i := 0; i < *frames; i++ {
			driver.Step(dt)
		}
	}

	report(s, driver)
	return nil
}

func runRealtime(ctx context.Context, driver *behaviour.FrameDriver) {
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	last := time.Now()
	for *frames == 0 || driver.FrameCount() < *frames {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			driver.Tick(now.Sub(last))
			last = now
		}
	}
}

func report(s *scene.Scene, driver *behaviour.FrameDriver) {
	for _, obj := range s.Manager.GetAllGameObjects() {
		if g, ok := behaviour.GetComponent[*scripts.GazeDisappear](obj); ok {
			logger.Log.Info("Gaze target",
				zap.String("object", obj.Name),
				zap.Bool("disappeared", g.HasDisappeared()),
				zap.Float32("look_timer", g.LookTimer()))
		}
		if l, ok := behaviour.GetComponent[*behaviour.LightComponent](obj); ok {
			logger.Log.Info("Light",
				zap.String("object", obj.Name),
				zap.Float32("intensity", l.GetIntensity()))
		}
	}
	logger.Log.Info("Scene finished",
		zap.Int("frames", driver.FrameCount()),
		zap.Float32("time", driver.Time()),
		zap.Int("clips_playing", s.Mixer.Active()))
}
