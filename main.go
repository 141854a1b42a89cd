package main

import (
	"fmt"
	"os"

	"csvb/config"
	"csvb/logging"
	"csvb/windows"
)

func main() {
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvb: bad config %s: %v (using defaults)\n", cfgPath, err)
		cfg = config.Default()
	}

	log, closeLog := logging.Setup(cfg.Log.Level, cfg.Log.File)
	defer closeLog()

	log.Info("starting", "config", cfgPath)
	w := windows.CreateMainWindow(cfg, log)
	w.Run()

	if err := cfg.Save(cfgPath); err != nil {
		log.Warn("failed to save preferences", "path", cfgPath, "error", err)
	}
}
