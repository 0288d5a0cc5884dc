// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"os"
	"time"

	"jarrun/internal/aotcache"
	"jarrun/internal/compose"
	"jarrun/internal/console"
	"jarrun/internal/diag"
	"jarrun/internal/locate"
	"jarrun/internal/sidecar"
	"jarrun/internal/supervise"
)

// launch runs the full pipeline for one invocation and returns the process
// exit code: detect context, extract internal flags, load the sidecar,
// resolve the runtime, plan the cache, compose the command, supervise the
// child.
func launch(ctx context.Context, rawArgs []string) int {
	startMillis := time.Now().UnixMilli()

	cc := console.Detect()
	msg := diag.NewMessenger(cc)
	ex := compose.Extract(rawArgs)

	if ex.GenerateConfig {
		return generateConfig(msg)
	}

	cfg, err := loadSidecar()
	if err != nil {
		msg.Errorf("Configuration Error", "%v", err)
		return 1
	}

	session := openSession(cfg)
	defer session.Close()

	session.Info("session start",
		"context", cc.Variant.String(),
		"args", len(rawArgs),
		"configMode", compose.ConfigurationMode(cfg))

	loc := &locate.Locator{}
	runtimePath, err := loc.Resolve(cc.Variant, ex.JavaHome)
	if err != nil {
		session.Error("runtime resolution failed", "error", err)
		reportRuntimeNotFound(msg, cc, ex.JavaHome, err)
		return 1
	}
	session.Info("runtime resolved", "path", runtimePath)

	cacheFlag := planCache(session, cfg, ex)

	inv, err := compose.Compose(runtimePath, cfg, cacheFlag, ex.Forwarded, startMillis)
	if err != nil {
		if errors.Is(err, compose.ErrMissingTarget) {
			session.Error("no target artifact after flag extraction")
			showDiagnostic(msg, cc, runtimePath)
			return 1
		}
		msg.Errorf("Launch Error", "%v", err)
		return 1
	}
	session.Info("composed invocation", "command", inv.String())

	sup := &supervise.Supervisor{}
	res, err := sup.Run(ctx, inv, cc)
	if err != nil {
		session.Error("spawn failed", "error", err)
		msg.Errorf("Launch Error",
			"Failed to launch the runtime process.\n\nRuntime: %s\nCommand: %s\nError: %v\n\nMake sure the runtime is properly installed.",
			runtimePath, inv.String(), err)
		return 1
	}

	session.Info("session end", "exitCode", res.ExitCode)
	return res.ExitCode
}

// loadSidecar resolves the sidecar path from the launcher executable and
// loads it. A missing sidecar yields (nil, nil): traditional mode.
func loadSidecar() (*sidecar.LaunchConfig, error) {
	exePath, err := os.Executable()
	if err != nil {
		// No executable path means no sidecar to look for.
		return nil, nil
	}
	return sidecar.Load(sidecar.PathForLauncher(exePath))
}

// openSession opens the configured log destination, or a discard session
// when logging is off. A log file that cannot be opened downgrades to
// discard rather than failing the launch.
func openSession(cfg *sidecar.LaunchConfig) *diag.Session {
	if cfg == nil || cfg.LogFile == "" {
		return diag.Discard()
	}
	session, err := diag.Open(cfg.LogFile, cfg.LogLevel, cfg.LogOverwrite)
	if err != nil {
		return diag.Discard()
	}
	return session
}

// planCache resolves cache enablement, computes the target's cache entry,
// clears stale siblings, and returns the runtime flag. Every failure path
// is recoverable: log and return "" (caching disabled for this run).
func planCache(session *diag.Session, cfg *sidecar.LaunchConfig, ex compose.Extracted) string {
	cfgPref := sidecar.TriUnset
	if cfg != nil {
		cfgPref = cfg.AOTCache
	}
	if !aotcache.Decide(ex.AOT, cfgPref) {
		session.Debug("cache disabled", "cli", ex.AOT.String(), "sidecar", cfgPref.String())
		return ""
	}

	target, ok := compose.Target(cfg, ex.Forwarded)
	if !ok {
		session.Debug("no cache target identified")
		return ""
	}

	mgr := &aotcache.Manager{Log: session}
	entry, err := mgr.Plan(target)
	if err != nil {
		session.Warn("cache planning failed, caching disabled for this run", "error", err)
		return ""
	}
	if err := mgr.CleanStale(entry); err != nil {
		session.Warn("stale cache cleanup failed, caching disabled for this run", "error", err)
		return ""
	}

	session.Info("cache planned", "key", entry.EncodedKey, "reuse", entry.Exists)
	return entry.Flag()
}

// generateConfig writes the template sidecar next to the launcher.
func generateConfig(msg *diag.Messenger) int {
	exePath, err := os.Executable()
	if err != nil {
		msg.Errorf("Configuration Error", "Cannot determine launcher location: %v", err)
		return 1
	}
	path := sidecar.PathForLauncher(exePath)
	if err := sidecar.WriteTemplate(path); err != nil {
		msg.Errorf("Configuration Error", "%v", err)
		return 1
	}
	msg.Infof("Configuration Generated", "Template sidecar written to:\n%s", path)
	return 0
}
