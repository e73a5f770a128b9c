package browser

import (
	"os"
	"runtime"
)

// Environment describes the deployment context the locator adapts to.
// Stat is injectable so strategies can be tested against a fake filesystem.
type Environment struct {
	Serverless bool
	ChromePath string
	OS         string
	Stat       func(path string) error
}

// SystemEnvironment returns the environment of the current process. The
// serverless flag and path override come from the caller's configuration.
func SystemEnvironment(serverless bool, chromePath string) Environment {
	return Environment{
		Serverless: serverless,
		ChromePath: chromePath,
		OS:         runtime.GOOS,
		Stat:       statFile,
	}
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}

// LaunchConfig is a ready-to-launch engine configuration. An empty ExecPath
// means the launcher falls back to its own binary lookup.
type LaunchConfig struct {
	ExecPath string
	Args     []string
	Headless bool
}

// baselineArgs are required in sandboxed and containerized environments:
// no OS sandbox primitives, no GPU, no first-run prompts.
var baselineArgs = []string{
	"no-sandbox",
	"disable-setuid-sandbox",
	"disable-dev-shm-usage",
	"disable-accelerated-2d-canvas",
	"no-first-run",
	"disable-gpu",
}

// serverlessArgs are additionally prescribed for the minimal bundled binary.
var serverlessArgs = []string{
	"single-process",
	"no-zygote",
}

// serverlessChromePaths lists where the bundled minimal Chromium lives in
// managed environments.
var serverlessChromePaths = []string{
	"/opt/chromium/chrome",
	"/usr/bin/chromium-browser",
	"/usr/bin/chromium",
}

// wellKnownChromePaths lists standard install locations per OS family,
// checked in order for local development.
var wellKnownChromePaths = map[string][]string{
	"darwin": {
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
	},
	"linux": {
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
	},
	"windows": {
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	},
}

// strategy inspects the environment and yields a configuration, reports
// itself not applicable, or fails hard. Strategies run in order; the first
// applicable one wins.
type strategy func(Environment) (cfg *LaunchConfig, applicable bool, err error)

var strategies = []strategy{
	locateServerless,
	locateOverride,
	locateWellKnown,
	locateFallback,
}

// Locate produces a launch configuration for the rendering engine, adapting
// to the deployment environment as described by env.
func Locate(env Environment) (*LaunchConfig, error) {
	if env.Stat == nil {
		env.Stat = statFile
	}
	for _, locate := range strategies {
		cfg, applicable, err := locate(env)
		if err != nil {
			return nil, err
		}
		if applicable {
			return cfg, nil
		}
	}
	// locateFallback always applies, so this is unreachable; kept so the
	// strategy list can shrink without a silent nil return.
	return nil, &EngineNotFoundError{Message: "no applicable engine strategy (install Google Chrome or set CHROME_PATH)"}
}

// locateServerless uses the bundled minimal Chromium in managed
// environments. A serverless deployment without the bundled binary is a
// hard failure, never a silent fallback to a local search.
func locateServerless(env Environment) (*LaunchConfig, bool, error) {
	if !env.Serverless {
		return nil, false, nil
	}
	for _, path := range serverlessChromePaths {
		if env.Stat(path) == nil {
			return &LaunchConfig{
				ExecPath: path,
				Args:     append(append([]string{}, baselineArgs...), serverlessArgs...),
				Headless: true,
			}, true, nil
		}
	}
	return nil, false, &EngineNotFoundError{
		Message: "no bundled Chromium in serverless environment (bake a chromium binary into the image or set CHROME_PATH)",
	}
}

// locateOverride honors an explicit operator-supplied binary path. A set
// but missing override is a configuration error worth failing loudly on.
func locateOverride(env Environment) (*LaunchConfig, bool, error) {
	if env.ChromePath == "" {
		return nil, false, nil
	}
	if err := env.Stat(env.ChromePath); err != nil {
		return nil, false, &EngineNotFoundError{
			Message: "CHROME_PATH points to " + env.ChromePath + " which does not exist (fix CHROME_PATH or unset it)",
			Cause:   err,
		}
	}
	return &LaunchConfig{
		ExecPath: env.ChromePath,
		Args:     append([]string{}, baselineArgs...),
		Headless: true,
	}, true, nil
}

// locateWellKnown probes standard install locations for the OS family.
func locateWellKnown(env Environment) (*LaunchConfig, bool, error) {
	for _, path := range wellKnownChromePaths[env.OS] {
		if env.Stat(path) == nil {
			return &LaunchConfig{
				ExecPath: path,
				Args:     append([]string{}, baselineArgs...),
				Headless: true,
			}, true, nil
		}
	}
	return nil, false, nil
}

// locateFallback leaves the executable path empty and lets the launcher run
// its own lookup.
func locateFallback(Environment) (*LaunchConfig, bool, error) {
	return &LaunchConfig{
		Args:     append([]string{}, baselineArgs...),
		Headless: true,
	}, true, nil
}
