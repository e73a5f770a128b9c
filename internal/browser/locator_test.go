package browser

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFS builds a Stat func over a fixed set of existing paths.
func fakeFS(existing ...string) func(string) error {
	set := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		set[p] = struct{}{}
	}
	return func(path string) error {
		if _, ok := set[path]; ok {
			return nil
		}
		return os.ErrNotExist
	}
}

func TestLocate_ServerlessUsesBundledBinary(t *testing.T) {
	cfg, err := Locate(Environment{
		Serverless: true,
		OS:         "linux",
		Stat:       fakeFS("/opt/chromium/chrome"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/opt/chromium/chrome", cfg.ExecPath)
	assert.True(t, cfg.Headless)
	assert.Contains(t, cfg.Args, "single-process")
	assert.Contains(t, cfg.Args, "no-zygote")
	assert.Contains(t, cfg.Args, "no-sandbox")
}

func TestLocate_ServerlessWithoutBinaryFailsHard(t *testing.T) {
	// A local Chrome install must not rescue a broken serverless deployment.
	cfg, err := Locate(Environment{
		Serverless: true,
		OS:         "linux",
		Stat:       fakeFS("/usr/bin/google-chrome"),
	})

	require.Nil(t, cfg)
	var notFound *EngineNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "serverless")
}

func TestLocate_OverrideWins(t *testing.T) {
	cfg, err := Locate(Environment{
		ChromePath: "/custom/chrome",
		OS:         "linux",
		Stat:       fakeFS("/custom/chrome", "/usr/bin/google-chrome"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/custom/chrome", cfg.ExecPath)
	assert.NotContains(t, cfg.Args, "single-process")
}

func TestLocate_MissingOverrideFailsHard(t *testing.T) {
	cfg, err := Locate(Environment{
		ChromePath: "/custom/chrome",
		OS:         "linux",
		Stat:       fakeFS("/usr/bin/google-chrome"),
	})

	require.Nil(t, cfg)
	var notFound *EngineNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "/custom/chrome")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocate_WellKnownPathsProbedInOrder(t *testing.T) {
	cfg, err := Locate(Environment{
		OS:   "linux",
		Stat: fakeFS("/usr/bin/chromium", "/usr/bin/google-chrome-stable"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/google-chrome-stable", cfg.ExecPath)
}

func TestLocate_DarwinPaths(t *testing.T) {
	cfg, err := Locate(Environment{
		OS:   "darwin",
		Stat: fakeFS("/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome", cfg.ExecPath)
}

func TestLocate_FallbackLeavesExecPathEmpty(t *testing.T) {
	cfg, err := Locate(Environment{
		OS:   "linux",
		Stat: fakeFS(),
	})

	require.NoError(t, err)
	assert.Empty(t, cfg.ExecPath)
	assert.True(t, cfg.Headless)
	assert.Contains(t, cfg.Args, "disable-gpu")
}

func TestSystemEnvironment_CarriesConfiguration(t *testing.T) {
	env := SystemEnvironment(true, "/custom/chrome")

	assert.True(t, env.Serverless)
	assert.Equal(t, "/custom/chrome", env.ChromePath)
	assert.NotEmpty(t, env.OS)
	assert.NotNil(t, env.Stat)
}
