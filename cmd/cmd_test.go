package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/droidctl/internal/config"
	"github.com/bnema/droidctl/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCount  int
		wantAction device.KeyAction
		wantMode   device.InjectMode
	}{
		{"press by name", []string{"key", "power"}, 2, device.KeyActionDown, device.InjectModeAsync},
		{"press by number", []string{"key", "26", "--mode", "finish"}, 2, device.KeyActionDown, device.InjectModeWaitForFinish},
		{"down only", []string{"key", "KEYCODE_POWER", "--action", "down"}, 1, device.KeyActionDown, device.InjectModeAsync},
		{"up only", []string{"key", "power", "--action", "up", "--mode", "result"}, 1, device.KeyActionUp, device.InjectModeWaitForResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &fakeInput{}
			useSession(t, device.Build{SDK: 30}, device.Services{Input: input})

			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Injected KEYCODE_POWER")

			require.Len(t, input.events, tt.wantCount)
			assert.Equal(t, device.KeyCodePower, input.events[0].Code)
			assert.Equal(t, tt.wantAction, input.events[0].Action)
			assert.Equal(t, tt.wantMode, input.modes[0])
		})
	}
}

func TestKeyCommandErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		useSession(t, device.Build{SDK: 30}, device.Services{Input: &fakeInput{}})
		_, err := executeCommand(t, "key", "nope")
		assert.Error(t, err)
	})

	t.Run("bad mode", func(t *testing.T) {
		useSession(t, device.Build{SDK: 30}, device.Services{Input: &fakeInput{}})
		_, err := executeCommand(t, "key", "home", "--mode", "later")
		assert.ErrorContains(t, err, "invalid inject mode")
	})

	t.Run("secondary display on android 9", func(t *testing.T) {
		input := &fakeInput{}
		useSession(t, device.Build{SDK: 28}, device.Services{Input: input})
		_, err := executeCommand(t, "key", "home", "-d", "2")
		assert.ErrorContains(t, err, "does not accept injected input")
		assert.Empty(t, input.events)
	})

	t.Run("injection fails", func(t *testing.T) {
		useSession(t, device.Build{SDK: 30}, device.Services{Input: &fakeInput{err: errFake}})
		_, err := executeCommand(t, "key", "home")
		assert.ErrorContains(t, err, "failed to inject")
	})
}

func TestInvalidDisplayFlag(t *testing.T) {
	useSession(t, device.Build{SDK: 30}, device.Services{})
	_, err := executeCommand(t, "rotate", "--display=-1")
	assert.ErrorContains(t, err, "invalid display id")
}

func TestPowerCommand(t *testing.T) {
	surface := &fakeSurface{ids: []device.PhysicalDisplayID{1, 2}}
	useSession(t, device.Build{SDK: 30}, device.Services{Surface: surface})

	out, err := executeCommand(t, "power", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Display power off")
	assert.Equal(t, []device.PowerMode{device.PowerModeOff, device.PowerModeOff}, surface.modes)

	_, err = executeCommand(t, "power", "sideways")
	assert.Error(t, err)
}

func TestPowerCommandFailure(t *testing.T) {
	useSession(t, device.Build{SDK: 30}, device.Services{Surface: &fakeSurface{ids: []device.PhysicalDisplayID{1}, fail: true}})

	_, err := executeCommand(t, "power", "on")
	assert.ErrorIs(t, err, ErrPowerFailed)
}

func TestScreenOffCommand(t *testing.T) {
	input := &fakeInput{}
	useSession(t, device.Build{SDK: 30}, device.Services{Power: &fakePower{on: true}, Input: input})

	_, err := executeCommand(t, "screen-off")
	require.NoError(t, err)
	assert.Len(t, input.events, 2)
}

func TestScreenOffSecondaryDisplayOnAndroid9(t *testing.T) {
	input := &fakeInput{}
	useSession(t, device.Build{SDK: 28}, device.Services{Power: &fakePower{on: true}, Input: input})

	_, err := executeCommand(t, "screen-off", "-d", "1")
	assert.ErrorContains(t, err, "does not accept injected input")
	assert.Empty(t, input.events)
}

func TestRotateCommand(t *testing.T) {
	wm := &fakeWindow{rotation: device.Rotation0}
	useSession(t, device.Build{SDK: 30}, device.Services{Window: wm})

	out, err := executeCommand(t, "rotate")
	require.NoError(t, err)
	assert.Contains(t, out, "Rotation requested")
	assert.Equal(t, device.Rotation90, wm.rotation)
}

func TestClipboardCommands(t *testing.T) {
	cb := &fakeClipboard{text: "old"}
	useSession(t, device.Build{}, device.Services{Clipboard: cb})

	out, err := executeCommand(t, "clipboard", "get")
	require.NoError(t, err)
	assert.Equal(t, "old\n", out)

	out, err = executeCommand(t, "clipboard", "set", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Clipboard set")

	out, err = executeCommand(t, "clipboard", "set", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "already holds")
	assert.Equal(t, 1, cb.writes)
}

func TestClipboardUnavailable(t *testing.T) {
	useSession(t, device.Build{}, device.Services{})

	_, err := executeCommand(t, "clipboard", "set", "x")
	assert.ErrorIs(t, err, device.ErrClipboardUnavailable)
}

var drawer = []device.App{
	{Label: "Camera", PackageName: "com.camera", ActivityName: "com.camera.Main"},
	{Label: "Camera Pro", PackageName: "com.camera.pro", ActivityName: "com.camera.pro.Main"},
	{Label: "Settings", PackageName: "com.android.settings", ActivityName: "com.android.settings.Settings"},
}

func appServices(apps *fakeApps) device.Services {
	return device.Services{Packages: apps, Activity: apps}
}

func TestAppStartByLabel(t *testing.T) {
	apps := &fakeApps{apps: drawer}
	useSession(t, device.Build{SDK: 30}, appServices(apps))

	out, err := executeCommand(t, "app", "start", "+?camera", "-d", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Started Camera")
	assert.Equal(t, []string{"stop com.camera", "start com.camera/com.camera.Main"}, apps.started)
	require.Len(t, apps.options, 1)
	assert.Equal(t, float64(2), apps.options[0].GetFields()[device.LaunchDisplayIDKey].GetNumberValue())
}

func TestAppStartByPackage(t *testing.T) {
	apps := &fakeApps{apps: drawer}
	useSession(t, device.Build{SDK: 30}, appServices(apps))

	_, err := executeCommand(t, "app", "start", "com.android.settings")
	require.NoError(t, err)
	assert.Equal(t, []string{"start com.android.settings/com.android.settings.Settings"}, apps.started)
}

func TestAppStartAmbiguous(t *testing.T) {
	apps := &fakeApps{apps: drawer}
	useSession(t, device.Build{SDK: 30}, appServices(apps))

	out, err := executeCommand(t, "app", "start", "?cam")
	assert.ErrorContains(t, err, "no unique app")
	assert.Contains(t, out, "Camera Pro")
	assert.Empty(t, apps.started)
}

func TestAppStartPick(t *testing.T) {
	apps := &fakeApps{apps: drawer}
	useSession(t, device.Build{SDK: 30}, appServices(apps))

	orig := pickApp
	var offered []device.App
	pickApp = func(_ string, candidates []device.App) (device.App, error) {
		offered = candidates
		return candidates[1], nil
	}
	t.Cleanup(func() { pickApp = orig })

	_, err := executeCommand(t, "app", "start", "?cam", "--pick")
	require.NoError(t, err)
	assert.Len(t, offered, 2)
	assert.Equal(t, []string{"start com.camera.pro/com.camera.pro.Main"}, apps.started)
}

func TestAppStartNoMatch(t *testing.T) {
	apps := &fakeApps{apps: drawer}
	useSession(t, device.Build{SDK: 30}, appServices(apps))

	_, err := executeCommand(t, "app", "start", "org.missing", "--pick")
	assert.ErrorContains(t, err, "none")
	assert.Empty(t, apps.started)
}

func TestAppList(t *testing.T) {
	useSession(t, device.Build{SDK: 30}, appServices(&fakeApps{apps: drawer}))

	out, err := executeCommand(t, "app", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "com.android.settings")
	assert.Contains(t, out, "Total: 3 app(s)")

	out, err = executeCommand(t, "app", "list", "camera")
	require.NoError(t, err)
	assert.NotContains(t, out, "com.android.settings")
	assert.Contains(t, out, "Total: 2 app(s)")
}

func TestPanelCommand(t *testing.T) {
	sb := &fakeStatusBar{}
	useSession(t, device.Build{}, device.Services{StatusBar: sb})

	for _, action := range []string{"notifications", "settings", "collapse"} {
		_, err := executeCommand(t, "panel", action)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"notifications", "settings", "collapse"}, sb.calls)

	_, err := executeCommand(t, "panel", "quick")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	useSession(t, device.Build{SDK: 34, Brand: "google", Model: "Pixel 8"},
		device.Services{Power: &fakePower{on: true}, Clipboard: &fakeClipboard{}})

	out, err := executeCommand(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Pixel 8")
	assert.Contains(t, out, "34")
	assert.Contains(t, out, "fake (injection supported)")
	assert.Contains(t, out, "system")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droidctl.toml")

	_, err := executeCommand(t, "--config", path, "config", "init")
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[input]\nbackend = \"shell\"\n"), 0600))
	_, err = executeCommand(t, "--config", path, "config", "init")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[input]\nbackend = \"shell\"\n", string(content))

	out, err := executeCommand(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "shell")
	assert.Equal(t, "shell", config.Get().Input.Backend)

	_, err = executeCommand(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "adb_path")
}

func TestSerialFlagOverridesConfig(t *testing.T) {
	useSession(t, device.Build{}, device.Services{StatusBar: &fakeStatusBar{}})

	_, err := executeCommand(t, "--serial", "emulator-5554", "panel", "collapse")
	require.NoError(t, err)
	assert.Equal(t, "emulator-5554", config.Get().Device.Serial)
}

func TestParseInjectMode(t *testing.T) {
	tests := []struct {
		in   string
		want device.InjectMode
	}{
		{"async", device.InjectModeAsync},
		{"result", device.InjectModeWaitForResult},
		{"finish", device.InjectModeWaitForFinish},
	}
	for _, tt := range tests {
		got, err := parseInjectMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseInjectMode("sync")
	assert.Error(t, err)
}
