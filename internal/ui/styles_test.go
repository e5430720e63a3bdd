package ui

import (
	"strings"
	"testing"

	"github.com/bnema/droidctl/internal/device"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		message string
		icon    string
	}{
		{"success", true, "Screen turned off", IconSuccess},
		{"failure", false, "Could not rotate", IconError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatResult(tt.success, tt.message)
			assert.Contains(t, got, tt.icon)
			assert.Contains(t, got, tt.message)
		})
	}
}

func TestFormatField(t *testing.T) {
	got := FormatField("sdk", 8, "34")
	assert.Contains(t, got, "sdk:")
	assert.Contains(t, got, "34")
}

func TestCreateSeparator(t *testing.T) {
	tests := []struct {
		name  string
		width int
		char  string
		want  string
	}{
		{"explicit", 10, "=", strings.Repeat("=", 10)},
		{"default width", 0, "-", strings.Repeat("-", 50)},
		{"default char", 5, "", strings.Repeat("─", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, CreateSeparator(tt.width, tt.char), tt.want)
		})
	}
}

func TestAppTable(t *testing.T) {
	apps := []device.App{
		{Label: "Camera", PackageName: "com.camera"},
		{Label: "Camera Pro", PackageName: "com.camera.pro"},
	}

	got := AppTable(apps, apps[1:])
	assert.Contains(t, got, "LABEL")
	assert.Contains(t, got, "Camera Pro")
	assert.Contains(t, got, "com.camera.pro")
	assert.Contains(t, got, "◀")
	assert.NotContains(t, AppTable(apps, nil), "◀")
}

func TestPickAppWithoutApps(t *testing.T) {
	_, err := PickApp("Start", nil)
	assert.Error(t, err)
}
