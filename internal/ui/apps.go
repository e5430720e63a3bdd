package ui

import (
	"fmt"
	"slices"

	"github.com/bnema/droidctl/internal/device"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// AppTable renders apps as a rounded table. Rows that also appear in
// marked are flagged.
func AppTable(apps []device.App, marked []device.App) string {
	rows := make([][]string, 0, len(apps))
	for i, app := range apps {
		mark := ""
		if slices.Contains(marked, app) {
			mark = "◀"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), app.Label, app.PackageName, mark})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSubtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().
					Foreground(ColorPrimary).
					Bold(true).
					Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().
					Foreground(ColorInfo).
					Padding(0, 1)
			case col == 3:
				return lipgloss.NewStyle().
					Foreground(ColorSuccess).
					Bold(true).
					Padding(0, 1)
			default:
				return lipgloss.NewStyle().
					Foreground(ColorText).
					Padding(0, 1)
			}
		}).
		Headers("#", "LABEL", "PACKAGE", "").
		Rows(rows...)

	return t.String()
}

// PickApp asks the operator to choose one of apps.
func PickApp(title string, apps []device.App) (device.App, error) {
	if len(apps) == 0 {
		return device.App{}, fmt.Errorf("no apps to choose from")
	}

	options := make([]huh.Option[int], len(apps))
	for i, app := range apps {
		options[i] = huh.NewOption(fmt.Sprintf("%s [%s]", app.Label, app.PackageName), i)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Description("Several apps match, choose the one to start").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return device.App{}, fmt.Errorf("app selection cancelled: %w", err)
	}

	return apps[selected], nil
}
