package cli

import (
	"context"
	"fmt"
)

// ThemeCmd dispatches the theme subcommands:
//
//	theme              show the resolved palette
//	theme light|dark   pin a palette
//	theme system on    follow the device appearance
//	theme system off   pin the currently resolved palette
func (a *App) ThemeCmd(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		a.showTheme()
		return nil
	}

	var err error
	switch args[0] {
	case "light":
		err = a.theme.SetLight(ctx)
	case "dark":
		err = a.theme.SetDark(ctx)
	case "system":
		if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
			fmt.Fprintln(a.out, "Uso: theme system on|off")
			return nil
		}
		err = a.theme.SetFollowSystem(ctx, args[1] == "on")
	default:
		fmt.Fprintln(a.out, "Uso: theme [show|light|dark|system on|off]")
		return nil
	}

	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	a.showTheme()
	return nil
}

func (a *App) showTheme() {
	t := a.theme.Current()
	mode := "fixo"
	if a.theme.FollowsSystem() {
		mode = "seguindo o sistema"
	}
	fmt.Fprintf(a.out, "Tema: %s (%s)\n", t.Name, mode)
}
