package cli

import (
	"context"
	"fmt"
)

// SettingsCmd shows or toggles the auxiliary app settings:
//
//	settings                     show current values
//	settings notifications on    enable notifications
//	settings autosync off        disable auto sync
func (a *App) SettingsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.showSettings()
		return nil
	}
	if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
		fmt.Fprintln(a.out, "Uso: settings [notifications|autosync on|off]")
		return nil
	}

	enabled := args[1] == "on"
	var err error
	switch args[0] {
	case "notifications":
		err = a.settings.SetNotifications(ctx, enabled)
	case "autosync":
		err = a.settings.SetAutoSync(ctx, enabled)
	default:
		fmt.Fprintln(a.out, "Uso: settings [notifications|autosync on|off]")
		return nil
	}

	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	a.showSettings()
	return nil
}

func (a *App) showSettings() {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	fmt.Fprintf(a.out, "Notificações: %s\n", onOff(a.settings.Notifications()))
	fmt.Fprintf(a.out, "Sincronização automática: %s\n", onOff(a.settings.AutoSync()))
}
