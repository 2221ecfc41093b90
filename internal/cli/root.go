package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	if sess := a.identity.Session(); sess != nil {
		return fmt.Sprintf("(%s)", sess.Name)
	}
	return ""
}

// Root runs the interactive loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Bem-vindo ao CineTrack (digite 'help' para ver os comandos)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "cine %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "profile":
			_ = a.Profile(ctx, args)

		case "home":
			_ = a.Home(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "movie":
			if id, ok := idArg(args); ok {
				_ = a.Movie(ctx, id)
			} else {
				fmt.Fprintln(a.out, "Uso: movie <id>")
			}
		case "actor":
			if id, ok := idArg(args); ok {
				_ = a.Actor(ctx, id)
			} else {
				fmt.Fprintln(a.out, "Uso: actor <id>")
			}

		case "fav":
			_ = a.FavoritesCmd(ctx, args)

		case "theme":
			_ = a.ThemeCmd(ctx, args)
		case "settings":
			_ = a.SettingsCmd(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Até logo!")
			return

		default:
			fmt.Fprintln(a.out, "Comando desconhecido:", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Catálogo: home, search <texto>, movie <id>, actor <id>")
	fmt.Fprintln(a.out, "Favoritos: fav [list|add <id>|rm <id>|toggle <id>|clear]")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Conta: whoami, profile name|email|avatar <valor>, logout")
	} else {
		fmt.Fprintln(a.out, "Conta: register, login")
	}
	fmt.Fprintln(a.out, "Preferências: theme [...], settings [...]")
	fmt.Fprintln(a.out, "Outros: help, exit")
}

func idArg(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
