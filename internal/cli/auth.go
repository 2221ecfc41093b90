package cli

import (
	"context"
	"fmt"

	"cinetrack/internal/common"
	"cinetrack/internal/identity"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var confirm = Confirm

// Register prompts for name, email and password and creates a new account.
// The new account is not logged in, matching the registration flow of the
// app.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nome", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.identity.Register(ctx, name, email, string(password)); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Conta criada! Faça login para continuar.")
	return nil
}

// Login prompts for credentials and activates a session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.identity.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintf(a.out, "Bem-vindo, %s!\n", a.identity.Session().Name)
	return nil
}

// Logout asks for confirmation before clearing the session; logging out is
// destructive for the in-memory favorites list.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, msgNotAuthenticated)
		return nil
	}
	ok, err := confirm(a.reader, "Deseja realmente sair?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := a.identity.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Até logo!")
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI() {
	sess := a.identity.Session()
	if sess == nil {
		fmt.Fprintln(a.out, msgNotAuthenticated)
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", sess.Name, sess.Email)
	if sess.ProfilePicture != "" {
		fmt.Fprintf(a.out, "Foto de perfil: %s\n", sess.ProfilePicture)
	}
	fmt.Fprintf(a.out, "Conta criada em %s\n", sess.CreatedAt.Format("02/01/2006"))
}

// Profile updates one profile field: name, email or avatar.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Uso: profile name|email|avatar <valor>")
		return nil
	}
	field, value := args[0], args[1]

	var upd identity.ProfileUpdate
	switch field {
	case "name":
		upd.Name = &value
	case "email":
		upd.Email = &value
	case "avatar":
		return a.reportProfileErr(a.identity.UpdateProfilePicture(ctx, value))
	default:
		fmt.Fprintln(a.out, "Uso: profile name|email|avatar <valor>")
		return nil
	}
	return a.reportProfileErr(a.identity.UpdateProfile(ctx, upd))
}

func (a *App) reportProfileErr(err error) error {
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Perfil atualizado.")
	return nil
}
