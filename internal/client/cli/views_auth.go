package cli

import (
	"context"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/common"
)

func (a *App) renderLogin(ctx context.Context) {
	email, err := promptLine(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	res := a.session.Login(ctx, email, password)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}

	fmt.Fprintln(a.out, "Signed in.")
	a.navigate(ctx, res.RedirectTo)
}

func (a *App) renderSignup(ctx context.Context) {
	email, err := promptLine(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	firstName, err := promptLine(a.reader, "First name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	lastName, err := promptLine(a.reader, "Last name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	role, err := promptLine(a.reader, "Role (refugee/provider)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	if !common.ValidRole(role) || role == common.RoleAdmin {
		fmt.Fprintln(a.out, "Role must be refugee or provider.")
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	res := a.session.Signup(ctx, api.SignupRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	})
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}

	fmt.Fprintln(a.out, "Account created.")
	a.navigate(ctx, res.RedirectTo)
}

func (a *App) logout() {
	a.session.Logout()
	fmt.Fprintln(a.out, "Signed out.")
}
