package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
)

// addUser creates the user, or updates name/role/password of the user
// with the same email.
func (cli *commandLine) addUser(email, name, role, pwd string, useBcrypt bool) error {
	ctx := context.Background()
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := hashFor(pwd, useBcrypt)
	if err != nil {
		return err
	}

	users, err := cli.registry.Accessor(cli.users)
	if err != nil {
		return err
	}

	fields := domain.Record{
		"email":        email,
		"role":         role,
		"passwordHash": hash,
	}
	if name != "" {
		fields["name"] = name
	}

	existing, err := users.FindOne(ctx, "email", email)
	switch {
	case err == nil:
		if _, err := users.UpdateByID(ctx, existing.ID(), fields); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "updated user %s (%s)\n", email, existing.ID())
		return nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return err
	}

	rec, err := users.Insert(ctx, fields)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "created user %s (%s)\n", email, rec.ID())
	return nil
}

func (cli *commandLine) hashPassword(pwd string, useBcrypt bool) error {
	hash, err := hashFor(pwd, useBcrypt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, hash)
	return nil
}

func hashFor(pwd string, useBcrypt bool) (string, error) {
	if useBcrypt {
		return cryptox.HashPasswordBcrypt(pwd)
	}
	return cryptox.HashPassword(pwd)
}
