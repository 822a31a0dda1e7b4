package main

import (
	"errors"
	"fmt"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
)

func (cli *commandLine) secret(size int) error {
	if size < 16 {
		return errors.New("secret: need at least 16 bytes")
	}
	s, err := cryptox.GenerateToken(size)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, s)
	return nil
}
