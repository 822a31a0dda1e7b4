package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	registry   *store.Registry
	users      string
	dashboards *service.DashboardService
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -email EMAIL [-name NAME] [-role ROLE] [-bcrypt] [-generate] - create or update a user, password prompted or generated")
	fmt.Fprintln(cli.out, "  hash-password [-bcrypt]                                  - print a password hash, password prompted")
	fmt.Fprintln(cli.out, "  secret [-bytes N]                                        - print a random JWT_SECRET")
	fmt.Fprintln(cli.out, "  seed-dashboard -file PATH                                - store the dashboard aggregate from a JSON file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserEmail := addUserCmd.String("email", "", "The user's email (login name).")
	addUserName := addUserCmd.String("name", "", "Display name.")
	addUserRole := addUserCmd.String("role", "Admin", "Role claim put in the user's tokens.")
	addUserBcrypt := addUserCmd.Bool("bcrypt", false, "Hash with bcrypt instead of argon2id.")
	addUserGenerate := addUserCmd.Bool("generate", false, "Generate a random password and print it instead of prompting.")

	hashCmd := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	hashBcrypt := hashCmd.Bool("bcrypt", false, "Hash with bcrypt instead of argon2id.")

	secretCmd := flag.NewFlagSet("secret", flag.ContinueOnError)
	secretBytes := secretCmd.Int("bytes", 32, "Number of random bytes.")

	seedCmd := flag.NewFlagSet("seed-dashboard", flag.ContinueOnError)
	seedFile := seedCmd.String("file", "", "Path to a JSON dashboard document.")

	for _, fs := range []*flag.FlagSet{addUserCmd, hashCmd, secretCmd, seedCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		var (
			pwd string
			err error
		)
		if *addUserGenerate {
			pwd, err = cryptox.GeneratePassword()
			if err == nil {
				fmt.Fprintf(cli.out, "generated password: %s\n", pwd)
			}
		} else {
			pwd, err = cli.promptPassword()
		}
		if err != nil {
			addUserCmd.Usage()
			return err
		}
		return cli.addUser(*addUserEmail, *addUserName, *addUserRole, pwd, *addUserBcrypt)

	case "hash-password":
		if err := hashCmd.Parse(args[2:]); err != nil {
			return err
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			hashCmd.Usage()
			return err
		}
		return cli.hashPassword(pwd, *hashBcrypt)

	case "secret":
		if err := secretCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.secret(*secretBytes)

	case "seed-dashboard":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seedDashboard(*seedFile)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errHelp
	}
	return string(pwd), nil
}
