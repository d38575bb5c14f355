// Command useradd creates an account directly against the database. It is
// an operator bootstrap tool; regular users register over the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dynsched/dynsched/internal/flagx"
	"github.com/dynsched/dynsched/internal/server"
	"github.com/dynsched/dynsched/internal/server/config"
	"github.com/dynsched/dynsched/internal/server/repositories/repomanager"
	"github.com/dynsched/dynsched/internal/server/services"
	"golang.org/x/term"
)

func main() {

	// Only our own flags; the rest of os.Args belongs to config.LoadConfig.
	args := flagx.FilterArgs(os.Args[1:], []string{"-username", "-email"})

	var username, email string
	fs := flag.NewFlagSet("useradd", flag.ExitOnError)
	fs.StringVar(&username, "username", "", "username of the new account")
	fs.StringVar(&email, "email", "", "email of the new account")
	_ = fs.Parse(args)

	if username == "" || email == "" {
		fmt.Fprintln(os.Stderr, "usage: useradd -username <name> -email <addr>")
		os.Exit(2)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := server.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	us := services.NewUserService(db, rm, cfg)
	user, _, err := us.Register(ctx, username, email, string(password))
	if err != nil {
		log.Fatalf("creating user: %v", err)
	}

	fmt.Printf("created user %s (id=%s)\n", user.Username, user.ID)
}
