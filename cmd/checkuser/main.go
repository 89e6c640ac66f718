// Command checkuser prints the account diagnostic for one user: the
// stored login state and every reason login would currently be refused.
//
//	checkuser dana@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/help-yourself-test/help-yourself/internal/config"
	dbpostgres "github.com/help-yourself-test/help-yourself/internal/database/postgres"
	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
	"github.com/help-yourself-test/help-yourself/internal/repository"
)

func main() {
	_ = godotenv.Load()

	flag.Parse()
	email := flag.Arg(0)
	if email == "" {
		fmt.Fprintln(os.Stderr, "usage: checkuser <email>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := repository.NewPostgresUserRepository(db)
	u, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			fmt.Printf("no account for %s\n", email)
			os.Exit(1)
		}
		log.Fatalf("lookup failed: %v", err)
	}

	now := time.Now()
	state := u.AccountState()
	decision := account.CanLogin(state, u.Role, now)

	fmt.Printf("account:   %s (%s)\n", u.Email, u.FullName())
	fmt.Printf("role:      %s", u.Role)
	if u.RequestedRole != "" {
		fmt.Printf(" (requested %s, %s)", u.RequestedRole, u.AdminApprovalStatus)
	}
	fmt.Println()
	fmt.Printf("active:    %t\n", u.IsActive)
	fmt.Printf("verified:  %t\n", u.IsVerified)
	fmt.Printf("attempts:  %d\n", u.LoginAttempts)
	if state.Locked(now) {
		fmt.Printf("locked:    yes, until %s\n", u.LockUntil.Format(time.RFC3339))
	} else {
		fmt.Println("locked:    no")
	}
	if u.LastLogin != nil {
		fmt.Printf("last seen: %s\n", u.LastLogin.Format(time.RFC3339))
	}

	if decision.Allowed {
		fmt.Println("login:     allowed")
		return
	}
	fmt.Println("login:     refused")
	for _, reason := range decision.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	os.Exit(1)
}
