// Command create-admin seeds an administrator account, or promotes an
// existing one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"lodge-portal/internal/adapter/repository/mysql"
	"lodge-portal/internal/config"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/infrastructure/auth"
	"lodge-portal/internal/infrastructure/db"
	"lodge-portal/internal/infrastructure/logging"
	"lodge-portal/pkg/id"

	"github.com/sirupsen/logrus"
)

const generatedPasswordLength = 16

type options struct {
	Email    string
	FullName string
	Password string
	Phone    string
	Country  string
	City     string
}

type hasher interface {
	Hash(password string) (string, error)
}

func main() {
	var opts options
	flag.StringVar(&opts.Email, "email", "", "admin email (required)")
	flag.StringVar(&opts.FullName, "name", "Administrator", "full name")
	flag.StringVar(&opts.Password, "password", "", "password; generated when empty")
	flag.StringVar(&opts.Phone, "phone", "", "phone number")
	flag.StringVar(&opts.Country, "country", "", "country")
	flag.StringVar(&opts.City, "city", "", "city")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := logging.Setup(cfg.Env, cfg.LogLevel, os.Stderr)

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if cfg.AutoMigrate {
		if err := mysql.AutoMigrate(gdb); err != nil {
			log.WithError(err).Fatal("auto-migrate")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	acc, password, err := ensureAdmin(ctx, mysql.NewUserRepository(gdb), auth.NewBcryptHasher(), opts)
	if err != nil {
		log.WithError(err).Fatal("create admin")
	}

	fmt.Printf("admin ready: %s (%s)\n", acc.Email, acc.PublicID)
	if password != "" {
		fmt.Printf("password: %s\n", password)
	}
}

// ensureAdmin creates the account or promotes the existing one. The returned
// password is set only when it was generated here.
func ensureAdmin(ctx context.Context, users user.Repository, h hasher, opts options) (*user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(opts.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", errors.New("a valid -email is required")
	}
	if opts.Password != "" && len(opts.Password) < user.MinPasswordLength {
		return nil, "", user.ErrWeakPassword
	}

	password, generated := opts.Password, ""
	if password == "" {
		p, err := auth.RandomPassword(generatedPasswordLength)
		if err != nil {
			return nil, "", fmt.Errorf("generate password: %w", err)
		}
		password, generated = p, p
	}

	acc, err := users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		hash, err := h.Hash(password)
		if err != nil {
			return nil, "", fmt.Errorf("hash password: %w", err)
		}
		acc = &user.User{
			PublicID:        id.NewID32(),
			FullName:        strings.TrimSpace(opts.FullName),
			Email:           email,
			Phone:           strings.TrimSpace(opts.Phone),
			Country:         strings.TrimSpace(opts.Country),
			City:            strings.TrimSpace(opts.City),
			PasswordHash:    hash,
			Role:            user.RoleAdmin,
			Status:          user.StatusApproved,
			EmailVerified:   true,
			ApplicationType: user.AppMembership,
		}
		if err := users.Create(ctx, acc); err != nil {
			return nil, "", err
		}
		logrus.WithField("email", email).Info("admin created")
		return acc, generated, nil
	case err != nil:
		return nil, "", err
	}

	// Existing account: promote, and only touch the password when one was given.
	acc.Role = user.RoleAdmin
	acc.Status = user.StatusApproved
	if opts.Password != "" {
		hash, err := h.Hash(opts.Password)
		if err != nil {
			return nil, "", fmt.Errorf("hash password: %w", err)
		}
		acc.PasswordHash = hash
	}
	if err := users.Save(ctx, acc); err != nil {
		return nil, "", err
	}
	logrus.WithField("email", email).Info("account promoted to admin")
	return acc, "", nil
}
