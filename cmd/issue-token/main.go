// Command issue-token prints a bearer token for the admin endpoints, signed
// with the configured JWT secret.
//
// Usage:
//
//	issue-token --subject ops [--role admin] [--ttl 24h]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/heartmarshall/haiku-judge/internal/auth"
	"github.com/heartmarshall/haiku-judge/internal/config"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. the operator's name (required)")
	role := flag.String("role", auth.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (default auth.token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: load config: %v\n", err)
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.Auth.TokenTTL = *ttl
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, err := tokens.Issue(*subject, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
