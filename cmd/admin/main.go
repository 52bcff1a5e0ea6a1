// Admin tool for managing posts through the blog API.
//
//	admin [flags] list [all|published|drafts]
//	admin [flags] search <query> [all|published|drafts]
//	admin [flags] show <post-id>
//	admin [flags] create -title T -content C -author ID [-excerpt E] [-cover URL] [-published]
//	admin [flags] edit <post-id> [-title T] [-content C] [-excerpt E] [-cover URL] [-published=true|false]
//	admin [flags] delete <post-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-platform/internal/infrastructure/logger"
)

func main() {
	var baseURL, email, password, env string
	var timeout time.Duration
	var assumeYes bool
	flag.StringVar(&baseURL, "url", envOr("BLOG_ADMIN_URL", "http://localhost:8080"), "blog API base url")
	flag.StringVar(&email, "email", os.Getenv("BLOG_ADMIN_EMAIL"), "login email, required when writes are protected")
	flag.StringVar(&password, "password", os.Getenv("BLOG_ADMIN_PASSWORD"), "login password")
	flag.StringVar(&env, "env", "prod", "log environment: local | dev | prod")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	flag.BoolVar(&assumeYes, "yes", false, "skip the delete confirmation prompt")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		baseURL:   baseURL,
		email:     email,
		password:  password,
		timeout:   timeout,
		assumeYes: assumeYes,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		log:       logger.New(env),
	}
	if err := a.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
