package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/fitcore/workout-planner/internal/infrastructure/auth"
)

func main() {
	principal := flag.String("principal", "", "caller principal to embed in the token")
	secret := flag.String("secret", os.Getenv("WP_AUTH_SECRET"), "signing secret (defaults to WP_AUTH_SECRET)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *principal == "" {
		log.Fatal("tokengen: -principal is required")
	}
	if *secret == "" {
		log.Fatal("tokengen: -secret or WP_AUTH_SECRET is required")
	}

	token, err := auth.GenerateToken(entity.Principal(*principal), *secret, *ttl)
	if err != nil {
		log.Fatalf("tokengen: could not sign token: %v", err)
	}

	fmt.Println(token)
}
