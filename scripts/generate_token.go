// Command generate_token mints a development JWT for exercising the API by
// hand, e.g.:
//
//	go run scripts/generate_token.go -user staff-42 -tenant hotel-a -roles staff,manager
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "Staff user ID to embed in the token")
	tenantID := flag.String("tenant", "", "Hotel (tenant) ID the token is scoped to")
	roles := flag.String("roles", "staff", "Comma-separated roles (staff, manager, admin)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}
	if *tenantID == "" {
		log.Fatal("-tenant is required")
	}

	rolesList := []string{}
	if *roles != "" {
		rolesList = strings.Split(*roles, ",")
	}

	// Same claim shape the auth middleware parses.
	claims := jwt.MapClaims{
		"user_id":   *userID,
		"tenant_id": *tenantID,
		"roles":     rolesList,
		"exp":       time.Now().Add(time.Duration(*expirationHours) * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
