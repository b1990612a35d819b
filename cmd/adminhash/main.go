// Command adminhash prints the bcrypt hash to put in SESSION_ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/adminhash 'the-admin-password'
package main

import (
	"bufio"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	password, err := readPassword()
	if err != nil {
		log.Fatalf("Error reading password: %v", err)
	}
	if password == "" {
		log.Fatal("Password must not be empty")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Error hashing password: %v", exceptions.ErrHashPassword(err))
	}
	fmt.Println(hash)
}

// readPassword takes the first argument, falling back to one line of stdin.
func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
