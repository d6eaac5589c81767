// Command hashpin prints the argon2id hash of a PIN or password so it
// can be dropped into CLUB_ADMIN_PIN_HASH / CLUB_SUPER_ADMIN_PIN_HASH.
// It uses the same pepper file as the server, so run it with
// CLUB_PEPPER_FILE pointing at the deployment's pepper.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/malliaquatic/clubd/pkg/cryptox"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpin <pin>")
		os.Exit(2)
	}

	if path := os.Getenv("CLUB_PEPPER_FILE"); path != "" {
		cryptox.SetPepperPath(path)
	}

	hash, err := cryptox.HashSecret(os.Args[1])
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	fmt.Println(hash)
}
