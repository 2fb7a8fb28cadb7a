// Command hash-generator prints bcrypt hashes for the passwords given as
// arguments, using the same hasher as the API. It is handy for inserting
// users directly into a database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating hash: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
