// Command weighctl drives the weighing service from a terminal against the
// local SQLite file, without going through gRPC.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	a := &app{}
	err := newRootCmd(a).Execute()
	_ = a.close()
	if err != nil {
		os.Exit(1)
	}
}
