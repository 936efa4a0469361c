// Package main is the rzctl command-line tool.
package main

import (
	"log"
	"os"
)

// main is the entrypoint for the rzctl CLI.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logFatal(err)
	}
}

// logFatal prints and exits for command failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
