package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hesselink/todo-go/internal/cli"
)

func main() {
	// A .env file may carry DATABASE_URL; absence is fine.
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
