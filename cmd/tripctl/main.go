package main

import (
	"fmt"
	"os"

	"my_trip/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
