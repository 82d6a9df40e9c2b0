package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carlosdaniiel07/identity-service/internal/client/cli"
)

func main() {
	server := flag.String("s", "http://127.0.0.1:8080", "identity server base URL")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: cli [-s server] <register|login>")
		os.Exit(2)
	}

	app := cli.NewApp(*server)
	if err := app.Run(context.Background(), command); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
