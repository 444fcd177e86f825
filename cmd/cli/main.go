package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskhub/internal/client/cli"
)

func main() {
	server := flag.String("server", defaultServer(), "base URL of the taskhub server")
	flag.Parse()

	app := cli.NewApp(*server)
	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultServer() string {
	if v, ok := os.LookupEnv("TASKHUB_SERVER"); ok {
		return v
	}
	return "http://localhost:3000"
}
