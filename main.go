package main

import (
	"log"
	"os"

	sdk "github.com/mark3labs/mcp-go/server"

	"github.com/huangyul/go-mcp-server-template/server"
)

func main() {
	errLogger := log.New(os.Stderr, "", log.LstdFlags)

	if err := sdk.ServeStdio(server.New(), sdk.WithErrorLogger(errLogger)); err != nil {
		errLogger.Fatal(err)
	}
}
