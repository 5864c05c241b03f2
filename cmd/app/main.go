package main

import (
	"context"

	"kitchen/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("kitchen: %v", err)
	}
}
