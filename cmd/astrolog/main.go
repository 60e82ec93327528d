package main

import (
	"context"

	"github.com/faizmokh/astrolog/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
