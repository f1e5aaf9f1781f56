package main

import (
	"os"

	"github.com/jito-foundation/restaking-go/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
