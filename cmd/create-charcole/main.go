package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charcoles/charcole/cmd/create-charcole/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
