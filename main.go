package main

import (
	"context"

	"avrental/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
