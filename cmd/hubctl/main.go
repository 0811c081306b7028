package main

import (
	"github.com/betleague/sportsbet-hub/internal/cli"
)

func main() {
	cli.Execute()
}
