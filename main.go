package main

import (
	"github.com/Metaform/assemblr/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
