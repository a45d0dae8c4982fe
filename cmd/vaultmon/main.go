// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/vaultmon/cmd/vaultmon/cmd"
)

func main() {
	cmd.Execute()
}
