package main

import "github.com/KaramelBytes/aquaprep-cli/cmd"

func main() {
	cmd.Execute()
}
