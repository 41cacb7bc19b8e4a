package main

import "github.com/kasuboski/tvsort/cmd"

func main() {
	cmd.Execute()
}
