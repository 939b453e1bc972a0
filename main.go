package main

import "github.com/dotcommander/vendorsel/cmd"

func main() {
	cmd.Execute()
}
