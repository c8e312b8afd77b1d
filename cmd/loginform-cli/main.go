package main

import "github.com/nfrund/loginform/cmd/loginform-cli/cmd"

func main() {
	cmd.Execute()
}
