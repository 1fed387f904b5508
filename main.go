package main

import "github.com/slosh-sh/slosh/cmd"

func main() {
	cmd.Execute()
}
