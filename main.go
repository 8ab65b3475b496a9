package main

import "github.com/neoshell/sysinfo/cmd"

func main() {
	cmd.Execute()
}
