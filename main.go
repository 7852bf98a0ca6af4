package main

import "golang-netswitch/cmd"

func main() {
	cmd.Execute()
}
