package main

import "shiroink/cmd"

func main() {
	cmd.Execute()
}
