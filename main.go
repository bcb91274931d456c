package main

import "github.com/taskdock/taskd/cmd"

func main() {
	cmd.Execute()
}
