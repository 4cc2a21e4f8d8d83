package main

import "github.com/BruksfildServices01/vivacar/cmd/api/command"

func main() {
	command.Execute()
}
