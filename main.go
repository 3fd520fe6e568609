package main

import "github.com/taskai-app/taskai-go/cmd"

func main() {
	cmd.Execute()
}
