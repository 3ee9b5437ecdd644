package main

import "github.com/yarlson/go-taskcli/cmd"

func main() {
	cmd.Execute()
}
